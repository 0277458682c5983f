package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayaka/kotoba/internal/quiz"
	"github.com/ayaka/kotoba/internal/quizgen"
	"github.com/ayaka/kotoba/internal/taxonomy"
)

// stubGenerator serves a fixed sentence set.
type stubGenerator struct{}

func (stubGenerator) GenerateSet(_ context.Context, _ taxonomy.Topic, _ taxonomy.ErrorCategory) (*quizgen.SentenceSet, error) {
	return &quizgen.SentenceSet{
		Correct: "He plays tennis on Sundays.",
		Flawed:  [2]string{"He play tennis on Sundays.", "He playing tennis on Sundays."},
	}, nil
}

func (stubGenerator) Explain(_ context.Context, _, _ string, _ taxonomy.ErrorCategory) (string, error) {
	return "Third person singular needs -s.", nil
}

func newTestServer() *Server {
	engine := quiz.NewEngine(stubGenerator{}, quiz.NewSessionStore(), nil)
	return NewServer(engine)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Success, "expected success response")
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestHandleHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCharacters(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/characters", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var chars []characterInfo
	decodeData(t, rec, &chars)
	require.Len(t, chars, 5)
	for _, c := range chars {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Greeting)
	}
}

func TestHandleChat_NewSession(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/chat", chatRequest{
		Message:   "I love cooking",
		Character: "mia",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp chatResponse
	decodeData(t, rec, &resp)

	assert.NotEmpty(t, resp.SessionID, "expected a generated session ID")
	require.Len(t, resp.Options, 3)
	assert.Equal(t, "food and cooking", resp.Topic, "keyword should select the topic")
	assert.NotEmpty(t, resp.Reply, "expected a greeting reply")
}

func TestHandleChat_InvalidBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSelectOption_FullLoop(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/chat", chatRequest{
		Message:   "hello",
		Character: "rin",
	})
	var chat chatResponse
	decodeData(t, rec, &chat)

	// Find the correct option by value, then answer it.
	correctIndex := -1
	for i, opt := range chat.Options {
		if opt == "He plays tennis on Sundays." {
			correctIndex = i
		}
	}
	require.GreaterOrEqual(t, correctIndex, 0, "correct sentence missing from options: %v", chat.Options)

	rec = doJSON(t, srv, http.MethodPost, "/select_option", selectOptionRequest{
		SessionID: chat.SessionID,
		Choice:    correctIndex,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var graded selectOptionResponse
	decodeData(t, rec, &graded)

	assert.True(t, graded.Correct)
	assert.Empty(t, graded.Explanation, "correct answers carry no explanation")
	assert.Len(t, graded.NextOptions, 3)
	assert.NotEmpty(t, graded.NextTopic)
	assert.NotEmpty(t, graded.Reply)
}

func TestHandleSelectOption_WrongAnswer(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/chat", chatRequest{Message: "hello"})
	var chat chatResponse
	decodeData(t, rec, &chat)

	wrongIndex := 0
	for i, opt := range chat.Options {
		if opt != "He plays tennis on Sundays." {
			wrongIndex = i
			break
		}
	}

	rec = doJSON(t, srv, http.MethodPost, "/select_option", selectOptionRequest{
		SessionID: chat.SessionID,
		Choice:    wrongIndex,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var graded selectOptionResponse
	decodeData(t, rec, &graded)

	assert.False(t, graded.Correct)
	assert.NotEmpty(t, graded.Explanation, "expected an explanation for a wrong answer")
}

func TestHandleSelectOption_UnknownSession(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/select_option", selectOptionRequest{
		SessionID: "does-not-exist",
		Choice:    0,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSelectOption_InvalidChoice(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/chat", chatRequest{Message: "hello"})
	var chat chatResponse
	decodeData(t, rec, &chat)

	rec = doJSON(t, srv, http.MethodPost, "/select_option", selectOptionRequest{
		SessionID: chat.SessionID,
		Choice:    7,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEndSession(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/chat", chatRequest{Message: "hello"})
	var chat chatResponse
	decodeData(t, rec, &chat)

	rec = doJSON(t, srv, http.MethodDelete, "/sessions/"+chat.SessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/select_option", selectOptionRequest{
		SessionID: chat.SessionID,
		Choice:    0,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code, "session should be gone")
}
