package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ayaka/kotoba/internal/persona"
	"github.com/ayaka/kotoba/internal/quiz"
)

// Response helpers

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// Health handler

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Character handler

type characterInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Greeting string `json:"greeting"`
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	chars := persona.Characters()
	out := make([]characterInfo, 0, len(chars))
	for _, c := range chars {
		out = append(out, characterInfo{
			ID:       c.ID,
			Name:     c.Name,
			Tagline:  c.Tagline,
			Greeting: c.Greeting,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// Chat handlers

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Character string `json:"character"`
}

type chatResponse struct {
	SessionID string   `json:"session_id"`
	Reply     string   `json:"reply"`
	Topic     string   `json:"topic"`
	Options   []string `json:"options"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	newSession := req.SessionID == ""
	if newSession {
		req.SessionID = uuid.NewString()
	}

	view, err := s.engine.StartOrContinueRound(r.Context(), req.SessionID, req.Message, req.Character)
	if err != nil {
		slog.Error("failed to start round", "error", err, "session_id", req.SessionID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to start round")
		return
	}

	char := s.sessionCharacter(req.SessionID)
	reply := fmt.Sprintf("%s Here's a sentence about %s.", char.Prompt, view.Topic.Name)
	if newSession {
		reply = fmt.Sprintf("%s Let's start with %s.", char.Greeting, view.Topic.Name)
	}

	respondJSON(w, http.StatusOK, chatResponse{
		SessionID: req.SessionID,
		Reply:     reply,
		Topic:     view.Topic.Name,
		Options:   view.Options[:],
	})
}

type selectOptionRequest struct {
	SessionID string `json:"session_id"`
	Choice    int    `json:"choice"`
}

type selectOptionResponse struct {
	SessionID   string   `json:"session_id"`
	Correct     bool     `json:"correct"`
	Reply       string   `json:"reply"`
	Explanation string   `json:"explanation,omitempty"`
	NextTopic   string   `json:"next_topic"`
	NextOptions []string `json:"next_options"`
}

func (s *Server) handleSelectOption(w http.ResponseWriter, r *http.Request) {
	var req selectOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.SessionID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "session_id is required")
		return
	}

	result, err := s.engine.GradeSelection(r.Context(), req.SessionID, req.Choice)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrSessionNotFound):
			respondError(w, http.StatusNotFound, "session_not_found", "session not found")
		case errors.Is(err, quiz.ErrInvalidChoice):
			respondError(w, http.StatusBadRequest, "invalid_choice", "choice must be 0, 1 or 2")
		default:
			slog.Error("failed to grade selection", "error", err, "session_id", req.SessionID)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to grade selection")
		}
		return
	}

	char := s.sessionCharacter(req.SessionID)
	reply := char.CorrectReply()
	if !result.Correct {
		reply = char.IncorrectReply()
	}

	respondJSON(w, http.StatusOK, selectOptionResponse{
		SessionID:   req.SessionID,
		Correct:     result.Correct,
		Reply:       reply,
		Explanation: result.Explanation,
		NextTopic:   result.Next.Topic.Name,
		NextOptions: result.Next.Options[:],
	})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.engine.EndSession(id)
	respondJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

// sessionCharacter resolves the persona recorded for the session,
// falling back to the default character.
func (s *Server) sessionCharacter(sessionID string) persona.Character {
	id, _ := s.engine.Persona(sessionID)
	return persona.ByID(id)
}
