package quiz

import (
	"sync"
	"testing"
)

func TestSessionStore_AcquireCreates(t *testing.T) {
	s := NewSessionStore()

	sess, release, ok := s.Acquire("s1", true)
	if !ok {
		t.Fatal("expected session to be created")
	}
	if sess.ID != "s1" {
		t.Errorf("expected ID s1, got %q", sess.ID)
	}
	release()

	if s.Len() != 1 {
		t.Errorf("expected 1 session, got %d", s.Len())
	}
}

func TestSessionStore_AcquireMissing(t *testing.T) {
	s := NewSessionStore()

	_, _, ok := s.Acquire("nope", false)
	if ok {
		t.Fatal("expected lookup miss without create")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d sessions", s.Len())
	}
}

func TestSessionStore_AcquireReturnsSameSession(t *testing.T) {
	s := NewSessionStore()

	sess, release, _ := s.Acquire("s1", true)
	sess.Persona = "mia"
	release()

	again, release, ok := s.Acquire("s1", false)
	if !ok {
		t.Fatal("expected session to exist")
	}
	defer release()
	if again.Persona != "mia" {
		t.Errorf("expected same session back, got persona %q", again.Persona)
	}
}

func TestSessionStore_DeleteIdempotent(t *testing.T) {
	s := NewSessionStore()

	sess, release, _ := s.Acquire("s1", true)
	_ = sess
	release()

	s.Delete("s1")
	s.Delete("s1")
	s.Delete("never-existed")

	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d sessions", s.Len())
	}
}

func TestSessionStore_SerializesPerSession(t *testing.T) {
	s := NewSessionStore()

	// Counting rounds under the per-session lock must be race-free.
	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, release, _ := s.Acquire("shared", true)
			if sess.Round == nil {
				sess.Round = &Round{}
			}
			sess.Round.CorrectIndex++
			release()
		}()
	}
	wg.Wait()

	sess, release, _ := s.Acquire("shared", false)
	defer release()
	if sess.Round.CorrectIndex != goroutines {
		t.Errorf("expected %d increments, got %d", goroutines, sess.Round.CorrectIndex)
	}
}
