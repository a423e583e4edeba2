package game

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewGameSession(t *testing.T) {
	s := NewGameSession(30)

	if s.SecondsRemaining != 30 {
		t.Errorf("SecondsRemaining = %d, want 30", s.SecondsRemaining)
	}
	if s.Score != 0 || s.IsRunning {
		t.Errorf("new session should have score 0 and not be running, got %+v", s)
	}
	if s.ID == uuid.Nil {
		t.Error("session ID should be generated")
	}
}

func TestGameSessionScoreMonotonic(t *testing.T) {
	s := NewGameSession(30)

	s.AddScore(1)
	s.AddScore(5)
	if s.AddScore(-3) {
		t.Error("negative delta should be rejected")
	}

	if s.Score != 6 {
		t.Errorf("Score = %d, want 6", s.Score)
	}

	r := s.Record()
	if r.Score != 6 || r.SessionID != s.ID.String() {
		t.Errorf("Record() = %+v", r)
	}
}
