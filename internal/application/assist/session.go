package assist

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"voca/internal/domain"
)

// SessionState is the capture session lifecycle.
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateListening SessionState = "listening"
)

// Session serializes voice-capture sessions so at most one is active.
// It is the only piece of mutable state shared with the audio
// collaborator; everything else in the pipeline is pure.
type Session struct {
	mu      sync.Mutex
	state   SessionState
	id      string
	started time.Time
}

// NewSession starts in the Idle state.
func NewSession() *Session {
	return &Session{state: StateIdle}
}

// Begin transitions Idle to Listening and returns the new session id.
// While a session is active, Begin fails with ErrAlreadyListening
// instead of stacking a second capture.
func (s *Session) Begin() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateListening {
		return "", domain.ErrAlreadyListening
	}
	s.state = StateListening
	s.id = uuid.NewString()
	s.started = time.Now()
	return s.id, nil
}

// End returns the session to Idle. Ending an idle session is a no-op.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
}

// State reports the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID reports the most recent session id.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}
