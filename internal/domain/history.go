package domain

import "time"

// HistoryRecord captures one handled utterance.
type HistoryRecord struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	SessionID  string        `json:"session_id"`
	Transcript string        `json:"transcript"`
	Intent     CommandIntent `json:"intent"`
	Kind       ResponseKind  `json:"kind"`
	Utterance  string        `json:"utterance"`
	TemplateID string        `json:"template_id,omitempty"`
	Succeeded  bool          `json:"succeeded"`
}
