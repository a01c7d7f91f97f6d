package domain

import (
	"context"
	"errors"
	"fmt"
)

// AssistRequest is one utterance moving through the assistant facade.
type AssistRequest struct {
	Context    context.Context
	Transcript string
	SessionID  string
}

// ResponseKind says which collaborator path handled the request.
type ResponseKind string

const (
	ResponseCommand     ResponseKind = "command"
	ResponseExplanation ResponseKind = "explanation"
	ResponseSnippet     ResponseKind = "snippet"
	ResponseFallback    ResponseKind = "fallback"
)

// AssistResponse is the canonical result propagated back to the CLI.
type AssistResponse struct {
	RequestID   string
	SessionID   string
	Intent      CommandIntent
	Kind        ResponseKind
	Utterance   string
	Explanation string
	CommandID   string
	Snippet     *GeneratedSnippet
	Succeeded   bool
}

// AssistService exposes the use-case boundary for handling a transcript.
type AssistService interface {
	Handle(AssistRequest) (AssistResponse, error)
}

// ErrAlreadyListening means a voice-capture session is active; starting
// another one is a no-op surfaced to the user as speech.
var ErrAlreadyListening = errors.New("a capture session is already active")

// ErrCaptureUnsupported means the transcript source lacks the speech
// capture capability on this host.
var ErrCaptureUnsupported = errors.New("speech capture not supported")

// CaptureError is a recognition failure reported by the transcript
// source, carrying the collaborator's reason code.
type CaptureError struct {
	Reason string
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("speech recognition failed: %s", e.Reason)
}
