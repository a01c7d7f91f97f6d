// Package ports defines the interfaces between the assistant core and
// its external collaborators.
//
// The core exchanges plain text strings and enumerations with the
// editor, the speech engines, and persistent storage; everything
// concrete lives in the infrastructure layer. Following the ports and
// adapters pattern keeps the NLU pipeline free of I/O so it stays pure,
// total, and safe to call concurrently.
package ports

import (
	"context"

	"voca/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.voca/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// TranscriptSource asynchronously yields at most one transcript string
// per capture session, or reports an error with a reason code.
// Capability detection is the collaborator's job, never the core's.
type TranscriptSource interface {
	Supported() bool
	Capture(ctx context.Context) (string, error)
}

// EditorState exposes the active document of the editor collaborator:
// current text, optional selected-range override, and a language id
// ("unknown" when the editor reports none).
type EditorState interface {
	Snapshot(ctx context.Context) (domain.DocumentSnapshot, error)
}

// CommandExecutor accepts an opaque editor command identifier ("run",
// "save", "clear") and reports success or failure.
type CommandExecutor interface {
	Execute(ctx context.Context, commandID string) error
}

// SpeechOutput plays an utterance with the configured voice settings.
// Fire-and-forget from the core's perspective: the facade logs failures
// but never propagates them into the pipeline.
type SpeechOutput interface {
	Available() bool
	Speak(ctx context.Context, utterance string, settings domain.SpeechSettings) error
}

// SnippetNotifier informs the editor that a snippet was generated. The
// editor is not required to act on the event.
type SnippetNotifier interface {
	NotifySnippet(ctx context.Context, snippet domain.GeneratedSnippet) error
}

// HistoryRepository persists handled utterances.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Recent(limit int) ([]domain.HistoryRecord, error)
	Search(query string, limit int) ([]domain.HistoryRecord, error)
	Clear() error
}

// PhraseProvider supplies user-defined intent phrase rules.
type PhraseProvider interface {
	Rules() []domain.PhraseRule
}

// Logger provides structured logging abstraction for the application
// layer. Implementations can route to different backends.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
