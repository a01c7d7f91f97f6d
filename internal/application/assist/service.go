// Package assist is the voice-assistant facade: it composes the intent
// classifier, the structure analyzer, the explanation composer and the
// code synthesizer with the external collaborators into one
// request/response cycle.
package assist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"voca/internal/application/analyze"
	"voca/internal/application/explain"
	"voca/internal/application/intent"
	"voca/internal/application/synth"
	"voca/internal/domain"
	"voca/internal/ports"
)

// Spoken responses for paths that do not produce their own sentence.
const (
	FallbackUtterance = `Sorry, I did not catch that. Try "run the code", "read the code", or "generate a function".`

	AlreadyListeningUtterance   = "I'm already listening."
	CaptureUnsupportedUtterance = "Speech capture is not available here. You can type your request instead."
)

var confirmations = map[domain.CommandIntent]string{
	domain.IntentRun:   "Running your code now.",
	domain.IntentSave:  "Saving the file.",
	domain.IntentClear: "Clearing the editor.",
}

// Service orchestrates one utterance end-to-end. All fields but the
// optional collaborators (Editor, Executor, Notifier, History) must be
// set before use.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Intents        *intent.Classifier
	Editor         ports.EditorState
	Executor       ports.CommandExecutor
	Speech         ports.SpeechOutput
	Notifier       ports.SnippetNotifier
	History        ports.HistoryRepository
	Session        *Session
	Logger         ports.Logger
}

// Handle classifies the transcript and dispatches on the intent. The
// pipeline stages are total; only collaborator calls can fail, and
// their failures surface as spoken messages, never as errors from this
// method. The returned error covers wiring problems only.
func (s *Service) Handle(req domain.AssistRequest) (domain.AssistResponse, error) {
	if s.ConfigProvider == nil || s.Intents == nil || s.Speech == nil || s.Logger == nil {
		return domain.AssistResponse{}, errors.New("assist.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.AssistResponse{}, fmt.Errorf("load config: %w", err)
	}

	resp := domain.AssistResponse{
		RequestID: uuid.NewString(),
		SessionID: req.SessionID,
		Intent:    s.Intents.Classify(req.Transcript),
	}

	switch resp.Intent {
	case domain.IntentRun, domain.IntentSave, domain.IntentClear:
		s.dispatchCommand(ctx, &resp)
	case domain.IntentRead:
		s.dispatchRead(ctx, &resp)
	case domain.IntentGenerate:
		s.dispatchGenerate(ctx, req.Transcript, &resp)
	default:
		resp.Kind = domain.ResponseFallback
		resp.Utterance = FallbackUtterance
		resp.Succeeded = true
	}

	s.speak(ctx, resp.Utterance, cfg.Speech)
	s.record(req, resp)
	return resp, nil
}

// Listen runs one capture-and-handle cycle against the transcript
// source. Concurrent calls are serialized by the session: the loser is
// told the assistant is already listening and no second capture starts.
func (s *Service) Listen(ctx context.Context, source ports.TranscriptSource) (domain.AssistResponse, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.AssistResponse{}, fmt.Errorf("load config: %w", err)
	}

	if source == nil || !source.Supported() {
		resp := domain.AssistResponse{Kind: domain.ResponseFallback, Utterance: CaptureUnsupportedUtterance}
		s.speak(ctx, resp.Utterance, cfg.Speech)
		return resp, domain.ErrCaptureUnsupported
	}

	sessionID, err := s.Session.Begin()
	if err != nil {
		resp := domain.AssistResponse{Kind: domain.ResponseFallback, Utterance: AlreadyListeningUtterance}
		s.speak(ctx, resp.Utterance, cfg.Speech)
		return resp, err
	}
	defer s.Session.End()

	transcript, err := source.Capture(ctx)
	if err != nil {
		var capture *domain.CaptureError
		if errors.As(err, &capture) {
			resp := domain.AssistResponse{
				SessionID: sessionID,
				Kind:      domain.ResponseFallback,
				Utterance: fmt.Sprintf("I couldn't hear you: %s.", capture.Reason),
			}
			s.speak(ctx, resp.Utterance, cfg.Speech)
			return resp, err
		}
		return domain.AssistResponse{SessionID: sessionID}, err
	}

	return s.Handle(domain.AssistRequest{Context: ctx, Transcript: transcript, SessionID: sessionID})
}

func (s *Service) dispatchCommand(ctx context.Context, resp *domain.AssistResponse) {
	resp.Kind = domain.ResponseCommand
	resp.CommandID = string(resp.Intent)

	if s.Executor == nil {
		resp.Utterance = "No editor is connected, so I can't do that."
		return
	}
	if err := s.Executor.Execute(ctx, resp.CommandID); err != nil {
		s.Logger.Warn("editor command failed", map[string]interface{}{
			"command": resp.CommandID,
			"error":   err.Error(),
		})
		resp.Utterance = fmt.Sprintf("Sorry, the %s command failed.", resp.CommandID)
		return
	}
	resp.Succeeded = true
	resp.Utterance = confirmations[resp.Intent]
}

func (s *Service) dispatchRead(ctx context.Context, resp *domain.AssistResponse) {
	resp.Kind = domain.ResponseExplanation

	if s.Editor == nil {
		resp.Utterance = "No editor is connected, so there is nothing to read."
		return
	}
	snapshot, err := s.Editor.Snapshot(ctx)
	if err != nil {
		s.Logger.Warn("editor snapshot failed", map[string]interface{}{"error": err.Error()})
		resp.Utterance = "Sorry, I couldn't read the editor contents."
		return
	}

	sample := snapshot.Sample()
	facts := analyze.Analyze(sample)
	resp.Explanation = explain.Compose(facts, sample.Language)
	resp.Utterance = resp.Explanation
	resp.Succeeded = true
}

func (s *Service) dispatchGenerate(ctx context.Context, transcript string, resp *domain.AssistResponse) {
	resp.Kind = domain.ResponseSnippet

	snippet := synth.Synthesize(transcript)
	resp.Snippet = &snippet
	resp.Utterance = "Here is the code I came up with: " + snippet.Code
	resp.Succeeded = true

	// Insertion is the editor's decision; the event is informational.
	if s.Notifier != nil {
		if err := s.Notifier.NotifySnippet(ctx, snippet); err != nil {
			s.Logger.Warn("snippet notification failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *Service) speak(ctx context.Context, utterance string, settings domain.SpeechSettings) {
	if utterance == "" {
		return
	}
	if err := s.Speech.Speak(ctx, utterance, settings); err != nil {
		s.Logger.Warn("speech output failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) record(req domain.AssistRequest, resp domain.AssistResponse) {
	if s.History == nil {
		return
	}
	record := domain.HistoryRecord{
		ID:         resp.RequestID,
		Timestamp:  time.Now(),
		SessionID:  req.SessionID,
		Transcript: req.Transcript,
		Intent:     resp.Intent,
		Kind:       resp.Kind,
		Utterance:  resp.Utterance,
		Succeeded:  resp.Succeeded,
	}
	if resp.Snippet != nil {
		record.TemplateID = string(resp.Snippet.Template)
	}
	if err := s.History.Save(record); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

// Compile-time interface compliance check
var _ domain.AssistService = (*Service)(nil)
