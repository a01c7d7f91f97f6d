// Package doctor runs environment diagnostics for the assistant.
package doctor

import (
	"context"
	"fmt"

	"voca/internal/domain"
	"voca/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Phrases        ports.PhraseProvider
	Speech         ports.SpeechOutput
	Transcripts    ports.TranscriptSource
	History        ports.HistoryRepository
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format version %s", cfg.ConfigFormatVersion)))

	if s.Phrases != nil {
		checks = append(checks, ok("Phrase rules", fmt.Sprintf("%d custom rules loaded", len(s.Phrases.Rules()))))
	} else {
		checks = append(checks, warn("Phrase rules", "phrase provider not initialized"))
	}

	if s.Speech != nil && s.Speech.Available() {
		checks = append(checks, ok("Speech output", "a text-to-speech engine is on PATH"))
	} else {
		checks = append(checks, warn("Speech output", "no TTS engine found; utterances will be printed only"))
	}

	if s.Transcripts != nil && s.Transcripts.Supported() {
		checks = append(checks, ok("Transcript source", "speech capture available"))
	} else {
		checks = append(checks, warn("Transcript source", "no capture source; typed input only"))
	}

	checks = append(checks, historyCheck(s.History))

	if cfg.Bridge.URL == "" {
		checks = append(checks, warn("Editor bridge", "bridge.url not configured; editor commands disabled"))
	} else {
		checks = append(checks, ok("Editor bridge", fmt.Sprintf("configured at %s", cfg.Bridge.URL)))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func historyCheck(store ports.HistoryRepository) domain.HealthCheck {
	if store == nil {
		return warn("History store", "history disabled")
	}
	if _, err := store.Recent(1); err != nil {
		return fail("History store", err.Error())
	}
	return ok("History store", "readable")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
