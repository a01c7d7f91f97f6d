// Package config validates the assistant configuration.
package config

import (
	"fmt"
	"strings"

	"voca/internal/domain"
)

// Validate ensures the config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateSpeech(cfg.Speech); err != nil {
		return err
	}
	if cfg.Session.TimeoutSeconds <= 0 {
		return fmt.Errorf("session.timeout must be > 0, got %d", cfg.Session.TimeoutSeconds)
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	if err := validateBridge(cfg.Bridge); err != nil {
		return err
	}
	return nil
}

func validateSpeech(s domain.SpeechSettings) error {
	if s.Rate < 80 || s.Rate > 450 {
		return fmt.Errorf("speech.rate must be between 80 and 450 words per minute, got %d", s.Rate)
	}
	if s.Volume < 0 || s.Volume > 100 {
		return fmt.Errorf("speech.volume must be between 0 and 100, got %d", s.Volume)
	}
	if s.Pitch < 0 || s.Pitch > 99 {
		return fmt.Errorf("speech.pitch must be between 0 and 99, got %d", s.Pitch)
	}
	return nil
}

func validateHistory(h domain.HistorySettings) error {
	switch strings.ToLower(h.Backend) {
	case "sqlite", "file":
	default:
		return fmt.Errorf("history.backend must be sqlite|file, got %s", h.Backend)
	}
	if h.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be > 0, got %d", h.MaxEntries)
	}
	return nil
}

func validateBridge(b domain.BridgeSettings) error {
	if b.URL == "" {
		return nil
	}
	if !strings.HasPrefix(b.URL, "ws://") && !strings.HasPrefix(b.URL, "wss://") {
		return fmt.Errorf("bridge.url must use ws:// or wss://, got %s", b.URL)
	}
	if b.Name == "" {
		return fmt.Errorf("bridge.name must be set when bridge.url is configured")
	}
	return nil
}
