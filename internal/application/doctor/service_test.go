package doctor

import (
	"context"
	"errors"
	"testing"

	"voca/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s *stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubSpeech struct{ available bool }

func (s *stubSpeech) Available() bool { return s.available }
func (s *stubSpeech) Speak(context.Context, string, domain.SpeechSettings) error {
	return nil
}

type stubSource struct{ supported bool }

func (s *stubSource) Supported() bool                         { return s.supported }
func (s *stubSource) Capture(context.Context) (string, error) { return "", nil }

type stubPhrases struct{ rules []domain.PhraseRule }

func (s *stubPhrases) Rules() []domain.PhraseRule { return s.rules }

type stubHistory struct{ err error }

func (s *stubHistory) Save(domain.HistoryRecord) error { return nil }
func (s *stubHistory) Recent(int) ([]domain.HistoryRecord, error) {
	return nil, s.err
}
func (s *stubHistory) Search(string, int) ([]domain.HistoryRecord, error) { return nil, nil }
func (s *stubHistory) Clear() error                                       { return nil }

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("report has no %q check: %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunAllHealthy(t *testing.T) {
	s := &Service{
		ConfigProvider: &stubConfig{cfg: domain.Config{
			ConfigFormatVersion: "1",
			Bridge:              domain.BridgeSettings{URL: "ws://localhost:7290"},
		}},
		Phrases:     &stubPhrases{},
		Speech:      &stubSpeech{available: true},
		Transcripts: &stubSource{supported: true},
		History:     &stubHistory{},
	}

	report, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("Healthy() = false: %+v", report.Checks)
	}
	for _, name := range []string{"Config file", "Phrase rules", "Speech output", "Transcript source", "History store", "Editor bridge"} {
		if check := checkByName(t, report, name); check.Status != domain.HealthOK {
			t.Errorf("%s status = %q, want ok", name, check.Status)
		}
	}
}

func TestRunDegradedEnvironmentWarns(t *testing.T) {
	s := &Service{
		ConfigProvider: &stubConfig{},
		Speech:         &stubSpeech{},
		Transcripts:    &stubSource{},
		History:        &stubHistory{},
	}

	report, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Missing collaborators degrade the setup but do not fail it.
	if !report.Healthy() {
		t.Fatalf("Healthy() = false: %+v", report.Checks)
	}
	for _, name := range []string{"Phrase rules", "Speech output", "Transcript source", "Editor bridge"} {
		if check := checkByName(t, report, name); check.Status != domain.HealthWarn {
			t.Errorf("%s status = %q, want warn", name, check.Status)
		}
	}
}

func TestRunConfigFailure(t *testing.T) {
	s := &Service{ConfigProvider: &stubConfig{err: errors.New("corrupt yaml")}}

	report, err := s.Run(context.Background())
	if err == nil {
		t.Fatal("Run() with a broken config should return the load error")
	}
	if report.Healthy() {
		t.Error("Healthy() = true despite a failed config load")
	}
}

func TestRunHistoryFailure(t *testing.T) {
	s := &Service{
		ConfigProvider: &stubConfig{},
		History:        &stubHistory{err: errors.New("disk full")},
	}

	report, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if check := checkByName(t, report, "History store"); check.Status != domain.HealthError {
		t.Errorf("History store status = %q, want error", check.Status)
	}
	if report.Healthy() {
		t.Error("Healthy() = true despite a failed history check")
	}
}
