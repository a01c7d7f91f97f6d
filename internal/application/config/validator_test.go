package config

import (
	"testing"

	"voca/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Speech:  domain.SpeechSettings{Rate: 170, Volume: 80, Pitch: 50},
		Session: domain.SessionSettings{TimeoutSeconds: 10},
		History: domain.HistorySettings{Backend: "sqlite", MaxEntries: 500},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate(defaults) error = %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Config)
	}{
		{"rate too low", func(c *domain.Config) { c.Speech.Rate = 79 }},
		{"rate too high", func(c *domain.Config) { c.Speech.Rate = 451 }},
		{"volume negative", func(c *domain.Config) { c.Speech.Volume = -1 }},
		{"volume over 100", func(c *domain.Config) { c.Speech.Volume = 101 }},
		{"pitch over 99", func(c *domain.Config) { c.Speech.Pitch = 100 }},
		{"timeout zero", func(c *domain.Config) { c.Session.TimeoutSeconds = 0 }},
		{"unknown history backend", func(c *domain.Config) { c.History.Backend = "redis" }},
		{"max entries zero", func(c *domain.Config) { c.History.MaxEntries = 0 }},
		{"bridge url scheme", func(c *domain.Config) { c.Bridge.URL = "http://localhost:7290" }},
		{"bridge url without name", func(c *domain.Config) { c.Bridge.URL = "ws://localhost:7290" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Errorf("Validate() accepted a config with %s", tc.name)
			}
		})
	}
}

func TestValidateBridgeOptional(t *testing.T) {
	cfg := validConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() without bridge error = %v", err)
	}

	cfg.Bridge = domain.BridgeSettings{URL: "wss://localhost:7290/assist", Name: "voca"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() with full bridge settings error = %v", err)
	}
}

func TestValidateHistoryBackendCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.History.Backend = "File"
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() rejected mixed-case backend: %v", err)
	}
}
