package phrases

import (
	"os"
	"path/filepath"
	"testing"

	"voca/internal/domain"
)

func TestLoaderReadsRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.yaml")
	content := `rules:
  - intent: run
    phrases:
      - launch
      - go for it
  - intent: bogus
    phrases:
      - never loaded
  - intent: read
    phrases: []
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewLoader(path)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	rules := loader.Rules()
	if len(rules) != 1 {
		t.Fatalf("Rules() = %v, want only the valid run rule", rules)
	}
	if rules[0].Intent != domain.IntentRun {
		t.Errorf("Intent = %q, want run", rules[0].Intent)
	}
	if len(rules[0].Phrases) != 2 || rules[0].Phrases[0] != "launch" {
		t.Errorf("Phrases = %v", rules[0].Phrases)
	}
	if loader.Path() != path {
		t.Errorf("Path() = %q, want %q", loader.Path(), path)
	}
}

func TestLoaderWritesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voca", "phrases.yaml")

	loader, err := NewLoader(path)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default rules file was not written: %v", err)
	}
	if len(loader.Rules()) == 0 {
		t.Error("Rules() is empty, want the embedded defaults")
	}
}

func TestLoaderRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.yaml")
	if err := os.WriteFile(path, []byte("rules: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(path); err == nil {
		t.Fatal("NewLoader() with malformed YAML should fail")
	}
}

func TestNilLoaderRules(t *testing.T) {
	var loader *Loader
	if got := loader.Rules(); got != nil {
		t.Errorf("nil loader Rules() = %v, want nil", got)
	}
}
