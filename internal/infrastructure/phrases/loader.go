// Package phrases loads user-defined intent phrase rules from YAML.
package phrases

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"voca/assets"
	"voca/internal/domain"
	"voca/internal/pkg/filesystem"
	"voca/internal/ports"
)

type rulesFile struct {
	Rules []domain.PhraseRule `yaml:"rules"`
}

// Loader reads phrase rules once at startup. The embedded default file
// is written on first use. Rules naming an unknown intent are dropped
// rather than failing the load.
type Loader struct {
	path  string
	rules []domain.PhraseRule
}

// NewLoader builds a loader for the given path, defaulting to
// ~/.voca/phrases.yaml.
func NewLoader(path string) (*Loader, error) {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".voca", "phrases.yaml")
	}
	l := &Loader{path: path}
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loader) load() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(l.path, assets.DefaultPhrasesYAML, 0o600); err != nil {
				return err
			}
			data = assets.DefaultPhrasesYAML
		} else {
			return err
		}
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse phrase rules %s: %w", l.path, err)
	}

	l.rules = l.rules[:0]
	for _, rule := range file.Rules {
		if domain.ParseIntent(string(rule.Intent)) == domain.IntentUnknown {
			continue
		}
		if len(rule.Phrases) == 0 {
			continue
		}
		l.rules = append(l.rules, rule)
	}
	return nil
}

// Rules implements ports.PhraseProvider. Nil-safe so a failed load can
// still be wired as an empty provider.
func (l *Loader) Rules() []domain.PhraseRule {
	if l == nil {
		return nil
	}
	return l.rules
}

// Path reports where the rules were read from.
func (l *Loader) Path() string {
	return l.path
}

var _ ports.PhraseProvider = (*Loader)(nil)
