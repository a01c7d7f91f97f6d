// Package intent resolves free-form transcripts to one of the closed
// set of assistant actions.
package intent

import (
	"strings"

	"voca/internal/domain"
)

// readPhrases are the explanation-seeking triggers, tested in order.
var readPhrases = []string{
	"read",
	"explain",
	"what does this code do",
	"what does this do",
	"explain this code",
	"tell me about this code",
	"summarize this code",
}

// Classifier maps transcripts to intents via ordered substring matching.
//
// The built-in table is fixed: a transcript containing several trigger
// words resolves to the earliest-listed intent, not the most
// semantically central one. That property is relied on by callers and
// pinned in tests. User phrase rules are consulted only after every
// built-in keyword misses.
type Classifier struct {
	extra []domain.PhraseRule
}

// New builds a classifier with optional user phrase rules appended
// after the built-in table.
func New(extra ...domain.PhraseRule) *Classifier {
	return &Classifier{extra: extra}
}

// Classify selects exactly one intent for the transcript. Unknown is
// the default when no rule fires; classification never fails.
func (c *Classifier) Classify(transcript string) domain.CommandIntent {
	t := strings.ToLower(strings.TrimSpace(transcript))

	switch {
	case containsAny(t, "run", "execute"):
		return domain.IntentRun
	case strings.Contains(t, "save"):
		return domain.IntentSave
	case containsAny(t, "clear", "delete"):
		return domain.IntentClear
	case containsAny(t, readPhrases...):
		return domain.IntentRead
	case containsAny(t, "generate", "create", "write"):
		return domain.IntentGenerate
	}

	for _, rule := range c.extra {
		if rule.Intent == domain.IntentUnknown {
			continue
		}
		if containsAny(t, rule.Phrases...) {
			return rule.Intent
		}
	}

	return domain.IntentUnknown
}

func containsAny(t string, phrases ...string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(t, p) {
			return true
		}
	}
	return false
}
