// Package domain defines core entities and value objects for voca.
//
// The domain layer is independent of infrastructure concerns: everything
// here is plain data exchanged between the NLU pipeline and the
// collaborator ports.
package domain

// CommandIntent is the discrete action category selected from a
// transcript. Exactly one intent is produced per transcript.
type CommandIntent string

const (
	IntentRun      CommandIntent = "run"
	IntentSave     CommandIntent = "save"
	IntentClear    CommandIntent = "clear"
	IntentRead     CommandIntent = "read"
	IntentGenerate CommandIntent = "generate"
	IntentUnknown  CommandIntent = "unknown"
)

// ParseIntent maps a stored string back to a known intent, defaulting to
// IntentUnknown for anything unrecognized.
func ParseIntent(s string) CommandIntent {
	switch CommandIntent(s) {
	case IntentRun, IntentSave, IntentClear, IntentRead, IntentGenerate:
		return CommandIntent(s)
	default:
		return IntentUnknown
	}
}

// PhraseRule maps extra user-defined trigger substrings to a built-in
// intent. Rules are only consulted after every built-in keyword misses,
// so they can never perturb the built-in priority order.
type PhraseRule struct {
	Intent  CommandIntent `yaml:"intent"`
	Phrases []string      `yaml:"phrases"`
}
