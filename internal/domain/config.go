package domain

// Config mirrors ~/.voca/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Speech              SpeechSettings  `yaml:"speech"`
	Session             SessionSettings `yaml:"session"`
	History             HistorySettings `yaml:"history"`
	Bridge              BridgeSettings  `yaml:"bridge"`
	Phrases             PhraseSettings  `yaml:"phrases"`
}

// SpeechSettings configure the speech-output collaborator.
type SpeechSettings struct {
	Rate   int      `yaml:"rate"`   // words per minute
	Volume int      `yaml:"volume"` // 0-100
	Pitch  int      `yaml:"pitch"`  // 0-99
	Locale string   `yaml:"locale"`
	Voices []string `yaml:"voices"` // preferred voice names, first available wins
	Echo   bool     `yaml:"echo"`   // also print utterances to the terminal
}

// SessionSettings control the capture session.
type SessionSettings struct {
	// TimeoutSeconds clears the listening indicator if no transcript
	// arrives. The capture itself still completes whenever it does.
	TimeoutSeconds int `yaml:"timeout"`
}

// HistorySettings control utterance history persistence.
type HistorySettings struct {
	Backend    string `yaml:"backend"` // sqlite | file
	MaxEntries int    `yaml:"max_entries"`
}

// BridgeSettings locate the editor extension websocket, if any.
type BridgeSettings struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"` // client id announced to the editor
}

// PhraseSettings locate the custom intent phrase rules.
type PhraseSettings struct {
	RulesFile string `yaml:"rules_file"`
}
