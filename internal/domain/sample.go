package domain

import "strings"

// LanguageUnknown is the sentinel the editor reports when it cannot name
// the active document's language.
const LanguageUnknown = "unknown"

// CodeSample is a snapshot of editor text submitted for explanation.
type CodeSample struct {
	Lines    []string
	Language string
}

// NewCodeSample splits raw editor text into lines. An empty language id
// resolves to the "unknown" sentinel.
func NewCodeSample(text, language string) CodeSample {
	if language == "" {
		language = LanguageUnknown
	}
	return CodeSample{
		Lines:    strings.Split(text, "\n"),
		Language: language,
	}
}

// StructuralFacts is the summary produced by scanning a code sample.
// Flags are monotone: once a category is seen on any line it stays set.
// Extracted values keep the first matching line's result.
type StructuralFacts struct {
	// Empty is set when no non-blank, non-comment line survived
	// filtering. Callers must check it before composing an explanation.
	Empty bool

	HasFunction    bool
	HasLoop        bool
	HasOutput      bool
	HasVariable    bool
	HasConditional bool
	HasReturn      bool
	HasImport      bool

	FunctionName   string
	FunctionParams []string
	LoopKind       string // "for", "while" or ""
	LoopCount      string
	OutputMessages []string
}

// FirstMessage returns the earliest extracted output message, or the
// extraction fallback when no output line carried one.
func (f StructuralFacts) FirstMessage() string {
	if len(f.OutputMessages) == 0 {
		return "something"
	}
	return f.OutputMessages[0]
}

// DocumentSnapshot is the editor-state collaborator's view of the active
// document.
type DocumentSnapshot struct {
	Text      string
	Selection string // non-empty overrides Text for analysis
	Language  string
	Path      string
}

// Sample builds the CodeSample to analyze, honoring a selection override.
func (d DocumentSnapshot) Sample() CodeSample {
	text := d.Text
	if d.Selection != "" {
		text = d.Selection
	}
	return NewCodeSample(text, d.Language)
}
