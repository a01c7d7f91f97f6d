// Package explain renders structural facts as one natural-language
// sentence.
package explain

import (
	"fmt"
	"strings"

	"voca/internal/domain"
)

// EmptyMessage is returned for samples with no analyzable lines.
const EmptyMessage = "The code appears to be empty or contains only comments."

// Compose produces exactly one sentence from the facts via a fixed
// decision tree, most specific clause first. The clause priority biases
// toward the most informative single fact (the loop+print combination)
// over generic ones; swapping the order changes output for any sample
// exhibiting multiple facts, so it must not be reordered.
func Compose(facts domain.StructuralFacts, language string) string {
	if facts.Empty {
		return EmptyMessage
	}

	var b strings.Builder
	if language != "" && !strings.EqualFold(language, domain.LanguageUnknown) {
		fmt.Fprintf(&b, "This %s code ", language)
	} else {
		b.WriteString("This code ")
	}

	loopClause := false
	switch {
	case facts.HasLoop && facts.HasOutput:
		loopClause = true
		fmt.Fprintf(&b, "prints %q %s times", facts.FirstMessage(), facts.LoopCount)
	case facts.HasFunction:
		b.WriteString("defines a function called " + facts.FunctionName)
		if facts.HasReturn {
			b.WriteString(" that returns a value")
		}
	case facts.HasOutput:
		fmt.Fprintf(&b, "prints %q", facts.FirstMessage())
	case facts.HasVariable:
		b.WriteString("creates and uses variables")
	case facts.HasConditional:
		b.WriteString("contains conditional logic")
	case facts.HasImport:
		b.WriteString("imports external modules")
	default:
		b.WriteString("performs various operations")
	}

	if facts.HasLoop && !loopClause {
		b.WriteString(" using a loop")
	}
	if facts.HasConditional && !facts.HasLoop {
		b.WriteString(" with conditional statements")
	}
	if facts.HasVariable && !facts.HasFunction {
		b.WriteString(" with variable assignments")
	}

	b.WriteString(".")
	return b.String()
}
