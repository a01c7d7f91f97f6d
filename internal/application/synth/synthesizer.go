// Package synth expands free-form descriptions into code snippets using
// ordered keyword-to-template rules.
package synth

import (
	"regexp"
	"strings"

	"voca/internal/domain"
)

// Identifier extraction runs against the original-case description so
// user-chosen names keep their casing; only keyword tests use the
// lower-cased text. First capturing match wins; a miss falls back to
// the template default, never to an error.
var (
	funcNamePattern = regexp.MustCompile(`(?i)(?:function|create)\s+(?:a\s+)?(?:function\s+)?(?:called\s+|named\s+)?([A-Za-z_$][\w$]*)`)
	varNamePattern  = regexp.MustCompile(`(?i)(?:variable|let|const)\s+(?:called\s+|named\s+)?([A-Za-z_$][\w$]*)`)
	messagePattern  = regexp.MustCompile(`(?i)(?:print|log|say)\s+(.+)`)
)

const (
	defaultFunctionName = "myFunction"
	defaultVariableName = "myVariable"
	defaultMessage      = "Hello, World!"
)

// Synthesize maps the description to a generated snippet. Category
// selection runs in fixed priority order, first match wins: function,
// variable, loop, conditional, output, then the comment fallback.
// Synthesize is total: every description produces a snippet.
func Synthesize(description string) domain.GeneratedSnippet {
	lower := strings.ToLower(description)

	switch {
	case strings.Contains(lower, "function"):
		return functionSnippet(description, lower)
	case containsAny(lower, "variable", "let", "const"):
		return variableSnippet(description, lower)
	case containsAny(lower, "loop", "for", "while"):
		return loopSnippet(lower)
	case containsAny(lower, "if", "condition"):
		return conditionalSnippet()
	case containsAny(lower, "print", "console", "log"):
		return outputSnippet(description)
	default:
		return fallbackSnippet(description)
	}
}

func functionSnippet(description, lower string) domain.GeneratedSnippet {
	name := extract(funcNamePattern, description, defaultFunctionName)
	switch {
	case containsAny(lower, "add", "sum"):
		return render(domain.TemplateFunctionSum, name)
	case containsAny(lower, "multiply", "times"):
		return render(domain.TemplateFunctionProduct, name)
	case containsAny(lower, "hello", "greet"):
		return render(domain.TemplateFunctionGreet, name)
	default:
		return render(domain.TemplateFunctionStub, name)
	}
}

func variableSnippet(description, lower string) domain.GeneratedSnippet {
	name := extract(varNamePattern, description, defaultVariableName)
	switch {
	case containsAny(lower, "number", "integer"):
		return render(domain.TemplateVariableNumber, name)
	case containsAny(lower, "string", "text"):
		return render(domain.TemplateVariableString, name)
	case containsAny(lower, "array", "list"):
		return render(domain.TemplateVariableList, name)
	default:
		return render(domain.TemplateVariableNull, name)
	}
}

func loopSnippet(lower string) domain.GeneratedSnippet {
	switch {
	case strings.Contains(lower, "for") && strings.Contains(lower, "each"):
		return render(domain.TemplateLoopForEach, "")
	case strings.Contains(lower, "while"):
		return render(domain.TemplateLoopWhile, "")
	default:
		return render(domain.TemplateLoopCounting, "")
	}
}

func conditionalSnippet() domain.GeneratedSnippet {
	return render(domain.TemplateConditional, "")
}

func outputSnippet(description string) domain.GeneratedSnippet {
	message := defaultMessage
	if m := messagePattern.FindStringSubmatch(description); m != nil {
		if trimmed := strings.TrimSpace(m[1]); trimmed != "" {
			message = trimmed
		}
	}
	return render(domain.TemplateOutput, message)
}

func fallbackSnippet(description string) domain.GeneratedSnippet {
	return render(domain.TemplateFallback, strings.TrimSpace(description))
}

func extract(re *regexp.Regexp, text, fallback string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return fallback
}

func containsAny(t string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
