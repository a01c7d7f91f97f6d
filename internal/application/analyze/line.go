// Package analyze turns a code sample into structural facts using
// lexical pattern matching. There is no grammar and no AST: the rules
// are deliberate heuristics tuned for short conversational snippets.
// Every matching rule lives in this file so a future move to real
// tokenization only touches this boundary.
package analyze

import (
	"regexp"
	"strings"
)

// LineTags is the set of structural categories one line matched. A line
// may match several categories at once.
type LineTags struct {
	Function    bool
	Loop        bool
	Output      bool
	Variable    bool
	Conditional bool
	Import      bool
	Return      bool
}

var commentPrefixes = []string{"//", "#", "/*", "<!--", "*", "--"}

// IsComment reports whether the trimmed line is a comment. Comment lines
// are excluded from structural analysis entirely, before classification.
// Note this also swallows C preprocessor lines such as #include; the
// import rule below can therefore only fire on lines where #include is
// not the first token.
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// Function declaration shapes, tried in order. The first capturing group
// of the first pattern that matches is the function's identifier.
var functionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfunction\s+([A-Za-z_$][\w$]*)`),
	regexp.MustCompile(`\bdef\s+([A-Za-z_]\w*)`),
	regexp.MustCompile(`\bconst\s+([A-Za-z_$][\w$]*)\s*=.*=>`),
	regexp.MustCompile(`^(?:(?:public|private|protected|static)\s+)*[A-Za-z_][\w<>\[\]]*\s+([A-Za-z_]\w*)\s*\(`),
	regexp.MustCompile(`^([A-Za-z_$][\w$]*)\s*\([^)]*\)\s*\{`),
}

// Loop, output, conditional and import triggers. Plain substring
// containment: "for " inside an identifier, as in "waiting_for = true",
// still counts. Known limitation, kept intentionally.
var (
	loopTokens        = []string{"for ", "while ", "do "}
	outputTokens      = []string{"console.log", "print(", "System.out.println", "printf", "cout", "echo"}
	conditionalTokens = []string{"if ", "else if", "else"}
	importTokens      = []string{"import ", "require(", "#include", "using "}
	comparisonTokens  = []string{"==", "!=", ">=", "<=", "=>"}
)

// ClassifyLine reports every category the line matches. The input must
// already be trimmed, non-blank, and not a comment.
func ClassifyLine(line string) LineTags {
	return LineTags{
		Function:    matchFunction(line) != nil,
		Loop:        containsAny(line, loopTokens),
		Output:      containsAny(line, outputTokens),
		Variable:    isAssignment(line),
		Conditional: containsAny(line, conditionalTokens),
		Import:      containsAny(line, importTokens),
		Return:      strings.Contains(line, "return"),
	}
}

func containsAny(line string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(line, tok) {
			return true
		}
	}
	return false
}

// isAssignment accepts a bare "=" that is not part of a comparison or
// arrow operator.
func isAssignment(line string) bool {
	if !strings.Contains(line, "=") {
		return false
	}
	return !containsAny(line, comparisonTokens)
}

// Control-flow headers share the bare "name(...) {" shape with function
// definitions; their keywords are never function identifiers.
var statementKeywords = map[string]bool{
	"if":     true,
	"else":   true,
	"for":    true,
	"while":  true,
	"do":     true,
	"switch": true,
	"catch":  true,
	"return": true,
}

func matchFunction(line string) []string {
	for _, re := range functionPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if statementKeywords[m[1]] {
			continue
		}
		return m
	}
	return nil
}

// LoopKind reports "for" or "while" for the line, or "" for other loop
// shapes (do-loops included).
func LoopKind(line string) string {
	switch {
	case strings.Contains(line, "for "):
		return "for"
	case strings.Contains(line, "while "):
		return "while"
	default:
		return ""
	}
}

// FunctionSignature is the identifier and parameter list pulled from a
// function definition line.
type FunctionSignature struct {
	Name   string
	Params []string
}

// ExtractFunction pulls the function name from the first matching
// declaration shape and the parameter list from the first balanced
// parenthesis pair. An empty pair yields a nil parameter list.
func ExtractFunction(line string) (FunctionSignature, bool) {
	m := matchFunction(line)
	if m == nil {
		return FunctionSignature{}, false
	}
	return FunctionSignature{Name: m[1], Params: extractParams(line)}, true
}

func extractParams(line string) []string {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return nil
	}
	depth := 0
	for i := open; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return splitParams(line[open+1 : i])
			}
		}
	}
	return nil
}

func splitParams(inner string) []string {
	if strings.TrimSpace(inner) == "" {
		return nil
	}
	pieces := strings.Split(inner, ",")
	params := make([]string, 0, len(pieces))
	for _, p := range pieces {
		params = append(params, strings.TrimSpace(p))
	}
	return params
}

// Loop count extraction, each pattern tried in fixed priority order.
var (
	rangeCallPattern   = regexp.MustCompile(`range\(\s*(\d+)\s*\)`)
	countingForPattern = regexp.MustCompile(`\w+\s*=\s*0\s*;\s*\w+\s*<\s*(\d+)\s*;\s*\w+\s*\+\+`)
	bareIntPattern     = regexp.MustCompile(`\d+`)
)

// ExtractLoopCount resolves how many times the loop runs: a range-style
// call, then a counting for-loop bound, then the first bare integer,
// else the literal "multiple".
func ExtractLoopCount(line string) string {
	if m := rangeCallPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := countingForPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := bareIntPattern.FindString(line); m != "" {
		return m
	}
	return "multiple"
}

// Output message extraction: print-style calls with a sole quoted string
// argument, tried in fixed spelling order, then any quoted literal,
// else the literal "something".
var (
	printCallPatterns = []*regexp.Regexp{
		regexp.MustCompile(`console\.log\(\s*['"]([^'"]*)['"]\s*\)`),
		regexp.MustCompile(`print\(\s*['"]([^'"]*)['"]\s*\)`),
		regexp.MustCompile(`System\.out\.println\(\s*['"]([^'"]*)['"]\s*\)`),
	}
	quotedPattern = regexp.MustCompile(`['"]([^'"]*)['"]`)
)

// ExtractOutputMessage pulls the message an output statement prints.
func ExtractOutputMessage(line string) string {
	for _, re := range printCallPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	if m := quotedPattern.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return "something"
}
