package analyze

import (
	"strings"

	"voca/internal/domain"
)

// Analyze scans every non-blank, non-comment line of the sample through
// the line classifier and accumulates structural facts.
//
// Flags are monotone. Extractions are first-match-wins: the first line
// matching a category determines the stored name, kind and count, and
// later matches never overwrite them. Output messages are collected in
// line order so the earliest one stays first.
//
// Analyze is a pure function of its input: same sample, same facts.
func Analyze(sample domain.CodeSample) domain.StructuralFacts {
	var facts domain.StructuralFacts
	seen := false

	for _, raw := range sample.Lines {
		line := strings.TrimSpace(raw)
		if line == "" || IsComment(line) {
			continue
		}
		seen = true

		tags := ClassifyLine(line)

		if tags.Function {
			if !facts.HasFunction {
				if sig, ok := ExtractFunction(line); ok {
					facts.FunctionName = sig.Name
					facts.FunctionParams = sig.Params
				}
			}
			facts.HasFunction = true
		}
		if tags.Loop {
			if !facts.HasLoop {
				facts.LoopKind = LoopKind(line)
				facts.LoopCount = ExtractLoopCount(line)
			}
			facts.HasLoop = true
		}
		if tags.Output {
			facts.OutputMessages = append(facts.OutputMessages, ExtractOutputMessage(line))
			facts.HasOutput = true
		}
		facts.HasVariable = facts.HasVariable || tags.Variable
		facts.HasConditional = facts.HasConditional || tags.Conditional
		facts.HasImport = facts.HasImport || tags.Import
		facts.HasReturn = facts.HasReturn || tags.Return
	}

	if !seen {
		return domain.StructuralFacts{Empty: true}
	}
	return facts
}
