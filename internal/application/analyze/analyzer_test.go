package analyze

import (
	"reflect"
	"testing"

	"voca/internal/domain"
)

func TestAnalyzeEmptySamples(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"empty string", ""},
		{"blank lines", "\n   \n\t\n"},
		{"comments only", "// setup\n# note\n<!-- doc -->"},
		{"comments and blanks", "// one\n\n/* two\n"},
	}
	want := domain.StructuralFacts{Empty: true}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(domain.NewCodeSample(tc.code, "python"))
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Analyze(%q) = %+v, want empty sentinel", tc.code, got)
			}
		})
	}
}

func TestAnalyzePythonOneLiner(t *testing.T) {
	sample := domain.NewCodeSample(`for i in range(5): print("hi")`, "python")
	facts := Analyze(sample)

	if !facts.HasLoop || !facts.HasOutput {
		t.Fatalf("facts = %+v, want HasLoop and HasOutput", facts)
	}
	if facts.LoopKind != "for" {
		t.Errorf("LoopKind = %q, want %q", facts.LoopKind, "for")
	}
	if facts.LoopCount != "5" {
		t.Errorf("LoopCount = %q, want %q", facts.LoopCount, "5")
	}
	if got := facts.FirstMessage(); got != "hi" {
		t.Errorf("FirstMessage() = %q, want %q", got, "hi")
	}
	if facts.HasFunction {
		t.Errorf("HasFunction = true for %q", sample.Lines[0])
	}
}

func TestAnalyzeFunctionSample(t *testing.T) {
	code := "// adds two numbers\nfunction add(a, b) {\n  return a + b;\n}\n"
	facts := Analyze(domain.NewCodeSample(code, "javascript"))

	if !facts.HasFunction {
		t.Fatalf("facts = %+v, want HasFunction", facts)
	}
	if facts.FunctionName != "add" {
		t.Errorf("FunctionName = %q, want %q", facts.FunctionName, "add")
	}
	if !reflect.DeepEqual(facts.FunctionParams, []string{"a", "b"}) {
		t.Errorf("FunctionParams = %v, want [a b]", facts.FunctionParams)
	}
	if !facts.HasReturn {
		t.Error("HasReturn = false, want true")
	}
	if facts.HasLoop || facts.HasOutput || facts.HasVariable {
		t.Errorf("unexpected extra flags in %+v", facts)
	}
}

func TestAnalyzeWhileLoopIsNotAFunction(t *testing.T) {
	code := "while (x < 10) {\n  x += 1\n}\n"
	facts := Analyze(domain.NewCodeSample(code, ""))

	if facts.HasFunction {
		t.Fatalf("facts = %+v, a while header must not register a function", facts)
	}
	if !facts.HasLoop || facts.LoopKind != "while" {
		t.Errorf("facts = %+v, want a while loop", facts)
	}
	if facts.FunctionName != "" {
		t.Errorf("FunctionName = %q, want empty", facts.FunctionName)
	}
}

func TestAnalyzeFirstMatchWins(t *testing.T) {
	code := "function first() {\nfunction second() {\nfor i in range(2): pass\nfor i in range(9): pass\n"
	facts := Analyze(domain.NewCodeSample(code, ""))

	if facts.FunctionName != "first" {
		t.Errorf("FunctionName = %q, want the first declaration", facts.FunctionName)
	}
	if facts.LoopCount != "2" {
		t.Errorf("LoopCount = %q, want the first loop's count", facts.LoopCount)
	}
}

func TestAnalyzeCollectsMessagesInOrder(t *testing.T) {
	code := "console.log(\"one\")\nprint('two')\necho three\n"
	facts := Analyze(domain.NewCodeSample(code, ""))

	want := []string{"one", "two", "something"}
	if !reflect.DeepEqual(facts.OutputMessages, want) {
		t.Errorf("OutputMessages = %v, want %v", facts.OutputMessages, want)
	}
	if got := facts.FirstMessage(); got != "one" {
		t.Errorf("FirstMessage() = %q, want %q", got, "one")
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	sample := domain.NewCodeSample("import os\nx = 1\nif x > 0:\n  print(x)\n", "python")
	first := Analyze(sample)
	second := Analyze(sample)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis diverged: %+v vs %+v", first, second)
	}
	if !first.HasImport || !first.HasVariable || !first.HasConditional || !first.HasOutput {
		t.Errorf("facts = %+v, want import, variable, conditional and output flags", first)
	}
}
