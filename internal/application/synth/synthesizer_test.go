package synth

import (
	"strings"
	"testing"

	"voca/internal/domain"
)

func TestSynthesizeTemplates(t *testing.T) {
	cases := []struct {
		description  string
		wantTemplate domain.TemplateID
		wantContains string
	}{
		{"create a function that adds two numbers", domain.TemplateFunctionSum, "return a + b;"},
		{"function to multiply values", domain.TemplateFunctionProduct, "return a * b;"},
		{"make a function to greet the user", domain.TemplateFunctionGreet, `"Hello, " + name`},
		{"a function", domain.TemplateFunctionStub, "return null;"},

		{"create a variable called count that holds a number", domain.TemplateVariableNumber, "let count = 0;"},
		{"a variable named title for text", domain.TemplateVariableString, `let title = "";`},
		{"variable called items as a list", domain.TemplateVariableList, "let items = [];"},
		{"just a variable", domain.TemplateVariableNull, "let myVariable = null;"},

		{"a for each loop over the entries", domain.TemplateLoopForEach, "items.forEach"},
		{"make a while loop", domain.TemplateLoopWhile, "while (condition)"},
		{"give me a loop", domain.TemplateLoopCounting, "for (let i = 0; i < 10; i++)"},

		{"an if statement please", domain.TemplateConditional, "else"},

		{"print hello world", domain.TemplateOutput, `console.log("hello world");`},
		{"console output", domain.TemplateOutput, `console.log("Hello, World!");`},

		{"do something nice", domain.TemplateFallback, "// do something nice"},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			got := Synthesize(tc.description)
			if got.Template != tc.wantTemplate {
				t.Fatalf("Synthesize(%q).Template = %q, want %q", tc.description, got.Template, tc.wantTemplate)
			}
			if !strings.Contains(got.Code, tc.wantContains) {
				t.Errorf("Synthesize(%q).Code = %q, want it to contain %q", tc.description, got.Code, tc.wantContains)
			}
		})
	}
}

func TestSynthesizeNameExtraction(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"function add", "function add(a, b)"},
		{"create a function called sumTotal that adds", "function sumTotal(a, b)"},
		{"function named Greeter that says hello", "function Greeter(name)"},

		// The extractor grabs the first identifier after the trigger
		// words, filler included. Pinned: renaming the capture breaks
		// everyone who learned the spoken phrasing that works.
		{"create a function that adds two numbers", "function that(a, b)"},

		// No identifier at all falls back to the default name.
		{"function!", "function myFunction()"},
	}

	for _, tc := range cases {
		got := Synthesize(tc.description)
		if !strings.Contains(got.Code, tc.want) {
			t.Errorf("Synthesize(%q).Code = %q, want it to contain %q", tc.description, got.Code, tc.want)
		}
	}
}

func TestSynthesizePriorityOrder(t *testing.T) {
	cases := []struct {
		description string
		want        domain.TemplateID
	}{
		// "function" outranks every later category keyword.
		{"function with a loop that prints", domain.TemplateFunctionStub},
		// "variable" outranks loop and output.
		{"variable holding a number to print in the loop", domain.TemplateVariableNumber},
		// loop outranks conditional and output.
		{"loop until the condition prints", domain.TemplateLoopCounting},
		// conditional outranks output.
		{"if it works, print it", domain.TemplateConditional},
	}

	for _, tc := range cases {
		if got := Synthesize(tc.description); got.Template != tc.want {
			t.Errorf("Synthesize(%q).Template = %q, want %q", tc.description, got.Template, tc.want)
		}
	}
}

func TestSynthesizeIsTotal(t *testing.T) {
	for _, description := range []string{"", "   ", "qwerty", "????"} {
		got := Synthesize(description)
		if got.Code == "" || got.Template == "" {
			t.Errorf("Synthesize(%q) = %+v, want a non-empty snippet", description, got)
		}
	}
}
