package synth

import (
	"fmt"

	"voca/internal/domain"
)

// Snippets are emitted as JavaScript: the editor surface this assistant
// grew up on. Each template has at most one substitutable slot.
func render(id domain.TemplateID, slot string) domain.GeneratedSnippet {
	var code string
	switch id {
	case domain.TemplateFunctionSum:
		code = fmt.Sprintf("function %s(a, b) {\n  return a + b;\n}", slot)
	case domain.TemplateFunctionProduct:
		code = fmt.Sprintf("function %s(a, b) {\n  return a * b;\n}", slot)
	case domain.TemplateFunctionGreet:
		code = fmt.Sprintf("function %s(name) {\n  return \"Hello, \" + name + \"!\";\n}", slot)
	case domain.TemplateFunctionStub:
		code = fmt.Sprintf("function %s() {\n  return null;\n}", slot)
	case domain.TemplateVariableNumber:
		code = fmt.Sprintf("let %s = 0;", slot)
	case domain.TemplateVariableString:
		code = fmt.Sprintf("let %s = \"\";", slot)
	case domain.TemplateVariableList:
		code = fmt.Sprintf("let %s = [];", slot)
	case domain.TemplateVariableNull:
		code = fmt.Sprintf("let %s = null;", slot)
	case domain.TemplateLoopForEach:
		code = "const items = [1, 2, 3];\nitems.forEach((item) => {\n  console.log(item);\n});"
	case domain.TemplateLoopWhile:
		code = "while (condition) {\n  // loop body\n}"
	case domain.TemplateLoopCounting:
		code = "for (let i = 0; i < 10; i++) {\n  console.log(i);\n}"
	case domain.TemplateConditional:
		code = "if (condition) {\n  // then branch\n} else {\n  // else branch\n}"
	case domain.TemplateOutput:
		code = fmt.Sprintf("console.log(\"%s\");", slot)
	case domain.TemplateFallback:
		code = fmt.Sprintf("// %s\nconsole.log(\"Hello!\");", slot)
	}
	return domain.GeneratedSnippet{Code: code, Template: id}
}
