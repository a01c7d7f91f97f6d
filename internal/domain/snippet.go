package domain

// TemplateID identifies the fixed skeleton the synthesizer expanded.
// Carried on every snippet for traceability.
type TemplateID string

const (
	TemplateFunctionSum     TemplateID = "function.sum"
	TemplateFunctionProduct TemplateID = "function.product"
	TemplateFunctionGreet   TemplateID = "function.greet"
	TemplateFunctionStub    TemplateID = "function.stub"

	TemplateVariableNumber TemplateID = "variable.number"
	TemplateVariableString TemplateID = "variable.string"
	TemplateVariableList   TemplateID = "variable.list"
	TemplateVariableNull   TemplateID = "variable.null"

	TemplateLoopForEach  TemplateID = "loop.foreach"
	TemplateLoopWhile    TemplateID = "loop.while"
	TemplateLoopCounting TemplateID = "loop.counting"

	TemplateConditional TemplateID = "conditional.stub"
	TemplateOutput      TemplateID = "output.print"
	TemplateFallback    TemplateID = "fallback.comment"
)

// GeneratedSnippet is fully substituted code text plus the template that
// produced it.
type GeneratedSnippet struct {
	Code     string
	Template TemplateID
}
