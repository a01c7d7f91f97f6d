package cli

import (
	"fmt"
	"io"

	"voca/internal/domain"
)

// RenderResponse prints the response in a friendly, ASCII-only format.
// The spoken utterance was already echoed by the speaker; this adds the
// structured view for sighted users and scripts.
func RenderResponse(w io.Writer, resp domain.AssistResponse) {
	fmt.Fprintf(w, "Intent: %s\n", resp.Intent)

	switch resp.Kind {
	case domain.ResponseCommand:
		status := "failed"
		if resp.Succeeded {
			status = "ok"
		}
		fmt.Fprintf(w, "Editor command: %s (%s)\n", resp.CommandID, status)
	case domain.ResponseExplanation:
		fmt.Fprintln(w, "Explanation:")
		fmt.Fprintf(w, "  %s\n", resp.Explanation)
	case domain.ResponseSnippet:
		if resp.Snippet != nil {
			fmt.Fprintf(w, "Generated (%s):\n", resp.Snippet.Template)
			fmt.Fprintln(w, indent(resp.Snippet.Code))
		}
	default:
		fmt.Fprintln(w, resp.Utterance)
	}
}

func indent(code string) string {
	out := "  "
	for _, r := range code {
		out += string(r)
		if r == '\n' {
			out += "  "
		}
	}
	return out
}
