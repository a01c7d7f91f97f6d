package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voca/internal/app"
	"voca/internal/application/synth"
)

// NewGenerateCommand expands a description into a snippet without going
// through the full spoken cycle.
func NewGenerateCommand(container *app.Container) *cobra.Command {
	var speak bool

	cmd := &cobra.Command{
		Use:   "generate [description]",
		Short: "Generate a code snippet from a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet := synth.Synthesize(strings.Join(args, " "))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Template: %s\n", snippet.Template)
			fmt.Fprintln(out, snippet.Code)

			if speak && container.Speaker != nil {
				utterance := "Here is the code I came up with: " + snippet.Code
				return container.Speaker.Speak(cmd.Context(), utterance, container.Config.Speech)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&speak, "speak", false, "Also speak the generated code")
	return cmd
}
