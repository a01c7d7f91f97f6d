package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voca/internal/app"
)

// NewIntentCommand shows which intent a transcript resolves to. Mostly
// useful for debugging custom phrase rules.
func NewIntentCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "intent [transcript]",
		Short: "Classify a transcript without acting on it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), container.Intents.Classify(transcript))
			return nil
		},
	}
}
