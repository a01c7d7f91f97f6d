package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voca/internal/app"
)

// NewPhrasesCommand lists the user-defined intent phrase rules.
func NewPhrasesCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrases",
		Short: "Show custom trigger phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if container.Phrases != nil {
				fmt.Fprintf(out, "Rules file: %s\n", container.Phrases.Path())
			}

			rules := container.Phrases.Rules()
			if len(rules) == 0 {
				fmt.Fprintln(out, MsgNoPhraseRules)
				return nil
			}
			for _, rule := range rules {
				fmt.Fprintf(out, "%-8s %s\n", rule.Intent, strings.Join(rule.Phrases, ", "))
			}
			fmt.Fprintln(out, "\nBuilt-in phrases always take priority over custom ones.")
			return nil
		},
	}
	return cmd
}
