// Package cli wires the cobra command tree.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"voca/internal/app"
	"voca/internal/domain"
	"voca/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "voca [transcript]",
		Short: "voca - voice assistant for your code editor",
		Long: "voca turns spoken or typed requests into editor commands, spoken\n" +
			"explanations of code, and generated snippets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSay(container, cmd, args)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSayCommand(container))
	root.AddCommand(newListenCommand(container))
	root.AddCommand(commands.NewExplainCommand(container))
	root.AddCommand(commands.NewGenerateCommand(container))
	root.AddCommand(commands.NewIntentCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewPhrasesCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	return root, nil
}

func newSayCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "say [transcript]",
		Short: "Handle one request as if it had been spoken",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSay(container, cmd, args)
		},
	}
}

func runSay(container *app.Container, cmd *cobra.Command, args []string) error {
	resp, err := container.AssistService.Handle(domain.AssistRequest{
		Context:    cmd.Context(),
		Transcript: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}
	RenderResponse(cmd.OutOrStdout(), resp)
	return nil
}
