package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"voca/internal/app"
	"voca/internal/application/analyze"
	"voca/internal/application/explain"
	"voca/internal/domain"
	"voca/internal/infrastructure/editor"
)

// NewExplainCommand explains a local file (or stdin) without an editor
// bridge, using the same analyzer the spoken "read" intent uses.
func NewExplainCommand(container *app.Container) *cobra.Command {
	var (
		language string
		speak    bool
	)

	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Describe what a code file does, in one sentence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := localSnapshot(cmd, args, language)
			if err != nil {
				return err
			}

			sample := snapshot.Sample()
			facts := analyze.Analyze(sample)
			sentence := explain.Compose(facts, sample.Language)

			fmt.Fprintln(cmd.OutOrStdout(), sentence)
			if speak && container.Speaker != nil {
				return container.Speaker.Speak(cmd.Context(), sentence, container.Config.Speech)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language id override (default: by file extension)")
	cmd.Flags().BoolVar(&speak, "speak", false, "Also speak the explanation")
	return cmd
}

func localSnapshot(cmd *cobra.Command, args []string, language string) (domain.DocumentSnapshot, error) {
	if len(args) == 1 && args[0] != "-" {
		state := editor.NewFileState(args[0], language)
		return state.Snapshot(cmd.Context())
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return domain.DocumentSnapshot{}, fmt.Errorf("read stdin: %w", err)
	}
	if language == "" {
		language = domain.LanguageUnknown
	}
	return domain.DocumentSnapshot{Text: string(data), Language: language}, nil
}
