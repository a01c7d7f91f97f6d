package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"voca/internal/app"
	"voca/internal/domain"
	"voca/internal/infrastructure/speech"
	"voca/internal/ports"
)

func newListenCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Listen for requests until end of input",
		Long: "Runs capture sessions in a loop. With an editor bridge attached the\n" +
			"transcripts come from the editor's microphone; otherwise type what\n" +
			"you would have spoken, one request per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var source ports.TranscriptSource = container.Transcripts
			typed := source == nil
			if typed {
				source = speech.NewTypedSource(cmd.InOrStdin())
			}

			timeout := time.Duration(container.Config.Session.TimeoutSeconds) * time.Second
			out := cmd.OutOrStdout()

			for {
				if typed {
					fmt.Fprint(out, "voca> ")
				}

				spinner := NewSpinner(cmd.ErrOrStderr(), "listening")
				if !typed {
					spinner.Start()
				}
				// The watchdog only clears the indicator; the capture
				// itself still completes whenever it does.
				watchdog := time.AfterFunc(timeout, spinner.Stop)

				resp, err := container.AssistService.Listen(cmd.Context(), source)
				watchdog.Stop()
				spinner.Stop()

				if err != nil {
					switch {
					case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
						return nil
					case errors.Is(err, domain.ErrCaptureUnsupported):
						return err
					}
					if resp.Utterance != "" {
						fmt.Fprintln(out, resp.Utterance)
					}
					continue
				}
				RenderResponse(out, resp)
			}
		},
	}
	return cmd
}
