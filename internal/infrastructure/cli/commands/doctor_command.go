package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"voca/internal/app"
	"voca/internal/domain"
)

// NewDoctorCommand runs environment diagnostics.
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the assistant's environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DoctorService == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}
			report, err := container.DoctorService.Run(cmd.Context())

			out := cmd.OutOrStdout()
			for _, check := range report.Checks {
				fmt.Fprintf(out, "[%s] %s: %s\n", statusTag(check.Status), check.Name, check.Details)
			}
			if err != nil {
				return err
			}
			if !report.Healthy() {
				return errors.New("doctor found problems")
			}
			return nil
		},
	}
}

func statusTag(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return "OK"
	case domain.HealthWarn:
		return "WARN"
	default:
		return "FAIL"
	}
}
