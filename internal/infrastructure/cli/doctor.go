package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/app"
	"github.com/doeshing/codescout/internal/domain"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external CLIs, auth, and configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			for _, check := range report.Checks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", statusBadge(check.Status), check.Name, check.Details)
			}
			if err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}

func statusBadge(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return color.GreenString("[ok]")
	case domain.HealthWarn:
		return color.YellowString("[warn]")
	default:
		return color.RedString("[fail]")
	}
}
