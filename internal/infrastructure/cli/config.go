package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/codescout/internal/app"
)

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the active configuration file",
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := os.ReadFile(container.ConfigLoader.Path())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
	)

	return configCmd
}
