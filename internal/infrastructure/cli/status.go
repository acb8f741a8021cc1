package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hc12r/filipeX/internal/app"
)

func newStatusCommand(container *app.Container) *cobra.Command {
	var shellFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show alias registration state",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := app.NewInstallSpec(container.Config, shellFlag, "", false)
			status := container.Integrator.Status(spec)
			fmt.Fprintln(cmd.OutOrStdout(), status.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell to inspect (bash|zsh, auto-detected if not set)")
	return cmd
}
