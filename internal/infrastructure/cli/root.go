// Package cli wires the cobra command tree for the filipec binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hc12r/filipeX/internal/app"
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
		Use:   "filipec [file]",
		Short: "filipec - the FilipeX language toolchain",
		Long:  "filipec runs FilipeX programs and manages the shell alias that launches them.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// `filipec prog.fl` is shorthand for `filipec run prog.fl`.
			return runFile(cmd.OutOrStdout(), args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newREPLCommand(container))
	root.AddCommand(newInstallCommand(container))
	root.AddCommand(newStatusCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
