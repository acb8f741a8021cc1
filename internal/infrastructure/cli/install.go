package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hc12r/filipeX/internal/app"
	"github.com/hc12r/filipeX/internal/domain"
)

func newInstallCommand(container *app.Container) *cobra.Command {
	var (
		shellFlag  string
		scriptFlag string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register the filipec alias in your shell",
		Long: `Register the filipec alias in your shell startup file.

The invoking shell is detected from $SHELL (or taken from --shell) and
the matching startup file is updated: ~/.bashrc for bash, ~/.zshrc for
zsh. The startup file must already exist. Re-running replaces any stale
alias definition instead of appending a duplicate.

A subprocess cannot reload your running shell, so the new alias only
becomes available after you source the startup file or open a new
terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := app.NewInstallSpec(container.Config, shellFlag, scriptFlag, force)
			return runInstall(cmd.OutOrStdout(), container, spec)
		},
	}

	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell to install for (bash|zsh, auto-detected if not set)")
	cmd.Flags().StringVar(&scriptFlag, "script", "", "Alias target (defaults to <cwd>/scripts/filipec)")
	cmd.Flags().BoolVar(&force, "force", false, "Rewrite the rc entry even when already current")

	return cmd
}

func runInstall(out io.Writer, container *app.Container, spec domain.InstallSpec) error {
	result, err := container.Integrator.Install(spec)
	if err != nil {
		return err
	}

	switch {
	case !result.Changed:
		fmt.Fprintf(out, "Alias '%s' already registered in %s; nothing to do.\n", spec.AliasName, result.RCFile)
		return nil
	case result.Replaced:
		fmt.Fprintf(out, "✓ Replaced alias '%s' in %s\n", spec.AliasName, result.RCFile)
	default:
		fmt.Fprintf(out, "✓ Added alias '%s' to %s\n", spec.AliasName, result.RCFile)
	}
	fmt.Fprintf(out, "  %s\n", result.AliasLine)

	// An alias cannot be pushed into the parent shell from here.
	fmt.Fprintf(out, "\nTo use it in this session, run:\n")
	fmt.Fprintf(out, "  source %s\n", result.RCFile)
	fmt.Fprintf(out, "Or open a new terminal.\n")
	return nil
}
