package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hc12r/filipeX/internal/lang/interpreter"
	"github.com/hc12r/filipeX/internal/lang/lexer"
	"github.com/hc12r/filipeX/internal/lang/parser"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a FilipeX program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd.OutOrStdout(), args[0])
		},
	}
}

func runFile(out io.Writer, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	program, err := parser.New(lexer.New(string(source))).Parse()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	interp := interpreter.New(interpreter.Options{Out: out})
	if _, err := interp.Eval(program); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
