package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hc12r/filipeX/internal/app"
	"github.com/hc12r/filipeX/internal/domain"
	"github.com/hc12r/filipeX/internal/lang/interpreter"
	"github.com/hc12r/filipeX/internal/lang/lexer"
	"github.com/hc12r/filipeX/internal/lang/object"
	"github.com/hc12r/filipeX/internal/lang/parser"
	"github.com/hc12r/filipeX/internal/version"
)

func newREPLCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive FilipeX session",
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), container, interactive)
		},
	}
}

func runREPL(in io.Reader, out io.Writer, container *app.Container, interactive bool) error {
	cfg := container.Config
	session := uuid.NewString()

	if interactive {
		fmt.Fprintf(out, "FilipeX %s. Type exit() to leave.\n", version.Version)
	}

	interp := interpreter.New(interpreter.Options{Out: out})
	scanner := bufio.NewScanner(in)

	for {
		if interactive {
			fmt.Fprint(out, cfg.REPL.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, evalErr := evalLine(interp, line)
		if evalErr != nil {
			fmt.Fprintln(out, evalErr)
		} else if result != "" {
			fmt.Fprintln(out, result)
		}

		if cfg.History.Enabled {
			record := domain.HistoryRecord{
				Timestamp: time.Now(),
				Session:   session,
				Source:    line,
				Result:    result,
				IsError:   evalErr != nil,
			}
			if evalErr != nil {
				record.Result = evalErr.Error()
			}
			if err := container.History.Save(record); err != nil {
				container.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	return scanner.Err()
}

// evalLine returns the printable result, or "" when the line produced
// no value worth echoing.
func evalLine(interp *interpreter.Interpreter, line string) (string, error) {
	program, err := parser.New(lexer.New(line)).Parse()
	if err != nil {
		return "", err
	}
	result, err := interp.Eval(program)
	if err != nil {
		return "", err
	}
	if result == nil || result == object.NullValue {
		return "", nil
	}
	return result.Inspect(), nil
}
