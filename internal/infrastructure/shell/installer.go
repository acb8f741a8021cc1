// Package shell registers the filipec alias in shell startup files.
package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hc12r/filipeX/internal/domain"
	"github.com/hc12r/filipeX/internal/ports"
)

// Installer performs one-shot alias registration against a shell rc file.
// All environment-derived inputs arrive through domain.InstallSpec.
type Installer struct {
	logger ports.Logger
}

// NewInstaller builds an Installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install ensures exactly one alias definition for spec.AliasName exists
// in the rc file of spec.Shell. The rc file must already exist; a missing
// file is a terminal condition, never an auto-create.
func (i *Installer) Install(spec domain.InstallSpec) (domain.InstallResult, error) {
	rcFile := spec.RCFile()
	if rcFile == "" {
		return domain.InstallResult{Shell: spec.Shell}, fmt.Errorf("%w: %s", domain.ErrUnsupportedShell, spec.Shell)
	}

	if _, err := os.Stat(rcFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.InstallResult{Shell: spec.Shell, RCFile: rcFile},
				fmt.Errorf("%w: %s", domain.ErrRCFileMissing, rcFile)
		}
		return domain.InstallResult{Shell: spec.Shell, RCFile: rcFile}, err
	}

	line := spec.AliasLine()
	changed, replaced, err := ensureAliasLine(rcFile, spec.AliasName, line, spec.Force)
	if err != nil {
		return domain.InstallResult{Shell: spec.Shell, RCFile: rcFile}, err
	}

	i.logger.Info("alias registered", map[string]interface{}{
		"shell":   string(spec.Shell),
		"rc_file": rcFile,
		"changed": changed,
	})

	return domain.InstallResult{
		Shell:     spec.Shell,
		RCFile:    rcFile,
		AliasLine: line,
		Replaced:  replaced,
		Changed:   changed,
	}, nil
}

// Status reports the current registration state without modifying anything.
func (i *Installer) Status(spec domain.InstallSpec) domain.ShellStatus {
	status := domain.ShellStatus{Shell: spec.Shell}

	rcFile := spec.RCFile()
	if rcFile == "" {
		status.Error = fmt.Sprintf("unsupported shell: %s", spec.Shell)
		return status
	}
	status.RCFile = rcFile

	contents, err := os.ReadFile(rcFile)
	if err != nil {
		return status
	}
	status.RCFileExists = true

	line := spec.AliasLine()
	for _, existing := range strings.Split(string(contents), "\n") {
		trimmed := strings.TrimSpace(existing)
		if trimmed == line {
			status.AliasPresent = true
			status.LineCurrent = true
			return status
		}
		if definesAlias(trimmed, spec.AliasName) {
			status.AliasPresent = true
		}
	}
	return status
}

// Detect classifies the invoking shell. An explicit override wins;
// otherwise the basename of $SHELL is used.
func Detect(override string) domain.ShellName {
	name := override
	if name == "" {
		name = filepath.Base(os.Getenv("SHELL"))
	}
	name = strings.ToLower(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return domain.ShellUnknown
	}
	return domain.ShellName(name)
}

// ensureAliasLine makes line the sole alias definition in the rc file.
// When no prior definition exists the line is appended through a scoped
// append-mode handle; when an older definition is found the file is
// rewritten with the stale lines dropped.
func ensureAliasLine(path, aliasName, line string, force bool) (changed, replaced bool, err error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return false, false, err
	}

	lines := strings.Split(string(contents), "\n")
	var defined int
	var current bool
	for _, existing := range lines {
		trimmed := strings.TrimSpace(existing)
		if !definesAlias(trimmed, aliasName) {
			continue
		}
		defined++
		if trimmed == line {
			current = true
		}
	}

	if current && defined == 1 && !force {
		return false, false, nil
	}
	if defined == 0 {
		return true, false, appendLine(path, string(contents), line)
	}

	var filtered []string
	for _, existing := range lines {
		if definesAlias(strings.TrimSpace(existing), aliasName) {
			continue
		}
		filtered = append(filtered, existing)
	}
	for len(filtered) > 0 && filtered[len(filtered)-1] == "" {
		filtered = filtered[:len(filtered)-1]
	}
	filtered = append(filtered, line)
	final := strings.Join(filtered, "\n") + "\n"
	return true, true, os.WriteFile(path, []byte(final), 0o644)
}

func appendLine(path, contents, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	payload := line + "\n"
	if contents != "" && !strings.HasSuffix(contents, "\n") {
		payload = "\n" + payload
	}
	_, err = f.WriteString(payload)
	return err
}

func definesAlias(trimmedLine, aliasName string) bool {
	return strings.HasPrefix(trimmedLine, "alias "+aliasName+"=")
}

var _ ports.AliasIntegrator = (*Installer)(nil)
