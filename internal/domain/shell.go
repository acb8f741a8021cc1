package domain

import (
	"fmt"
	"path/filepath"
)

// ShellName identifies the shell the installer targets.
type ShellName string

const (
	ShellUnknown ShellName = "unknown"
	ShellBash    ShellName = "bash"
	ShellZsh     ShellName = "zsh"
)

// Supported reports whether the shell has a known rc file.
func (s ShellName) Supported() bool {
	return s == ShellBash || s == ShellZsh
}

// InstallSpec carries everything the installer needs. It is resolved once
// at the CLI entry point (home dir, working dir, shell identity) so the
// installer itself never probes the environment.
type InstallSpec struct {
	AliasName  string
	ScriptPath string
	HomeDir    string
	Shell      ShellName
	// RCFiles overrides the shell-to-rc-file mapping. When nil the
	// defaults under HomeDir apply.
	RCFiles map[ShellName]string
	// Force rewrites the rc entry even when the exact line is present.
	Force bool
}

// AliasLine renders the line maintained in the rc file.
func (s InstallSpec) AliasLine() string {
	return fmt.Sprintf("alias %s=\"%s\"", s.AliasName, s.ScriptPath)
}

// RCFile returns the startup file for the spec's shell, or "" when the
// shell is unsupported.
func (s InstallSpec) RCFile() string {
	files := s.RCFiles
	if files == nil {
		files = DefaultRCFiles(s.HomeDir)
	}
	return files[s.Shell]
}

// DefaultRCFiles maps each supported shell to its startup file under home.
func DefaultRCFiles(home string) map[ShellName]string {
	return map[ShellName]string{
		ShellBash: filepath.Join(home, ".bashrc"),
		ShellZsh:  filepath.Join(home, ".zshrc"),
	}
}

// InstallResult describes an install outcome.
type InstallResult struct {
	Shell     ShellName
	RCFile    string
	AliasLine string
	// Replaced is true when an older alias definition was rewritten
	// instead of a fresh line being appended.
	Replaced bool
	// Changed is false when the exact line was already present and the
	// rc file was left untouched.
	Changed bool
}

// ShellStatus captures the current registration state.
type ShellStatus struct {
	Shell        ShellName
	RCFile       string
	RCFileExists bool
	AliasPresent bool
	LineCurrent  bool
	Error        string
}

func (s ShellStatus) String() string {
	if s.Error != "" {
		return fmt.Sprintf("%s: %s", s.Shell, s.Error)
	}
	switch {
	case !s.RCFileExists:
		return fmt.Sprintf("%s: %s does not exist", s.Shell, s.RCFile)
	case s.LineCurrent:
		return fmt.Sprintf("%s: alias registered in %s", s.Shell, s.RCFile)
	case s.AliasPresent:
		return fmt.Sprintf("%s: stale alias in %s (re-run install)", s.Shell, s.RCFile)
	default:
		return fmt.Sprintf("%s: alias not registered in %s", s.Shell, s.RCFile)
	}
}
