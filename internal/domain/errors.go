package domain

import "errors"

// Terminal installer conditions. Both map to exit code 1 at the CLI
// boundary; they exist as sentinels so callers can tell them apart.
var (
	// ErrRCFileMissing means the shell was recognized but its startup
	// file does not exist. The installer never creates it.
	ErrRCFileMissing = errors.New("shell resource file missing")

	// ErrUnsupportedShell means the invoking shell is neither bash nor zsh.
	ErrUnsupportedShell = errors.New("unsupported shell")
)
