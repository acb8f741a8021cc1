package domain

// Config is the on-disk configuration, loaded from ~/.filipec/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Alias               AliasSettings   `yaml:"alias"`
	REPL                REPLSettings    `yaml:"repl"`
	History             HistorySettings `yaml:"history"`
}

// AliasSettings controls shell alias registration.
type AliasSettings struct {
	// Name of the alias written to the rc file.
	Name string `yaml:"name"`
	// ScriptPath overrides the default <cwd>/scripts/filipec target.
	ScriptPath string `yaml:"script_path"`
}

// REPLSettings controls the interactive session.
type REPLSettings struct {
	Prompt string `yaml:"prompt"`
}

// HistorySettings controls REPL history persistence.
type HistorySettings struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
}
