// Package ports defines the interfaces between the application core and
// the infrastructure adapters (config files, rc-file editing, history
// storage), keeping the core independent of concrete implementations.
package ports

import (
	"context"

	"github.com/hc12r/filipeX/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.filipec/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// AliasIntegrator registers the filipec alias in shell startup files and
// reports on the current registration state.
type AliasIntegrator interface {
	Install(spec domain.InstallSpec) (domain.InstallResult, error)
	Status(spec domain.InstallSpec) domain.ShellStatus
}

// HistoryRepository persists evaluated REPL lines.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Recent(limit int) ([]domain.HistoryRecord, error)
	Close() error
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
