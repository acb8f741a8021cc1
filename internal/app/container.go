package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hc12r/filipeX/internal/application/doctor"
	"github.com/hc12r/filipeX/internal/domain"
	"github.com/hc12r/filipeX/internal/infrastructure/config"
	"github.com/hc12r/filipeX/internal/infrastructure/history"
	"github.com/hc12r/filipeX/internal/infrastructure/shell"
	"github.com/hc12r/filipeX/internal/pkg/filesystem"
	"github.com/hc12r/filipeX/internal/pkg/logger"
	"github.com/hc12r/filipeX/internal/ports"
)

// Container wires application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Integrator   ports.AliasIntegrator
	History      ports.HistoryRepository
	Logger       ports.Logger
	Doctor       *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	installer := shell.NewInstaller(log)
	historyStore := history.NewSQLiteStore("")

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Integrator:     installer,
		History:        historyStore,
		BaseSpec:       NewInstallSpec(cfg, "", "", false),
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Integrator:   installer,
		History:      historyStore,
		Logger:       log,
		Doctor:       doctorService,
	}, nil
}

// NewInstallSpec resolves the installer's inputs once: alias name and
// script path from config (flags win), home dir, and the invoking shell.
// The default script path derives from the working directory at run
// time, matching the historical install script.
func NewInstallSpec(cfg domain.Config, shellOverride, scriptOverride string, force bool) domain.InstallSpec {
	scriptPath := scriptOverride
	if scriptPath == "" {
		scriptPath = cfg.Alias.ScriptPath
	}
	if scriptPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		scriptPath = filepath.Join(cwd, "scripts", "filipec")
	}

	return domain.InstallSpec{
		AliasName:  cfg.Alias.Name,
		ScriptPath: scriptPath,
		HomeDir:    filesystem.UserHomeDir(),
		Shell:      shell.Detect(shellOverride),
		Force:      force,
	}
}
