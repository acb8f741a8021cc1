package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hc12r/filipeX/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubIntegrator struct {
	status domain.ShellStatus
}

func (s stubIntegrator) Install(domain.InstallSpec) (domain.InstallResult, error) {
	return domain.InstallResult{}, nil
}

func (s stubIntegrator) Status(domain.InstallSpec) domain.ShellStatus { return s.status }

type stubHistory struct {
	err error
}

func (s stubHistory) Save(domain.HistoryRecord) error { return s.err }

func (s stubHistory) Recent(int) ([]domain.HistoryRecord, error) {
	return nil, s.err
}

func (s stubHistory) Close() error { return nil }

func writeScript(t *testing.T, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filipec")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), mode); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q in %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1.0"}},
		Integrator: stubIntegrator{status: domain.ShellStatus{
			Shell:        domain.ShellBash,
			RCFile:       "/home/u/.bashrc",
			RCFileExists: true,
			AliasPresent: true,
			LineCurrent:  true,
		}},
		History:  stubHistory{},
		BaseSpec: domain.InstallSpec{ScriptPath: writeScript(t, 0o755)},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("expected healthy report, got %+v", report.Checks)
	}
	if got := checkByName(t, report, "Shell integration"); got.Status != domain.CheckOK {
		t.Errorf("shell integration = %+v, want ok", got)
	}
}

func TestRunConfigFailure(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{err: errors.New("yaml: broken")},
	}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error when config load fails")
	}
	if got := checkByName(t, report, "Config file"); got.Status != domain.CheckFail {
		t.Errorf("config check = %+v, want fail", got)
	}
}

func TestRunWarnings(t *testing.T) {
	script := writeScript(t, 0o644)
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1.0"}},
		Integrator: stubIntegrator{status: domain.ShellStatus{
			Shell:        domain.ShellZsh,
			RCFile:       "/home/u/.zshrc",
			RCFileExists: true,
			AliasPresent: true,
			LineCurrent:  false,
		}},
		History:  stubHistory{err: errors.New("db locked")},
		BaseSpec: domain.InstallSpec{ScriptPath: script},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Healthy() {
		t.Fatal("expected unhealthy report")
	}

	shellCheck := checkByName(t, report, "Shell integration")
	if shellCheck.Status != domain.CheckWarn || !strings.Contains(shellCheck.Details, "stale") {
		t.Errorf("shell check = %+v, want stale warning", shellCheck)
	}
	if got := checkByName(t, report, "Alias target"); got.Status != domain.CheckWarn {
		t.Errorf("script check = %+v, want warn for non-executable target", got)
	}
	if got := checkByName(t, report, "History store"); got.Status != domain.CheckWarn {
		t.Errorf("history check = %+v, want warn", got)
	}
}

func TestRunMissingScript(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1.0"}},
		BaseSpec:       domain.InstallSpec{ScriptPath: filepath.Join(t.TempDir(), "missing")},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := checkByName(t, report, "Alias target"); got.Status != domain.CheckWarn {
		t.Errorf("script check = %+v, want warn for missing target", got)
	}
}
