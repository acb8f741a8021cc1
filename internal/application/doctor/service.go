package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/hc12r/filipeX/internal/domain"
	"github.com/hc12r/filipeX/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Integrator     ports.AliasIntegrator
	History        ports.HistoryRepository
	// BaseSpec is the install spec resolved at startup without flag
	// overrides; doctor only reports on it, never modifies anything.
	BaseSpec domain.InstallSpec
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded (format %s)", cfg.ConfigFormatVersion)))

	if s.Integrator != nil {
		status := s.Integrator.Status(s.BaseSpec)
		switch {
		case status.Error != "":
			checks = append(checks, warn("Shell integration", status.Error))
		case status.LineCurrent:
			checks = append(checks, ok("Shell integration", fmt.Sprintf("%s alias registered in %s", status.Shell, status.RCFile)))
		case status.AliasPresent:
			checks = append(checks, warn("Shell integration", fmt.Sprintf("stale alias in %s (re-run install)", status.RCFile)))
		case !status.RCFileExists:
			checks = append(checks, warn("Shell integration", fmt.Sprintf("%s does not exist", status.RCFile)))
		default:
			checks = append(checks, warn("Shell integration", "alias not registered"))
		}
	}

	checks = append(checks, s.checkScript())

	if s.History != nil {
		if _, err := s.History.Recent(1); err != nil {
			checks = append(checks, warn("History store", err.Error()))
		} else {
			checks = append(checks, ok("History store", "reachable"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

// checkScript reports on the alias target. Install itself never
// validates the script; this is diagnostics only.
func (s *Service) checkScript() domain.HealthCheck {
	info, err := os.Stat(s.BaseSpec.ScriptPath)
	if err != nil {
		return warn("Alias target", fmt.Sprintf("%s not found", s.BaseSpec.ScriptPath))
	}
	if info.Mode()&0o111 == 0 {
		return warn("Alias target", fmt.Sprintf("%s is not executable", s.BaseSpec.ScriptPath))
	}
	return ok("Alias target", s.BaseSpec.ScriptPath)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.CheckOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.CheckWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.CheckFail, Details: details}
}
