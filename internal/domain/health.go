package domain

// CheckStatus classifies a single diagnostic outcome.
type CheckStatus string

const (
	CheckOK   CheckStatus = "ok"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)

// HealthCheck is one doctor finding.
type HealthCheck struct {
	Name    string
	Status  CheckStatus
	Details string
}

// HealthReport aggregates doctor findings.
type HealthReport struct {
	Checks []HealthCheck
}

// Healthy reports whether every check passed cleanly.
func (r HealthReport) Healthy() bool {
	for _, c := range r.Checks {
		if c.Status != CheckOK {
			return false
		}
	}
	return true
}
