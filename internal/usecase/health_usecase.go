package usecase

import (
	"context"
	"sort"
	"time"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

type HealthReport struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func (r HealthReport) Healthy() bool { return r.Status == "ok" }

type HealthUsecase interface {
	Check(ctx context.Context) HealthReport
}

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthUsecase checks the named dependencies, each bounded by timeout.
func NewHealthUsecase(checks map[string]HealthCheck, timeout time.Duration) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: timeout}
}

func (u *healthUsecase) Check(ctx context.Context) HealthReport {
	report := HealthReport{Status: "ok", Components: make(map[string]string, len(u.checks))}

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := u.checks[name](checkCtx)
		cancel()
		if err != nil {
			report.Status = "degraded"
			report.Components[name] = "unavailable"
			continue
		}
		report.Components[name] = "ok"
	}
	return report
}
