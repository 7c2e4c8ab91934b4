package usecase

import (
	"context"
	"time"
)

// HealthCheck probes one dependency. A nil error means healthy.
type HealthCheck func(ctx context.Context) error

type HealthReport struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthReport
}

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthUsecase reports "ok" only when every registered check passes.
func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) HealthReport {
	report := HealthReport{Status: "ok", Components: make(map[string]string, len(u.checks))}

	for name, check := range u.checks {
		cctx, cancel := context.WithTimeout(ctx, u.timeout)
		err := check(cctx)
		cancel()

		if err != nil {
			report.Status = "degraded"
			report.Components[name] = "down"
			continue
		}
		report.Components[name] = "up"
	}
	return report
}
