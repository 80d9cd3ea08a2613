package report

import (
	"time"

	"github.com/fleet-tools/fleet-atlas/pkg/models/domain"
)

// validateConfig checks a caller-supplied config before any data
// access. Checks run in a fixed order and the first failure wins.
func validateConfig(cfg domain.ReportConfig, userID string, now time.Time) error {
	if userID == "" {
		return &ValidationError{Reason: "user id is required"}
	}
	if cfg.DateRange.Start.IsZero() || cfg.DateRange.End.IsZero() {
		return &ValidationError{Reason: "date range is required"}
	}
	if !cfg.DateRange.Start.Before(cfg.DateRange.End) {
		return &ValidationError{Reason: "date range start must be before end"}
	}
	if cfg.DateRange.End.After(now) {
		return &ValidationError{Reason: "date range end cannot be in the future"}
	}
	return nil
}
