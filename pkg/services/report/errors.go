package report

import "fmt"

// ValidationError reports a malformed ReportConfig or missing user id.
// It is never retried and is surfaced verbatim to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid report config: %s", e.Reason)
}

// TemplateNotFoundError reports an unknown template key, which points
// at a caller/catalog mismatch rather than a data problem.
type TemplateNotFoundError struct {
	Template string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("report template %q not found", e.Template)
}

// GenerationError wraps any failure raised during fetch or transform.
// The root cause stays reachable through Unwrap.
type GenerationError struct {
	Template string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("report generation failed for %q: %v", e.Template, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
