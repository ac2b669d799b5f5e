package structure

import "github.com/modu-ai/monocheck/pkg/models"

// Process exit codes derived from a Report.
const (
	// ExitCodeClean indicates no violations.
	ExitCodeClean = 0

	// ExitCodeViolations indicates at least one violation.
	ExitCodeViolations = 1
)

// Report holds the violations of one run, grouped by check.
type Report struct {
	CacheDirectories []models.Violation
	ManifestIssues   []models.Violation
}

// Clean reports whether the run found no violations.
func (r *Report) Clean() bool {
	return len(r.CacheDirectories) == 0 && len(r.ManifestIssues) == 0
}

// ExitCode maps the report to ExitCodeClean or ExitCodeViolations.
func (r *Report) ExitCode() int {
	if r.Clean() {
		return ExitCodeClean
	}
	return ExitCodeViolations
}
