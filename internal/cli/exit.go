package cli

import (
	"errors"

	"github.com/modu-ai/monocheck/internal/structure"
)

// ExitCodeFatal is returned when the checks could not run at all.
const ExitCodeFatal = 2

// ErrViolationsFound is returned by the root command when the report is not
// clean. The violations themselves have already been printed.
var ErrViolationsFound = errors.New("monorepo structure violations found")

// ExitCode maps the result of Execute to a process exit code: 0 for success,
// 1 for violations, ExitCodeFatal for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return structure.ExitCodeClean
	case errors.Is(err, ErrViolationsFound):
		return structure.ExitCodeViolations
	default:
		return ExitCodeFatal
	}
}
