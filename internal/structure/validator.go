package structure

import (
	"log/slog"

	"github.com/modu-ai/monocheck/internal/config"
	"github.com/modu-ai/monocheck/pkg/models"
)

// Validator runs the directory scan and the manifest inspection against a
// repository root.
type Validator struct {
	scanner   *Scanner
	inspector *Inspector
}

// NewValidator creates a Validator whose checks share rules and logger.
func NewValidator(rules config.Rules, logger *slog.Logger) *Validator {
	return &Validator{
		scanner:   NewScanner(rules, logger),
		inspector: NewInspector(rules, logger),
	}
}

// Validate scans root, then inspects its manifest. The first fatal error
// stops the run; no partial report is returned with it.
func (v *Validator) Validate(root string) (*Report, error) {
	dirs, err := v.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	issues, err := v.inspector.Inspect(root)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, d := range dirs {
		report.CacheDirectories = append(report.CacheDirectories, models.NewCacheDirectoryViolation(d))
	}
	for _, msg := range issues {
		report.ManifestIssues = append(report.ManifestIssues, models.NewManifestViolation(msg))
	}
	return report, nil
}
