package structure

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/modu-ai/monocheck/internal/config"
)

// Inspector checks the root manifest for a workspace declaration and for
// application dependencies that belong in a workspace package.
type Inspector struct {
	rules  config.Rules
	logger *slog.Logger
}

// NewInspector creates an Inspector for the manifest rules in rules.
func NewInspector(rules config.Rules, logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Inspector{rules: rules, logger: logger}
}

// Inspect returns the manifest issues found under root in check order: the
// workspace field first, then forbidden dependencies in declared order. A
// missing manifest yields a single issue and no further checks. A manifest
// that cannot be read or decoded is an error.
func (i *Inspector) Inspect(root string) ([]string, error) {
	path := filepath.Join(filepath.Clean(root), i.rules.ManifestName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{fmt.Sprintf("Missing root %s", i.rules.ManifestName)}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
	}

	doc, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var issues []string

	if !doc.Has(i.rules.WorkspaceField) {
		issues = append(issues, fmt.Sprintf("Root %s missing '%s' field",
			i.rules.ManifestName, i.rules.WorkspaceField))
	}

	issues = append(issues, i.checkDependencies(doc)...)

	return issues, nil
}

// checkDependencies reports each forbidden name present in the dependency
// mapping. A dependency field that is not an object is logged and skipped.
func (i *Inspector) checkDependencies(doc Manifest) []string {
	if !doc.Has(i.rules.DependencyField) {
		return nil
	}
	deps, ok := doc.Object(i.rules.DependencyField)
	if !ok {
		i.logger.Warn("dependency field is not an object, skipping forbidden dependency check",
			"field", i.rules.DependencyField, "type", jsonKind(doc[i.rules.DependencyField]))
		return nil
	}

	var issues []string
	for _, name := range i.rules.ForbiddenDependencies {
		if _, found := deps[name]; found {
			issues = append(issues, fmt.Sprintf("Root %s has app dependency: %s", i.rules.ManifestName, name))
		}
	}
	return issues
}
