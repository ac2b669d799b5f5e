package config

import "fmt"

// Rules is the complete configuration of a validation run.
type Rules struct {
	// MarkerName is the dependency cache directory name, e.g. node_modules.
	MarkerName string
	// IgnoreSubstrings skip any matched path containing one of them.
	IgnoreSubstrings []string
	// ManifestName is the root manifest file name, e.g. package.json.
	ManifestName string
	// WorkspaceField must be present in the root manifest.
	WorkspaceField string
	// DependencyField holds the manifest's dependency mapping.
	DependencyField string
	// ForbiddenDependencies are checked in declared order.
	ForbiddenDependencies []string
}

// RemediationHint returns the shell command that removes every cache
// directory except the top-level one.
func (r Rules) RemediationHint() string {
	return fmt.Sprintf("find . -name '%s' -not -path './%s' -exec rm -rf {} +", r.MarkerName, r.MarkerName)
}
