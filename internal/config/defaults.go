package config

// Default rule values. They mirror the conventions of an npm/yarn/pnpm
// workspace monorepo.
const (
	DefaultMarkerName      = "node_modules"
	DefaultManifestName    = "package.json"
	DefaultWorkspaceField  = "workspaces"
	DefaultDependencyField = "dependencies"
)

// defaultIgnoreSubstrings mark paths produced by temporary or cache tooling.
var defaultIgnoreSubstrings = []string{".tmp", ".cache"}

// defaultForbiddenDependencies are application frameworks that belong in a
// workspace package, never in the root manifest: a web UI framework, a
// full-stack framework, a server framework and two ORMs.
var defaultForbiddenDependencies = []string{"react", "next", "express", "prisma", "typeorm"}

// DefaultRules returns a Rules value with all fields set to compiled defaults.
// Each call returns fresh slices, so callers may modify the result.
func DefaultRules() Rules {
	return Rules{
		MarkerName:            DefaultMarkerName,
		IgnoreSubstrings:      append([]string(nil), defaultIgnoreSubstrings...),
		ManifestName:          DefaultManifestName,
		WorkspaceField:        DefaultWorkspaceField,
		DependencyField:       DefaultDependencyField,
		ForbiddenDependencies: append([]string(nil), defaultForbiddenDependencies...),
	}
}
