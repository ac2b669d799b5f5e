package models

// ViolationKind identifies which check produced a violation.
type ViolationKind string

const (
	KindCacheDirectory ViolationKind = "cache-directory"
	KindManifestIssue  ViolationKind = "manifest-issue"
)

// Violation describes a single structural problem.
// Path is set for KindCacheDirectory, Message for KindManifestIssue.
type Violation struct {
	Kind    ViolationKind
	Path    string
	Message string
}

// NewCacheDirectoryViolation returns a violation for a misplaced cache
// directory at the given root-relative path.
func NewCacheDirectoryViolation(relPath string) Violation {
	return Violation{Kind: KindCacheDirectory, Path: relPath}
}

// NewManifestViolation returns a violation carrying a manifest message.
func NewManifestViolation(msg string) Violation {
	return Violation{Kind: KindManifestIssue, Message: msg}
}

// String returns the path for cache directory violations and the message
// for everything else.
func (v Violation) String() string {
	if v.Kind == KindCacheDirectory {
		return v.Path
	}
	return v.Message
}
