// Package structure implements the two monorepo layout checks: a scan for
// misplaced dependency cache directories and an inspection of the root
// manifest. Detected problems are returned as values; errors are reserved
// for conditions under which a check could not run at all.
package structure

import "errors"

// Sentinel errors for the structure package. All of them are fatal for a run.
var (
	// ErrScanFailed indicates the directory walk could not complete.
	ErrScanFailed = errors.New("scan repository tree")

	// ErrManifestUnreadable indicates the manifest exists but could not be read.
	ErrManifestUnreadable = errors.New("read root manifest")

	// ErrMalformedManifest indicates the manifest is not valid JSON.
	ErrMalformedManifest = errors.New("root manifest is not valid JSON")

	// ErrManifestNotObject indicates the manifest is valid JSON but not an object.
	ErrManifestNotObject = errors.New("root manifest is not a JSON object")
)
