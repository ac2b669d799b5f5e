package structure

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/monocheck/internal/config"
)

// Scanner finds dependency cache directories that live outside the
// repository root.
type Scanner struct {
	marker string
	ignore []string
	logger *slog.Logger
}

// NewScanner creates a Scanner for the marker and ignore substrings in rules.
func NewScanner(rules config.Rules, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{
		marker: rules.MarkerName,
		ignore: rules.IgnoreSubstrings,
		logger: logger,
	}
}

// Scan walks the tree under root and returns the root-relative path of every
// misplaced cache directory, in walk order. The top-level cache directory and
// paths containing an ignore substring are skipped. Matched directories are
// still descended into. Any traversal error aborts the scan.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)

	// Normalize to NFC: macOS filesystems may hand back names in NFD form.
	marker := norm.NFC.String(s.marker)
	topLevel := norm.NFC.String(filepath.Join(root, s.marker))

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root || !d.IsDir() || norm.NFC.String(d.Name()) != marker {
			return nil
		}

		if norm.NFC.String(path) == topLevel {
			return nil
		}
		if sub, ok := s.ignored(path); ok {
			s.logger.Debug("skipping ignored cache directory", "path", path, "match", sub)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}

	return found, nil
}

// ignored returns the first ignore substring contained in path.
func (s *Scanner) ignored(path string) (string, bool) {
	for _, sub := range s.ignore {
		if strings.Contains(path, sub) {
			return sub, true
		}
	}
	return "", false
}
