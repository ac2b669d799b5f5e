package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/monocheck/internal/ui"
)

// runCheck validates the current directory and prints the report.
// The banner is written before the checks run; on a fatal error nothing
// else is written to stdout.
func runCheck(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	renderer := ui.NewRenderer(deps.Rules, !ui.ColorEnabled(out))

	_, _ = fmt.Fprint(out, renderer.RenderBanner())

	report, err := deps.Validator.Validate(root)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(out, renderer.Render(report))

	if !report.Clean() {
		deps.Logger.Debug("validation failed", "root", root,
			"cache_directories", len(report.CacheDirectories),
			"manifest_issues", len(report.ManifestIssues))
		return ErrViolationsFound
	}
	return nil
}
