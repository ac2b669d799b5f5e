package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/monocheck/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "monocheck",
	Short: "Verify the layout of a JavaScript workspace monorepo",
	Long: `monocheck validates the monorepo rooted at the current directory.

It reports node_modules directories outside the repository root and checks
that the root package.json declares workspaces without carrying application
dependencies. It changes nothing on disk.

Exit codes: 0 when the structure is valid, 1 when violations are found,
2 when the checks could not run.`,
	Version:       version.GetVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	if err := InitDependencies(); err != nil {
		return err
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("monocheck %s\n", version.GetFullVersion()))
}
