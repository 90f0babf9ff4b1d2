package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rainmap/internal/tui"
	"rainmap/pkg/logging"
)

// browseCmd launches the interactive catalog browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse gradients, themes, and palettes interactively",
	Long: `Launches a terminal browser over the full color catalog.

The left pane lists every gradient, document theme, and categorical
palette; the right pane shows labeled swatches for the selection.
Type / to filter, use the left and right arrows to move between
swatches, and press y to copy the selected hex to the clipboard.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Only errors may reach stderr while the alt screen is up.
	logging.Init(logging.LevelError, os.Stderr)

	if _, err := tui.NewProgram().Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
