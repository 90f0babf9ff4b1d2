package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"rainmap/internal/config"
	"rainmap/pkg/logging"
)

// rootLogLevel overrides the configured log level when set.
var rootLogLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rainmap",
	Short: "Render rainfall rasters and explore the color catalogs behind them",
	Long: `rainmap turns tab-separated rainfall grids into PNG rasters, one pixel
per measurement cell, and exposes the color machinery it is built on:
CSS-style color parsing, piecewise-linear gradients, document theme
palettes, and a categorical palette for charts.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, unreadable input files)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "rainmap version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// initLogging configures the global logger from the layered config, with
// the --log-level flag taking precedence. Commands that render or serve
// call this once at the top of their RunE.
func initLogging(cfg config.Config) {
	level := cfg.LogLevel
	if rootLogLevel != "" {
		level = rootLogLevel
	}
	logging.Init(logging.ParseLevel(level), os.Stderr)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
}
