package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rainmap/internal/config"
	"rainmap/internal/dataset"
	"rainmap/internal/raster"
	"rainmap/pkg/logging"
)

var (
	mosaicData string
	mosaicOut  string
)

// mosaicCmd renders every day into one large PNG.
var mosaicCmd = &cobra.Command{
	Use:   "mosaic",
	Short: "Render all days into a single mosaic PNG",
	Long: `Reads a tab-separated rainfall file and places every (Year, Day) grid
into one canvas: days side by side along X, years stacked in bands of
--rows pixels along Y. The canvas always reserves 366 day slots per
year so leap years line up.

Day grids outside [--start-year, --end-year], wider than the data
header, or too tall for the canvas are skipped with a warning.`,
	Args: cobra.NoArgs,
	RunE: runMosaic,
}

func runMosaic(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	initLogging(cfg)

	renderer, err := newConfiguredRenderer(cmd, cfg)
	if err != nil {
		return err
	}

	startYear := cfg.Mosaic.StartYear
	if cmd.Flags().Changed("start-year") {
		startYear, _ = cmd.Flags().GetInt("start-year")
	}
	endYear := cfg.Mosaic.EndYear
	if cmd.Flags().Changed("end-year") {
		endYear, _ = cmd.Flags().GetInt("end-year")
	}
	rows := cfg.Mosaic.Rows
	if cmd.Flags().Changed("rows") {
		rows, _ = cmd.Flags().GetInt("rows")
	}

	f, err := os.Open(mosaicData)
	if err != nil {
		return fmt.Errorf("opening %s: %w", mosaicData, err)
	}
	defer f.Close()

	reader, err := dataset.New(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", mosaicData, err)
	}

	mosaic, err := raster.NewMosaic(renderer, reader.Width(), startYear, endYear, rows)
	if err != nil {
		return fmt.Errorf("building mosaic: %w", err)
	}

	placed, skipped := 0, 0
	for {
		grid, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", mosaicData, err)
		}

		if err := mosaic.Place(grid); err != nil {
			logging.Warn("Mosaic", "skipping year %d day %d: %v", grid.Year, grid.Day, err)
			skipped++
			continue
		}
		placed++
	}

	if err := raster.WritePNG(mosaicOut, mosaic.Image()); err != nil {
		return err
	}

	logging.Info("Mosaic", "placed %d day grids (%d skipped) into %s", placed, skipped, mosaicOut)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote mosaic %s (%d day grids, %d skipped)\n", mosaicOut, placed, skipped)
	return nil
}

func init() {
	rootCmd.AddCommand(mosaicCmd)

	mosaicCmd.Flags().StringVar(&mosaicData, "data", "", "Tab-separated rainfall file (required)")
	mosaicCmd.Flags().StringVar(&mosaicOut, "out", "rainfall.png", "Output PNG path")
	mosaicCmd.Flags().String("gradient", config.DefaultGradient, "Catalog gradient for the color ramp")
	mosaicCmd.Flags().Float64("scale", config.DefaultScale, "Cell value that saturates the ramp")
	mosaicCmd.Flags().Int("start-year", config.DefaultStartYear, "First year band on the canvas")
	mosaicCmd.Flags().Int("end-year", config.DefaultEndYear, "Last year band on the canvas")
	mosaicCmd.Flags().Int("rows", config.DefaultRows, "Pixel rows reserved per year band")
	_ = mosaicCmd.MarkFlagRequired("data")
}
