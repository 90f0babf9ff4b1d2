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
	"rainmap/pkg/color"
	"rainmap/pkg/logging"
)

var (
	renderData string
	renderOut  string
)

// renderCmd writes one PNG per observed day.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one PNG per day from a rainfall grid",
	Long: `Reads a tab-separated rainfall file and writes one PNG per (Year, Day)
group of rows, one pixel per cell, named YYYY-MM-DD.png under the
output directory.

Cells are divided by --scale and mapped through the gradient; negative
cells (including the -999 missing sentinel) render transparent. The
default scale 5.7 is the 90th percentile of the observed rainfall
distribution, so the top decile saturates the ramp.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	initLogging(cfg)

	renderer, err := newConfiguredRenderer(cmd, cfg)
	if err != nil {
		return err
	}

	out := cfg.Render.Output
	if cmd.Flags().Changed("out") {
		out = renderOut
	}

	f, err := os.Open(renderData)
	if err != nil {
		return fmt.Errorf("opening %s: %w", renderData, err)
	}
	defer f.Close()

	reader, err := dataset.New(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", renderData, err)
	}

	count := 0
	for {
		grid, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", renderData, err)
		}

		img, err := renderer.DayImage(grid.Rows)
		if err != nil {
			return fmt.Errorf("rendering year %d day %d: %w", grid.Year, grid.Day, err)
		}
		path := raster.DayFilename(out, grid.Year, grid.Day)
		if err := raster.WritePNG(path, img); err != nil {
			return err
		}
		logging.Debug("Render", "wrote %s (%dx%d)", path, img.Rect.Dx(), img.Rect.Dy())
		count++
	}

	logging.Info("Render", "wrote %d day rasters to %s", count, out)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d day rasters to %s\n", count, out)
	return nil
}

// newConfiguredRenderer resolves the gradient and scale, flags beating
// config, and builds the renderer. Shared by render and mosaic.
func newConfiguredRenderer(cmd *cobra.Command, cfg config.Config) (*raster.Renderer, error) {
	name := cfg.Render.Gradient
	if cmd.Flags().Changed("gradient") {
		name, _ = cmd.Flags().GetString("gradient")
	}
	scale := cfg.Render.Scale
	if cmd.Flags().Changed("scale") {
		scale, _ = cmd.Flags().GetFloat64("scale")
	}

	ramp, ok := color.Gradients[name]
	if !ok {
		return nil, fmt.Errorf("unknown gradient %q, run 'rainmap gradient list' for the catalog", name)
	}
	renderer, err := raster.NewRenderer(ramp, scale)
	if err != nil {
		return nil, fmt.Errorf("building renderer: %w", err)
	}
	return renderer, nil
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderData, "data", "", "Tab-separated rainfall file (required)")
	renderCmd.Flags().StringVar(&renderOut, "out", config.DefaultOutput, "Output directory for day rasters")
	renderCmd.Flags().String("gradient", config.DefaultGradient, "Catalog gradient for the color ramp")
	renderCmd.Flags().Float64("scale", config.DefaultScale, "Cell value that saturates the ramp")
	_ = renderCmd.MarkFlagRequired("data")
}
