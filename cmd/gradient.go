package cmd

import (
	"fmt"
	"image"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"rainmap/internal/raster"
	"rainmap/pkg/color"
)

var (
	gradientShowWidth    int
	gradientExportOut    string
	gradientExportWidth  int
	gradientExportHeight int
	gradientExportSpace  string
)

// gradientCmd represents the gradient command
var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Inspect and export the gradient catalog",
	Long: `Inspect the built-in color gradients.

Gradients are piecewise-linear ramps over positioned color stops. The
catalog carries the ColorBrewer schemes plus the historical RYG/RWG
ramps; sequential schemes run over [0, 1], diverging schemes over
[-1, +1].

Available commands:
  list    - List all gradients with a terminal preview
  show    - Show one gradient's stops and a wider preview
  at      - Sample a gradient at a position
  export  - Write a gradient strip to a PNG file`,
}

var gradientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all gradients in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runGradientList,
}

var gradientShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a gradient's stops and preview",
	Args:  cobra.ExactArgs(1),
	RunE:  runGradientShow,
}

var gradientAtCmd = &cobra.Command{
	Use:   "at <name> <position>",
	Short: "Sample a gradient at a position",
	Long: `Sample a gradient at a position and print the resulting color literal.

At or beyond the gradient's ends the stop literal is returned verbatim;
in between, the bracketing stops are blended channel-wise.`,
	Args: cobra.ExactArgs(2),
	RunE: runGradientAt,
}

var gradientExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a gradient strip to a PNG file",
	Long: `Write a gradient as a horizontal PNG strip.

The default rgb space reproduces the renderer's channel-wise blending
exactly. The hcl and lab spaces blend through go-colorful for
perceptually even previews; they are for human eyes, not for
reproducing raster output.`,
	Args: cobra.ExactArgs(1),
	RunE: runGradientExport,
}

func runGradientList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range color.GradientNames() {
		g := color.Gradients[name]
		lo, hi := gradientRange(g)
		label := runewidth.FillRight(name, 10)
		span := runewidth.FillRight(fmt.Sprintf("[%g, %g]", lo, hi), 9)
		fmt.Fprintf(out, "%s %s %s\n", label, span, gradientStrip(g, 16))
	}
	return nil
}

func runGradientShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	g, ok := color.Gradients[name]
	if !ok {
		return fmt.Errorf("unknown gradient %q, run 'rainmap gradient list' for the catalog", name)
	}
	if gradientShowWidth < 2 {
		return fmt.Errorf("width must be at least 2, got %d", gradientShowWidth)
	}

	out := cmd.OutOrStdout()
	lo, hi := gradientRange(g)
	fmt.Fprintf(out, "%s (%d stops on [%g, %g])\n", name, len(g), lo, hi)
	fmt.Fprintln(out, gradientStrip(g, gradientShowWidth))
	for _, s := range g {
		pos := runewidth.FillRight(fmt.Sprintf("%g", s.Pos), 6)
		fmt.Fprintf(out, "  %s %s %s\n", pos, runewidth.FillRight(s.Color, 8), colorCell(s.Color))
	}
	return nil
}

func runGradientAt(cmd *cobra.Command, args []string) error {
	name := args[0]
	g, ok := color.Gradients[name]
	if !ok {
		return fmt.Errorf("unknown gradient %q, run 'rainmap gradient list' for the catalog", name)
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad position %q: %w", args[1], err)
	}

	literal, err := g.At(x)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), literal)
	return nil
}

func runGradientExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	g, ok := color.Gradients[name]
	if !ok {
		return fmt.Errorf("unknown gradient %q, run 'rainmap gradient list' for the catalog", name)
	}
	if gradientExportWidth < 2 || gradientExportHeight < 1 {
		return fmt.Errorf("strip must be at least 2x1, got %dx%d", gradientExportWidth, gradientExportHeight)
	}
	switch gradientExportSpace {
	case "rgb", "hcl", "lab":
	default:
		return fmt.Errorf("unknown blend space %q, want rgb, hcl or lab", gradientExportSpace)
	}

	outPath := gradientExportOut
	if outPath == "" {
		outPath = name + ".png"
	}

	img := image.NewNRGBA(image.Rect(0, 0, gradientExportWidth, gradientExportHeight))
	lo, hi := gradientRange(g)
	for x := 0; x < gradientExportWidth; x++ {
		pos := lo + (hi-lo)*float64(x)/float64(gradientExportWidth-1)

		var literal string
		var err error
		if gradientExportSpace == "rgb" {
			literal, err = g.At(pos)
		} else {
			literal, err = perceptualAt(g, pos, gradientExportSpace)
		}
		if err != nil {
			return err
		}
		c, err := color.Parse(literal)
		if err != nil {
			return fmt.Errorf("gradient produced %q: %w", literal, err)
		}

		r8, g8, b8, a8 := uint8(255*c.R), uint8(255*c.G), uint8(255*c.B), uint8(255*c.A)
		for y := 0; y < gradientExportHeight; y++ {
			o := img.PixOffset(x, y)
			img.Pix[o+0], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = r8, g8, b8, a8
		}
	}

	if err := raster.WritePNG(outPath, img); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %s blend)\n",
		outPath, gradientExportWidth, gradientExportHeight, gradientExportSpace)
	return nil
}

// gradientRange returns the lowest and highest stop positions.
func gradientRange(g color.Gradient) (float64, float64) {
	lo, hi := g[0].Pos, g[0].Pos
	for _, s := range g {
		if s.Pos < lo {
			lo = s.Pos
		}
		if s.Pos > hi {
			hi = s.Pos
		}
	}
	return lo, hi
}

// gradientStrip renders the ramp as a row of background-colored cells.
func gradientStrip(g color.Gradient, width int) string {
	lo, hi := gradientRange(g)
	var b strings.Builder
	for i := 0; i < width; i++ {
		x := lo + (hi-lo)*float64(i)/float64(width-1)
		hex, err := g.At(x)
		if err != nil {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
	}
	return b.String()
}

// colorCell renders hex as a small labeled swatch with a readable
// foreground.
func colorCell(hex string) string {
	fg, err := color.Contrast(hex)
	if err != nil {
		fg = "#000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(" " + hex + " ")
}

// perceptualAt blends between the stops bracketing x in HCL or Lab
// space. Endpoint behavior matches Gradient.At: beyond either end the
// stop literal is returned verbatim.
func perceptualAt(g color.Gradient, x float64, space string) (string, error) {
	if len(g) == 0 {
		return "", color.ErrEmptyGradient
	}
	stops := make(color.Gradient, len(g))
	copy(stops, g)
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Pos < stops[j].Pos })

	if x <= stops[0].Pos {
		return stops[0].Color, nil
	}
	if x >= stops[len(stops)-1].Pos {
		return stops[len(stops)-1].Color, nil
	}

	i := 1
	for stops[i].Pos < x {
		i++
	}
	prev, cur := stops[i-1], stops[i]

	a, err := color.Parse(prev.Color)
	if err != nil {
		return "", fmt.Errorf("gradient stop %v: %w", prev.Pos, err)
	}
	b, err := color.Parse(cur.Color)
	if err != nil {
		return "", fmt.Errorf("gradient stop %v: %w", cur.Pos, err)
	}

	p := (x - prev.Pos) / (cur.Pos - prev.Pos)
	c1 := colorful.Color{R: a.R, G: a.G, B: a.B}
	c2 := colorful.Color{R: b.R, G: b.G, B: b.B}

	var blended colorful.Color
	if space == "lab" {
		blended = c1.BlendLab(c2, p)
	} else {
		blended = c1.BlendHcl(c2, p)
	}
	blended = blended.Clamped()
	return color.Format(blended.R, blended.G, blended.B, 1), nil
}

func init() {
	rootCmd.AddCommand(gradientCmd)

	gradientCmd.AddCommand(gradientListCmd)
	gradientCmd.AddCommand(gradientShowCmd)
	gradientCmd.AddCommand(gradientAtCmd)
	gradientCmd.AddCommand(gradientExportCmd)

	gradientShowCmd.Flags().IntVar(&gradientShowWidth, "width", 40, "Preview width in terminal cells")

	gradientExportCmd.Flags().StringVar(&gradientExportOut, "out", "", "Output PNG path (default <name>.png)")
	gradientExportCmd.Flags().IntVar(&gradientExportWidth, "width", 256, "Strip width in pixels")
	gradientExportCmd.Flags().IntVar(&gradientExportHeight, "height", 32, "Strip height in pixels")
	gradientExportCmd.Flags().StringVar(&gradientExportSpace, "space", "rgb", "Blend space (rgb, hcl, lab)")
}
