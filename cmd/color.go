package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rainmap/pkg/color"
)

var colorBrightenBy float64

// colorCmd represents the color command
var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Parse, convert, and derive colors",
	Long: `Parse, convert, and derive colors.

Literals may be hex (#rgb, #rrggbb) or functional (rgb(), rgba(),
hsl(), hsla()) with component values as numbers or percentages.
Values print bare so scripts can consume them.

Available commands:
  parse    - Parse a literal and print its RGBA components
  format   - Format RGBA components as a literal
  contrast - Print black or white, whichever reads better on a color
  brighten - Lighten or darken a color in HSV space
  distinct - Print n visually distinct colors
  hsv      - Parse a literal and print its HSVA components`,
}

var colorParseCmd = &cobra.Command{
	Use:   "parse <literal>",
	Short: "Parse a literal and print its RGBA components",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorParse,
}

var colorFormatCmd = &cobra.Command{
	Use:   "format <r> <g> <b> [a]",
	Short: "Format RGBA components (0 to 1) as a literal",
	Args:  cobra.RangeArgs(3, 4),
	RunE:  runColorFormat,
}

var colorContrastCmd = &cobra.Command{
	Use:   "contrast <literal>",
	Short: "Print black or white, whichever reads better on the color",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorContrast,
}

var colorBrightenCmd = &cobra.Command{
	Use:   "brighten <literal>",
	Short: "Lighten or darken a color in HSV space",
	Long: `Lighten or darken a color by scaling its HSV value by (1 + by):
--by 0.5 makes it half again as bright, --by -0.5 halves the
brightness, and --by -1 lands on black. Results clamp at full
brightness. The output is always opaque.`,
	Args: cobra.ExactArgs(1),
	RunE: runColorBrighten,
}

var colorDistinctCmd = &cobra.Command{
	Use:   "distinct <n>",
	Short: "Print n visually distinct colors, one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorDistinct,
}

var colorHSVCmd = &cobra.Command{
	Use:   "hsv <literal>",
	Short: "Parse a literal and print its HSVA components",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorHSV,
}

func runColorParse(cmd *cobra.Command, args []string) error {
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g %g\n", c.R, c.G, c.B, c.A)
	return nil
}

func runColorFormat(cmd *cobra.Command, args []string) error {
	parts := make([]float64, 4)
	parts[3] = 1
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad component %q: %w", arg, err)
		}
		parts[i] = v
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.Format(parts[0], parts[1], parts[2], parts[3]))
	return nil
}

func runColorContrast(cmd *cobra.Command, args []string) error {
	literal, err := color.Contrast(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), literal)
	return nil
}

func runColorBrighten(cmd *cobra.Command, args []string) error {
	literal, err := color.Brighten(args[0], colorBrightenBy)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), literal)
	return nil
}

func runColorDistinct(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad count %q: %w", args[0], err)
	}
	if n < 1 {
		return fmt.Errorf("count must be at least 1, got %d", n)
	}

	out := cmd.OutOrStdout()
	for _, hex := range color.Distinct(n) {
		fmt.Fprintln(out, hex)
	}
	return nil
}

func runColorHSV(cmd *cobra.Command, args []string) error {
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}
	h, s, v, a := c.HSVA()
	fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g %g\n", h, s, v, a)
	return nil
}

func init() {
	rootCmd.AddCommand(colorCmd)

	colorCmd.AddCommand(colorParseCmd)
	colorCmd.AddCommand(colorFormatCmd)
	colorCmd.AddCommand(colorContrastCmd)
	colorCmd.AddCommand(colorBrightenCmd)
	colorCmd.AddCommand(colorDistinctCmd)
	colorCmd.AddCommand(colorHSVCmd)

	colorBrightenCmd.Flags().Float64Var(&colorBrightenBy, "by", 0, "Brighten amount in [-1, 1] (required)")
	_ = colorBrightenCmd.MarkFlagRequired("by")
}
