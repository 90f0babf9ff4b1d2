package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"rainmap/pkg/color"
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspect the document theme palettes",
	Long: `Inspect the built-in document theme palettes.

Each theme is an ordered palette of 10 or 12 hex colors. The first ten
positions carry semantic slot names (accent_1 through accent_6, then
light_2, dark_2, light_1, dark_1); 12-color themes add two extra
accents reachable by index only.

Available commands:
  list - List all themes with an accent preview
  show - Show one theme's colors with slot names
  slot - Print the color for a semantic slot`,
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all themes in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runPaletteList,
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <theme>",
	Short: "Show a theme's colors with slot names",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteShow,
}

var paletteSlotCmd = &cobra.Command{
	Use:   "slot <theme> <slot>",
	Short: "Print the color for a semantic slot",
	Args:  cobra.ExactArgs(2),
	RunE:  runPaletteSlot,
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range color.ThemeNames() {
		t := color.Themes[name]
		var strip strings.Builder
		for _, hex := range t.ByRange(0, 6) {
			strip.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
		}
		fmt.Fprintf(out, "%s %2d colors %s\n", runewidth.FillRight(name, 12), len(t), strip.String())
	}
	return nil
}

func runPaletteShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	t, ok := color.Themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q, run 'rainmap palette list' for the catalog", name)
	}

	out := cmd.OutOrStdout()
	slots := color.SlotNames()
	fmt.Fprintf(out, "%s (%d colors)\n", name, len(t))
	for i, hex := range t.Colors() {
		label := "-"
		if i < len(slots) {
			label = slots[i]
		}
		fmt.Fprintf(out, "  %2d %s %s %s\n",
			i, runewidth.FillRight(label, 9), runewidth.FillRight(hex, 8), colorCell(hex))
	}
	return nil
}

func runPaletteSlot(cmd *cobra.Command, args []string) error {
	name, slot := args[0], args[1]
	t, ok := color.Themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q, run 'rainmap palette list' for the catalog", name)
	}
	hex, ok := t.BySlot(slot)
	if !ok {
		return fmt.Errorf("theme %q has no slot %q, valid slots: %s",
			name, slot, strings.Join(color.SlotNames(), ", "))
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex)
	return nil
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteShowCmd)
	paletteCmd.AddCommand(paletteSlotCmd)
}
