// Package design provides the rainmap terminal design system: adaptive
// colors, spacing, and shared lipgloss styles for the catalog browser.
//
// The palette is not hand-picked. Every tone is pulled from the catalogs
// the browser itself displays: the Office document theme supplies the
// semantic colors and the categorical palette supplies the neutrals, so
// the chrome always matches the data it frames.
package design

import (
	"github.com/charmbracelet/lipgloss"

	"rainmap/pkg/color"
)

// Spacing scale in character cells.
const (
	SpacingXS = 1
	SpacingSM = 2
	SpacingMD = 3
	SpacingLG = 4
)

// SwatchWidth is the number of cells a single color block occupies.
const SwatchWidth = 4

// themeSlot resolves a slot from the Office theme. The catalog is a
// compiled table, so a miss is a programming error; falling back to the
// zero string keeps lipgloss rendering unstyled rather than panicking.
func themeSlot(slot string) string {
	hex, ok := color.Themes["Office"].BySlot(slot)
	if !ok {
		return ""
	}
	return hex
}

// brightened returns hex lightened (by > 0) or darkened (by < 0) in HSV
// space. Catalog entries always parse, so on error the input is returned
// unchanged.
func brightened(hex string, by float64) string {
	out, err := color.Brighten(hex, by)
	if err != nil {
		return hex
	}
	return out
}

// Color palette. Adaptive colors flip between light and dark terminal
// backgrounds; the dark variants are brightened so they keep contrast on
// black.
var (
	// Semantic colors from the Office theme slots.
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: themeSlot("accent_1"),
		Dark:  brightened(themeSlot("accent_1"), 0.2),
	}
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: themeSlot("accent_3"),
		Dark:  brightened(themeSlot("accent_3"), 0.15),
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: themeSlot("accent_2"),
		Dark:  brightened(themeSlot("accent_2"), 0.25),
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: themeSlot("accent_6"),
		Dark:  brightened(themeSlot("accent_6"), 0.1),
	}

	// Text colors. The primary pair comes from the theme's dark_2/light_2
	// slots; the muted tone is the categorical palette's gray.
	ColorTextPrimary = lipgloss.AdaptiveColor{
		Light: themeSlot("dark_2"),
		Dark:  themeSlot("light_2"),
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#7f7f7f",
		Dark:  "#c7c7c7",
	}

	// Borders use the gray pair from the categorical palette.
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#c7c7c7",
		Dark:  "#7f7f7f",
	}
)

// Base styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, SpacingXS)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Component styles.
var (
	// DetailPane frames the swatch panel beside the catalog list.
	DetailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpacingXS)

	// StatusBar is the single line under the panes; the success and error
	// variants color the outcome of the last action.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, SpacingXS)
	StatusBarSuccessStyle = SuccessStyle.Copy().Padding(0, SpacingXS)
	StatusBarErrorStyle   = ErrorStyle.Copy().Padding(0, SpacingXS)

	// SelectedRow marks the swatch row under the cursor.
	SelectedRowStyle = TextStyle.Copy().Bold(true)

	// HelpStyle renders the key hints.
	HelpStyle = MutedStyle.Copy().Italic(true)
)

// Swatch renders hex as a block of background color, width cells wide,
// with the hex literal centered in a readable foreground. The label color
// is chosen by luma so light swatches get dark text and vice versa.
func Swatch(hex string, width int) string {
	label, err := color.Contrast(hex)
	if err != nil {
		label = "#000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(label)).
		Width(width).
		Align(lipgloss.Center).
		Render(hex)
}

// Block renders hex as a bare color block with no label.
func Block(hex string, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(width).
		Render("")
}

// Initialize sets up the design system for the detected terminal
// background. Call once before the first render.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
