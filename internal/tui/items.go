package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"rainmap/pkg/color"
)

// gradientSamples is how many evenly spaced points a gradient row shows.
const gradientSamples = 10

// swatch is one selectable color cell in the detail pane.
type swatch struct {
	Label string
	Hex   string
}

// catalogItem is one browsable entry: a gradient, a document theme, or
// the categorical palette. Swatches are computed once at startup; the
// catalogs are compiled tables, so there is nothing to refresh.
type catalogItem struct {
	kind     string
	name     string
	desc     string
	swatches []swatch
}

func (i catalogItem) Title() string       { return i.name }
func (i catalogItem) Description() string { return i.desc }
func (i catalogItem) FilterValue() string { return i.kind + " " + i.name }

// gradientItem samples the ramp at evenly spaced positions across its
// stop range. Catalog stops always parse, so At cannot fail here.
func gradientItem(name string, g color.Gradient) catalogItem {
	lo, hi := g[0].Pos, g[0].Pos
	for _, s := range g {
		if s.Pos < lo {
			lo = s.Pos
		}
		if s.Pos > hi {
			hi = s.Pos
		}
	}

	swatches := make([]swatch, 0, gradientSamples)
	for i := 0; i < gradientSamples; i++ {
		x := lo + (hi-lo)*float64(i)/float64(gradientSamples-1)
		hex, err := g.At(x)
		if err != nil {
			continue
		}
		swatches = append(swatches, swatch{
			Label: fmt.Sprintf("%.2f", x),
			Hex:   hex,
		})
	}

	return catalogItem{
		kind:     "gradient",
		name:     name,
		desc:     fmt.Sprintf("gradient, %d stops on [%g, %g]", len(g), lo, hi),
		swatches: swatches,
	}
}

// themeItem lists every color in the palette. The first ten positions are
// labeled by slot name, the extra accents by index.
func themeItem(name string, t color.Theme) catalogItem {
	slots := color.SlotNames()
	swatches := make([]swatch, 0, len(t))
	for i, hex := range t {
		label := fmt.Sprintf("index %d", i)
		if i < len(slots) {
			label = slots[i]
		}
		swatches = append(swatches, swatch{Label: label, Hex: hex})
	}

	return catalogItem{
		kind:     "theme",
		name:     name,
		desc:     fmt.Sprintf("theme, %d colors", len(t)),
		swatches: swatches,
	}
}

// paletteItem shows n categorical colors labeled by pick order.
func paletteItem(n int) catalogItem {
	colors := color.Distinct(n)
	swatches := make([]swatch, len(colors))
	for i, hex := range colors {
		swatches[i] = swatch{Label: fmt.Sprintf("pick %d", i), Hex: hex}
	}

	return catalogItem{
		kind:     "palette",
		name:     fmt.Sprintf("Distinct %d", n),
		desc:     fmt.Sprintf("palette, %d distinct colors", n),
		swatches: swatches,
	}
}

// newCatalogItems builds the full browsable catalog: every named
// gradient, every document theme, and the two categorical palettes.
func newCatalogItems() []list.Item {
	items := make([]list.Item, 0, len(color.Gradients)+len(color.Themes)+2)
	for _, name := range color.GradientNames() {
		items = append(items, gradientItem(name, color.Gradients[name]))
	}
	for _, name := range color.ThemeNames() {
		items = append(items, themeItem(name, color.Themes[name]))
	}
	items = append(items, paletteItem(10), paletteItem(20))
	return items
}
