package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rainmap/pkg/color"
)

func TestNewCatalogItems(t *testing.T) {
	items := newCatalogItems()

	wantLen := len(color.Gradients) + len(color.Themes) + 2
	require.Len(t, items, wantLen)

	first, ok := items[0].(catalogItem)
	require.True(t, ok)
	assert.Equal(t, "Blues", first.name)
	assert.Equal(t, "gradient", first.kind)

	firstTheme := items[len(color.Gradients)].(catalogItem)
	assert.Equal(t, "Adjacency", firstTheme.name)
	assert.Equal(t, "theme", firstTheme.kind)

	last := items[len(items)-1].(catalogItem)
	assert.Equal(t, "Distinct 20", last.name)
	assert.Equal(t, "palette", last.kind)
}

func TestGradientItem(t *testing.T) {
	it := gradientItem("Greens", color.Greens)

	assert.Equal(t, "gradient", it.kind)
	assert.Equal(t, "gradient, 3 stops on [0, 1]", it.desc)
	require.Len(t, it.swatches, gradientSamples)

	// The endpoints return the stop literals verbatim, casing intact.
	assert.Equal(t, swatch{Label: "0.00", Hex: "#F7FCF5"}, it.swatches[0])
	assert.Equal(t, swatch{Label: "1.00", Hex: "#00441B"}, it.swatches[len(it.swatches)-1])
}

func TestGradientItemDivergingRange(t *testing.T) {
	it := gradientItem("RdYlGn", color.RdYlGn)

	assert.Equal(t, "gradient, 3 stops on [-1, 1]", it.desc)
	require.Len(t, it.swatches, gradientSamples)
	assert.Equal(t, swatch{Label: "-1.00", Hex: "#D73027"}, it.swatches[0])
	assert.Equal(t, "1.00", it.swatches[len(it.swatches)-1].Label)
}

func TestThemeItem(t *testing.T) {
	it := themeItem("Office", color.Themes["Office"])

	assert.Equal(t, "theme", it.kind)
	assert.Equal(t, "theme, 10 colors", it.desc)
	require.Len(t, it.swatches, 10)
	assert.Equal(t, swatch{Label: "accent_1", Hex: "#4f81bd"}, it.swatches[0])
	assert.Equal(t, swatch{Label: "dark_2", Hex: "#1f497d"}, it.swatches[7])
	assert.Equal(t, swatch{Label: "dark_1", Hex: "#000000"}, it.swatches[9])
}

func TestThemeItemExtraAccents(t *testing.T) {
	it := themeItem("Adjacency", color.Themes["Adjacency"])

	require.Len(t, it.swatches, 12)
	assert.Equal(t, swatch{Label: "index 10", Hex: "#D25814"}, it.swatches[10])
	assert.Equal(t, swatch{Label: "index 11", Hex: "#849A0A"}, it.swatches[11])
}

func TestPaletteItem(t *testing.T) {
	it := paletteItem(10)

	assert.Equal(t, "palette", it.kind)
	assert.Equal(t, "Distinct 10", it.name)
	require.Len(t, it.swatches, 10)
	assert.Equal(t, swatch{Label: "pick 0", Hex: "#1f77b4"}, it.swatches[0])

	twenty := paletteItem(20)
	require.Len(t, twenty.swatches, 20)
	assert.Equal(t, "#aec7e8", twenty.swatches[1].Hex)
}
