// Package color parses CSS-style color literals, converts between RGB and
// HSV, interpolates piecewise-linear gradients, and carries the fixed
// gradient, theme and distinct-color catalogs used by the rainmap renderers.
//
// Colors are normalized to float channels in [0,1]. Four literal grammars
// are accepted by Parse: hex (#rgb, #rrggbb), rgb()/rgba() functional
// notation, hsl()/hsla() functional notation, and the 16 CSS basic color
// names. The hsl() grammar is historical: its second and third arguments
// are treated as HSV saturation and value, not HSL saturation and
// lightness. The published gradient tables were authored against that
// behavior, so it is kept as is.
//
// All operations are pure and the catalog tables are immutable after
// initialization, so everything here is safe for concurrent use.
package color
