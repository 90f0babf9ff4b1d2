package color

import "sort"

// Pre-defined gradients.
//
// RYG is red-yellow-green and RWG red-white-green, on a (0, 0.5, 1)
// scale. RYG1 and RWG1 are the same ramps on a (-1, 0, +1) scale.
//
// The rest are ColorBrewer schemes (http://colorbrewer2.org/), published
// under the Apache license. These are preferred for new renderings.

var (
	RYG  = Gradient{{0, "#ff0000"}, {0.5, "#ffff00"}, {1, "#00ff00"}}
	RYG1 = Gradient{{-1, "#ff0000"}, {0, "#ffff00"}, {1, "#00ff00"}}
	RWG  = Gradient{{0, "#ff0000"}, {0.5, "#ffffff"}, {1, "#00ff00"}}
	RWG1 = Gradient{{-1, "#ff0000"}, {0, "#ffffff"}, {1, "#00ff00"}}
)

// Sequential multihue schemes, sampled at 0, 0.5 and 1.
var (
	BuGn   = Gradient{{0, "#F7FCFD"}, {0.5, "#66C2A4"}, {1, "#00441B"}}
	BuPu   = Gradient{{0, "#F7FCFD"}, {0.5, "#8C96C6"}, {1, "#4D004B"}}
	GnBu   = Gradient{{0, "#F7FCF0"}, {0.5, "#7BCCC4"}, {1, "#084081"}}
	OrRd   = Gradient{{0, "#FFF7EC"}, {0.5, "#FC8D59"}, {1, "#7F0000"}}
	PuBu   = Gradient{{0, "#FFF7FB"}, {0.5, "#74A9CF"}, {1, "#023858"}}
	PuBuGn = Gradient{{0, "#FFF7FB"}, {0.5, "#67A9CF"}, {1, "#014636"}}
	PuRd   = Gradient{{0, "#F7F4F9"}, {0.5, "#DF65B0"}, {1, "#67001F"}}
	RdPu   = Gradient{{0, "#FFF7F3"}, {0.5, "#F768A1"}, {1, "#49006A"}}
	YlGn   = Gradient{{0, "#FFFFE5"}, {0.5, "#78C679"}, {1, "#004529"}}
	YlGnBu = Gradient{{0, "#FFFFD9"}, {0.5, "#41B6C4"}, {1, "#081D58"}}
	YlOrBr = Gradient{{0, "#FFFFE5"}, {0.5, "#FE9929"}, {1, "#662506"}}
	YlOrRd = Gradient{{0, "#FFFFCC"}, {0.5, "#FD8D3C"}, {1, "#800026"}}
)

// Sequential single hue schemes. Browns and Yellows extend the published
// set; Browns follows the Office tan scheme.
var (
	Blues   = Gradient{{0, "#F7FBFF"}, {0.5, "#6BAED6"}, {1, "#08306B"}}
	Greens  = Gradient{{0, "#F7FCF5"}, {0.5, "#74C476"}, {1, "#00441B"}}
	Greys   = Gradient{{0, "#FFFFFF"}, {0.5, "#969696"}, {1, "#000000"}}
	Oranges = Gradient{{0, "#FFF5EB"}, {0.5, "#FD8D3C"}, {1, "#7F2704"}}
	Purples = Gradient{{0, "#FCFBFD"}, {0.5, "#9E9AC8"}, {1, "#3F007D"}}
	Reds    = Gradient{{0, "#FFF5F0"}, {0.5, "#FB6A4A"}, {1, "#67000D"}}
	Browns  = Gradient{{0, "#EEECE1"}, {0.5, "#948A54"}, {1, "#4A452A"}}
	Yellows = Gradient{{0, "#FFFFE1"}, {0.5, "#FFFF00"}, {1, "#C0AE00"}}
)

// Diverging schemes on a (-1, 0, +1) scale. PuOr photocopies well and is
// colorblind safe; BrBG through RdYlBu are print friendly and colorblind
// safe.
var (
	PuOr     = Gradient{{-1, "#B35806"}, {0, "#F7F7F7"}, {1, "#542788"}}
	BrBG     = Gradient{{-1, "#8C510A"}, {0, "#F5F5F5"}, {1, "#01665E"}}
	PiYG     = Gradient{{-1, "#C51B7D"}, {0, "#F7F7F7"}, {1, "#4D9221"}}
	PRGn     = Gradient{{-1, "#762A83"}, {0, "#F7F7F7"}, {1, "#1B7837"}}
	RdBu     = Gradient{{-1, "#B2182B"}, {0, "#F7F7F7"}, {1, "#2166AC"}}
	RdYlBu   = Gradient{{-1, "#D73027"}, {0, "#FFFFBF"}, {1, "#4575B4"}}
	RdGy     = Gradient{{-1, "#B2182B"}, {0, "#FFFFFF"}, {1, "#4D4D4D"}}
	RdYlGn   = Gradient{{-1, "#D73027"}, {0, "#FFFFBF"}, {1, "#1A9850"}}
	Spectral = Gradient{{-1, "#FC8D59"}, {0, "#FFFFBF"}, {1, "#91CF60"}}
)

// Gradients resolves catalog gradients by name, for CLI flags and config
// files. The -1..+1 ramps keep their historical RYG_1/RWG_1 spellings.
var Gradients = map[string]Gradient{
	"RYG":      RYG,
	"RYG_1":    RYG1,
	"RWG":      RWG,
	"RWG_1":    RWG1,
	"BuGn":     BuGn,
	"BuPu":     BuPu,
	"GnBu":     GnBu,
	"OrRd":     OrRd,
	"PuBu":     PuBu,
	"PuBuGn":   PuBuGn,
	"PuRd":     PuRd,
	"RdPu":     RdPu,
	"YlGn":     YlGn,
	"YlGnBu":   YlGnBu,
	"YlOrBr":   YlOrBr,
	"YlOrRd":   YlOrRd,
	"Blues":    Blues,
	"Greens":   Greens,
	"Greys":    Greys,
	"Oranges":  Oranges,
	"Purples":  Purples,
	"Reds":     Reds,
	"Browns":   Browns,
	"Yellows":  Yellows,
	"PuOr":     PuOr,
	"BrBG":     BrBG,
	"PiYG":     PiYG,
	"PRGn":     PRGn,
	"RdBu":     RdBu,
	"RdYlBu":   RdYlBu,
	"RdGy":     RdGy,
	"RdYlGn":   RdYlGn,
	"Spectral": Spectral,
}

// GradientNames returns the catalog names in sorted order.
func GradientNames() []string {
	out := make([]string, 0, len(Gradients))
	for name := range Gradients {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
