package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a literal matches no supported grammar
// or a named color is unknown. Parse errors wrap it, so callers can test
// with errors.Is.
var ErrInvalidColor = errors.New("invalid color")

// Color is a normalized RGBA color. Every channel is in [0,1]; values
// produced by Parse are already clamped. Color is a value type and is
// never mutated by any operation in this package.
type Color struct {
	R, G, B, A float64
}

// names holds the 16 CSS basic colors. Lookup is case-sensitive: "Red" is
// not a color, matching the grammar the gradient tables were written for.
var names = map[string][3]float64{
	"black":   {0, 0, 0},
	"silver":  {192, 192, 192},
	"gray":    {128, 128, 128},
	"white":   {255, 255, 255},
	"maroon":  {128, 0, 0},
	"red":     {255, 0, 0},
	"purple":  {128, 0, 128},
	"fuchsia": {255, 0, 255},
	"green":   {0, 128, 0},
	"lime":    {0, 255, 0},
	"olive":   {128, 128, 0},
	"yellow":  {255, 255, 0},
	"navy":    {0, 0, 128},
	"blue":    {0, 0, 255},
	"teal":    {0, 128, 128},
	"aqua":    {0, 255, 255},
}

// tokenRe extracts numeric tokens from functional notation. The scan is
// deliberately permissive: digits, dots and percent signs only, so a minus
// sign or exponent acts as a separator rather than part of a number.
var tokenRe = regexp.MustCompile(`[0-9.%]+`)

// Parse converts a color literal to a normalized Color.
//
// Grammars, tried by prefix:
//
//	#rgb        each hex digit scaled by 1/15
//	#rrggbb     each hex byte scaled by 1/255
//	rgb(...)    tokens: % means value/100, otherwise value/255;
//	rgba(...)   a 4th token is alpha: % means value/100, otherwise a
//	            literal 0-1 float
//	hsl(...)    first token is hue: % means value/100, otherwise
//	hsla(...)   (value/360) mod 1; the 2nd and 3rd tokens are HSV
//	            saturation and value (not HSL lightness); converted to
//	            RGB before clamping
//	name        one of the 16 CSS basic colors, case-sensitive
//
// A literal must yield exactly 3 or 4 components; with 3, alpha defaults
// to 1. Channels are clamped to [0,1] after extraction. Anything else
// fails with an error wrapping ErrInvalidColor.
func Parse(literal string) (Color, error) {
	var parts []float64

	switch {
	case strings.HasPrefix(literal, "#"):
		digits := literal[1:]
		switch len(digits) {
		case 6:
			for i := 0; i < 6; i += 2 {
				v, err := strconv.ParseUint(digits[i:i+2], 16, 16)
				if err != nil {
					return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, literal)
				}
				parts = append(parts, float64(v)/255)
			}
		case 3:
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseUint(digits[i:i+1], 16, 8)
				if err != nil {
					return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, literal)
				}
				parts = append(parts, float64(v)/15)
			}
		}

	case strings.HasPrefix(literal, "rgb(") || strings.HasPrefix(literal, "rgba("):
		tokens := tokenRe.FindAllString(argBody(literal), -1)
		for i, tok := range tokens {
			v, pct, err := parseToken(tok)
			if err != nil {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, literal)
			}
			switch {
			case pct:
				parts = append(parts, v/100)
			case i < 3:
				parts = append(parts, v/255)
			default:
				parts = append(parts, v)
			}
		}

	case strings.HasPrefix(literal, "hsl(") || strings.HasPrefix(literal, "hsla("):
		tokens := tokenRe.FindAllString(argBody(literal), -1)
		for i, tok := range tokens {
			v, pct, err := parseToken(tok)
			if err != nil {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, literal)
			}
			switch {
			case pct:
				parts = append(parts, v/100)
			case i == 0:
				parts = append(parts, mod1(v/360))
			default:
				parts = append(parts, v)
			}
		}
		if len(parts) < 3 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, literal)
		}
		// Conversion happens before clamping so out-of-range saturation
		// or value flows through HSV math the same way the tables expect.
		parts[0], parts[1], parts[2] = hsvToRGB(parts[0], parts[1], parts[2])

	default:
		if rgb, ok := names[literal]; ok {
			parts = []float64{rgb[0] / 255, rgb[1] / 255, rgb[2] / 255}
		}
	}

	if len(parts) == 3 {
		parts = append(parts, 1)
	}
	if len(parts) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, literal)
	}
	return Color{
		R: clamp01(parts[0]),
		G: clamp01(parts[1]),
		B: clamp01(parts[2]),
		A: clamp01(parts[3]),
	}, nil
}

// MustParse is Parse for known-good literals, such as the static catalog
// tables and tests. It panics on error.
func MustParse(literal string) Color {
	c, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders the clamped components as a canonical literal. An opaque
// color (a >= 1 after clamping) becomes 6-digit lowercase hex, collapsed
// to #rgb shorthand when every byte is a doubled digit. A translucent
// color becomes rgba(R,G,B,A) with 0-255 integer channels and a
// two-decimal alpha. Channel bytes truncate (int(255*c)), they do not
// round; round-tripping through Parse recovers each channel within 1/255.
func Format(r, g, b, a float64) string {
	r, g, b, a = clamp01(r), clamp01(g), clamp01(b), clamp01(a)
	if a >= 1 {
		s := fmt.Sprintf("#%02x%02x%02x", int(255*r), int(255*g), int(255*b))
		if s[1] == s[2] && s[3] == s[4] && s[5] == s[6] {
			return string([]byte{'#', s[1], s[3], s[5]})
		}
		return s
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", int(255*r), int(255*g), int(255*b), a)
}

// String formats c via Format.
func (c Color) String() string {
	return Format(c.R, c.G, c.B, c.A)
}

// Contrast returns "#000" for light backgrounds and "#fff" for dark ones.
// The luminosity estimate is 0.21 R + 0.71 G + 0.07 B on the parsed color;
// exactly 0.5 counts as dark.
func Contrast(literal string) (string, error) {
	c, err := Parse(literal)
	if err != nil {
		return "", err
	}
	if 0.21*c.R+0.71*c.G+0.07*c.B > 0.5 {
		return "#000", nil
	}
	return "#fff", nil
}

// argBody returns the text between the first parenthesis pair, the region
// the token scan runs over.
func argBody(literal string) string {
	body := literal[strings.Index(literal, "(")+1:]
	if j := strings.Index(body, "("); j >= 0 {
		body = body[:j]
	}
	return body
}

// parseToken converts one scanned token, reporting whether it carried a
// percent suffix.
func parseToken(tok string) (float64, bool, error) {
	pct := strings.HasSuffix(tok, "%")
	if pct {
		tok = strings.TrimSuffix(tok, "%")
	}
	v, err := strconv.ParseFloat(tok, 64)
	return v, pct, err
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
