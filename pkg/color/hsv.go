package color

import "math"

// ToHSVA parses a literal and converts it to hue, saturation, value and
// alpha, each in [0,1]. Alpha passes through unchanged.
func ToHSVA(literal string) (h, s, v, a float64, err error) {
	c, err := Parse(literal)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	h, s, v = rgbToHSV(c.R, c.G, c.B)
	return h, s, v, c.A, nil
}

// HSVA converts c to hue, saturation, value and alpha, each in [0,1].
func (c Color) HSVA() (h, s, v, a float64) {
	h, s, v = rgbToHSV(c.R, c.G, c.B)
	return h, s, v, c.A
}

// Brighten scales a color's HSV value by (1+by) and reformats it. A
// negative by darkens. The result is always opaque: input alpha is
// discarded, which matches how the renderers have always used it.
func Brighten(literal string, by float64) (string, error) {
	c, err := Parse(literal)
	if err != nil {
		return "", err
	}
	h, s, v := rgbToHSV(c.R, c.G, c.B)
	v = clamp01(v * (1 + by))
	r, g, b := hsvToRGB(h, s, v)
	return Format(r, g, b, 1), nil
}

// rgbToHSV converts normalized RGB to HSV. Gray (max == min) maps to zero
// hue and saturation.
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	v = maxc
	if minc == maxc {
		return 0, 0, v
	}
	s = (maxc - minc) / maxc
	rc := (maxc - r) / (maxc - minc)
	gc := (maxc - g) / (maxc - minc)
	bc := (maxc - b) / (maxc - minc)
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return mod1(h / 6), s, v
}

// hsvToRGB converts HSV to RGB. Hue wraps modulo 1; saturation and value
// outside [0,1] are passed through, so callers clamp the result.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// mod1 is a floored modulo into [0,1).
func mod1(v float64) float64 {
	m := math.Mod(v, 1)
	if m < 0 {
		m++
	}
	return m
}
