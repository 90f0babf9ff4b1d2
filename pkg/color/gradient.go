package color

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrEmptyGradient is returned when a gradient with no stops is sampled.
var ErrEmptyGradient = errors.New("gradient has no stops")

// Stop anchors one point of a piecewise-linear color ramp.
type Stop struct {
	Pos   float64
	Color string
}

// Gradient is an ordered list of stops. Stops may be given in any order
// and may share positions; At sorts a copy before sampling, so the
// gradient itself is never mutated.
type Gradient []Stop

// At samples the gradient at x and returns a color literal.
//
// NaN is treated as 0. At or beyond either end the endpoint stop's
// literal is returned verbatim, byte for byte, so catalog hex casing
// survives. In between, the first stop at or past x is blended with its
// predecessor: p = (x-prev)/(cur-prev), channels prev*(1-p) + cur*p.
// Only R, G and B blend; the result is formatted opaque.
//
// Stops sharing a position cannot divide by zero: the scan stops at the
// first position >= x and the endpoint checks guarantee prev.Pos < x, so
// the denominator stays positive. When x lies exactly on a shared
// position, the duplicate earliest in input order is the one blended
// toward (stable sort), and p = 1 makes it the result.
func (g Gradient) At(x float64) (string, error) {
	if len(g) == 0 {
		return "", ErrEmptyGradient
	}
	if math.IsNaN(x) {
		x = 0
	}

	stops := make(Gradient, len(g))
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

	a, err := Parse(prev.Color)
	if err != nil {
		return "", fmt.Errorf("gradient stop %v: %w", prev.Pos, err)
	}
	b, err := Parse(cur.Color)
	if err != nil {
		return "", fmt.Errorf("gradient stop %v: %w", cur.Pos, err)
	}

	p := (x - prev.Pos) / (cur.Pos - prev.Pos)
	q := 1 - p
	return Format(a.R*q+b.R*p, a.G*q+b.G*p, a.B*q+b.B*p, 1), nil
}

// Map samples the gradient at each value, returning one literal per input.
func (g Gradient) Map(xs []float64) ([]string, error) {
	out := make([]string, len(xs))
	for i, x := range xs {
		s, err := g.At(x)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Validate reports whether the gradient can be sampled: it needs at least
// one stop and every stop literal must parse. Renderers call this once up
// front instead of checking errors per pixel.
func (g Gradient) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGradient
	}
	for _, s := range g {
		if _, err := Parse(s.Color); err != nil {
			return fmt.Errorf("gradient stop %v: %w", s.Pos, err)
		}
	}
	return nil
}
