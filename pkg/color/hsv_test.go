package color

import (
	"errors"
	"math"
	"testing"
)

func TestToHSVA(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		h, s, v, a float64
	}{
		{"gray keeps value and alpha", "hsla(0, 0%, 50%, .5)", 0, 0, 0.5, 0.5},
		{"red", "red", 0, 1, 1, 1},
		{"lime", "#00ff00", 1.0 / 3, 1, 1, 1},
		{"blue", "blue", 2.0 / 3, 1, 1, 1},
		{"navy keeps hue at lower value", "navy", 2.0 / 3, 1, 128.0 / 255, 1},
		{"white", "#fff", 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v, a, err := ToHSVA(tt.input)
			if err != nil {
				t.Fatalf("ToHSVA(%q) failed: %v", tt.input, err)
			}
			for i, pair := range [][2]float64{{h, tt.h}, {s, tt.s}, {v, tt.v}, {a, tt.a}} {
				if math.Abs(pair[0]-pair[1]) > 1e-12 {
					t.Errorf("ToHSVA(%q) component %d = %v, want %v", tt.input, i, pair[0], pair[1])
				}
			}
		})
	}

	if _, _, _, _, err := ToHSVA("bogus"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ToHSVA on a bad literal: error = %v, want ErrInvalidColor", err)
	}
}

func TestHSVARoundTrip(t *testing.T) {
	// HSV→RGB→HSV is stable for colors away from the gray axis.
	for _, literal := range []string{"#ff0000", "#00ff00", "#0000ff", "#74C476", "#ffbb78"} {
		c := MustParse(literal)
		h, s, v, _ := c.HSVA()
		r, g, b := hsvToRGB(h, s, v)
		h2, s2, v2 := rgbToHSV(r, g, b)
		if math.Abs(h-h2) > 1e-9 || math.Abs(s-s2) > 1e-9 || math.Abs(v-v2) > 1e-9 {
			t.Errorf("%s: HSV round trip (%v,%v,%v) -> (%v,%v,%v)", literal, h, s, v, h2, s2, v2)
		}
	}
}

func TestBrighten(t *testing.T) {
	tests := []struct {
		name  string
		input string
		by    float64
		want  string
	}{
		{"clamps at full value", "red", 1, "#f00"},
		{"minus one blacks out", "red", -1, "#000"},
		{"black stays black", "black", 5, "#000"},
		{"halve lime", "lime", -0.5, "#007f00"},
		{"alpha is dropped", "rgba(255,0,0,.5)", 0, "#f00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Brighten(tt.input, tt.by)
			if err != nil {
				t.Fatalf("Brighten(%q, %v) failed: %v", tt.input, tt.by, err)
			}
			if got != tt.want {
				t.Errorf("Brighten(%q, %v) = %q, want %q", tt.input, tt.by, got, tt.want)
			}
		})
	}

	if _, err := Brighten("bogus", 0.5); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Brighten on a bad literal: error = %v, want ErrInvalidColor", err)
	}
}
