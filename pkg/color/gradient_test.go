package color

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestGradientAtBoundaries(t *testing.T) {
	// Below the first stop and above the last, the stop literal comes
	// back verbatim, casing included.
	tests := []struct {
		name string
		g    Gradient
		x    float64
		want string
	}{
		{"below range", RWG1, -2, "#ff0000"},
		{"at first stop", RWG1, -1, "#ff0000"},
		{"above range", RWG1, 2, "#00ff00"},
		{"at last stop", RWG1, 1, "#00ff00"},
		{"catalog casing preserved", Greens, 0, "#F7FCF5"},
		{"catalog casing preserved high", Greens, 1, "#00441B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.g.At(tt.x)
			if err != nil {
				t.Fatalf("At(%v) failed: %v", tt.x, err)
			}
			if got != tt.want {
				t.Errorf("At(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}
}

func TestGradientAtInterpolates(t *testing.T) {
	tests := []struct {
		name string
		g    Gradient
		x    float64
		want string
	}{
		{"red-white midpoint", RWG1, -0.5, "#ff7f7f"},
		{"red-yellow midpoint", RYG, 0.25, "#ff7f00"},
		{"greens quarter point", Greens, 0.25, "#b5e0b5"},
		{"interior stop reformats", RYG1, 0, "#ff0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.g.At(tt.x)
			if err != nil {
				t.Fatalf("At(%v) failed: %v", tt.x, err)
			}
			if got != tt.want {
				t.Errorf("At(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}
}

func TestGradientAtNaN(t *testing.T) {
	// NaN samples as 0, which on a -1..+1 ramp is the middle stop.
	got, err := RYG1.At(math.NaN())
	if err != nil {
		t.Fatalf("At(NaN) failed: %v", err)
	}
	if got != "#ff0" {
		t.Errorf("At(NaN) = %q, want %q", got, "#ff0")
	}
}

func TestGradientAtUnsortedInput(t *testing.T) {
	g := Gradient{{1, "#00ff00"}, {0, "#ff0000"}, {0.5, "#ffff00"}}
	got, err := g.At(0.25)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != "#ff7f00" {
		t.Errorf("At(0.25) = %q, want %q", got, "#ff7f00")
	}
	// Sampling must not reorder the caller's stops.
	if g[0].Pos != 1 || g[1].Pos != 0 || g[2].Pos != 0.5 {
		t.Errorf("At mutated the gradient: %v", g)
	}
}

func TestGradientAtDuplicatePositions(t *testing.T) {
	g := Gradient{{0, "#000000"}, {0.5, "#ff0000"}, {0.5, "#00ff00"}, {1, "#ffffff"}}

	tests := []struct {
		x    float64
		want string
	}{
		{0.25, "#7f0000"}, // black toward the shared position's first color
		{0.5, "#f00"},     // exactly on the pair: first in input order wins
		{0.75, "#7fff7f"}, // past the pair: second color is the lower anchor
	}
	for _, tt := range tests {
		got, err := g.At(tt.x)
		if err != nil {
			t.Fatalf("At(%v) failed: %v", tt.x, err)
		}
		if got != tt.want {
			t.Errorf("At(%v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestGradientAtSingleStop(t *testing.T) {
	g := Gradient{{0.5, "#AbCdEf"}}
	for _, x := range []float64{-1, 0.5, 3} {
		got, err := g.At(x)
		if err != nil {
			t.Fatalf("At(%v) failed: %v", x, err)
		}
		if got != "#AbCdEf" {
			t.Errorf("At(%v) = %q, want the lone stop verbatim", x, got)
		}
	}
}

func TestGradientAtEmpty(t *testing.T) {
	var g Gradient
	if _, err := g.At(0.5); !errors.Is(err, ErrEmptyGradient) {
		t.Errorf("At on empty gradient: error = %v, want ErrEmptyGradient", err)
	}
	if _, err := g.Map([]float64{0.5}); !errors.Is(err, ErrEmptyGradient) {
		t.Errorf("Map on empty gradient: error = %v, want ErrEmptyGradient", err)
	}
}

func TestGradientAtBadStop(t *testing.T) {
	g := Gradient{{0, "bogus"}, {1, "#fff"}}

	// Boundary samples return the literal without parsing it.
	got, err := g.At(-1)
	if err != nil || got != "bogus" {
		t.Errorf("At(-1) = %q, %v; want the literal back untouched", got, err)
	}

	// Interior samples need both anchors parsed.
	if _, err := g.At(0.5); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("At(0.5) error = %v, want ErrInvalidColor", err)
	}
}

func TestGradientMap(t *testing.T) {
	got, err := RYG.Map([]float64{-1, 0, 0.25, 1, 2})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	want := []string{"#ff0000", "#ff0000", "#ff7f00", "#00ff00", "#00ff00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map = %v, want %v", got, want)
	}
}

func TestGradientValidate(t *testing.T) {
	if err := Greens.Validate(); err != nil {
		t.Errorf("Greens.Validate() = %v", err)
	}
	if err := (Gradient{}).Validate(); !errors.Is(err, ErrEmptyGradient) {
		t.Errorf("empty Validate() = %v, want ErrEmptyGradient", err)
	}
	if err := (Gradient{{0, "nope"}}).Validate(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("bad stop Validate() = %v, want ErrInvalidColor", err)
	}
}

func TestGradientCatalog(t *testing.T) {
	if len(Gradients) != 33 {
		t.Fatalf("catalog has %d gradients, want 33", len(Gradients))
	}
	for name, g := range Gradients {
		if err := g.Validate(); err != nil {
			t.Errorf("catalog gradient %s: %v", name, err)
		}
	}

	// Historical spellings resolve the -1..+1 variants.
	if _, ok := Gradients["RYG_1"]; !ok {
		t.Error("catalog is missing RYG_1")
	}
	if _, ok := Gradients["RWG_1"]; !ok {
		t.Error("catalog is missing RWG_1")
	}

	names := GradientNames()
	if len(names) != len(Gradients) {
		t.Fatalf("GradientNames returned %d names, want %d", len(names), len(Gradients))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("GradientNames not sorted: %q before %q", names[i-1], names[i])
		}
	}

	// Diverging ramps run -1..+1, sequential ones 0..1.
	for _, g := range []Gradient{PuOr, BrBG, PiYG, PRGn, RdBu, RdYlBu, RdGy, RdYlGn, Spectral} {
		if g[0].Pos != -1 {
			t.Errorf("diverging gradient starts at %v, want -1", g[0].Pos)
		}
	}
}
