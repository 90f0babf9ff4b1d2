package raster

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"rainmap/pkg/color"
)

// testRamp keeps every channel at 0 or full so expected pixel bytes are
// exact regardless of float rounding.
var testRamp = color.Gradient{
	{Pos: 0, Color: "#000"},
	{Pos: 1, Color: "#ff0"},
}

func TestNewRendererValidates(t *testing.T) {
	tests := []struct {
		name  string
		ramp  color.Gradient
		scale float64
	}{
		{"empty ramp", color.Gradient{}, 5.7},
		{"unparseable stop", color.Gradient{{Pos: 0, Color: "#zzz"}}, 5.7},
		{"zero scale", testRamp, 0},
		{"negative scale", testRamp, -1},
		{"NaN scale", testRamp, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRenderer(tt.ramp, tt.scale); err == nil {
				t.Errorf("NewRenderer(%v, %v) expected error, got nil", tt.ramp, tt.scale)
			}
		})
	}

	if _, err := NewRenderer(testRamp, 5.7); err != nil {
		t.Fatalf("NewRenderer returned unexpected error: %v", err)
	}
}

func TestCellColor(t *testing.T) {
	r, err := NewRenderer(testRamp, 2)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	tests := []struct {
		name string
		cell float64
		want [4]uint8
	}{
		{"negative is transparent", -0.5, [4]uint8{0, 0, 0, 0}},
		{"missing sentinel is transparent", -999, [4]uint8{0, 0, 0, 0}},
		{"zero sits at ramp start", 0, [4]uint8{0, 0, 0, 255}},
		{"scale value tops the ramp", 2, [4]uint8{255, 255, 0, 255}},
		{"values past the scale saturate", 100, [4]uint8{255, 255, 0, 255}},
		{"NaN renders at ramp start", math.NaN(), [4]uint8{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.CellColor(tt.cell)
			if err != nil {
				t.Fatalf("CellColor(%v) returned error: %v", tt.cell, err)
			}
			if got != tt.want {
				t.Errorf("CellColor(%v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestDayImage(t *testing.T) {
	r, err := NewRenderer(testRamp, 2)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	rows := [][]float64{
		{-999, 0, 2},
		{4, math.NaN(), -0.5},
	}
	img, err := r.DayImage(rows)
	if err != nil {
		t.Fatalf("DayImage: %v", err)
	}

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("DayImage bounds = %v, want 3x2", img.Bounds())
	}

	want := []uint8{
		0, 0, 0, 0, 0, 0, 0, 255, 255, 255, 0, 255,
		255, 255, 0, 255, 0, 0, 0, 255, 0, 0, 0, 0,
	}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("DayImage pixels = %v, want %v", img.Pix, want)
	}
}

func TestDayImageEmpty(t *testing.T) {
	r, err := NewRenderer(testRamp, 2)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := r.DayImage(nil); err == nil {
		t.Error("DayImage(nil) expected error, got nil")
	}
}

func TestDayDate(t *testing.T) {
	tests := []struct {
		year int
		day  int
		want string
	}{
		{1971, 1, "1971-01-01"},
		{1971, 60, "1971-03-01"},
		{1988, 60, "1988-02-29"},
		{2005, 365, "2005-12-31"},
		{1971, 366, "1972-01-01"}, // non-leap year rolls over
	}

	for _, tt := range tests {
		if got := DayDate(tt.year, tt.day).Format("2006-01-02"); got != tt.want {
			t.Errorf("DayDate(%d, %d) = %s, want %s", tt.year, tt.day, got, tt.want)
		}
	}
}

func TestDayFilename(t *testing.T) {
	got := DayFilename("out", 1971, 32)
	want := filepath.Join("out", "1971-02-01.png")
	if got != want {
		t.Errorf("DayFilename = %q, want %q", got, want)
	}
}
