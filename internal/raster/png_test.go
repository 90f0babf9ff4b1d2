package raster

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG(t *testing.T) {
	r, err := NewRenderer(testRamp, 1)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, err := r.DayImage([][]float64{{-1, 1}})
	if err != nil {
		t.Fatalf("DayImage: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frames", "1971-01-01.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written file: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}

	if _, _, _, a := decoded.At(0, 0).RGBA(); a != 0 {
		t.Errorf("pixel (0,0) alpha = %d, want transparent", a)
	}
	cr, cg, cb, ca := decoded.At(1, 0).RGBA()
	if cr != 0xffff || cg != 0xffff || cb != 0 || ca != 0xffff {
		t.Errorf("pixel (1,0) = (%d,%d,%d,%d), want opaque yellow", cr, cg, cb, ca)
	}
}

func TestWritePNGBadDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("writing blocker: %v", err)
	}

	r, _ := NewRenderer(testRamp, 1)
	img, _ := r.DayImage([][]float64{{1}})
	if err := WritePNG(filepath.Join(blocker, "a.png"), img); err == nil {
		t.Error("WritePNG under a file expected error, got nil")
	}
}
