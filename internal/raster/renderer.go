// Package raster turns rainfall grids into images. Each data cell becomes
// one pixel: negative cells (missing data) are fully transparent, and
// everything else is looked up on a color ramp.
package raster

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"rainmap/pkg/color"
)

// Renderer maps data cells onto ramp colors.
type Renderer struct {
	ramp  color.Gradient
	scale float64
}

// NewRenderer builds a renderer. scale is the cell value that lands on the
// top of the ramp; larger cells saturate there.
func NewRenderer(ramp color.Gradient, scale float64) (*Renderer, error) {
	if err := ramp.Validate(); err != nil {
		return nil, fmt.Errorf("bad ramp: %w", err)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("scale must be positive, got %v", scale)
	}
	return &Renderer{ramp: ramp, scale: scale}, nil
}

// CellColor maps one cell value to a non-premultiplied RGBA pixel. Cells
// below zero, including the missing-data sentinel, come back transparent
// black.
func (r *Renderer) CellColor(cell float64) ([4]uint8, error) {
	if cell < 0 {
		return [4]uint8{}, nil
	}
	literal, err := r.ramp.At(cell / r.scale)
	if err != nil {
		return [4]uint8{}, err
	}
	c, err := color.Parse(literal)
	if err != nil {
		return [4]uint8{}, fmt.Errorf("ramp produced %q: %w", literal, err)
	}
	return [4]uint8{
		uint8(255 * c.R),
		uint8(255 * c.G),
		uint8(255 * c.B),
		uint8(255 * c.A),
	}, nil
}

// DayImage renders one day's grid, one pixel per cell.
func (r *Renderer) DayImage(rows [][]float64) (*image.NRGBA, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty grid")
	}
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	if err := r.drawRows(img, 0, 0, rows); err != nil {
		return nil, err
	}
	return img, nil
}

func (r *Renderer) drawRows(img *image.NRGBA, x0, y0 int, rows [][]float64) error {
	for y, row := range rows {
		for x, cell := range row {
			px, err := r.CellColor(cell)
			if err != nil {
				return err
			}
			off := img.PixOffset(x0+x, y0+y)
			img.Pix[off+0] = px[0]
			img.Pix[off+1] = px[1]
			img.Pix[off+2] = px[2]
			img.Pix[off+3] = px[3]
		}
	}
	return nil
}

// DayDate resolves a 1-based day of year to a calendar date. Day numbers
// past the end of the year roll over, matching time.Date normalization.
func DayDate(year, day int) time.Time {
	return time.Date(year, time.January, day, 0, 0, 0, 0, time.UTC)
}

// DayFilename is the output path for one day's frame, named by its date.
func DayFilename(dir string, year, day int) string {
	return filepath.Join(dir, DayDate(year, day).Format("2006-01-02")+".png")
}
