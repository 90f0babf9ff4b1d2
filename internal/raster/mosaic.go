package raster

import (
	"fmt"
	"image"

	"rainmap/internal/dataset"
)

// daysPerYear is the horizontal slot count per year band. Using 366 keeps
// leap and non-leap years aligned on the same day-of-year columns.
const daysPerYear = 366

// Mosaic composites every day of a multi-year dataset into one image.
// Days run left to right within a year band, years stack top to bottom.
type Mosaic struct {
	renderer  *Renderer
	img       *image.NRGBA
	dayWidth  int
	startYear int
	endYear   int
	bandRows  int
}

// NewMosaic allocates the composite canvas. dayWidth is the column count
// of each day's grid, bandRows the pixel rows reserved per year.
func NewMosaic(r *Renderer, dayWidth, startYear, endYear, bandRows int) (*Mosaic, error) {
	if dayWidth <= 0 {
		return nil, fmt.Errorf("day width must be positive, got %d", dayWidth)
	}
	if endYear < startYear {
		return nil, fmt.Errorf("year range %d..%d is empty", startYear, endYear)
	}
	if bandRows <= 0 {
		return nil, fmt.Errorf("band rows must be positive, got %d", bandRows)
	}
	years := endYear - startYear + 1
	return &Mosaic{
		renderer:  r,
		img:       image.NewNRGBA(image.Rect(0, 0, dayWidth*daysPerYear, years*bandRows)),
		dayWidth:  dayWidth,
		startYear: startYear,
		endYear:   endYear,
		bandRows:  bandRows,
	}, nil
}

// Place renders one day's grid into its slot. Grids outside the year range
// or the canvas are rejected rather than silently dropped.
func (m *Mosaic) Place(g *dataset.Grid) error {
	if len(g.Rows) == 0 {
		return nil
	}
	if g.Day < 1 || g.Day > daysPerYear {
		return fmt.Errorf("day %d outside 1..%d", g.Day, daysPerYear)
	}
	if g.Year < m.startYear || g.Year > m.endYear {
		return fmt.Errorf("year %d outside %d..%d", g.Year, m.startYear, m.endYear)
	}
	if len(g.Rows[0]) != m.dayWidth {
		return fmt.Errorf("grid for %d day %d is %d columns wide, want %d",
			g.Year, g.Day, len(g.Rows[0]), m.dayWidth)
	}

	x0 := m.dayWidth * (g.Day - 1)
	y0 := m.bandRows * (g.Year - m.startYear)
	if y0+len(g.Rows) > m.img.Rect.Dy() {
		return fmt.Errorf("grid for %d day %d is %d rows tall, exceeding the canvas",
			g.Year, g.Day, len(g.Rows))
	}
	return m.renderer.drawRows(m.img, x0, y0, g.Rows)
}

// Image returns the composite. Unplaced regions stay transparent black.
func (m *Mosaic) Image() *image.NRGBA {
	return m.img
}
