// Package dataset reads tab-separated rainfall tables. Each input row is
// one latitude scanline; consecutive rows sharing a (Year, Day) key form
// the grid for that day.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Missing marks a cell whose value was absent or could not be parsed.
// Negative cells render as fully transparent, so missing data disappears
// from the output instead of poisoning it.
const Missing = -999

// metaColumns is the number of leading key columns before the data grid.
const metaColumns = 3

// Grid is one day of data.
type Grid struct {
	Year int
	Day  int         // day of year, 1-based
	Rows [][]float64 // Rows[y][x], one slice per scanline, all Width() long
}

// Reader decodes a rainfall table row group by row group.
type Reader struct {
	cr      *csv.Reader
	fields  []string
	yearIdx int
	dayIdx  int
	peek    []string
}

// New reads the header of a tab-separated rainfall table. The header must
// contain Year and Day columns; everything from the fourth column on is
// treated as grid data.
func New(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	yearIdx := slices.Index(header, "Year")
	if yearIdx < 0 {
		return nil, errors.New("input has no Year column")
	}
	dayIdx := slices.Index(header, "Day")
	if dayIdx < 0 {
		return nil, errors.New("input has no Day column")
	}
	if len(header) <= metaColumns {
		return nil, errors.New("input has no data columns")
	}

	return &Reader{
		cr:      cr,
		fields:  header[metaColumns:],
		yearIdx: yearIdx,
		dayIdx:  dayIdx,
	}, nil
}

// Fields returns the names of the data columns.
func (r *Reader) Fields() []string {
	return r.fields
}

// Width returns the number of data columns, which is the pixel width of
// every rendered day.
func (r *Reader) Width() int {
	return len(r.fields)
}

// Next returns the next run of rows sharing a (Year, Day) key. It returns
// io.EOF when the input is exhausted. Grouping is over consecutive rows
// only; if a key reappears later in the file it starts a fresh grid.
func (r *Reader) Next() (*Grid, error) {
	row, err := r.readRow()
	if err != nil {
		return nil, err
	}

	yearStr, dayStr := r.key(row)
	rows := [][]float64{r.dataRow(row)}

	for {
		next, err := r.readRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		y, d := r.key(next)
		if y != yearStr || d != dayStr {
			r.peek = next
			break
		}
		rows = append(rows, r.dataRow(next))
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return nil, fmt.Errorf("bad Year value %q: %w", yearStr, err)
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil {
		return nil, fmt.Errorf("bad Day value %q: %w", dayStr, err)
	}

	return &Grid{Year: year, Day: day, Rows: rows}, nil
}

func (r *Reader) readRow() ([]string, error) {
	if r.peek != nil {
		row := r.peek
		r.peek = nil
		return row, nil
	}
	return r.cr.Read()
}

func (r *Reader) key(row []string) (year, day string) {
	if r.yearIdx < len(row) {
		year = row[r.yearIdx]
	}
	if r.dayIdx < len(row) {
		day = row[r.dayIdx]
	}
	return year, day
}

// dataRow converts the data columns of one record. Short rows and
// unparseable cells become Missing, so ragged input still renders.
func (r *Reader) dataRow(row []string) []float64 {
	cells := make([]float64, len(r.fields))
	for i := range r.fields {
		idx := metaColumns + i
		if idx >= len(row) {
			cells[i] = Missing
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			cells[i] = Missing
			continue
		}
		cells[i] = v
	}
	return cells
}

// ReadAll drains the reader and returns every grid in input order.
func (r *Reader) ReadAll() ([]*Grid, error) {
	var grids []*Grid
	for {
		g, err := r.Next()
		if err == io.EOF {
			return grids, nil
		}
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
}
