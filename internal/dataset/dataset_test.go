package dataset

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Year\tDay\tDate\t70.25\t70.75\t71.25\n"

func TestNewHeader(t *testing.T) {
	r, err := New(strings.NewReader(header))
	require.NoError(t, err)
	assert.Equal(t, []string{"70.25", "70.75", "71.25"}, r.Fields())
	assert.Equal(t, 3, r.Width())
}

func TestNewHeaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no Year column", "Yr\tDay\tDate\tv1\n"},
		{"no Day column", "Year\tDoY\tDate\tv1\n"},
		{"no data columns", "Year\tDay\tDate\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestNextGroupsConsecutiveRows(t *testing.T) {
	input := header +
		"1971\t1\t1971-01-01\t0\t0.5\t1\n" +
		"1971\t1\t1971-01-01\t2\t2.5\t3\n" +
		"1971\t2\t1971-01-02\t4\t4.5\t5\n"

	r, err := New(strings.NewReader(input))
	require.NoError(t, err)

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 1971, first.Year)
	assert.Equal(t, 1, first.Day)
	require.Len(t, first.Rows, 2)
	assert.Equal(t, []float64{0, 0.5, 1}, first.Rows[0])
	assert.Equal(t, []float64{2, 2.5, 3}, first.Rows[1])

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, second.Day)
	require.Len(t, second.Rows, 1)
	assert.Equal(t, []float64{4, 4.5, 5}, second.Rows[0])

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	// Subsequent calls stay at EOF.
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestNextCellValues(t *testing.T) {
	input := header +
		"1971\t1\tx\t1.25\t\tnodata\n" + // blank and non-numeric cells
		"1971\t1\tx\t 2.5 \n" + // short row, padded value
		"1971\t1\tx\t-1\tnan\t3\textra\n" // extra column ignored

	r, err := New(strings.NewReader(input))
	require.NoError(t, err)

	g, err := r.Next()
	require.NoError(t, err)
	require.Len(t, g.Rows, 3)

	assert.Equal(t, []float64{1.25, Missing, Missing}, g.Rows[0])
	assert.Equal(t, []float64{2.5, Missing, Missing}, g.Rows[1])

	assert.Equal(t, float64(-1), g.Rows[2][0])
	assert.True(t, math.IsNaN(g.Rows[2][1]), "nan cell should parse as NaN, not Missing")
	assert.Equal(t, float64(3), g.Rows[2][2])
	assert.Len(t, g.Rows[2], 3)
}

func TestNextRegroupsWhenKeyReturns(t *testing.T) {
	// Grouping is positional: a key that reappears after a different key
	// starts a new grid rather than merging with the earlier one.
	input := header +
		"1971\t1\tx\t1\t1\t1\n" +
		"1971\t2\tx\t2\t2\t2\n" +
		"1971\t1\tx\t3\t3\t3\n"

	r, err := New(strings.NewReader(input))
	require.NoError(t, err)

	grids, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, grids, 3)
	assert.Equal(t, 1, grids[0].Day)
	assert.Equal(t, 2, grids[1].Day)
	assert.Equal(t, 1, grids[2].Day)
	assert.Equal(t, []float64{3, 3, 3}, grids[2].Rows[0])
}

func TestNextKeyColumnsByName(t *testing.T) {
	// Year and Day are located by header name, not position.
	input := "Date\tDay\tYear\tv1\n" +
		"1988-02-29\t60\t1988\t7.5\n"

	r, err := New(strings.NewReader(input))
	require.NoError(t, err)
	g, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 1988, g.Year)
	assert.Equal(t, 60, g.Day)
	assert.Equal(t, []float64{7.5}, g.Rows[0])
}

func TestNextBadKey(t *testing.T) {
	input := header + "MCMLXXI\t1\tx\t1\t2\t3\n"

	r, err := New(strings.NewReader(input))
	require.NoError(t, err)
	_, err = r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MCMLXXI")
}

func TestReadAll(t *testing.T) {
	input := header +
		"1971\t1\tx\t1\t2\t3\n" +
		"1971\t2\tx\t4\t5\t6\n" +
		"1972\t1\tx\t7\t8\t9\n"

	r, err := New(strings.NewReader(input))
	require.NoError(t, err)
	grids, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, grids, 3)
	assert.Equal(t, 1972, grids[2].Year)
}
