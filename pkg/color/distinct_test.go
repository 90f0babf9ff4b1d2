package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinct(t *testing.T) {
	assert.Empty(t, Distinct(0))
	assert.Empty(t, Distinct(-3))

	assert.Equal(t, []string{"#1f77b4"}, Distinct(1))
	assert.Equal(t, []string{"#1f77b4", "#ff7f0e", "#2ca02c"}, Distinct(3))

	// Up to ten, every pick comes from an even table index.
	ten := Distinct(10)
	require.Len(t, ten, 10)
	for i, c := range ten {
		assert.Equal(t, distincts[2*i], c)
	}

	// Past ten, the table prefix is returned verbatim.
	eleven := Distinct(11)
	require.Len(t, eleven, 11)
	assert.Equal(t, distincts[:11], eleven)
	assert.Equal(t, "#aec7e8", eleven[1], "pale companion enters at position 1")

	assert.Len(t, Distinct(20), 20)
	assert.Len(t, Distinct(25), 20, "capped at the table size")
}

func TestDistinctReturnsCopies(t *testing.T) {
	first := Distinct(5)
	first[0] = "changed"
	assert.Equal(t, "#1f77b4", Distinct(5)[0])

	full := Distinct(20)
	full[19] = "changed"
	assert.Equal(t, "#9edae5", Distinct(20)[19])
}
