package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteSlotCommand(t *testing.T) {
	out, err := executeCommand(t, "palette", "slot", "Office", "accent_1")
	require.NoError(t, err)
	assert.Equal(t, "#4f81bd\n", out)

	out, err = executeCommand(t, "palette", "slot", "Office", "dark_2")
	require.NoError(t, err)
	assert.Equal(t, "#1f497d\n", out)
}

func TestPaletteSlotCommandErrors(t *testing.T) {
	_, err := executeCommand(t, "palette", "slot", "NoSuchTheme", "accent_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")

	_, err = executeCommand(t, "palette", "slot", "Office", "accent_9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent_9")
	assert.Contains(t, err.Error(), "accent_1", "error should list the valid slots")
}

func TestPaletteShowCommand(t *testing.T) {
	out, err := executeCommand(t, "palette", "show", "Office")
	require.NoError(t, err)
	assert.Contains(t, out, "Office (10 colors)")
	assert.Contains(t, out, "accent_1")
	assert.Contains(t, out, "#4f81bd")

	out, err = executeCommand(t, "palette", "show", "Adjacency")
	require.NoError(t, err)
	assert.Contains(t, out, "Adjacency (12 colors)")
}

func TestPaletteListCommand(t *testing.T) {
	out, err := executeCommand(t, "palette", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Office")
	assert.Contains(t, out, "Waveform")
	assert.Contains(t, out, "12 colors")
}
