package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rainmap/internal/tui/design"
)

// NewProgram builds the catalog browser wired for a real terminal:
// design system initialized for the detected background, alt screen on,
// system clipboard for copies.
func NewProgram() *tea.Program {
	design.Initialize(lipgloss.HasDarkBackground())
	return tea.NewProgram(newModel(), tea.WithAltScreen())
}
