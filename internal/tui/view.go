package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rainmap/internal/tui/design"
)

// nameColumnWidth aligns catalog names so the kind column lines up.
const nameColumnWidth = 14

// labelColumnWidth aligns swatch labels in the detail pane.
const labelColumnWidth = 10

// catalogDelegate renders one compact row per entry.
type catalogDelegate struct{}

func newCatalogDelegate() catalogDelegate { return catalogDelegate{} }

func (d catalogDelegate) Height() int                             { return 1 }
func (d catalogDelegate) Spacing() int                            { return 0 }
func (d catalogDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d catalogDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(catalogItem)
	if !ok {
		return
	}

	name := runewidth.FillRight(it.name, nameColumnWidth)
	chip := "  "
	if len(it.swatches) > 0 {
		chip = design.Block(it.swatches[0].Hex, 2)
	}
	kind := design.MutedStyle.Render(it.kind)
	if index == m.Index() {
		fmt.Fprint(w, design.SelectedRowStyle.Render("▶ "+name)+chip+" "+kind)
		return
	}
	fmt.Fprint(w, design.TextStyle.Render("  "+name)+chip+" "+kind)
}

func (m model) View() string {
	if m.width == 0 {
		return "loading catalog..."
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.detailView())
	help := design.HelpStyle.Render("↑/↓ select • ←/→ swatch • y copy • / filter • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.statusView(), help)
}

// statusView renders the outcome of the last copy, if any.
func (m model) statusView() string {
	switch {
	case m.status == "":
		return design.StatusBarStyle.Render("")
	case m.statusErr:
		return design.StatusBarErrorStyle.Render(m.status)
	default:
		return design.StatusBarSuccessStyle.Render(m.status)
	}
}

// detailView renders the selected entry's swatches, one labeled color
// per row, with the swatch cursor marked.
func (m model) detailView() string {
	it, ok := m.selectedItem()
	if !ok {
		return design.DetailPaneStyle.Render(design.MutedStyle.Render("nothing selected"))
	}

	rows := make([]string, 0, len(it.swatches)+3)
	rows = append(rows,
		design.TitleStyle.Render(it.name),
		design.SubtitleStyle.Render(it.desc),
		"",
	)
	for i, sw := range it.swatches {
		label := runewidth.FillRight(sw.Label, labelColumnWidth)
		block := design.Swatch(sw.Hex, 2*design.SwatchWidth)
		if i == m.swatchIdx {
			rows = append(rows, design.SelectedRowStyle.Render("▶ "+label)+block)
			continue
		}
		rows = append(rows, design.TextStyle.Render("  "+label)+block)
	}

	width := m.width - m.list.Width() - 4
	if width < 20 {
		width = 20
	}
	return design.DetailPaneStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}
