// Package tui implements the interactive catalog browser: a filterable
// list of gradients, document themes, and categorical palettes beside a
// swatch pane, with clipboard copy for the selected color.
package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"rainmap/internal/tui/design"
)

// minListWidth keeps the catalog list readable on narrow terminals.
const minListWidth = 28

// chromeHeight is the status and help lines under the panes.
const chromeHeight = 2

// model is the browser state. clip performs the clipboard write and is
// swapped for a fake in tests.
type model struct {
	list      list.Model
	width     int
	height    int
	swatchIdx int
	status    string
	statusErr bool
	clip      func(string) error
}

func newModel() model {
	l := list.New(newCatalogItems(), newCatalogDelegate(), 0, 0)
	l.Title = "rainmap catalog"
	l.Styles.Title = design.TitleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{list: l, clip: clipboard.WriteAll}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(m.listWidth(), m.paneHeight())
		return m, nil

	case tea.KeyMsg:
		// While the user is typing a filter every key belongs to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			// First esc clears an applied filter; the list handles that.
			if m.list.FilterState() != list.FilterApplied {
				return m, tea.Quit
			}
		case "left":
			m.swatchIdx--
			m.clampSwatch()
			return m, nil
		case "right":
			m.swatchIdx++
			m.clampSwatch()
			return m, nil
		case "y":
			m.copySwatch()
			return m, nil
		}
	}

	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.swatchIdx = 0
		m.status = ""
		m.statusErr = false
	}
	m.clampSwatch()
	return m, cmd
}

// selectedItem returns the entry under the list cursor.
func (m model) selectedItem() (catalogItem, bool) {
	it, ok := m.list.SelectedItem().(catalogItem)
	return it, ok
}

func (m model) selectedSwatches() []swatch {
	it, ok := m.selectedItem()
	if !ok {
		return nil
	}
	return it.swatches
}

func (m *model) clampSwatch() {
	n := len(m.selectedSwatches())
	if n == 0 {
		m.swatchIdx = 0
		return
	}
	if m.swatchIdx < 0 {
		m.swatchIdx = 0
	}
	if m.swatchIdx >= n {
		m.swatchIdx = n - 1
	}
}

// copySwatch writes the hex under the swatch cursor to the clipboard and
// reports the outcome in the status line.
func (m *model) copySwatch() {
	swatches := m.selectedSwatches()
	if len(swatches) == 0 {
		return
	}
	hex := swatches[m.swatchIdx].Hex
	if err := m.clip(hex); err != nil {
		m.status = fmt.Sprintf("clipboard: %v", err)
		m.statusErr = true
		return
	}
	m.status = "copied " + hex
	m.statusErr = false
}

func (m model) listWidth() int {
	w := m.width / 3
	if w < minListWidth {
		w = minListWidth
	}
	if w > m.width {
		w = m.width
	}
	return w
}

func (m model) paneHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}
