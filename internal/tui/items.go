package tui

import (
	"fmt"
	"io"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"estuatlas/internal/atlas"
)

// estuaryItem adapts one entity for the browse list. Saved membership is
// baked in at refresh time so the delegate stays stateless.
type estuaryItem struct {
	e     atlas.Estuary
	saved bool
}

func (i estuaryItem) FilterValue() string { return i.e.Name }

type estuaryDelegate struct{}

func (d estuaryDelegate) Height() int                         { return 2 }
func (d estuaryDelegate) Spacing() int                        { return 1 }
func (d estuaryDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d estuaryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(estuaryItem)
	if !ok {
		return
	}
	width := m.Width() - 4
	if width < 10 {
		width = 10
	}

	mark := "  "
	if it.saved {
		mark = savedStyle.Render("♥ ")
	}
	title := it.e.Name
	meta := fmt.Sprintf("%s · %s scale · %s biodiversity",
		it.e.Location, it.e.Scale, it.e.BiodiversityRating)

	if index == m.Index() {
		fmt.Fprintf(w, "%s%s\n    %s",
			mark,
			titleStyle.Render("› "+truncate(title, width)),
			lipgloss.NewStyle().Foreground(accentFg).Render(truncate(meta, width)))
		return
	}
	fmt.Fprintf(w, "%s%s\n    %s",
		mark,
		appStyle.Render(truncate(title, width)),
		dimStyle.Render(truncate(meta, width)))
}

// refreshList rebuilds the list items from the derived view, keeping the
// cursor on the selected entity when it survives the refresh.
func (m *Model) refreshList() {
	view := m.derived()
	items := make([]list.Item, len(view))
	cursor := 0
	for i, e := range view {
		items[i] = estuaryItem{e: e, saved: m.saved[e.ID]}
		if e.ID == m.selectedID {
			cursor = i
		}
	}
	m.l.SetItems(items)
	if len(items) > 0 {
		m.l.Select(cursor)
	}
}
