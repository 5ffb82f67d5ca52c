package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"estuatlas/internal/atlas"
)

const (
	panStep    = 2
	zoomFactor = 1.25
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// new projection geometry, so start over from the identity transform
		m.zoom, m.panX, m.panY = 1.0, 0, 0
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if m.detailLoading || m.quizLoading || m.censusPending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case basemapMsg:
		m.basemap, m.basemapErr = msg.basemap, msg.err
		if msg.err != nil {
			m.status = "basemap unavailable: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("basemap loaded: %d shapes", len(msg.basemap.Shapes))
		}
		return m, nil

	case detailMsg:
		// Stale token: the user moved on while the fetch was in flight.
		if msg.seq != m.detailSeq || msg.id != m.selectedID || !m.detailLoading {
			return m, nil
		}
		m.detailLoading = false
		e, ok := m.selectedEntity()
		if !ok {
			return m, nil
		}
		if msg.err != nil {
			m.detailFailed = true
			m.setDetailContent(e, nil)
			m.status = "detail fetch failed: " + msg.err.Error()
			return m, nil
		}
		m.detailCache[e.ID] = msg.details
		m.setDetailContent(e, msg.details)
		m.status = "details loaded"
		return m, nil

	case quizMsg:
		if msg.seq != m.quizSeq || msg.id != m.selectedID || !m.quizLoading {
			return m, nil
		}
		m.quizLoading = false
		if msg.err != nil {
			m.status = "quiz unavailable: " + msg.err.Error()
			return m, nil
		}
		m.quiz = newQuizState(msg.quiz)
		return m, nil

	case censusMsg:
		if msg.seq != m.censusSeq || !m.censusPending {
			return m, nil
		}
		m.censusPending = false
		if msg.err != nil {
			m.status = "census failed: " + msg.err.Error()
			return m, nil
		}
		known := make(map[string]bool, len(m.working))
		for _, e := range m.working {
			known[e.ID] = true
		}
		added := 0
		for _, e := range msg.found {
			if !known[e.ID] {
				m.discovered = append(m.discovered, e)
				added++
			}
		}
		m.working = atlas.Merge(m.working, msg.found)
		m.refreshList()
		if added == 0 {
			m.status = "no additional academic data found"
		} else {
			m.status = fmt.Sprintf("census complete: %d systems added", added)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// layout distributes the frame between header, content, and footer, and
// resizes every embedded component.
func (m *Model) layout() {
	contentH := m.height - headerHeight - footerHeight
	if contentH < 4 {
		contentH = 4
	}
	m.search.Width = m.width - 30
	if m.search.Width < 16 {
		m.search.Width = 16
	}

	panelW := m.width/3 - 6
	if panelW < 24 {
		panelW = 24
	}

	// primary pane (map or list) sits inside a bordered, padded box under
	// the header; a selection opens the detail panel on the right and
	// narrows the pane
	m.mapOX = 2
	m.mapOY = headerHeight + 1
	m.mapW = m.width - 4
	if m.selectedID != "" {
		m.mapW = m.width - (panelW + 4) - 4
	}
	if m.mapW < 20 {
		m.mapW = 20
	}
	m.mapH = contentH - 2
	m.l.SetSize(m.mapW, contentH-2)
	m.detailVP.Width = panelW
	m.detailVP.Height = contentH - 16
	if m.detailVP.Height < 4 {
		m.detailVP.Height = 4
	}
	valueW := panelW - 14
	if valueW < 12 {
		valueW = 12
	}
	m.facts.SetColumns([]table.Column{
		{Title: "Field", Width: 12},
		{Title: "Value", Width: valueW},
	})
	if e, ok := m.selectedEntity(); ok {
		m.setDetailContent(e, m.detail)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Search capture: printable input belongs to the field until it is
	// blurred again.
	if m.search.Focused() {
		switch key {
		case "esc":
			m.search.Blur()
			return m, nil
		case "enter":
			m.search.Blur()
			query := strings.TrimSpace(m.search.Value())
			if query == "" {
				return m, nil
			}
			if m.censusPending {
				m.status = "census already in progress"
				return m, nil
			}
			if !m.client.Available() {
				m.status = "census needs GEMINI_API_KEY; filtering locally only"
				return m, nil
			}
			m.censusPending = true
			m.censusSeq++
			m.status = fmt.Sprintf("running census for %q", query)
			return m, tea.Batch(m.spin.Tick, runCensusCmd(m.client, m.censusSeq, query))
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refreshList()
		return m, cmd
	}

	// Quiz modal owns the keys while open.
	if m.quiz != nil {
		switch key {
		case "1", "2", "3", "4":
			m.quiz.answer(int(key[0]-'0') - 1)
			return m, nil
		case "n":
			m.quiz.next()
			return m, nil
		case "t":
			if m.quiz.done {
				m.quiz = nil
				return m.startQuiz()
			}
			return m, nil
		case "esc", "q":
			m.quiz = nil
			return m, nil
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "m":
		m.mode = atlas.ViewMap
		return m, nil
	case "l":
		m.mode = atlas.ViewList
		m.refreshList()
		return m, nil
	case "s":
		m.mode = atlas.ViewSaved
		m.refreshList()
		return m, nil
	case "tab":
		switch m.mode {
		case atlas.ViewMap:
			m.mode = atlas.ViewList
		case atlas.ViewList:
			m.mode = atlas.ViewSaved
		default:
			m.mode = atlas.ViewMap
		}
		m.refreshList()
		return m, nil
	case "o":
		m.sortOpt = m.sortOpt.Next()
		m.refreshList()
		m.status = "sorted by " + m.sortOpt.Label()
		return m, nil
	case "f":
		if id := m.focusID(); id != "" {
			m.toggleSaved(id)
		}
		return m, nil
	case "t":
		return m.startQuiz()
	case "esc":
		if m.selectedID != "" {
			m.selectedID = ""
			m.detail = nil
			m.detailFailed = false
			m.detailLoading = false
			m.layout()
			m.refreshList()
			return m, nil
		}
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refreshList()
		}
		return m, nil
	case "enter":
		if m.mode == atlas.ViewMap {
			if id := m.focusID(); id != "" {
				if e, ok := m.entityByID(id); ok {
					cmd := m.openDetail(e)
					return m, cmd
				}
			}
			return m, nil
		}
		if it, ok := m.l.SelectedItem().(estuaryItem); ok {
			cmd := m.openDetail(it.e)
			return m, cmd
		}
		return m, nil
	}

	if m.mode == atlas.ViewMap {
		switch key {
		case "+", "=":
			m.zoom = clampF(m.zoom*zoomFactor, minZoom, maxZoom)
			return m, nil
		case "-", "_":
			m.zoom = clampF(m.zoom/zoomFactor, minZoom, maxZoom)
			return m, nil
		case "up":
			m.panY += panStep
			return m, nil
		case "down":
			m.panY -= panStep
			return m, nil
		case "left":
			m.panX += panStep
			return m, nil
		case "right":
			m.panX -= panStep
			return m, nil
		case "0":
			m.zoom, m.panX, m.panY = 1.0, 0, 0
			return m, nil
		}
		if m.detail != nil || m.detailFailed {
			var cmd tea.Cmd
			m.detailVP, cmd = m.detailVP.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != atlas.ViewMap {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.zoom = clampF(m.zoom*zoomFactor, minZoom, maxZoom)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.zoom = clampF(m.zoom/zoomFactor, minZoom, maxZoom)
		return m, nil
	}

	x, y := msg.X-m.mapOX, msg.Y-m.mapOY
	if x < 0 || y < 0 || x >= m.mapW || y >= m.mapH {
		m.hoveredID = ""
		return m, nil
	}
	hit := m.hitTest(x, y)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if hit != "" {
			if e, ok := m.entityByID(hit); ok {
				cmd := m.openDetail(e)
				return m, cmd
			}
		}
		return m, nil
	}
	m.hoveredID = hit
	return m, nil
}

// focusID is the entity keyboard commands act on: the selection, else the
// hovered marker in map mode, else the list cursor.
func (m Model) focusID() string {
	if m.selectedID != "" {
		return m.selectedID
	}
	if m.mode == atlas.ViewMap {
		return m.hoveredID
	}
	if it, ok := m.l.SelectedItem().(estuaryItem); ok {
		return it.e.ID
	}
	return ""
}

func (m Model) entityByID(id string) (atlas.Estuary, bool) {
	for _, e := range m.working {
		if e.ID == id {
			return e, true
		}
	}
	return atlas.Estuary{}, false
}

func (m Model) startQuiz() (tea.Model, tea.Cmd) {
	if m.quizLoading {
		return m, nil
	}
	e, ok := m.selectedEntity()
	if !ok {
		m.status = "select an estuary first (enter), then press t"
		return m, nil
	}
	if !m.client.Available() {
		m.status = "quiz needs GEMINI_API_KEY"
		return m, nil
	}
	m.quizLoading = true
	m.quizSeq++
	return m, tea.Batch(m.spin.Tick, fetchQuizCmd(m.client, m.quizSeq, e.ID, e.Name))
}
