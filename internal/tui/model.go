package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	textinput "github.com/charmbracelet/bubbles/textinput"
	viewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"estuatlas/internal/atlas"
	"estuatlas/internal/config"
	"estuatlas/internal/genai"
	"estuatlas/internal/geom"
)

const (
	headerHeight = 2
	footerHeight = 2
	minZoom      = 1.0
	maxZoom      = 8.0
)

type Model struct {
	cfg    *config.Config
	client *genai.Client

	width  int
	height int

	helpVisible bool
	status      string

	// Working set and saved shortlist
	working    []atlas.Estuary
	discovered []atlas.Estuary
	saved      map[string]bool

	// View state
	mode       atlas.ViewMode
	selectedID string
	hoveredID  string
	sortOpt    atlas.SortOption
	search     textinput.Model

	// Map presentation. Zoom and pan survive data refreshes; the
	// projection itself is derived from the map size at render time.
	basemap    *geom.Basemap
	basemapErr error
	zoom       float64
	panX       int // cells
	panY       int

	// map content area geometry, set on resize (for mouse hit testing)
	mapW  int
	mapH  int
	mapOX int // cell offset of the map content area in the frame
	mapOY int

	// List view
	l list.Model

	// Detail panel
	detail        *atlas.Details
	detailFailed  bool
	detailLoading bool
	detailCache   map[string]*atlas.Details
	detailSeq     int
	facts         table.Model
	detailVP      viewport.Model

	// Quiz
	quiz        *quizState
	quizLoading bool
	quizSeq     int

	// Census search
	censusPending bool
	censusSeq     int

	spin spinner.Model
}

func New(cfg *config.Config) Model {
	m := Model{
		cfg:         cfg,
		client:      genai.NewClient(cfg.GenAI.Model),
		helpVisible: true,
		status:      "estuatlas ready",
		mode:        atlas.ViewMap,
		sortOpt:     atlas.SortByName,
		zoom:        1.0,
		working:     atlas.Seed(),
		saved:       map[string]bool{},
		detailCache: map[string]*atlas.Details{},
	}

	// search input
	m.search = textinput.New()
	m.search.Placeholder = "Deep Search (e.g. 'Vietnam', 'Norwegian Fjords')..."
	m.search.Prompt = "⌕ "
	m.search.CharLimit = 120

	// list setup
	m.l = list.New(nil, estuaryDelegate{}, 0, 0)
	m.l.Title = "Global Estuaries"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)

	// detail facts table
	m.facts = table.New(
		table.WithColumns([]table.Column{
			{Title: "Field", Width: 12},
			{Title: "Value", Width: 24},
		}),
		table.WithHeight(6),
	)

	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.detailVP = viewport.New(0, 0)

	if cfg.Session.Enabled {
		if sess, err := atlas.LoadSession(cfg.SessionPath()); err == nil {
			m.discovered = sess.Discovered
			m.working = atlas.Merge(m.working, sess.Discovered)
			for _, id := range sess.SavedIDs {
				m.saved[id] = true
			}
		} else {
			m.status = "session load failed: starting fresh"
		}
	}
	m.refreshList()
	return m
}

func (m Model) Init() tea.Cmd {
	return loadBasemapCmd(m.cfg.Map.BasemapURL, m.cfg.BasemapCachePath())
}

// derived computes the currently displayed subset.
func (m Model) derived() []atlas.Estuary {
	return atlas.DeriveView(m.working, m.mode, m.saved, m.search.Value(), m.sortOpt)
}

// selectedEntity resolves the current selection against the working set.
func (m Model) selectedEntity() (atlas.Estuary, bool) {
	if m.selectedID == "" {
		return atlas.Estuary{}, false
	}
	for _, e := range m.working {
		if e.ID == m.selectedID {
			return e, true
		}
	}
	return atlas.Estuary{}, false
}

// toggleSaved flips shortlist membership; two toggles restore the original
// state.
func (m *Model) toggleSaved(id string) {
	if id == "" {
		return
	}
	if m.saved[id] {
		delete(m.saved, id)
		m.status = "removed from saved"
	} else {
		m.saved[id] = true
		m.status = "saved"
	}
	m.refreshList()
}

// PersistSession writes the saved shortlist and census discoveries if the
// session file is enabled. Called once on exit; failures only lose the
// session, never the run.
func (m Model) PersistSession() {
	if !m.cfg.Session.Enabled {
		return
	}
	ids := make([]string, 0, len(m.saved))
	for _, e := range m.working {
		if m.saved[e.ID] {
			ids = append(ids, e.ID)
		}
	}
	atlas.SaveSession(m.cfg.SessionPath(), &atlas.Session{
		SavedIDs:   ids,
		Discovered: m.discovered,
	})
}
