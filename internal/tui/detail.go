package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"estuatlas/internal/atlas"
)

const fallbackFunFact = "Did you know this estuary is vital for global carbon cycling?"

// openDetail selects an entity and arranges for its detail content. Static
// seed details and cached fetches resolve immediately; otherwise a fetch
// is issued with a fresh sequence token.
func (m *Model) openDetail(e atlas.Estuary) tea.Cmd {
	m.selectedID = e.ID
	m.detail = nil
	m.detailFailed = false
	m.detailLoading = false
	m.quiz = nil
	m.quizLoading = false
	m.layout()
	m.refreshList()
	m.fillFacts(e)

	if e.HasStaticDetails() {
		d := &atlas.Details{
			Biodiversity:           e.Biodiversity,
			EcologicalSignificance: e.EcologicalSignificance,
			ConservationStatus:     e.ConservationStatus,
			FunFact:                fallbackFunFact,
		}
		m.setDetailContent(e, d)
		return nil
	}
	if d, ok := m.detailCache[e.ID]; ok {
		m.setDetailContent(e, d)
		return nil
	}
	if !m.client.Available() {
		m.detailFailed = true
		m.setDetailContent(e, nil)
		m.status = "content service unavailable: set GEMINI_API_KEY for full details"
		return nil
	}
	m.detailLoading = true
	m.detailSeq++
	m.setDetailContent(e, nil)
	return tea.Batch(m.spin.Tick, fetchDetailCmd(m.client, m.detailSeq, e.ID, e.Name))
}

func (m *Model) fillFacts(e atlas.Estuary) {
	m.facts.SetRows([]table.Row{
		{"Location", e.Location},
		{"Coordinates", fmt.Sprintf("%.2f, %.2f", e.Coordinates.Lat, e.Coordinates.Lng)},
		{"Scale", string(e.Scale)},
		{"Population", string(e.PopulationDensity)},
		{"Biodiversity", string(e.BiodiversityRating)},
	})
}

// setDetailContent fills the scrollable body. A nil details block renders
// just the short description plus a loading or failure notice.
func (m *Model) setDetailContent(e atlas.Estuary, d *atlas.Details) {
	m.detail = d
	width := m.detailVP.Width
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(wrapText(e.ShortDescription, width))
	b.WriteString("\n")
	if d != nil {
		writeSection := func(title, body string) {
			if body == "" {
				return
			}
			b.WriteString("\n")
			b.WriteString(titleStyle.Render(title))
			b.WriteString("\n")
			b.WriteString(wrapText(body, width))
			b.WriteString("\n")
		}
		writeSection("Biodiversity", d.Biodiversity)
		writeSection("Ecological Significance", d.EcologicalSignificance)
		writeSection("Conservation Status", d.ConservationStatus)
		writeSection("Fun Fact", d.FunFact)
	} else if m.detailFailed {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Extended details are unavailable right now."))
		b.WriteString("\n")
	}
	m.detailVP.SetContent(b.String())
	m.detailVP.GotoTop()
}
