package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"estuatlas/internal/atlas"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting estuatlas..."
	}
	contentH := m.height - headerHeight - footerHeight
	if contentH < 4 {
		contentH = 4
	}

	var content string
	switch m.mode {
	case atlas.ViewMap:
		content = m.viewMap()
	default:
		content = boxStyle.Width(m.mapW).Height(contentH - 2).Render(m.l.View())
		if m.selectedID != "" {
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.viewDetail())
		}
	}

	if m.quiz != nil || m.quizLoading {
		content = m.overlayQuiz(contentH)
	}

	return strings.Join([]string{
		m.viewHeader(),
		content,
		m.viewFooter(),
	}, "\n")
}

func (m Model) viewHeader() string {
	tab := func(label string, mode atlas.ViewMode) string {
		if m.mode == mode {
			return tabActiveStyle.Render(label)
		}
		return tabStyle.Render(label)
	}
	left := titleStyle.Render("Estuarine Atlas") +
		"  " + tab("Map", atlas.ViewMap) + tab("List", atlas.ViewList) + tab("Saved", atlas.ViewSaved) +
		dimStyle.Render("  sort: "+m.sortOpt.Label())

	second := m.search.View()
	if m.censusPending {
		second += "  " + m.spin.View() + dimStyle.Render(" census in progress")
	}
	return left + "\n" + second
}

func (m Model) viewMap() string {
	mapBox := boxStyle.Width(m.mapW).Height(m.mapH).Render(m.renderMap(m.mapW, m.mapH))
	if m.selectedID == "" {
		return mapBox
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, mapBox, m.viewDetail())
}

func (m Model) viewDetail() string {
	e, ok := m.selectedEntity()
	if !ok {
		return ""
	}
	w := m.detailVP.Width

	var b strings.Builder
	name := truncate(e.Name, w-3)
	if m.saved[e.ID] {
		b.WriteString(savedStyle.Render("♥ "))
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(truncate(e.Location, w)))
	b.WriteString("\n\n")
	b.WriteString(m.facts.View())
	b.WriteString("\n\n")
	if m.detailLoading {
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render(" generating details..."))
		b.WriteString("\n")
	}
	b.WriteString(m.detailVP.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("t quiz · f save · esc close"))

	return boxStyle.Width(w).Height(m.mapH).Render(b.String())
}

func (m Model) overlayQuiz(contentH int) string {
	w := m.width * 2 / 3
	if w > 72 {
		w = 72
	}
	if w < 32 {
		w = 32
	}
	inner := w - 4

	var body string
	if m.quizLoading {
		body = m.spin.View() + dimStyle.Render(" preparing knowledge check...")
	} else {
		body = renderQuiz(m.quiz, inner)
	}
	if e, ok := m.selectedEntity(); ok {
		body = dimStyle.Render(truncate(e.Name, inner)) + "\n\n" + body
	}
	modal := boxStyle.Width(inner).Render(body)
	return lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) viewFooter() string {
	status := dimStyle.Render(truncate(m.status, m.width))
	if !m.helpVisible {
		return status + "\n" + dimStyle.Render("? help")
	}
	help := "/ search · tab views · o sort · enter details · f save · t quiz · +/- zoom · arrows pan · q quit"
	count := fmt.Sprintf("%d shown · %d saved", len(m.derived()), len(m.saved))
	return status + "  " + dimStyle.Render(count) + "\n" + dimStyle.Render(truncate(help, m.width))
}
