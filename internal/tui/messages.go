package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"estuatlas/internal/atlas"
	"estuatlas/internal/genai"
	"estuatlas/internal/geom"
)

type basemapMsg struct {
	basemap *geom.Basemap
	err     error
}

// detailMsg and quizMsg carry the sequence number and subject ID issued
// when the fetch started; the update loop discards responses whose token
// no longer matches the current selection.
type detailMsg struct {
	seq     int
	id      string
	details *atlas.Details
	err     error
}

type quizMsg struct {
	seq  int
	id   string
	quiz *atlas.Quiz
	err  error
}

type censusMsg struct {
	seq   int
	query string
	found []atlas.Estuary
	err   error
}

func loadBasemapCmd(url, cachePath string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		bm, err := geom.FetchBasemap(ctx, url, cachePath)
		return basemapMsg{basemap: bm, err: err}
	}
}

func fetchDetailCmd(client *genai.Client, seq int, id, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		d, err := client.FetchDetails(ctx, name)
		return detailMsg{seq: seq, id: id, details: d, err: err}
	}
}

func fetchQuizCmd(client *genai.Client, seq int, id, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		q, err := client.FetchQuiz(ctx, name)
		return quizMsg{seq: seq, id: id, quiz: q, err: err}
	}
}

func runCensusCmd(client *genai.Client, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()
		found, err := client.SearchEstuaries(ctx, query)
		return censusMsg{seq: seq, query: query, found: found, err: err}
	}
}
