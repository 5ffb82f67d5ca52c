package tui

import (
	"fmt"
	"strings"

	"estuatlas/internal/atlas"
)

// quizState tracks progress through one generated quiz. The quiz itself is
// immutable once fetched; only the cursor and score move.
type quizState struct {
	quiz     *atlas.Quiz
	idx      int
	selected int // option index, -1 before an answer is committed
	answered bool
	score    int
	done     bool
}

func newQuizState(q *atlas.Quiz) *quizState {
	return &quizState{quiz: q, selected: -1}
}

func (s *quizState) current() atlas.QuizQuestion {
	return s.quiz.Questions[s.idx]
}

// answer commits option i for the current question. Repeated answers are
// ignored so the score cannot be farmed by re-pressing keys.
func (s *quizState) answer(i int) {
	if s.done || s.answered {
		return
	}
	q := s.current()
	if i < 0 || i >= len(q.Options) {
		return
	}
	s.selected = i
	s.answered = true
	if i == q.CorrectAnswer {
		s.score++
	}
}

// next advances past an answered question, flipping to the score screen
// after the last one.
func (s *quizState) next() {
	if !s.answered || s.done {
		return
	}
	if s.idx+1 >= len(s.quiz.Questions) {
		s.done = true
		return
	}
	s.idx++
	s.selected = -1
	s.answered = false
}

// renderQuiz draws the quiz modal body at the given inner width.
func renderQuiz(s *quizState, width int) string {
	var b strings.Builder
	if s.done {
		b.WriteString(titleStyle.Render("Knowledge Check Complete"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("You scored %d out of %d\n\n", s.score, len(s.quiz.Questions)))
		b.WriteString(dimStyle.Render("t retake · esc close"))
		return b.String()
	}

	q := s.current()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d of %d", s.idx+1, len(s.quiz.Questions))))
	b.WriteString("\n\n")
	b.WriteString(wrapText(q.Question, width))
	b.WriteString("\n\n")
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case s.answered && i == q.CorrectAnswer:
			line = correctStyle.Render(line)
		case s.answered && i == s.selected:
			line = wrongStyle.Render(line)
		case !s.answered:
			line = appStyle.Render(line)
		default:
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if s.answered {
		b.WriteByte('\n')
		if q.Explanation != "" {
			b.WriteString(dimStyle.Render(wrapText(q.Explanation, width)))
			b.WriteByte('\n')
		}
		b.WriteString(dimStyle.Render("n next"))
	} else {
		b.WriteByte('\n')
		b.WriteString(dimStyle.Render("1-4 answer · esc close"))
	}
	return b.String()
}

// wrapText is a plain greedy word wrap for modal bodies.
func wrapText(s string, width int) string {
	if width < 8 {
		width = 8
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wl := len([]rune(w))
		if i > 0 {
			if lineLen+1+wl > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += wl
	}
	return b.String()
}
