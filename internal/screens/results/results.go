package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aptiq/internal/screen"
	"github.com/abhisek/aptiq/internal/session"
	"github.com/abhisek/aptiq/internal/store"
	"github.com/abhisek/aptiq/internal/ui/components"
	"github.com/abhisek/aptiq/internal/ui/layout"
	"github.com/abhisek/aptiq/internal/ui/theme"
)

// RetakeMsg asks the application to rerun the just-finished configuration.
// Handled at the app level to keep this package from importing the test screen.
type RetakeMsg struct{}

// ResultsScreen shows the graded outcome and a per-question review.
type ResultsScreen struct {
	ctrl   *session.Controller
	record *store.HistoryRecord
	index  int // question under review
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates the results screen for the controller's most recent result.
func New(ctrl *session.Controller) *ResultsScreen {
	return &ResultsScreen{
		ctrl:   ctrl,
		record: ctrl.Result(),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || r.record == nil {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if r.index > 0 {
			r.index--
		}
	case "right", "l":
		if r.index < len(r.record.Questions)-1 {
			r.index++
		}
	case "r":
		return r, func() tea.Msg { return RetakeMsg{} }
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	if r.record == nil {
		return theme.Hint.Width(width).Align(lipgloss.Center).Render("No result to show")
	}

	contentWidth := min(width-8, 92)
	var b strings.Builder

	b.WriteString(r.scoreboard(contentWidth))
	b.WriteString("\n\n")
	b.WriteString(r.review(contentWidth))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
}

func (r *ResultsScreen) scoreboard(width int) string {
	rec := r.record

	score := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%d%%", rec.Score))
	band := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(session.GradeLabel(rec.Score))

	counts := fmt.Sprintf("%s correct   %s wrong   %s unanswered",
		theme.Correct.Render(fmt.Sprintf("%d", rec.CorrectCount)),
		theme.Incorrect.Render(fmt.Sprintf("%d", rec.WrongCount)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d", rec.UnansweredCount)),
	)
	bar := components.NewProgressBar("", float64(rec.Score)/100, false, width-16).View()
	taken := theme.Hint.Render("Time taken " + layout.FormatClock(rec.TimeTakenSeconds))

	return theme.Card.Width(width).Render(
		lipgloss.NewStyle().Width(width-6).Align(lipgloss.Center).Render(
			score + "  " + band + "\n\n" + bar + "\n\n" + counts + "\n" + taken,
		),
	)
}

func (r *ResultsScreen) review(width int) string {
	rec := r.record
	q := rec.Questions[r.index]
	chosen, answered := rec.Answers[r.index]
	if !answered {
		chosen = -1
	}

	var b strings.Builder

	head := fmt.Sprintf("Review %d of %d", r.index+1, len(rec.Questions))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(head))
	if !answered {
		b.WriteString("   " + theme.Hint.Render("not answered"))
	}
	b.WriteString("\n\n")

	if q.Passage != "" {
		b.WriteString(theme.Panel.Width(width).Render(q.Passage))
		b.WriteString("\n\n")
	}
	if q.Diagram != "" {
		b.WriteString(theme.Panel.Width(width).Render(q.Diagram))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Width(width).Bold(true).Foreground(theme.Text).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(components.RenderRevealedOptions(q.Options, q.CorrectIndex, chosen))

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Panel.Width(width).Render("💡 " + q.Explanation))
	}

	return b.String()
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

// KeyHints implements screen.KeyHintProvider.
func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Review"},
		{Key: "R", Description: "Retake"},
		{Key: "Esc", Description: "Home"},
	}
}
