package test

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aptiq/internal/session"
	"github.com/abhisek/aptiq/internal/ui/components"
	"github.com/abhisek/aptiq/internal/ui/theme"
)

func (t *TestScreen) View(width, height int) string {
	if t.startErr != nil {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			theme.ErrorText.Render("Could not start the test: "+t.startErr.Error()) +
				"\n\n" + theme.Hint.Render("Press any key to go back"),
		)
	}

	if t.loading {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(t.spin.View() + " Preparing your questions…")
	}

	sess := t.ctrl.Session()
	if sess == nil || t.ctrl.Phase() != session.PhaseActive {
		return ""
	}

	q := sess.Questions[sess.Current]
	contentWidth := min(width-8, 92)
	body := lipgloss.NewStyle().Width(contentWidth)

	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", sess.Current+1, len(sess.Questions))
	meta := theme.Badge.Render(q.Category)
	if sess.Flagged[sess.Current] {
		meta += "  " + theme.Flagged.Render("⚑ flagged")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter) + "   " + meta)
	b.WriteString("\n\n")

	if q.Passage != "" {
		b.WriteString(theme.Panel.Width(contentWidth).Render(q.Passage))
		b.WriteString("\n\n")
	}
	if q.Diagram != "" {
		b.WriteString(theme.Panel.Width(contentWidth).Render(q.Diagram))
		b.WriteString("\n\n")
	}

	b.WriteString(body.Bold(true).Foreground(theme.Text).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(components.RenderOptions(q.Options, t.cursor, chosenFor(sess)))
	b.WriteString("\n")
	b.WriteString(t.progressStrip(sess, contentWidth))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.String())
}

func chosenFor(sess *session.TestSession) int {
	if choice, ok := sess.Answers[sess.Current]; ok {
		return choice
	}
	return -1
}

// progressStrip draws one glyph per question: filled for answered, flag for
// flagged, a hollow dot otherwise, with the current question bracketed.
func (t *TestScreen) progressStrip(sess *session.TestSession, width int) string {
	var b strings.Builder
	for i := range sess.Questions {
		var glyph string
		switch {
		case sess.Flagged[i]:
			glyph = theme.Flagged.Render("⚑")
		default:
			if _, answered := sess.Answers[i]; answered {
				glyph = lipgloss.NewStyle().Foreground(theme.Secondary).Render("●")
			} else {
				glyph = lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
			}
		}
		if i == sess.Current {
			glyph = lipgloss.NewStyle().Foreground(theme.Primary).Render("[") +
				glyph +
				lipgloss.NewStyle().Foreground(theme.Primary).Render("]")
		} else {
			glyph = " " + glyph + " "
		}
		b.WriteString(glyph)
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
