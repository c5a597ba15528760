package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aptiq/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E"}

// OptionLabel returns the display letter for an option index.
func OptionLabel(i int) string {
	if i >= 0 && i < len(optionLabels) {
		return optionLabels[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// RenderOptions renders answer options during the active test. cursor is the
// highlighted row; chosen is the recorded answer for this question (-1 when
// unanswered). Correctness is never revealed here.
func RenderOptions(options []string, cursor, chosen int) string {
	var s string
	for i, opt := range options {
		marker := " "
		if i == chosen {
			marker = "●"
		}
		prefix := "  "
		if i == cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, OptionLabel(i), opt)

		switch {
		case i == cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// RenderRevealedOptions renders options on the review screen: the correct
// option in green, a wrong pick in red, everything else dimmed.
func RenderRevealedOptions(options []string, correct, chosen int) string {
	var s string
	for i, opt := range options {
		line := fmt.Sprintf("  %s)  %s", OptionLabel(i), opt)
		switch {
		case i == correct:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case i == chosen:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}
	return s
}
