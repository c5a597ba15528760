package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aptiq/internal/questionbank"
	"github.com/abhisek/aptiq/internal/router"
	"github.com/abhisek/aptiq/internal/screen"
	"github.com/abhisek/aptiq/internal/screens/test"
	"github.com/abhisek/aptiq/internal/session"
	"github.com/abhisek/aptiq/internal/ui/components"
	"github.com/abhisek/aptiq/internal/ui/layout"
	"github.com/abhisek/aptiq/internal/ui/theme"
)

// HomeScreen lists the assessment categories with personal bests and lets
// the candidate start a standard or quick test.
type HomeScreen struct {
	ctrl    *session.Controller
	bank    *questionbank.Bank
	menu    components.Menu
	entries []entry
}

type entry struct {
	category string // empty for the exit row
	info     questionbank.CategoryInfo
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen from the current category catalog and history.
func New(ctrl *session.Controller, bank *questionbank.Bank) *HomeScreen {
	bests := ctrl.CategoryBests()

	entries := []entry{{category: questionbank.CategoryBlended, info: bank.Info(questionbank.CategoryBlended)}}
	for _, info := range bank.Catalog() {
		entries = append(entries, entry{category: info.Key, info: info})
	}
	entries = append(entries, entry{}) // exit

	items := make([]components.MenuItem, len(entries))
	for i, e := range entries {
		if e.category == "" {
			items[i] = components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }}
			continue
		}
		label := e.info.Name
		if best, ok := bests[e.category]; ok {
			label = fmt.Sprintf("%s  ★ %d%%", label, best)
		}
		category := e.category
		items[i] = components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: test.New(ctrl, category, session.ModeStandard)}
				}
			},
		}
	}

	return &HomeScreen{
		ctrl:    ctrl,
		bank:    bank,
		menu:    components.NewMenu(items),
		entries: entries,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		// Quick 5-question run of the highlighted category.
		if e := h.entries[h.menu.Selected]; e.category != "" {
			ctrl, category := h.ctrl, e.category
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: test.New(ctrl, category, session.ModeQuick)}
			}
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("AptIQ — Adaptive Aptitude Assessment"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Questions you miss come back until you beat them"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.statsRow()))
	b.WriteString("\n\n")

	menu := h.menu.View()
	if desc := h.selectedDescription(); desc != "" {
		menu += "\n" + theme.Hint.Render("    "+desc)
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menu))

	return b.String()
}

func (h *HomeScreen) statsRow() string {
	history := h.ctrl.History()
	if len(history) == 0 {
		return theme.Hint.Render("No tests completed yet")
	}

	var sum, best int
	for _, r := range history {
		sum += r.Score
		if r.Score > best {
			best = r.Score
		}
	}
	avg := sum / len(history)

	stat := func(label string, value int, suffix string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("%d%s", value, suffix))
	}
	return stat("Tests", len(history), "") + "    " +
		stat("Average", avg, "%") + "    " +
		stat("Best", best, "%")
}

func (h *HomeScreen) selectedDescription() string {
	e := h.entries[h.menu.Selected]
	if e.category == "" {
		return ""
	}
	desc := e.info.Description
	if e.category != questionbank.CategoryBlended {
		desc = fmt.Sprintf("%s · %d questions", desc, len(h.bank.Pool(e.category)))
	}
	return desc
}

// Refresh recomputes the best-score badges after a completed test.
func (h *HomeScreen) Refresh() {
	bests := h.ctrl.CategoryBests()
	for i, e := range h.entries {
		if e.category == "" {
			continue
		}
		label := e.info.Name
		if best, ok := bests[e.category]; ok {
			label = fmt.Sprintf("%s  ★ %d%%", label, best)
		}
		h.menu.Items[i].Label = label
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start test"},
		{Key: "Q", Description: "Quick 5"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
