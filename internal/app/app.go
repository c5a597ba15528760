package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aptiq/internal/questionbank"
	"github.com/abhisek/aptiq/internal/router"
	"github.com/abhisek/aptiq/internal/screen"
	"github.com/abhisek/aptiq/internal/screens/home"
	"github.com/abhisek/aptiq/internal/screens/results"
	"github.com/abhisek/aptiq/internal/screens/test"
	"github.com/abhisek/aptiq/internal/session"
	"github.com/abhisek/aptiq/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *session.Controller
	router *router.Router
	width  int
	height int
}

func newAppModel(ctrl *session.Controller, bank *questionbank.Bank) AppModel {
	return AppModel{
		ctrl:   ctrl,
		router: router.New(home.New(ctrl, bank)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case results.RetakeMsg:
		return m, m.router.Replace(test.NewRetake(m.ctrl))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Backing out of a running test forfeits it ungraded.
				m.ctrl.Abandon()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	if active != nil {
		title = active.Title()
	}

	right := ""
	if p, ok := active.(screen.HeaderRightProvider); ok {
		right = p.HeaderRight()
	}
	header := layout.RenderHeader(title, right, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(ctrl *session.Controller, bank *questionbank.Bank) error {
	p := tea.NewProgram(newAppModel(ctrl, bank))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
