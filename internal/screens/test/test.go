package test

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aptiq/internal/router"
	"github.com/abhisek/aptiq/internal/screen"
	"github.com/abhisek/aptiq/internal/screens/results"
	"github.com/abhisek/aptiq/internal/session"
	"github.com/abhisek/aptiq/internal/ui/layout"
	"github.com/abhisek/aptiq/internal/ui/theme"
)

// TestScreen runs a timed assessment: it starts the session asynchronously
// (generation can take a while on a cold cache), then drives the countdown
// and answer entry until submission or timeout.
type TestScreen struct {
	ctrl     *session.Controller
	category string
	mode     session.Mode
	retake   bool

	spin     spinner.Model
	loading  bool
	startErr error

	cursor int // highlighted option on the current question
}

var _ screen.Screen = (*TestScreen)(nil)

// New creates a test screen that starts a fresh session for a category.
func New(ctrl *session.Controller, category string, mode session.Mode) *TestScreen {
	return newScreen(ctrl, category, mode, false)
}

// NewRetake creates a test screen that reruns the just-reviewed configuration.
func NewRetake(ctrl *session.Controller) *TestScreen {
	return newScreen(ctrl, "", session.ModeStandard, true)
}

func newScreen(ctrl *session.Controller, category string, mode session.Mode, retake bool) *TestScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &TestScreen{
		ctrl:     ctrl,
		category: category,
		mode:     mode,
		retake:   retake,
		spin:     sp,
		loading:  true,
	}
}

func (t *TestScreen) Init() tea.Cmd {
	return tea.Batch(t.spin.Tick, t.startCmd())
}

func (t *TestScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		var err error
		if t.retake {
			err = t.ctrl.Retake(context.Background())
		} else {
			err = t.ctrl.Start(context.Background(), t.category, t.mode)
		}
		return sessionStartedMsg{err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(tm time.Time) tea.Msg {
		return timerTickMsg(tm)
	})
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if errors.Is(msg.err, session.ErrStartCanceled) {
			// Stale completion from a start abandoned before this screen
			// took over; the fresh start reports separately.
			return t, nil
		}
		t.loading = false
		t.startErr = msg.err
		if msg.err != nil {
			return t, nil
		}
		return t, tickCmd()

	case spinner.TickMsg:
		if !t.loading {
			return t, nil
		}
		var cmd tea.Cmd
		t.spin, cmd = t.spin.Update(msg)
		return t, cmd

	case timerTickMsg:
		t.ctrl.Tick()
		if t.ctrl.Phase() == session.PhaseReviewing {
			// Time expired: the controller has already graded.
			return t, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: results.New(t.ctrl)}
			}
		}
		if t.ctrl.Phase() != session.PhaseActive {
			return t, nil
		}
		return t, tickCmd()

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if t.startErr != nil {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sess := t.ctrl.Session()
	if t.loading || sess == nil || t.ctrl.Phase() != session.PhaseActive {
		return t, nil
	}

	q := sess.Questions[sess.Current]

	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(q.Options)-1 {
			t.cursor++
		}
	case "enter", " ":
		t.ctrl.Answer(sess.Current, t.cursor)
		t.next()
	case "left", "h":
		t.goTo(sess.Current - 1)
	case "right", "l":
		t.next()
	case "f":
		t.ctrl.ToggleFlag(sess.Current)
	case "s":
		t.ctrl.Submit()
		return t, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(t.ctrl)}
		}
	}

	return t, nil
}

func (t *TestScreen) next() {
	sess := t.ctrl.Session()
	if sess.Current < len(sess.Questions)-1 {
		t.goTo(sess.Current + 1)
	}
}

// goTo moves to a question and seats the cursor on its recorded answer.
func (t *TestScreen) goTo(index int) {
	sess := t.ctrl.Session()
	if index < 0 || index >= len(sess.Questions) {
		return
	}
	t.ctrl.Navigate(index)
	if choice, ok := sess.Answers[index]; ok {
		t.cursor = choice
	} else {
		t.cursor = 0
	}
}

func (t *TestScreen) Title() string {
	return "Assessment"
}

// HeaderRight implements screen.HeaderRightProvider with the live countdown.
func (t *TestScreen) HeaderRight() string {
	if t.loading || t.ctrl.Phase() != session.PhaseActive {
		return ""
	}
	return "⏱ " + layout.FormatClock(t.ctrl.Remaining()) + "  "
}

// KeyHints implements screen.KeyHintProvider.
func (t *TestScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "F", Description: "Flag"},
		{Key: "S", Description: "Submit"},
	}
}
