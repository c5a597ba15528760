// Package session orchestrates one timed assessment attempt: pool assembly,
// weighted sampling, the active answering phase, grading, and the adaptive
// weight update that feeds the next attempt.
package session

import (
	"time"

	"github.com/abhisek/aptiq/internal/questionbank"
)

// Phase is the controller's position in the session lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConfiguring
	PhaseActive
	PhaseGrading
	PhaseReviewing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseConfiguring:
		return "configuring"
	case PhaseActive:
		return "active"
	case PhaseGrading:
		return "grading"
	case PhaseReviewing:
		return "reviewing"
	}
	return "unknown"
}

// Mode selects the session length.
type Mode int

const (
	// ModeStandard sizes the test from the pool: min(20, pool size).
	ModeStandard Mode = iota
	// ModeQuick is a fixed 5-question, 5-minute run.
	ModeQuick
)

// TestSession is the ephemeral state of one live attempt. It is created at
// Start, mutated only during the active phase, and consumed at grading.
type TestSession struct {
	ID       string
	Category string
	Mode     Mode

	// Questions is frozen at creation and never reordered afterwards.
	Questions []questionbank.Question

	TimeLimitSeconds int
	StartedAt        time.Time

	// Answers maps question index to the selected option index.
	Answers map[int]int

	// Flagged marks questions the candidate wants to revisit.
	Flagged map[int]bool

	// Current is the question index the presentation layer is showing.
	Current int
}
