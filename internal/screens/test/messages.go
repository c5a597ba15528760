package test

import "time"

// sessionStartedMsg reports the outcome of the asynchronous session start,
// which may have waited on question generation.
type sessionStartedMsg struct {
	err error
}

// timerTickMsg drives the once-a-second countdown while a test is active.
type timerTickMsg time.Time
