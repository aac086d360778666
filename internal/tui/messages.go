package tui

import (
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

// studentReadyMsg is sent once the simulated student has been loaded or
// created.
type studentReadyMsg struct {
	Status *student.Status
	Err    error
}

// sessionStartedMsg is sent when a teaching session has been opened.
type sessionStartedMsg struct {
	SessionID string
	Concepts  []string
	Err       error
}

// reactionMsg carries the simulated student's reaction to a taught concept.
type reactionMsg struct {
	Result *session.TeachResult
	Status *student.Status
	Err    error
}

// sessionEndedMsg carries the closing summary and mentor evaluation.
type sessionEndedMsg struct {
	Summary *session.Summary
	Eval    *session.MentorEvaluation
	Err     error
}
