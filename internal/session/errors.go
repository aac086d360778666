package session

import "fmt"

// ErrStudentNotFound indicates no student exists for the mentor.
type ErrStudentNotFound struct {
	MentorID string
}

func (e *ErrStudentNotFound) Error() string {
	return fmt.Sprintf("no student found for mentor %q", e.MentorID)
}

// ErrSessionNotFound indicates no active session matches the given
// mentor/session pair.
type ErrSessionNotFound struct {
	MentorID  string
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("no active session for mentor %q", e.MentorID)
	}
	return fmt.Sprintf("session %q not found for mentor %q", e.SessionID, e.MentorID)
}

// ErrInvalidState indicates an operation was attempted from a state-machine
// state that forbids it.
type ErrInvalidState struct {
	MentorID string
	Op       string
	Reason   string
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("%s: invalid state for mentor %q: %s", e.Op, e.MentorID, e.Reason)
}
