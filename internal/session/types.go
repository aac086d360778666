package session

import (
	"context"
	"time"

	"github.com/marqos/signmentor/internal/student"
)

// Phase is the per-mentor lifecycle state derived from the student and
// record stores: NoStudent → StudentCreated → SessionActive → SessionClosed.
type Phase int

const (
	PhaseNoStudent Phase = iota
	PhaseStudentCreated
	PhaseSessionActive
	PhaseSessionClosed
)

// Interaction is one taught concept inside an active session.
type Interaction struct {
	Concept       string       `json:"concept"`
	Explanation   string       `json:"explanation"`
	Reaction      string       `json:"reaction"`
	Comprehension float64      `json:"comprehension"`
	Emotion       student.Mood `json:"emotion"`
	NeedsHelp     bool         `json:"needs_help"`
	At            time.Time    `json:"at"`
}

// TeachingSession is the mutable record of a session in progress. It is
// owned exclusively by the orchestrator while active and frozen into a
// Summary at session end.
type TeachingSession struct {
	ID           string
	MentorID     string
	StudentID    string
	Topic        string
	Method       string
	Concepts     []string
	StartedAt    time.Time
	Interactions []Interaction
}

// Metrics are the closing measurements computed when a session ends.
type Metrics struct {
	ParticipationRate     float64  `json:"participation_rate"`
	TeachingEffectiveness float64  `json:"teaching_effectiveness"`
	SuccessScore          float64  `json:"success_score"`
	ConceptsMastered      []string `json:"concepts_mastered"`
	ConceptsToReview      []string `json:"concepts_to_review"`
	Interventions         int      `json:"interventions"`
}

// Summary is the immutable closed-session record handed to the record store.
type Summary struct {
	SessionID    string        `json:"session_id"`
	MentorID     string        `json:"mentor_id"`
	StudentID    string        `json:"student_id"`
	Topic        string        `json:"topic"`
	Method       string        `json:"method"`
	StartedAt    time.Time     `json:"started_at"`
	EndedAt      time.Time     `json:"ended_at"`
	Interactions []Interaction `json:"interactions"`
	Metrics      Metrics       `json:"metrics"`

	// ProgressDelta is how much the student's overall progress moved
	// during this session.
	ProgressDelta float64 `json:"progress_delta"`
}

// MentorEvaluation is the per-session assessment of the mentor's teaching.
type MentorEvaluation struct {
	MentorID     string             `json:"mentor_id"`
	SessionID    string             `json:"session_id"`
	OverallScore float64            `json:"overall_score"`
	Competencies map[string]float64 `json:"competencies"`
}

// TeachResult is returned by TeachConcept.
type TeachResult struct {
	Reaction      string       `json:"reaction"`
	Comprehension float64      `json:"comprehension"`
	Emotion       student.Mood `json:"emotion"`
	NeedsHelp     bool         `json:"needs_help"`
}

// Reaction is the simulated learner response to one taught concept.
type Reaction struct {
	Text            string
	Comprehension   float64
	ConfusionPoints []string
}

// Simulator produces the student's reaction to a taught concept. The LLM
// backed implementation lives in internal/simulation.
type Simulator interface {
	Simulate(ctx context.Context, st *student.State, concept, explanation, method string) (Reaction, error)
}

// RecordStore holds per-mentor session state: at most one active session
// plus the ordered history of closed summaries. Keyed by mentor ID.
type RecordStore interface {
	// Active returns the active session for the mentor, or nil.
	Active(ctx context.Context, mentorID string) (*TeachingSession, error)

	// Create registers a new active session for the mentor.
	Create(ctx context.Context, mentorID string, s *TeachingSession) error

	// Append adds an interaction to the mentor's active session.
	Append(ctx context.Context, mentorID string, ia Interaction) error

	// Terminate closes the active session, appending its summary to history.
	Terminate(ctx context.Context, mentorID string, sum *Summary) error

	// History returns the mentor's closed sessions in chronological order.
	History(ctx context.Context, mentorID string) ([]*Summary, error)
}

// StudentStore persists the per-mentor student state.
type StudentStore interface {
	Get(ctx context.Context, mentorID string) (*student.State, error)
	Put(ctx context.Context, mentorID string, st *student.State) error
}

// EventLog receives lifecycle events for durable persistence. All methods
// are best-effort from the orchestrator's perspective: a nil EventLog
// disables logging entirely.
type EventLog interface {
	SessionStarted(ctx context.Context, s *TeachingSession) error
	ConceptTaught(ctx context.Context, mentorID, sessionID string, ia Interaction) error
	SessionEnded(ctx context.Context, sum *Summary) error
}
