package store

import (
	"context"
	"time"

	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/student"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle event for persistence.
type SessionEventData struct {
	MentorID              string
	SessionID             string
	Action                string // "start" or "end"
	Topic                 string
	Method                string
	Concepts              []string
	SuccessScore          float64
	TeachingEffectiveness float64
	Participation         float64
	Interventions         int
	DurationSecs          int
}

// InteractionEventData captures a single taught concept and its reaction.
type InteractionEventData struct {
	MentorID      string
	SessionID     string
	Concept       string
	Explanation   string
	Reaction      string
	Comprehension float64
	Emotion       string
	NeedsHelp     bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a persisted LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionRecord is the read model for a completed teaching session.
type SessionRecord struct {
	Sequence              int64
	Timestamp             time.Time
	MentorID              string
	SessionID             string
	Topic                 string
	Method                string
	Concepts              []string
	SuccessScore          float64
	TeachingEffectiveness float64
	Participation         float64
	Interventions         int
	DurationSecs          int
}

// InteractionRecord is the read model for a persisted interaction.
type InteractionRecord struct {
	Sequence      int64
	Timestamp     time.Time
	MentorID      string
	SessionID     string
	Concept       string
	Explanation   string
	Reaction      string
	Comprehension float64
	Emotion       string
	NeedsHelp     bool
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendInteraction records a taught concept and the student's reaction.
	AppendInteraction(ctx context.Context, data InteractionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionHistory returns completed sessions for a mentor in
	// chronological order.
	SessionHistory(ctx context.Context, mentorID string) ([]SessionRecord, error)

	// SessionStart returns the start event for a session, or nil if
	// the session was never started.
	SessionStart(ctx context.Context, sessionID string) (*SessionRecord, error)

	// Interactions returns the interactions of a session in order.
	Interactions(ctx context.Context, sessionID string) ([]InteractionRecord, error)

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// StudentSnapshot is a point-in-time capture of a mentor's simulated student.
type StudentSnapshot struct {
	ID        int
	MentorID  string
	Sequence  int64
	Timestamp time.Time
	Student   student.State
}

// SnapshotRepo manages simulated-student state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot for a mentor.
	Save(ctx context.Context, snap *StudentSnapshot) error

	// Latest returns the most recent snapshot for a mentor, or nil if
	// none exist.
	Latest(ctx context.Context, mentorID string) (*StudentSnapshot, error)

	// Prune deletes all but the N most recent snapshots for a mentor.
	Prune(ctx context.Context, mentorID string, keep int) error

	// Delete removes all snapshots for a mentor.
	Delete(ctx context.Context, mentorID string) error
}

// ProfileRepo manages mentor profiles.
type ProfileRepo interface {
	// Save upserts a mentor profile.
	Save(ctx context.Context, p *mentor.Profile) error

	// Get returns the profile for a mentor, or nil if not found.
	Get(ctx context.Context, mentorID string) (*mentor.Profile, error)
}
