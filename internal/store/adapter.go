package store

import (
	"context"
	"time"

	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

// EventLog adapts the EventRepo to the session.EventLog interface so the
// orchestrator can persist lifecycle events without depending on ent.
type EventLog struct {
	repo EventRepo
}

// NewEventLog wraps an EventRepo as a session event log.
func NewEventLog(repo EventRepo) *EventLog {
	return &EventLog{repo: repo}
}

func (l *EventLog) SessionStarted(ctx context.Context, s *session.TeachingSession) error {
	return l.repo.AppendSessionEvent(ctx, SessionEventData{
		MentorID:  s.MentorID,
		SessionID: s.ID,
		Action:    "start",
		Topic:     s.Topic,
		Method:    s.Method,
		Concepts:  s.Concepts,
	})
}

func (l *EventLog) ConceptTaught(ctx context.Context, mentorID, sessionID string, ia session.Interaction) error {
	return l.repo.AppendInteraction(ctx, InteractionEventData{
		MentorID:      mentorID,
		SessionID:     sessionID,
		Concept:       ia.Concept,
		Explanation:   ia.Explanation,
		Reaction:      ia.Reaction,
		Comprehension: ia.Comprehension,
		Emotion:       string(ia.Emotion),
		NeedsHelp:     ia.NeedsHelp,
	})
}

func (l *EventLog) SessionEnded(ctx context.Context, sum *session.Summary) error {
	return l.repo.AppendSessionEvent(ctx, SessionEventData{
		MentorID:              sum.MentorID,
		SessionID:             sum.SessionID,
		Action:                "end",
		SuccessScore:          sum.Metrics.SuccessScore,
		TeachingEffectiveness: sum.Metrics.TeachingEffectiveness,
		Participation:         sum.Metrics.ParticipationRate,
		Interventions:         sum.Metrics.Interventions,
		DurationSecs:          int(sum.EndedAt.Sub(sum.StartedAt).Seconds()),
	})
}

// StudentStore adapts the SnapshotRepo to the session.StudentStore interface.
// Every Put writes a fresh snapshot; Get restores the latest.
type StudentStore struct {
	snaps SnapshotRepo

	// KeepSnapshots bounds retained snapshots per mentor. Zero disables
	// pruning.
	KeepSnapshots int
}

// NewStudentStore wraps a SnapshotRepo as a student store.
func NewStudentStore(snaps SnapshotRepo) *StudentStore {
	return &StudentStore{snaps: snaps, KeepSnapshots: 20}
}

func (s *StudentStore) Get(ctx context.Context, mentorID string) (*student.State, error) {
	snap, err := s.snaps.Latest(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}
	st := snap.Student
	return &st, nil
}

func (s *StudentStore) Put(ctx context.Context, mentorID string, st *student.State) error {
	err := s.snaps.Save(ctx, &StudentSnapshot{
		MentorID:  mentorID,
		Timestamp: time.Now().UTC(),
		Student:   *st,
	})
	if err != nil {
		return err
	}
	if s.KeepSnapshots > 0 {
		return s.snaps.Prune(ctx, mentorID, s.KeepSnapshots)
	}
	return nil
}

// LoadSummaries reconstructs closed-session summaries for a mentor from the
// event log, for feeding the analytic engines after a restart.
func LoadSummaries(ctx context.Context, repo EventRepo, mentorID string) ([]*session.Summary, error) {
	records, err := repo.SessionHistory(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*session.Summary, 0, len(records))
	for _, rec := range records {
		interactions, err := repo.Interactions(ctx, rec.SessionID)
		if err != nil {
			return nil, err
		}

		sum := &session.Summary{
			SessionID: rec.SessionID,
			MentorID:  rec.MentorID,
			Topic:     rec.Topic,
			Method:    rec.Method,
			StartedAt: rec.Timestamp.Add(-time.Duration(rec.DurationSecs) * time.Second),
			EndedAt:   rec.Timestamp,
			Metrics: session.Metrics{
				ParticipationRate:     rec.Participation,
				TeachingEffectiveness: rec.TeachingEffectiveness,
				SuccessScore:          rec.SuccessScore,
				Interventions:         rec.Interventions,
			},
		}
		for _, ia := range interactions {
			sum.Interactions = append(sum.Interactions, session.Interaction{
				Concept:       ia.Concept,
				Explanation:   ia.Explanation,
				Reaction:      ia.Reaction,
				Comprehension: ia.Comprehension,
				Emotion:       student.Mood(ia.Emotion),
				NeedsHelp:     ia.NeedsHelp,
				At:            ia.Timestamp,
			})
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}
