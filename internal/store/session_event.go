package store

import (
	"context"
	"fmt"

	"github.com/marqos/signmentor/ent"
	"github.com/marqos/signmentor/ent/interactionevent"
	"github.com/marqos/signmentor/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetMentorID(data.MentorID).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTopic(data.Topic).
		SetMethod(data.Method).
		SetSuccessScore(data.SuccessScore).
		SetTeachingEffectiveness(data.TeachingEffectiveness).
		SetParticipation(data.Participation).
		SetInterventions(data.Interventions).
		SetDurationSecs(data.DurationSecs)

	if len(data.Concepts) > 0 {
		builder = builder.SetConcepts(data.Concepts)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendInteraction(ctx context.Context, data InteractionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InteractionEvent.Create().
		SetSequence(seqNum).
		SetMentorID(data.MentorID).
		SetSessionID(data.SessionID).
		SetConcept(data.Concept).
		SetExplanation(data.Explanation).
		SetReaction(data.Reaction).
		SetComprehension(data.Comprehension).
		SetEmotion(data.Emotion).
		SetNeedsHelp(data.NeedsHelp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interaction event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionHistory(ctx context.Context, mentorID string) ([]SessionRecord, error) {
	events, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.MentorID(mentorID),
			sessionevent.Action("end"),
		).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		rec := entSessionRecord(e)

		// Topic and method live on the start event.
		start, err := r.SessionStart(ctx, e.SessionID)
		if err != nil {
			return nil, err
		}
		if start != nil {
			rec.Topic = start.Topic
			rec.Method = start.Method
			rec.Concepts = start.Concepts
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *eventRepo) SessionStart(ctx context.Context, sessionID string) (*SessionRecord, error) {
	e, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.SessionID(sessionID),
			sessionevent.Action("start"),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session start: %w", err)
	}
	rec := entSessionRecord(e)
	return &rec, nil
}

func (r *eventRepo) Interactions(ctx context.Context, sessionID string) ([]InteractionRecord, error) {
	events, err := r.client.InteractionEvent.Query().
		Where(interactionevent.SessionID(sessionID)).
		Order(ent.Asc(interactionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}

	records := make([]InteractionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, InteractionRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			MentorID:      e.MentorID,
			SessionID:     e.SessionID,
			Concept:       e.Concept,
			Explanation:   e.Explanation,
			Reaction:      e.Reaction,
			Comprehension: e.Comprehension,
			Emotion:       e.Emotion,
			NeedsHelp:     e.NeedsHelp,
		})
	}
	return records, nil
}

func entSessionRecord(e *ent.SessionEvent) SessionRecord {
	return SessionRecord{
		Sequence:              e.Sequence,
		Timestamp:             e.Timestamp,
		MentorID:              e.MentorID,
		SessionID:             e.SessionID,
		Topic:                 e.Topic,
		Method:                e.Method,
		Concepts:              e.Concepts,
		SuccessScore:          e.SuccessScore,
		TeachingEffectiveness: e.TeachingEffectiveness,
		Participation:         e.Participation,
		Interventions:         e.Interventions,
		DurationSecs:          e.DurationSecs,
	}
}
