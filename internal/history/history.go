// Package history provides the harmonized read-only session view consumed
// by the analytics, predictive and compatibility engines. Summaries from the
// orchestrator are flattened into Records so each engine can run on its own
// snapshot with no shared mutable state.
package history

import (
	"time"

	"github.com/marqos/signmentor/internal/session"
)

// Record is one closed session reduced to the measurements the engines need.
type Record struct {
	SessionID string
	MentorID  string
	Topic     string
	StartedAt time.Time
	EndedAt   time.Time

	// Comprehension is the mean per-concept comprehension for the session.
	Comprehension float64

	Participation         float64
	TeachingEffectiveness float64
	SuccessScore          float64
	ProgressDelta         float64
	Interventions         int
	ConceptCount          int

	// EngagementSamples are the per-interaction comprehension scores in
	// order, used as the engagement-evolution signal.
	EngagementSamples []float64
}

// Harmonize flattens session summaries into engine records, preserving
// order.
func Harmonize(summaries []*session.Summary) []Record {
	records := make([]Record, 0, len(summaries))
	for _, s := range summaries {
		if s == nil {
			continue
		}
		r := Record{
			SessionID:             s.SessionID,
			MentorID:              s.MentorID,
			Topic:                 s.Topic,
			StartedAt:             s.StartedAt,
			EndedAt:               s.EndedAt,
			Comprehension:         s.Metrics.SuccessScore,
			Participation:         s.Metrics.ParticipationRate,
			TeachingEffectiveness: s.Metrics.TeachingEffectiveness,
			SuccessScore:          s.Metrics.SuccessScore,
			ProgressDelta:         s.ProgressDelta,
			Interventions:         s.Metrics.Interventions,
			ConceptCount:          len(s.Interactions),
		}
		for _, ia := range s.Interactions {
			r.EngagementSamples = append(r.EngagementSamples, ia.Comprehension)
		}
		records = append(records, r)
	}
	return records
}
