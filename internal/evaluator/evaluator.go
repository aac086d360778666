// Package evaluator provides the baseline CEFR-style assessment that the
// insights orchestrator fuses with the analytic engines.
package evaluator

import (
	"context"

	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/student"
)

// BaseEvaluation is the baseline assessment for a mentor's student.
type BaseEvaluation struct {
	MentorID       string             `json:"mentor_id"`
	EstimatedLevel student.Level      `json:"estimated_level"`
	GlobalScore    float64            `json:"global_score"`
	Competencies   map[string]float64 `json:"competencies"`
	SessionCount   int                `json:"session_count"`
}

// CEFR evaluates session history against the six-level proficiency bands.
type CEFR struct{}

// New creates a CEFR evaluator.
func New() *CEFR {
	return &CEFR{}
}

// levelBands map a global score floor to an estimated level, checked from
// the top down.
var levelBands = []struct {
	floor float64
	level student.Level
}{
	{0.92, student.LevelC2},
	{0.85, student.LevelC1},
	{0.75, student.LevelB2},
	{0.65, student.LevelB1},
	{0.5, student.LevelA2},
	{0, student.LevelA1},
}

// Evaluate produces the baseline assessment from session history. Empty
// history yields an A1 default with zero scores rather than an error.
func (e *CEFR) Evaluate(_ context.Context, mentorID string, records []history.Record) (BaseEvaluation, error) {
	ev := BaseEvaluation{
		MentorID:       mentorID,
		EstimatedLevel: student.LevelA1,
		Competencies:   map[string]float64{},
		SessionCount:   len(records),
	}
	if len(records) == 0 {
		return ev, nil
	}

	var success, participation, effectiveness float64
	for _, r := range records {
		success += r.SuccessScore
		participation += r.Participation
		effectiveness += r.TeachingEffectiveness
	}
	n := float64(len(records))
	success /= n
	participation /= n
	effectiveness /= n

	ev.GlobalScore = 0.6*success + 0.4*participation
	ev.Competencies = map[string]float64{
		"reception":   success,
		"production":  0.5*success + 0.5*effectiveness,
		"interaction": participation,
	}

	for _, band := range levelBands {
		if ev.GlobalScore >= band.floor {
			ev.EstimatedLevel = band.level
			break
		}
	}
	return ev, nil
}
