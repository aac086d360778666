// Package analytics aggregates closed-session history into engagement and
// efficiency metrics. All functions are pure: sparse or empty input yields
// documented defaults, never an error.
package analytics

import (
	"github.com/marqos/signmentor/internal/history"
)

// Trend classifies the direction of the engagement series.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

// trendThreshold is the minimum mean difference between the last three and
// the preceding three sessions to leave "stable".
const trendThreshold = 0.1

// minTrendSessions is the minimum history needed for a non-stable trend.
const minTrendSessions = 3

// Metrics is the aggregate view over a mentor's session history.
type Metrics struct {
	SessionCount        int     `json:"session_count"`
	OverallEngagement   float64 `json:"overall_engagement"`
	LearningEfficiency  float64 `json:"learning_efficiency"`
	CulturalAdaptation  float64 `json:"cultural_adaptation"`
	EmotionalStability  float64 `json:"emotional_stability"`
	ProgressConsistency float64 `json:"progress_consistency"`
	EngagementTrend     Trend   `json:"engagement_trend"`

	ErrorPatterns []string `json:"error_patterns"`
	StrengthAreas []string `json:"strength_areas"`
}

// DefaultMetrics is the documented result for an empty session history.
func DefaultMetrics() Metrics {
	return Metrics{
		EngagementTrend: TrendStable,
		ErrorPatterns:   []string{},
		StrengthAreas:   []string{},
	}
}

// Compute aggregates a session history into Metrics. An empty history
// returns DefaultMetrics.
func Compute(records []history.Record) Metrics {
	if len(records) == 0 {
		return DefaultMetrics()
	}

	participation := make([]float64, len(records))
	comprehension := make([]float64, len(records))
	success := make([]float64, len(records))
	adaptation := make([]float64, len(records))
	var engagement []float64

	for i, r := range records {
		participation[i] = r.Participation
		comprehension[i] = r.Comprehension
		success[i] = r.SuccessScore
		adaptation[i] = 0.8*r.TeachingEffectiveness + 0.2*r.Participation
		engagement = append(engagement, r.EngagementSamples...)
	}
	if len(engagement) == 0 {
		// Sessions without interaction detail fall back to per-session
		// participation as the engagement signal.
		engagement = participation
	}

	m := Metrics{
		SessionCount:        len(records),
		OverallEngagement:   mean(participation),
		LearningEfficiency:  mean(comprehension),
		CulturalAdaptation:  mean(adaptation),
		EmotionalStability:  stability(engagement),
		ProgressConsistency: stability(success),
		EngagementTrend:     classifyTrend(participation),
	}
	m.ErrorPatterns = detectErrorPatterns(comprehension, participation, success)
	m.StrengthAreas = detectStrengthAreas(comprehension, participation, success, m.EmotionalStability)
	return m
}

// stability maps a sample variance to a 0..1 stability score.
func stability(samples []float64) float64 {
	s := 1 - variance(samples)
	if s < 0 {
		return 0
	}
	return s
}

// classifyTrend compares the mean participation of the last three sessions
// against the up-to-three preceding ones. Histories shorter than
// minTrendSessions, or without a preceding window, are stable.
func classifyTrend(participation []float64) Trend {
	n := len(participation)
	if n < minTrendSessions {
		return TrendStable
	}

	recent := participation[n-3:]
	prevStart := n - 6
	if prevStart < 0 {
		prevStart = 0
	}
	previous := participation[prevStart : n-3]
	if len(previous) == 0 {
		return TrendStable
	}

	diff := mean(recent) - mean(previous)
	switch {
	case diff > trendThreshold:
		return TrendIncreasing
	case diff < -trendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
