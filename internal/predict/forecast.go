// Package predict produces forward-looking estimates from session history:
// next-level probability, plateau risk, optimal cadence and focus areas.
// The heuristics are closed-form over recent history; no model is trained.
package predict

import (
	"math"

	"github.com/marqos/signmentor/internal/analytics"
	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/student"
)

// MinSessions is the minimum history length for a non-default projection.
const MinSessions = 3

// recentWindow caps how many trailing sessions feed the recent-score
// statistics.
const recentWindow = 5

// Tuning constants. These are fixed behavioral values; they carry no
// empirical derivation and must not be adjusted casually.
const (
	baseProbabilityBoost = 0.3
	trendBonus           = 0.2
	patternBonus         = 0.1
	consistencyBonus     = 0.1

	plateauFlatVariance = 0.05
	plateauFlatRisk     = 0.8
	plateauDeclineRisk  = 0.9
	plateauRiskCap      = 0.6

	baseSessionsPerWeek = 3.0
	minSessionsPerWeek  = 2.0
	maxSessionsPerWeek  = 5.0

	slopeThreshold = 0.02
)

// Projection is the forecast bundle for one mentor/student pair.
type Projection struct {
	NextLevelProbability      float64  `json:"next_level_probability"`
	PlateauRisk               float64  `json:"plateau_risk"`
	OptimalSessionsPerWeek    float64  `json:"optimal_sessions_per_week"`
	EstimatedWeeksToNextLevel int      `json:"estimated_weeks_to_next_level"`
	FocusAreas                []string `json:"focus_areas"`

	// Degraded is true when the history was too sparse and the projection
	// holds defaults.
	Degraded bool `json:"degraded"`
}

// DefaultProjection is the documented result for sparse history.
func DefaultProjection() Projection {
	return Projection{
		OptimalSessionsPerWeek: baseSessionsPerWeek,
		FocusAreas:             []string{},
		Degraded:               true,
	}
}

// Forecast computes the projection for a student given session history.
// Fewer than MinSessions records yields DefaultProjection.
func Forecast(st *student.State, records []history.Record) Projection {
	if st == nil || len(records) < MinSessions {
		return DefaultProjection()
	}

	recent := recentScores(records)
	recentVar := variance(recent)
	avgComprehension := meanField(records, func(r history.Record) float64 { return r.Comprehension })
	trend := classifySlope(analytics.Slope(recent))

	p := Projection{
		NextLevelProbability:   nextLevelProbability(st.Progress, trend, avgComprehension, recentVar),
		PlateauRisk:            plateauRisk(recentVar, trend),
		OptimalSessionsPerWeek: optimalFrequency(st.Level, avgComprehension),
		FocusAreas:             focusAreas(st, records, avgComprehension),
	}
	p.EstimatedWeeksToNextLevel = weeksToNextLevel(st.Progress, records, p.OptimalSessionsPerWeek)
	return p
}

type scoreTrend int

const (
	trendStable scoreTrend = iota
	trendImproving
	trendDeclining
)

func classifySlope(slope float64) scoreTrend {
	switch {
	case slope > slopeThreshold:
		return trendImproving
	case slope < -slopeThreshold:
		return trendDeclining
	default:
		return trendStable
	}
}

func nextLevelProbability(progress float64, trend scoreTrend, avgComprehension, recentVar float64) float64 {
	p := math.Min(1, progress+baseProbabilityBoost)

	switch trend {
	case trendImproving:
		p += trendBonus
	case trendDeclining:
		p -= trendBonus
	}

	if avgComprehension > 0.7 {
		p += patternBonus
	}

	// Consistency adjustment from recent-score variance.
	switch {
	case recentVar < 0.03:
		p += consistencyBonus
	case recentVar > 0.1:
		p -= consistencyBonus
	}

	return clamp01(p)
}

func plateauRisk(recentVar float64, trend scoreTrend) float64 {
	if trend == trendDeclining {
		return plateauDeclineRisk
	}
	if recentVar < plateauFlatVariance && trend == trendStable {
		return plateauFlatRisk
	}
	return math.Min(recentVar*2, plateauRiskCap)
}

// levelFrequencyMultiplier scales the session cadence by proficiency level:
// beginners benefit from more frequent short sessions.
var levelFrequencyMultiplier = map[student.Level]float64{
	student.LevelA1: 1.2,
	student.LevelA2: 1.1,
	student.LevelB1: 1.0,
	student.LevelB2: 0.9,
}

func optimalFrequency(level student.Level, avgComprehension float64) float64 {
	mult, ok := levelFrequencyMultiplier[level]
	if !ok {
		mult = 0.8
	}
	f := baseSessionsPerWeek * mult

	switch {
	case avgComprehension > 0.8:
		f *= 0.9
	case avgComprehension < 0.5:
		f *= 1.3
	}

	if f < minSessionsPerWeek {
		return minSessionsPerWeek
	}
	if f > maxSessionsPerWeek {
		return maxSessionsPerWeek
	}
	return f
}

// fallbackProgressPerSession is assumed when history carries no usable
// progress deltas.
const fallbackProgressPerSession = 0.02

func weeksToNextLevel(progress float64, records []history.Record, weeklyFrequency float64) int {
	remaining := 1 - progress
	if remaining <= 0 {
		return 0
	}

	avgDelta := meanField(records, func(r history.Record) float64 { return r.ProgressDelta })
	if avgDelta <= 0 {
		avgDelta = fallbackProgressPerSession
	}

	sessionsNeeded := math.Ceil(remaining / avgDelta)
	return int(math.Ceil(sessionsNeeded / weeklyFrequency))
}

func focusAreas(st *student.State, records []history.Record, avgComprehension float64) []string {
	areas := []string{}
	if avgComprehension < 0.6 {
		areas = append(areas, "comprehension-reinforcement")
	}

	totalInterventions := 0
	totalConcepts := 0
	for _, r := range records {
		totalInterventions += r.Interventions
		totalConcepts += r.ConceptCount
	}
	if totalConcepts > 0 && float64(totalInterventions)/float64(totalConcepts) > 0.3 {
		areas = append(areas, "guided-repetition")
	}

	areas = append(areas, st.Weaknesses...)

	if len(areas) == 0 {
		areas = append(areas, "fluency-expansion")
	}
	return areas
}

func recentScores(records []history.Record) []float64 {
	start := len(records) - recentWindow
	if start < 0 {
		start = 0
	}
	scores := make([]float64, 0, recentWindow)
	for _, r := range records[start:] {
		scores = append(scores, r.SuccessScore)
	}
	return scores
}

func meanField(records []history.Record, f func(history.Record) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		sum += f(r)
	}
	return sum / float64(len(records))
}

func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := 0.0
	for _, x := range xs {
		m += x
	}
	m /= float64(len(xs))
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
