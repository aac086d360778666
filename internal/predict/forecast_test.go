package predict

import (
	"math"
	"testing"

	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/student"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func flatRecords(score float64, n int) []history.Record {
	records := make([]history.Record, n)
	for i := range records {
		records[i] = history.Record{
			SuccessScore:  score,
			Comprehension: score,
			ProgressDelta: 0.02,
			ConceptCount:  5,
		}
	}
	return records
}

func TestForecast_SparseHistoryIsDefault(t *testing.T) {
	st := &student.State{Level: student.LevelA1, Progress: 0.5}

	p := Forecast(st, flatRecords(0.9, 2))
	if !p.Degraded {
		t.Error("2 sessions should degrade to defaults")
	}
	if !almostEqual(p.OptimalSessionsPerWeek, 3) {
		t.Errorf("default frequency = %f, want 3", p.OptimalSessionsPerWeek)
	}
	if p.NextLevelProbability != 0 || p.PlateauRisk != 0 {
		t.Errorf("default projection should be zero-valued, got %+v", p)
	}

	if p := Forecast(nil, flatRecords(0.9, 5)); !p.Degraded {
		t.Error("nil student should degrade to defaults")
	}
}

func TestForecast_PlateauOnFlatScores(t *testing.T) {
	// 5 sessions with identical scores: zero variance, flat trend.
	st := &student.State{Level: student.LevelB1, Progress: 0.4}
	p := Forecast(st, flatRecords(0.9, 5))

	if !almostEqual(p.PlateauRisk, 0.8) {
		t.Errorf("PlateauRisk = %f, want 0.8", p.PlateauRisk)
	}
	if p.Degraded {
		t.Error("5 sessions should not be degraded")
	}
}

func TestForecast_DeclineRaisesRisk(t *testing.T) {
	records := []history.Record{
		{SuccessScore: 0.9, Comprehension: 0.9, ProgressDelta: 0.03},
		{SuccessScore: 0.7, Comprehension: 0.7, ProgressDelta: 0.02},
		{SuccessScore: 0.5, Comprehension: 0.5, ProgressDelta: 0.01},
		{SuccessScore: 0.3, Comprehension: 0.3, ProgressDelta: 0.01},
	}
	st := &student.State{Level: student.LevelA2, Progress: 0.3}
	p := Forecast(st, records)

	if !almostEqual(p.PlateauRisk, 0.9) {
		t.Errorf("PlateauRisk = %f, want 0.9 on decline", p.PlateauRisk)
	}
}

func TestNextLevelProbability_Bounds(t *testing.T) {
	// High progress, improving, comprehending, consistent: clamps at 1.
	p := nextLevelProbability(0.9, trendImproving, 0.9, 0.01)
	if !almostEqual(p, 1.0) {
		t.Errorf("probability = %f, want 1.0", p)
	}

	// Low progress, declining, struggling, erratic: floors at >= 0.
	p = nextLevelProbability(0.0, trendDeclining, 0.3, 0.2)
	if p < 0 || p > 1 {
		t.Errorf("probability = %f, want within [0,1]", p)
	}
}

func TestOptimalFrequency(t *testing.T) {
	// A1 beginner struggling: 3*1.2*1.3 = 4.68
	if f := optimalFrequency(student.LevelA1, 0.4); !almostEqual(f, 4.68) {
		t.Errorf("A1 struggling frequency = %f, want 4.68", f)
	}
	// C1 cruising: 3*0.8*0.9 = 2.16
	if f := optimalFrequency(student.LevelC1, 0.85); !almostEqual(f, 2.16) {
		t.Errorf("C1 cruising frequency = %f, want 2.16", f)
	}
	// Clamped to [2,5].
	if f := optimalFrequency(student.LevelC2, 0.9); f < 2 {
		t.Errorf("frequency = %f, want >= 2", f)
	}
}

func TestWeeksToNextLevel(t *testing.T) {
	records := flatRecords(0.7, 4) // ProgressDelta 0.02 each
	// remaining 0.5 / 0.02 = 25 sessions; 25/3.0 → 9 weeks
	weeks := weeksToNextLevel(0.5, records, 3.0)
	if weeks != 9 {
		t.Errorf("weeks = %d, want 9", weeks)
	}
	if w := weeksToNextLevel(1.0, records, 3.0); w != 0 {
		t.Errorf("completed progress weeks = %d, want 0", w)
	}
}

func TestFocusAreas(t *testing.T) {
	st := &student.State{
		Level:      student.LevelA2,
		Weaknesses: []string{"fingerspelling"},
	}
	records := []history.Record{
		{Comprehension: 0.4, Interventions: 3, ConceptCount: 5},
		{Comprehension: 0.45, Interventions: 2, ConceptCount: 5},
		{Comprehension: 0.5, Interventions: 2, ConceptCount: 5},
	}
	p := Forecast(st, records)

	want := map[string]bool{}
	for _, a := range p.FocusAreas {
		want[a] = true
	}
	if !want["comprehension-reinforcement"] {
		t.Errorf("FocusAreas = %v, want comprehension-reinforcement", p.FocusAreas)
	}
	if !want["guided-repetition"] {
		t.Errorf("FocusAreas = %v, want guided-repetition", p.FocusAreas)
	}
	if !want["fingerspelling"] {
		t.Errorf("FocusAreas = %v, want student weakness included", p.FocusAreas)
	}
}
