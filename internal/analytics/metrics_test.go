package analytics

import (
	"math"
	"testing"

	"github.com/marqos/signmentor/internal/history"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func record(participation, comprehension, success, effectiveness float64) history.Record {
	return history.Record{
		Participation:         participation,
		Comprehension:         comprehension,
		SuccessScore:          success,
		TeachingEffectiveness: effectiveness,
	}
}

func TestCompute_EmptyIsDefault(t *testing.T) {
	m := Compute(nil)
	want := DefaultMetrics()

	if m.SessionCount != 0 || m.OverallEngagement != 0 || m.EngagementTrend != want.EngagementTrend {
		t.Errorf("Compute(nil) = %+v, want defaults", m)
	}
	if m.ErrorPatterns == nil || m.StrengthAreas == nil {
		t.Error("default pattern slices should be empty, not nil")
	}
	// Idempotent: repeated calls give the same object.
	again := Compute([]history.Record{})
	if again.EngagementTrend != TrendStable || again.SessionCount != 0 {
		t.Errorf("Compute(empty) = %+v, want defaults", again)
	}
}

func TestCompute_Means(t *testing.T) {
	records := []history.Record{
		record(0.8, 0.7, 0.75, 0.6),
		record(0.6, 0.5, 0.65, 0.8),
	}
	m := Compute(records)

	if !almostEqual(m.OverallEngagement, 0.7) {
		t.Errorf("OverallEngagement = %f, want 0.7", m.OverallEngagement)
	}
	if !almostEqual(m.LearningEfficiency, 0.6) {
		t.Errorf("LearningEfficiency = %f, want 0.6", m.LearningEfficiency)
	}
	// mean(0.8*0.6+0.2*0.8, 0.8*0.8+0.2*0.6) = mean(0.64, 0.76) = 0.7
	if !almostEqual(m.CulturalAdaptation, 0.7) {
		t.Errorf("CulturalAdaptation = %f, want 0.7", m.CulturalAdaptation)
	}
}

func TestCompute_ConsistencyFromVariance(t *testing.T) {
	// Zero variance: perfect consistency.
	records := []history.Record{
		record(0.9, 0.9, 0.9, 0.5),
		record(0.9, 0.9, 0.9, 0.5),
		record(0.9, 0.9, 0.9, 0.5),
	}
	m := Compute(records)
	if !almostEqual(m.ProgressConsistency, 1.0) {
		t.Errorf("ProgressConsistency = %f, want 1.0", m.ProgressConsistency)
	}
	if !almostEqual(m.EmotionalStability, 1.0) {
		t.Errorf("EmotionalStability = %f, want 1.0", m.EmotionalStability)
	}
}

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		name string
		part []float64
		want Trend
	}{
		{"too-short", []float64{0.5, 0.9}, TrendStable},
		{"no-previous-window", []float64{0.5, 0.6, 0.7}, TrendStable},
		{"increasing", []float64{0.4, 0.4, 0.4, 0.8, 0.8, 0.8}, TrendIncreasing},
		{"decreasing", []float64{0.9, 0.9, 0.9, 0.5, 0.5, 0.5}, TrendDecreasing},
		{"flat", []float64{0.7, 0.7, 0.7, 0.72, 0.7, 0.71}, TrendStable},
	}
	for _, tc := range cases {
		if got := classifyTrend(tc.part); got != tc.want {
			t.Errorf("%s: classifyTrend = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSlope(t *testing.T) {
	if s := Slope([]float64{0.1, 0.2, 0.3, 0.4}); !almostEqual(s, 0.1) {
		t.Errorf("Slope = %f, want 0.1", s)
	}
	if s := Slope([]float64{0.5, 0.5, 0.5}); !almostEqual(s, 0) {
		t.Errorf("flat Slope = %f, want 0", s)
	}
	if s := Slope([]float64{0.5}); s != 0 {
		t.Errorf("single-point Slope = %f, want 0", s)
	}
}

func TestPatternDetection(t *testing.T) {
	// Struggling history: low comprehension, low participation.
	weak := []history.Record{
		record(0.4, 0.4, 0.4, 0.5),
		record(0.4, 0.45, 0.42, 0.5),
	}
	m := Compute(weak)
	if !contains(m.ErrorPatterns, "temporal_confusion") {
		t.Errorf("ErrorPatterns = %v, want temporal_confusion", m.ErrorPatterns)
	}
	if !contains(m.ErrorPatterns, "attention_drift") {
		t.Errorf("ErrorPatterns = %v, want attention_drift", m.ErrorPatterns)
	}

	// Strong history: high success and participation.
	strong := []history.Record{
		record(0.9, 0.9, 0.9, 0.8),
		record(0.92, 0.88, 0.91, 0.8),
	}
	m = Compute(strong)
	if !contains(m.StrengthAreas, "manual_precision") {
		t.Errorf("StrengthAreas = %v, want manual_precision", m.StrengthAreas)
	}
	if !contains(m.StrengthAreas, "expressive_engagement") {
		t.Errorf("StrengthAreas = %v, want expressive_engagement", m.StrengthAreas)
	}
	if len(m.ErrorPatterns) != 0 {
		t.Errorf("strong history ErrorPatterns = %v, want none", m.ErrorPatterns)
	}
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
