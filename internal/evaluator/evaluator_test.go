package evaluator

import (
	"context"
	"math"
	"testing"

	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/student"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestEvaluate_EmptyHistory(t *testing.T) {
	ev, err := New().Evaluate(context.Background(), "m1", nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.EstimatedLevel != student.LevelA1 {
		t.Errorf("level = %s, want A1", ev.EstimatedLevel)
	}
	if ev.GlobalScore != 0 || ev.SessionCount != 0 {
		t.Errorf("empty history evaluation = %+v, want zeroes", ev)
	}
}

func TestEvaluate_GlobalScoreAndLevel(t *testing.T) {
	records := []history.Record{
		{SuccessScore: 0.9, Participation: 0.8, TeachingEffectiveness: 0.7},
		{SuccessScore: 0.9, Participation: 0.8, TeachingEffectiveness: 0.7},
	}
	ev, err := New().Evaluate(context.Background(), "m1", records)
	if err != nil {
		t.Fatal(err)
	}

	// 0.6*0.9 + 0.4*0.8 = 0.86
	if !almostEqual(ev.GlobalScore, 0.86) {
		t.Errorf("GlobalScore = %f, want 0.86", ev.GlobalScore)
	}
	if ev.EstimatedLevel != student.LevelC1 {
		t.Errorf("level = %s, want C1", ev.EstimatedLevel)
	}
	if !almostEqual(ev.Competencies["reception"], 0.9) {
		t.Errorf("reception = %f, want 0.9", ev.Competencies["reception"])
	}
	if !almostEqual(ev.Competencies["production"], 0.8) {
		t.Errorf("production = %f, want 0.8", ev.Competencies["production"])
	}
}
