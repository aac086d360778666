package simulation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/marqos/signmentor/internal/llm"
	"github.com/marqos/signmentor/internal/student"
)

func testStudent() *student.State {
	return &student.State{
		Name:              "Noa",
		Personality:       student.PersonalityCurious,
		Level:             student.LevelA1,
		Mood:              student.MoodNeutral,
		ComprehensionRate: 0.5,
	}
}

func TestSimulate_NilProviderUsesHeuristic(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	r, err := svc.Simulate(context.Background(), testStudent(), "hello", "wave with an open palm near your temple, like greeting a friend", "storytelling")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if r.Text == "" {
		t.Error("empty reaction text")
	}
	if r.Comprehension < 0.05 || r.Comprehension > 0.98 {
		t.Errorf("comprehension = %f, out of heuristic bounds", r.Comprehension)
	}
}

func TestSimulate_HeuristicDeterministic(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	ctx := context.Background()

	a, _ := svc.Simulate(ctx, testStudent(), "hello", "wave with an open palm", "storytelling")
	b, _ := svc.Simulate(ctx, testStudent(), "hello", "wave with an open palm", "storytelling")
	if a.Comprehension != b.Comprehension || a.Text != b.Text {
		t.Error("heuristic reaction is not deterministic for identical input")
	}
}

func TestSimulate_ShortExplanationScoresLower(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	ctx := context.Background()

	short, _ := svc.Simulate(ctx, testStudent(), "hello", "wave", "storytelling")
	good, _ := svc.Simulate(ctx, testStudent(), "hello", "for hello, wave with an open palm near your temple and smile — like spotting a friend across the room", "storytelling")
	if short.Comprehension >= good.Comprehension {
		t.Errorf("short (%f) should score below developed (%f)", short.Comprehension, good.Comprehension)
	}
}

func TestSimulate_UsesProviderPayload(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{
		"reaction":         "I got it! The handshape makes sense now.",
		"comprehension":    0.85,
		"confusion_points": []string{},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	svc := NewService(mock, DefaultConfig())

	r, err := svc.Simulate(context.Background(), testStudent(), "hello", "wave with an open palm", "storytelling")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if r.Comprehension != 0.85 {
		t.Errorf("comprehension = %f, want 0.85", r.Comprehension)
	}
	if r.Text != "I got it! The handshape makes sense now." {
		t.Errorf("unexpected reaction text %q", r.Text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestSimulate_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → ErrProviderUnavailable
	svc := NewService(mock, DefaultConfig())

	r, err := svc.Simulate(context.Background(), testStudent(), "hello", "wave with an open palm near your temple", "storytelling")
	if err != nil {
		t.Fatalf("Simulate should degrade, got error: %v", err)
	}
	if r.Text == "" {
		t.Error("fallback reaction is empty")
	}
}

func TestSimulate_ClampsComprehension(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{
		"reaction":      "way too enthusiastic",
		"comprehension": 1.7,
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	svc := NewService(mock, DefaultConfig())

	r, _ := svc.Simulate(context.Background(), testStudent(), "hello", "wave", "storytelling")
	if r.Comprehension != 1.0 {
		t.Errorf("comprehension = %f, want clamped to 1.0", r.Comprehension)
	}
}
