package insights

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/marqos/signmentor/internal/evaluator"
	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func testProfile() mentor.Profile {
	return mentor.Profile{
		ID:               "mentor-1",
		Personality:      mentor.PersonalityEmpathetic,
		Style:            mentor.StyleSupportive,
		Adaptability:     0.7,
		YearsExperience:  4,
		PreferredMethods: []string{"mirrored-practice"},
	}
}

func testStudent() *student.State {
	return &student.State{
		Name:              "Noa",
		Personality:       student.PersonalityShy,
		Level:             student.LevelA2,
		Progress:          0.4,
		ComprehensionRate: 0.6,
	}
}

func testSummaries(n int) []*session.Summary {
	out := make([]*session.Summary, n)
	for i := range out {
		out[i] = &session.Summary{
			SessionID: string(rune('a' + i)),
			MentorID:  "mentor-1",
			Metrics: session.Metrics{
				SuccessScore:          0.7,
				ParticipationRate:     0.75,
				TeachingEffectiveness: 0.6,
			},
			ProgressDelta: 0.02,
		}
	}
	return out
}

func TestGenerateInsights_Populated(t *testing.T) {
	svc := NewService(evaluator.New())
	b, err := svc.GenerateInsights(context.Background(), testProfile(), testStudent(), testSummaries(4))
	if err != nil {
		t.Fatalf("GenerateInsights: %v", err)
	}

	if b.MentorID != "mentor-1" || b.StudentName != "Noa" {
		t.Errorf("bundle identity = %s/%s", b.MentorID, b.StudentName)
	}
	if b.Metrics.SessionCount != 4 {
		t.Errorf("SessionCount = %d, want 4", b.Metrics.SessionCount)
	}
	if b.Projection.Degraded {
		t.Error("4 sessions should produce a real projection")
	}
	if len(b.Recommendations) == 0 {
		t.Error("no consolidated recommendations")
	}
	if b.Confidence <= 0 || b.Confidence > 1 {
		t.Errorf("Confidence = %f, out of (0,1]", b.Confidence)
	}
}

func TestGenerateInsights_CacheHitReturnsSameBundle(t *testing.T) {
	svc := NewService(evaluator.New())
	ctx := context.Background()

	first, err := svc.GenerateInsights(ctx, testProfile(), testStudent(), testSummaries(3))
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.GenerateInsights(ctx, testProfile(), testStudent(), testSummaries(3))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second call within TTL should return the identical bundle")
	}
}

func TestGenerateInsights_ExpiredEntryRecomputes(t *testing.T) {
	svc := NewService(evaluator.New())
	ctx := context.Background()

	// Freeze the cache clock, then advance past the TTL.
	base := time.Now()
	now := base
	svc.cache.now = func() time.Time { return now }

	first, err := svc.GenerateInsights(ctx, testProfile(), testStudent(), testSummaries(3))
	if err != nil {
		t.Fatal(err)
	}

	now = base.Add(31 * time.Minute)
	second, err := svc.GenerateInsights(ctx, testProfile(), testStudent(), testSummaries(3))
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("expired cache entry must be recomputed, not returned")
	}
}

func TestGenerateInsights_NewSessionChangesKey(t *testing.T) {
	svc := NewService(evaluator.New())
	ctx := context.Background()

	first, _ := svc.GenerateInsights(ctx, testProfile(), testStudent(), testSummaries(3))
	second, _ := svc.GenerateInsights(ctx, testProfile(), testStudent(), testSummaries(4))
	if first == second {
		t.Error("additional session must change the cache key")
	}
}

type failingEvaluator struct{}

func (failingEvaluator) Evaluate(context.Context, string, []history.Record) (evaluator.BaseEvaluation, error) {
	return evaluator.BaseEvaluation{}, errors.New("evaluator broke")
}

func TestGenerateInsights_EvaluatorErrorPropagates(t *testing.T) {
	svc := NewService(failingEvaluator{})
	_, err := svc.GenerateInsights(context.Background(), testProfile(), testStudent(), testSummaries(3))
	if err == nil {
		t.Fatal("evaluator error should propagate")
	}
}

func TestConfidence_Blend(t *testing.T) {
	svc := NewService(evaluator.New())
	b, err := svc.GenerateInsights(context.Background(), testProfile(), testStudent(), testSummaries(10))
	if err != nil {
		t.Fatal(err)
	}

	consistency := (b.Metrics.ProgressConsistency + b.Metrics.EmotionalStability) / 2
	want := 0.4*1.0 + 0.3*consistency + 0.3*b.Compatibility.Confidence
	if !almostEqual(b.Confidence, want) {
		t.Errorf("Confidence = %f, want %f", b.Confidence, want)
	}
}

func TestCache_TTLEnforcedInternally(t *testing.T) {
	c := NewCache(time.Minute)
	base := time.Now()
	now := base
	c.now = func() time.Time { return now }

	b := &Bundle{MentorID: "m"}
	c.Put("k", b)

	if got := c.Get("k"); got != b {
		t.Fatal("fresh entry should hit")
	}

	now = base.Add(61 * time.Second)
	if got := c.Get("k"); got != nil {
		t.Fatal("stale entry must never be returned")
	}
	if c.Len() != 0 {
		t.Error("expired entry should be dropped on read")
	}
}
