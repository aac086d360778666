package session

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/marqos/signmentor/internal/student"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// fixedSim returns scripted comprehension scores in order, repeating the
// last one when exhausted.
type fixedSim struct {
	mu     sync.Mutex
	scores []float64
	i      int
}

func (f *fixedSim) Simulate(_ context.Context, _ *student.State, concept, _, _ string) (Reaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.scores[len(f.scores)-1]
	if f.i < len(f.scores) {
		c = f.scores[f.i]
		f.i++
	}
	return Reaction{Text: "nods at " + concept, Comprehension: c}, nil
}

func newTestOrchestrator(scores ...float64) *Orchestrator {
	if len(scores) == 0 {
		scores = []float64{0.7}
	}
	return New(Options{
		Records:  NewMemoryRecordStore(),
		Students: NewMemoryStudentStore(),
		Sim:      &fixedSim{scores: scores},
	})
}

func TestCreateStudent_Defaults(t *testing.T) {
	o := newTestOrchestrator()
	st, err := o.CreateStudent(context.Background(), "m1", CreateOptions{})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if st.Name != DefaultStudentName {
		t.Errorf("Name = %q, want %q", st.Name, DefaultStudentName)
	}
	if st.Personality != string(student.DefaultPersonality) {
		t.Errorf("Personality = %q, want %q", st.Personality, student.DefaultPersonality)
	}
	if st.Level != "A1" {
		t.Errorf("Level = %q, want A1", st.Level)
	}
	if st.Mood != string(student.MoodNeutral) {
		t.Errorf("Mood = %q, want neutral", st.Mood)
	}
}

func TestCreateStudent_AlreadyExists(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()
	if _, err := o.CreateStudent(ctx, "m1", CreateOptions{}); err != nil {
		t.Fatalf("first CreateStudent: %v", err)
	}

	_, err := o.CreateStudent(ctx, "m1", CreateOptions{})
	var invalid *ErrInvalidState
	if !errors.As(err, &invalid) {
		t.Fatalf("second CreateStudent err = %v, want ErrInvalidState", err)
	}

	// Recreate replaces without error.
	if _, err := o.CreateStudent(ctx, "m1", CreateOptions{Name: "Lior", Recreate: true}); err != nil {
		t.Errorf("Recreate: %v", err)
	}
}

func TestStartSession_NoStudent(t *testing.T) {
	o := newTestOrchestrator()
	_, err := o.StartSession(context.Background(), "m1", "greetings", StartOptions{})
	var notFound *ErrStudentNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("StartSession err = %v, want ErrStudentNotFound", err)
	}
}

func TestStartSession_DerivesConceptsAndMethod(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()
	if _, err := o.CreateStudent(ctx, "m1", CreateOptions{Personality: "analytical"}); err != nil {
		t.Fatal(err)
	}
	id, err := o.StartSession(ctx, "m1", "greetings", StartOptions{})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if id == "" {
		t.Fatal("empty session ID")
	}

	active, _ := o.records.Active(ctx, "m1")
	if active.Method != "structured-decomposition" {
		t.Errorf("Method = %q, want structured-decomposition", active.Method)
	}
	if len(active.Concepts) != 5 || active.Concepts[0] != "hello" {
		t.Errorf("Concepts = %v, want greetings table", active.Concepts)
	}
}

func TestStartSession_AlreadyActive(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()
	o.CreateStudent(ctx, "m1", CreateOptions{})
	if _, err := o.StartSession(ctx, "m1", "family", StartOptions{}); err != nil {
		t.Fatal(err)
	}
	_, err := o.StartSession(ctx, "m1", "colors", StartOptions{})
	var invalid *ErrInvalidState
	if !errors.As(err, &invalid) {
		t.Fatalf("second StartSession err = %v, want ErrInvalidState", err)
	}
}

func TestTeachConcept_BeforeStart(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()
	o.CreateStudent(ctx, "m1", CreateOptions{})
	_, err := o.TeachConcept(ctx, "m1", "nope", "hello", "wave with open palm")
	var notFound *ErrSessionNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("TeachConcept err = %v, want ErrSessionNotFound", err)
	}
}

func TestTeachConcept_HighComprehension(t *testing.T) {
	o := newTestOrchestrator(0.85)
	ctx := context.Background()
	o.CreateStudent(ctx, "m1", CreateOptions{})
	id, _ := o.StartSession(ctx, "m1", "greetings", StartOptions{})

	res, err := o.TeachConcept(ctx, "m1", id, "hello", "wave with open palm near temple")
	if err != nil {
		t.Fatalf("TeachConcept: %v", err)
	}
	if res.Emotion != student.MoodJoy {
		t.Errorf("Emotion = %s, want joy", res.Emotion)
	}
	if res.NeedsHelp {
		t.Error("NeedsHelp = true, want false at 0.85")
	}

	// Student state was updated synchronously.
	status, _ := o.Status(ctx, "m1")
	if status.Mood != string(student.MoodJoy) {
		t.Errorf("student mood = %s, want joy", status.Mood)
	}
	// 0.7*0.5 + 0.3*0.85 = 0.605
	if !almostEqual(status.ComprehensionRate, 0.605) {
		t.Errorf("ComprehensionRate = %f, want 0.605", status.ComprehensionRate)
	}
}

func TestTeachConcept_LowComprehensionNeedsHelp(t *testing.T) {
	o := newTestOrchestrator(0.15)
	ctx := context.Background()
	o.CreateStudent(ctx, "m1", CreateOptions{})
	id, _ := o.StartSession(ctx, "m1", "numbers", StartOptions{})

	res, err := o.TeachConcept(ctx, "m1", id, "counting-rhythm", "just count")
	if err != nil {
		t.Fatal(err)
	}
	if !res.NeedsHelp {
		t.Error("NeedsHelp = false, want true at 0.15")
	}
	if res.Emotion != student.MoodFrustration {
		t.Errorf("Emotion = %s, want frustration", res.Emotion)
	}
}

func TestEndSession_MetricsAndDoubleClose(t *testing.T) {
	o := newTestOrchestrator(0.4, 0.6, 0.9)
	ctx := context.Background()
	o.CreateStudent(ctx, "m1", CreateOptions{})
	id, _ := o.StartSession(ctx, "m1", "emotions", StartOptions{})

	o.TeachConcept(ctx, "m1", id, "happy", "raise both hands, smile wide")
	o.TeachConcept(ctx, "m1", id, "sad", "drag fingers down the face")
	o.TeachConcept(ctx, "m1", id, "facial-grammar", "eyebrows carry the question")

	sum, eval, err := o.EndSession(ctx, "m1", id)
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	// success = mean(0.4, 0.6, 0.9)
	if !almostEqual(sum.Metrics.SuccessScore, 0.633333) {
		t.Errorf("SuccessScore = %f, want 0.6333", sum.Metrics.SuccessScore)
	}
	// effectiveness = 0.5 + (0.9-0.4) = 1.0
	if !almostEqual(sum.Metrics.TeachingEffectiveness, 1.0) {
		t.Errorf("TeachingEffectiveness = %f, want 1.0", sum.Metrics.TeachingEffectiveness)
	}
	if len(sum.Metrics.ConceptsMastered) != 1 || sum.Metrics.ConceptsMastered[0] != "facial-grammar" {
		t.Errorf("ConceptsMastered = %v", sum.Metrics.ConceptsMastered)
	}
	if len(sum.Metrics.ConceptsToReview) != 1 || sum.Metrics.ConceptsToReview[0] != "happy" {
		t.Errorf("ConceptsToReview = %v", sum.Metrics.ConceptsToReview)
	}
	if sum.Metrics.Interventions != 1 {
		t.Errorf("Interventions = %d, want 1", sum.Metrics.Interventions)
	}
	if !almostEqual(eval.OverallScore, sum.Metrics.SuccessScore) {
		t.Errorf("eval overall = %f, want mean comprehension", eval.OverallScore)
	}

	// Second close fails.
	_, _, err = o.EndSession(ctx, "m1", id)
	var notFound *ErrSessionNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("second EndSession err = %v, want ErrSessionNotFound", err)
	}

	// History holds the closed summary; a new session can start.
	hist, _ := o.History(ctx, "m1")
	if len(hist) != 1 {
		t.Fatalf("history len = %d, want 1", len(hist))
	}
	if _, err := o.StartSession(ctx, "m1", "food", StartOptions{}); err != nil {
		t.Errorf("StartSession after close: %v", err)
	}
}

func TestPhaseTransitions(t *testing.T) {
	o := newTestOrchestrator()
	ctx := context.Background()

	p, _ := o.Phase(ctx, "m1")
	if p != PhaseNoStudent {
		t.Errorf("phase = %d, want NoStudent", p)
	}

	o.CreateStudent(ctx, "m1", CreateOptions{})
	if p, _ = o.Phase(ctx, "m1"); p != PhaseStudentCreated {
		t.Errorf("phase = %d, want StudentCreated", p)
	}

	id, _ := o.StartSession(ctx, "m1", "time", StartOptions{})
	if p, _ = o.Phase(ctx, "m1"); p != PhaseSessionActive {
		t.Errorf("phase = %d, want SessionActive", p)
	}

	o.EndSession(ctx, "m1", id)
	if p, _ = o.Phase(ctx, "m1"); p != PhaseSessionClosed {
		t.Errorf("phase = %d, want SessionClosed", p)
	}
}

func TestTeachConcept_ConcurrentSameMentor(t *testing.T) {
	o := newTestOrchestrator(0.7)
	ctx := context.Background()
	o.CreateStudent(ctx, "m1", CreateOptions{})
	id, _ := o.StartSession(ctx, "m1", "greetings", StartOptions{})

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			o.TeachConcept(ctx, "m1", id, "hello", "wave once")
		}()
	}
	wg.Wait()

	active, _ := o.records.Active(ctx, "m1")
	if len(active.Interactions) != n {
		t.Errorf("interactions = %d, want %d", len(active.Interactions), n)
	}
}

func TestEmotionBands(t *testing.T) {
	cases := []struct {
		c    float64
		want student.Mood
	}{
		{0.85, student.MoodJoy},
		{0.7, student.MoodSatisfaction},
		{0.5, student.MoodConcentration},
		{0.3, student.MoodConfusion},
		{0.1, student.MoodFrustration},
	}
	for _, tc := range cases {
		if got := EmotionFor(tc.c); got != tc.want {
			t.Errorf("EmotionFor(%.2f) = %s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestConceptsForTopic_Unknown(t *testing.T) {
	cs := ConceptsForTopic("astrophysics")
	if len(cs) == 0 {
		t.Fatal("unknown topic should yield generic concepts")
	}
}

// failingEventLog rejects every event, standing in for a broken database.
type failingEventLog struct{}

func (failingEventLog) SessionStarted(context.Context, *TeachingSession) error {
	return errors.New("event store down")
}

func (failingEventLog) ConceptTaught(context.Context, string, string, Interaction) error {
	return errors.New("event store down")
}

func (failingEventLog) SessionEnded(context.Context, *Summary) error {
	return errors.New("event store down")
}

func TestEventLogFailureDoesNotFailTeaching(t *testing.T) {
	o := New(Options{
		Records:  NewMemoryRecordStore(),
		Students: NewMemoryStudentStore(),
		Sim:      &fixedSim{scores: []float64{0.7}},
		Events:   failingEventLog{},
	})
	ctx := context.Background()

	if _, err := o.CreateStudent(ctx, "mentor-1", CreateOptions{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	sid, err := o.StartSession(ctx, "mentor-1", "greetings", StartOptions{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := o.TeachConcept(ctx, "mentor-1", sid, "hello", "wave from the temple"); err != nil {
		t.Fatalf("teach: %v", err)
	}
	sum, eval, err := o.EndSession(ctx, "mentor-1", sid)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if sum == nil || eval == nil {
		t.Fatal("expected summary and evaluation despite event log failures")
	}
}
