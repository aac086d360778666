package store

import (
	"context"
	"testing"
	"time"

	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 10 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence went backwards: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestSessionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		MentorID:  "mentor-1",
		SessionID: "sess-1",
		Action:    "start",
		Topic:     "greetings",
		Method:    "visual-demonstration",
		Concepts:  []string{"hello", "thank-you"},
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		MentorID:              "mentor-1",
		SessionID:             "sess-1",
		Action:                "end",
		SuccessScore:          0.7,
		TeachingEffectiveness: 0.8,
		Participation:         0.65,
		Interventions:         1,
		DurationSecs:          300,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	history, err := repo.SessionHistory(ctx, "mentor-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 completed session, got %d", len(history))
	}

	rec := history[0]
	if rec.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", rec.SessionID)
	}
	if rec.Topic != "greetings" {
		t.Errorf("topic = %q, want greetings (from start event)", rec.Topic)
	}
	if rec.Method != "visual-demonstration" {
		t.Errorf("method = %q", rec.Method)
	}
	if rec.SuccessScore != 0.7 {
		t.Errorf("success score = %f, want 0.7", rec.SuccessScore)
	}
	if len(rec.Concepts) != 2 {
		t.Errorf("expected 2 concepts, got %d", len(rec.Concepts))
	}
}

func TestSessionHistoryExcludesActive(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Started but never ended.
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		MentorID:  "mentor-2",
		SessionID: "sess-open",
		Action:    "start",
		Topic:     "family",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	history, err := repo.SessionHistory(ctx, "mentor-2")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no completed sessions, got %d", len(history))
	}
}

func TestInteractionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, concept := range []string{"hello", "goodbye"} {
		err := repo.AppendInteraction(ctx, InteractionEventData{
			MentorID:      "mentor-1",
			SessionID:     "sess-1",
			Concept:       concept,
			Explanation:   "wave your hand",
			Reaction:      "I see!",
			Comprehension: 0.5 + float64(i)*0.2,
			Emotion:       "concentration",
			NeedsHelp:     false,
		})
		if err != nil {
			t.Fatalf("append interaction %d: %v", i, err)
		}
	}

	interactions, err := repo.Interactions(ctx, "sess-1")
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if len(interactions) != 2 {
		t.Fatalf("expected 2 interactions, got %d", len(interactions))
	}
	if interactions[0].Concept != "hello" {
		t.Errorf("expected chronological order, got %q first", interactions[0].Concept)
	}
	if interactions[1].Comprehension != 0.7 {
		t.Errorf("comprehension = %f, want 0.7", interactions[1].Comprehension)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "simulate-learning",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[system]\ntest",
		ResponseBody: `{"reaction":"ok"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Purpose != "simulate-learning" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.ResponseBody != `{"reaction":"ok"}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "claude-haiku-4-5-20251001" {
		t.Fatalf("get returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 3 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5-20251001",
			Purpose:      "simulate-learning",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    400,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("expected 1 purpose group, got %d", len(byPurpose))
	}
	if byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 {
		t.Errorf("unexpected aggregation: %+v", byPurpose[0])
	}
	if byPurpose[0].AvgLatencyMs != 400 {
		t.Errorf("avg latency = %d, want 400", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].OutputTokens != 150 {
		t.Errorf("unexpected model aggregation: %+v", byModel)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "mentor-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &StudentSnapshot{
		MentorID:  "mentor-1",
		Timestamp: now,
		Student: student.State{
			ID:                "stu-1",
			Name:              "Noa",
			Personality:       student.PersonalityCurious,
			Level:             student.LevelA1,
			Mood:              student.MoodNeutral,
			CulturalContext:   "international",
			ComprehensionRate: 0.5,
			AttentionSpan:     15,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "mentor-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.Student.Name != "Noa" {
		t.Errorf("student name = %q", snap.Student.Name)
	}
	if snap.Student.ComprehensionRate != 0.5 {
		t.Errorf("comprehension rate = %f", snap.Student.ComprehensionRate)
	}

	// Other mentors are isolated.
	other, err := repo.Latest(ctx, "mentor-2")
	if err != nil {
		t.Fatalf("latest other: %v", err)
	}
	if other != nil {
		t.Fatal("expected nil snapshot for other mentor")
	}
}

func TestSnapshotPruneAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := range 5 {
		err := repo.Save(ctx, &StudentSnapshot{
			MentorID:  "mentor-1",
			Timestamp: time.Now().UTC(),
			Student:   student.State{Name: "Noa", Progress: float64(i) * 0.1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "mentor-1", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx, "mentor-1")
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap == nil {
		t.Fatal("expected latest snapshot to survive prune")
	}
	if snap.Student.Progress != 0.4 {
		t.Errorf("latest progress = %f, want 0.4", snap.Student.Progress)
	}

	if err := repo.Delete(ctx, "mentor-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap, err = repo.Latest(ctx, "mentor-1")
	if err != nil {
		t.Fatalf("latest after delete: %v", err)
	}
	if snap != nil {
		t.Fatal("expected no snapshots after delete")
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	missing, err := repo.Get(ctx, "mentor-x")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing profile")
	}

	p := &mentor.Profile{
		ID:                 "mentor-1",
		Name:               "Marina",
		Personality:        mentor.PersonalityEmpathetic,
		Style:              mentor.StyleCollaborative,
		CulturalBackground: "brazilian",
		Adaptability:       0.8,
		YearsExperience:    6,
		PreferredMethods:   []string{"storytelling"},
		Specializations:    []string{"Libras"},
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "mentor-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected profile")
	}
	if got.Style != mentor.StyleCollaborative {
		t.Errorf("style = %q", got.Style)
	}
	if got.YearsExperience != 6 {
		t.Errorf("years = %d", got.YearsExperience)
	}

	// A second save updates the existing row. Get uses Only, so a
	// duplicate row would fail here.
	p.Adaptability = 0.9
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	got, err = repo.Get(ctx, "mentor-1")
	if err != nil {
		t.Fatalf("get after re-save: %v", err)
	}
	if got.Adaptability != 0.9 {
		t.Errorf("adaptability = %f, want 0.9", got.Adaptability)
	}
}

func TestEventLogAdapterAndLoadSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	log := NewEventLog(repo)
	ctx := context.Background()

	started := time.Now().UTC().Add(-5 * time.Minute)
	sess := &session.TeachingSession{
		ID:        "sess-9",
		MentorID:  "mentor-9",
		Topic:     "emotions",
		Method:    "storytelling",
		Concepts:  []string{"happy", "sad"},
		StartedAt: started,
	}
	if err := log.SessionStarted(ctx, sess); err != nil {
		t.Fatalf("session started: %v", err)
	}

	ia := session.Interaction{
		Concept:       "happy",
		Explanation:   "smile wide while signing",
		Reaction:      "Got it!",
		Comprehension: 0.85,
		Emotion:       student.MoodJoy,
		At:            time.Now().UTC(),
	}
	if err := log.ConceptTaught(ctx, "mentor-9", "sess-9", ia); err != nil {
		t.Fatalf("concept taught: %v", err)
	}

	sum := &session.Summary{
		SessionID:    "sess-9",
		MentorID:     "mentor-9",
		Topic:        "emotions",
		Method:       "storytelling",
		StartedAt:    started,
		EndedAt:      started.Add(5 * time.Minute),
		Interactions: []session.Interaction{ia},
		Metrics: session.Metrics{
			ParticipationRate:     0.7,
			TeachingEffectiveness: 0.8,
			SuccessScore:          0.85,
		},
	}
	if err := log.SessionEnded(ctx, sum); err != nil {
		t.Fatalf("session ended: %v", err)
	}

	summaries, err := LoadSummaries(ctx, repo, "mentor-9")
	if err != nil {
		t.Fatalf("load summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	got := summaries[0]
	if got.Topic != "emotions" {
		t.Errorf("topic = %q", got.Topic)
	}
	if got.Metrics.SuccessScore != 0.85 {
		t.Errorf("success score = %f", got.Metrics.SuccessScore)
	}
	if len(got.Interactions) != 1 || got.Interactions[0].Concept != "happy" {
		t.Errorf("interactions = %+v", got.Interactions)
	}
	if got.Interactions[0].Emotion != student.MoodJoy {
		t.Errorf("emotion = %q", got.Interactions[0].Emotion)
	}
}
