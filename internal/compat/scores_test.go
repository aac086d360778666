package compat

import (
	"math"
	"testing"

	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/student"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func testProfile() mentor.Profile {
	return mentor.Profile{
		ID:                 "mentor-1",
		Personality:        mentor.PersonalityMethodical,
		Style:              mentor.StyleMethodical,
		CulturalBackground: "deaf-community",
		Adaptability:       0.8,
		YearsExperience:    6,
		PreferredMethods:   []string{"visual-demonstration", "mirrored-practice"},
	}
}

func testStudent() *student.State {
	return &student.State{
		Name:            "Noa",
		Personality:     student.PersonalityAnalytical,
		Level:           student.LevelA2,
		CulturalContext: "deaf-community",
	}
}

func TestAnalyze_WeightInvariant(t *testing.T) {
	a := Analyze(testProfile(), testStudent(), nil)
	s := a.Scores
	want := 0.25*s.Personality + 0.20*s.Cultural + 0.25*s.Style + 0.15*s.Experience + 0.15*s.Methodology
	if !almostEqual(s.Overall, want) {
		t.Errorf("Overall = %f, want convex combination %f", s.Overall, want)
	}
}

func TestAnalyze_ScoreBoundedness(t *testing.T) {
	profiles := []mentor.Profile{
		testProfile(),
		{Personality: "unknown-kind", Style: "weird", YearsExperience: 50, Adaptability: 2},
		{},
	}
	students := []*student.State{
		testStudent(),
		{Personality: student.PersonalityEnergetic, Level: student.LevelC2},
		nil,
	}

	for _, p := range profiles {
		for _, st := range students {
			a := Analyze(p, st, nil)
			for name, v := range map[string]float64{
				"personality": a.Scores.Personality,
				"cultural":    a.Scores.Cultural,
				"style":       a.Scores.Style,
				"experience":  a.Scores.Experience,
				"methodology": a.Scores.Methodology,
				"overall":     a.Scores.Overall,
			} {
				if v < 0 || v > 1 {
					t.Errorf("%s score = %f, out of [0,1]", name, v)
				}
			}
		}
	}
}

func TestStyleScore_AnalyticalBonus(t *testing.T) {
	// methodical-structured base 0.9 + 0.1 analytical bonus, capped at 1.0.
	score := styleScore(mentor.StyleMethodical, student.PersonalityAnalytical)
	if !almostEqual(score, 1.0) {
		t.Errorf("styleScore = %f, want 1.0", score)
	}

	// No bonus for other personalities.
	score = styleScore(mentor.StyleMethodical, student.PersonalityPlayful)
	if !almostEqual(score, 0.9) {
		t.Errorf("styleScore = %f, want 0.9", score)
	}
}

func TestCulturalScore(t *testing.T) {
	p := testProfile()
	st := testStudent()
	if s := culturalScore(p, st); !almostEqual(s, 0.95) {
		t.Errorf("matching cultural score = %f, want 0.95", s)
	}

	st.CulturalContext = "other"
	// min(0.95, 0.6 + 0.8*0.3) = 0.84
	if s := culturalScore(p, st); !almostEqual(s, 0.84) {
		t.Errorf("mismatched cultural score = %f, want 0.84", s)
	}
}

func TestExperienceScore_LevelDiscount(t *testing.T) {
	if s := experienceScore(5, student.LevelA1); !almostEqual(s, 1.0) {
		t.Errorf("A1 experience = %f, want 1.0", s)
	}
	if s := experienceScore(5, student.LevelB2); !almostEqual(s, 0.9) {
		t.Errorf("B2 experience = %f, want 0.9", s)
	}
	if s := experienceScore(5, student.LevelC1); !almostEqual(s, 0.8) {
		t.Errorf("C1 experience = %f, want 0.8", s)
	}
	if s := experienceScore(2, student.LevelA1); !almostEqual(s, 0.4) {
		t.Errorf("2y experience = %f, want 0.4", s)
	}
}

func TestMethodologyScore(t *testing.T) {
	noMethods := mentor.Profile{}
	if s := methodologyScore(noMethods, nil); !almostEqual(s, 0.6) {
		t.Errorf("no-methods score = %f, want 0.6", s)
	}

	p := testProfile()
	if s := methodologyScore(p, nil); !almostEqual(s, 0.8) {
		t.Errorf("with-methods score = %f, want 0.8", s)
	}

	records := []history.Record{
		{TeachingEffectiveness: 1.0},
		{TeachingEffectiveness: 1.0},
	}
	// 0.8 + min(0.2, 1.0*0.2) = 1.0
	if s := methodologyScore(p, records); !almostEqual(s, 1.0) {
		t.Errorf("history-boosted score = %f, want 1.0", s)
	}
}

func TestPersonalityScore_DefaultForUnseenPair(t *testing.T) {
	if s := personalityScore("totally-new", student.PersonalityCurious); !almostEqual(s, 0.7) {
		t.Errorf("unseen mentor personality = %f, want default 0.7", s)
	}
	if s := personalityScore(mentor.PersonalityMethodical, student.PersonalityAnalytical); !almostEqual(s, 0.95) {
		t.Errorf("matrix lookup = %f, want 0.95", s)
	}
}

func TestNarrate_ThresholdCrossings(t *testing.T) {
	s := Scores{
		Personality: 0.9,  // strength
		Cultural:    0.5,  // challenge
		Style:       0.65, // neither
		Experience:  0.8,  // strength
		Methodology: 0.4,  // challenge
	}
	strengths, challenges := narrate(s)
	if len(strengths) != 2 {
		t.Errorf("strengths = %v, want 2 entries", strengths)
	}
	if len(challenges) != 2 {
		t.Errorf("challenges = %v, want 2 entries", challenges)
	}
}

func TestImprovementPlan(t *testing.T) {
	plan := improvementPlan(0.6, []string{"challenge-a"})

	// 0.6 band gains 0.2 → target 0.8.
	if !almostEqual(plan.TargetScore, 0.8) {
		t.Errorf("TargetScore = %f, want 0.8", plan.TargetScore)
	}
	// ceil(0.2*40) = 8 weeks.
	if plan.TimelineWeeks != 8 {
		t.Errorf("TimelineWeeks = %d, want 8", plan.TimelineWeeks)
	}
	if len(plan.Milestones) != 3 {
		t.Fatalf("milestones = %d, want 3", len(plan.Milestones))
	}
	// Milestones evenly spaced between current and target.
	if !almostEqual(plan.Milestones[1].TargetScore, 0.6+0.2*2.0/3.0) {
		t.Errorf("milestone 2 score = %f", plan.Milestones[1].TargetScore)
	}
	if plan.Milestones[2].Week != 8 {
		t.Errorf("final milestone week = %d, want 8", plan.Milestones[2].Week)
	}

	// Timeline clamps.
	short := improvementPlan(0.93, nil)
	if short.TimelineWeeks != 4 {
		t.Errorf("clamped timeline = %d, want 4", short.TimelineWeeks)
	}
	if short.TargetScore > 0.95+epsilon {
		t.Errorf("target = %f, want <= 0.95", short.TargetScore)
	}
}

func TestRecommend_IncludesPersonalityAndLevelAdvice(t *testing.T) {
	recs := recommend(nil, student.PersonalityAnalytical, student.LevelA1)
	if len(recs) != 2 {
		t.Fatalf("recs = %v, want personality + level advice", recs)
	}
}
