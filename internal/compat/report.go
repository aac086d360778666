package compat

import (
	"fmt"
	"math"

	"github.com/marqos/signmentor/internal/student"
)

// categoryLabels order the sub-scores for narrative generation.
var categoryLabels = []struct {
	key  string
	get  func(Scores) float64
	high string
	low  string
}{
	{
		key:  "personality",
		get:  func(s Scores) float64 { return s.Personality },
		high: "Mentor and student personalities reinforce each other",
		low:  "Personality mismatch may slow rapport building",
	},
	{
		key:  "cultural",
		get:  func(s Scores) float64 { return s.Cultural },
		high: "Shared cultural ground eases contextual explanations",
		low:  "Cultural distance requires deliberate bridging",
	},
	{
		key:  "teaching-style",
		get:  func(s Scores) float64 { return s.Style },
		high: "Teaching style matches how this student absorbs signs",
		low:  "Teaching style clashes with the student's learning mode",
	},
	{
		key:  "experience",
		get:  func(s Scores) float64 { return s.Experience },
		high: "Experience level is well matched to the student's stage",
		low:  "Limited experience for this proficiency level",
	},
	{
		key:  "methodology",
		get:  func(s Scores) float64 { return s.Methodology },
		high: "Method repertoire covers this student's needs",
		low:  "Method repertoire is too narrow for steady progress",
	},
}

// narrate emits a strength sentence for each sub-score at or above the good
// threshold and a challenge sentence for each one below adequate.
func narrate(s Scores) (strengths, challenges []string) {
	strengths = []string{}
	challenges = []string{}
	for _, c := range categoryLabels {
		v := c.get(s)
		if v >= thresholdGood {
			strengths = append(strengths, c.high)
		} else if v < thresholdAdequate {
			challenges = append(challenges, c.low)
		}
	}
	return strengths, challenges
}

// challengeAdvice maps each challenge sentence to a concrete recommendation.
var challengeAdvice = map[string]string{
	"Personality mismatch may slow rapport building":          "Open each session with a short free-signing exchange to build rapport",
	"Cultural distance requires deliberate bridging":          "Anchor new signs in the student's own cultural references",
	"Teaching style clashes with the student's learning mode": "Alternate your default style with short student-led segments",
	"Limited experience for this proficiency level":           "Prepare sessions against a structured curriculum to offset experience gaps",
	"Method repertoire is too narrow for steady progress":     "Add at least one visual and one kinesthetic method to your rotation",
}

// personalityAdvice adds one personality-specific recommendation.
var personalityAdvice = map[student.Personality]string{
	student.PersonalityAnalytical: "Break each sign into handshape, location and movement before drilling",
	student.PersonalityCurious:    "Let the student steer one topic per session to feed curiosity",
	student.PersonalityPlayful:    "Fold new vocabulary into short games and role-play",
	student.PersonalityShy:        "Keep correction gentle and private; celebrate small wins",
	student.PersonalityEnergetic:  "Use rapid call-and-response drills to channel energy",
}

func recommend(challenges []string, sp student.Personality, level student.Level) []string {
	recs := []string{}
	for _, ch := range challenges {
		if advice, ok := challengeAdvice[ch]; ok {
			recs = append(recs, advice)
		}
	}
	if advice, ok := personalityAdvice[sp]; ok {
		recs = append(recs, advice)
	}
	if student.LevelIndex(level) <= student.LevelIndex(student.LevelA2) {
		recs = append(recs, "Keep sessions short and concrete; beginner attention fades fast")
	} else {
		recs = append(recs, "Introduce connected signing and register variation at this level")
	}
	return recs
}

// Improvement-plan tuning: the achievable gain shrinks as the current score
// rises, the timeline stretches with the gap.
const (
	planMaxTarget     = 0.95
	planWeeksPerPoint = 40
	planMinWeeks      = 4
	planMaxWeeks      = 16
	planMilestones    = 3
)

func planGain(current float64) float64 {
	switch {
	case current < 0.5:
		return 0.25
	case current < 0.7:
		return 0.2
	default:
		return 0.15
	}
}

func improvementPlan(current float64, challenges []string) ImprovementPlan {
	target := math.Min(planMaxTarget, current+planGain(current))
	gap := target - current

	// Epsilon guards ceil against float drift (0.6+0.2 lands just above 0.8).
	weeks := int(math.Ceil(gap*planWeeksPerPoint - 1e-9))
	if weeks < planMinWeeks {
		weeks = planMinWeeks
	}
	if weeks > planMaxWeeks {
		weeks = planMaxWeeks
	}

	plan := ImprovementPlan{
		CurrentScore:  current,
		TargetScore:   target,
		TimelineWeeks: weeks,
	}

	for i := 1; i <= planMilestones; i++ {
		frac := float64(i) / planMilestones
		focus := "Consolidate gains across all categories"
		if i-1 < len(challenges) {
			focus = challenges[i-1]
		}
		plan.Milestones = append(plan.Milestones, Milestone{
			Week:        int(math.Ceil(float64(weeks) * frac)),
			TargetScore: current + gap*frac,
			Focus:       focus,
		})
	}
	return plan
}

// Describe renders a one-line banding for an overall score.
func Describe(score float64) string {
	switch {
	case score >= thresholdExcellent:
		return fmt.Sprintf("excellent fit (%.2f)", score)
	case score >= thresholdGood:
		return fmt.Sprintf("good fit (%.2f)", score)
	case score >= thresholdAdequate:
		return fmt.Sprintf("adequate fit (%.2f)", score)
	case score >= thresholdPoor:
		return fmt.Sprintf("weak fit (%.2f)", score)
	default:
		return fmt.Sprintf("poor fit (%.2f)", score)
	}
}
