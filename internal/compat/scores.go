// Package compat scores how well a mentor profile fits a simulated student:
// five weighted sub-scores, an overall score and a narrative report with an
// improvement plan. The scorer is stateless and never fails; missing data
// degrades to neutral defaults.
package compat

import (
	"math"

	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/student"
)

// Scores holds the five sub-scores and their weighted combination, all in
// [0,1].
type Scores struct {
	Personality float64 `json:"personality"`
	Cultural    float64 `json:"cultural"`
	Style       float64 `json:"teaching_style"`
	Experience  float64 `json:"experience"`
	Methodology float64 `json:"methodology"`
	Overall     float64 `json:"overall"`
}

// Milestone is one step of the improvement plan.
type Milestone struct {
	Week        int     `json:"week"`
	TargetScore float64 `json:"target_score"`
	Focus       string  `json:"focus"`
}

// ImprovementPlan lays out a path from the current overall score to a
// realistic target.
type ImprovementPlan struct {
	CurrentScore  float64     `json:"current_score"`
	TargetScore   float64     `json:"target_score"`
	TimelineWeeks int         `json:"timeline_weeks"`
	Milestones    []Milestone `json:"milestones"`
}

// DetailedAnalysis is the full compatibility report.
type DetailedAnalysis struct {
	Scores          Scores          `json:"scores"`
	Strengths       []string        `json:"strengths"`
	Challenges      []string        `json:"challenges"`
	Recommendations []string        `json:"recommendations"`
	Plan            ImprovementPlan `json:"improvement_plan"`

	// Confidence grows with the amount of session history backing the
	// methodology sub-score.
	Confidence float64 `json:"confidence"`
}

// Analyze scores a mentor against a student. Session history is optional;
// when present it sharpens the methodology score and the confidence.
func Analyze(p mentor.Profile, st *student.State, records []history.Record) DetailedAnalysis {
	var personality student.Personality
	var level student.Level
	if st != nil {
		personality = st.Personality
		level = st.Level
	} else {
		personality = student.DefaultPersonality
		level = student.LevelA1
	}

	s := Scores{
		Personality: personalityScore(p.Personality, personality),
		Cultural:    culturalScore(p, st),
		Style:       styleScore(p.Style, personality),
		Experience:  experienceScore(p.YearsExperience, level),
		Methodology: methodologyScore(p, records),
	}
	s.Overall = weightPersonality*s.Personality +
		weightCultural*s.Cultural +
		weightStyle*s.Style +
		weightExperience*s.Experience +
		weightMethodology*s.Methodology

	a := DetailedAnalysis{
		Scores:     s,
		Confidence: confidence(len(records)),
	}
	a.Strengths, a.Challenges = narrate(s)
	a.Recommendations = recommend(a.Challenges, personality, level)
	a.Plan = improvementPlan(s.Overall, a.Challenges)
	return a
}

func personalityScore(mentorPersonality string, sp student.Personality) float64 {
	row, ok := personalityMatrix[mentorPersonality]
	if !ok {
		return defaultPairScore
	}
	score, ok := row[sp]
	if !ok {
		return defaultPairScore
	}
	return score
}

// culturalScore is 0.95 on an exact background match; otherwise the mentor's
// adaptability bridges part of the gap.
func culturalScore(p mentor.Profile, st *student.State) float64 {
	if st != nil && p.CulturalBackground != "" && p.CulturalBackground == st.CulturalContext {
		return 0.95
	}
	return math.Min(0.95, 0.6+p.Adaptability*0.3)
}

func styleScore(style mentor.TeachingStyle, sp student.Personality) float64 {
	traits, ok := styleTable[style]
	if !ok {
		traits = styleTable[mentor.DefaultStyle]
	}
	score := traits.Effectiveness
	if sp == student.PersonalityAnalytical && style == mentor.StyleMethodical {
		score += analyticalStyleBonus
	}
	return math.Min(1, score)
}

// experienceScore saturates at five years, then discounts for advanced
// students who need deeper expertise.
func experienceScore(years int, level student.Level) float64 {
	score := math.Min(1, float64(years)/5)
	switch level {
	case student.LevelB1, student.LevelB2:
		score *= 0.9
	case student.LevelC1, student.LevelC2:
		score *= 0.8
	}
	return score
}

// methodologyScore starts from whether the mentor brings any preferred
// methods at all and adds up to +0.2 from recent teaching effectiveness.
func methodologyScore(p mentor.Profile, records []history.Record) float64 {
	score := 0.6
	if len(p.PreferredMethods) > 0 {
		score = 0.8
	}
	if len(records) > 0 {
		start := len(records) - 5
		if start < 0 {
			start = 0
		}
		sum := 0.0
		recent := records[start:]
		for _, r := range recent {
			sum += r.TeachingEffectiveness
		}
		avg := sum / float64(len(recent))
		score += math.Min(0.2, avg*0.2)
	}
	return math.Min(1, score)
}

// confidence reflects how much history backs the analysis.
func confidence(sessions int) float64 {
	return math.Min(1, 0.6+float64(sessions)*0.08)
}
