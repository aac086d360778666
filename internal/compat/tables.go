package compat

import (
	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/student"
)

// Fixed weights for the overall compatibility score. They sum to 1.0, so the
// overall score is a convex combination of the five sub-scores.
const (
	weightPersonality = 0.25
	weightCultural    = 0.20
	weightStyle       = 0.25
	weightExperience  = 0.15
	weightMethodology = 0.15
)

// Category thresholds for narrative classification.
const (
	thresholdExcellent = 0.9
	thresholdGood      = 0.75
	thresholdAdequate  = 0.6
	thresholdPoor      = 0.3
)

// defaultPairScore applies to mentor/student personality pairs without a
// matrix entry.
const defaultPairScore = 0.7

// personalityMatrix scores mentor-personality × student-personality fit.
var personalityMatrix = map[string]map[student.Personality]float64{
	mentor.PersonalityMethodical: {
		student.PersonalityAnalytical: 0.95,
		student.PersonalityCurious:    0.8,
		student.PersonalityShy:        0.75,
		student.PersonalityPlayful:    0.55,
		student.PersonalityEnergetic:  0.6,
	},
	mentor.PersonalityEmpathetic: {
		student.PersonalityShy:        0.95,
		student.PersonalityCurious:    0.85,
		student.PersonalityAnalytical: 0.7,
		student.PersonalityPlayful:    0.8,
		student.PersonalityEnergetic:  0.75,
	},
	mentor.PersonalityDynamic: {
		student.PersonalityEnergetic:  0.95,
		student.PersonalityPlayful:    0.9,
		student.PersonalityCurious:    0.8,
		student.PersonalityShy:        0.55,
		student.PersonalityAnalytical: 0.6,
	},
	mentor.PersonalityCalm: {
		student.PersonalityAnalytical: 0.9,
		student.PersonalityShy:        0.85,
		student.PersonalityCurious:    0.8,
		student.PersonalityPlayful:    0.6,
		student.PersonalityEnergetic:  0.55,
	},
	mentor.PersonalitySpontaneous: {
		student.PersonalityPlayful:    0.95,
		student.PersonalityCurious:    0.9,
		student.PersonalityEnergetic:  0.85,
		student.PersonalityAnalytical: 0.55,
		student.PersonalityShy:        0.6,
	},
}

// styleTraits describes a teaching style's baseline effectiveness for a
// simulated learner and how much adaptation headroom it leaves.
type styleTraits struct {
	Effectiveness float64
	Adaptability  float64
}

var styleTable = map[mentor.TeachingStyle]styleTraits{
	mentor.StyleDirective:     {Effectiveness: 0.7, Adaptability: 0.5},
	mentor.StyleCollaborative: {Effectiveness: 0.85, Adaptability: 0.8},
	mentor.StyleSupportive:    {Effectiveness: 0.8, Adaptability: 0.75},
	mentor.StyleDelegative:    {Effectiveness: 0.6, Adaptability: 0.6},
	mentor.StyleAdaptive:      {Effectiveness: 0.85, Adaptability: 0.95},
	mentor.StyleMethodical:    {Effectiveness: 0.9, Adaptability: 0.65},
}

// analyticalStyleBonus rewards the methodical-structured style when teaching
// an analytical student.
const analyticalStyleBonus = 0.1
