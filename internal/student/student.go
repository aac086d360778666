package student

// Personality is the closed set of learner personality variants.
// Free-form input is normalized once at ingestion via NormalizePersonality;
// engine code only ever sees one of these values.
type Personality string

const (
	PersonalityCurious    Personality = "curious"
	PersonalityAnalytical Personality = "analytical"
	PersonalityPlayful    Personality = "playful"
	PersonalityShy        Personality = "shy"
	PersonalityEnergetic  Personality = "energetic"
)

// DefaultPersonality is assigned when no personality is supplied or the
// supplied value is not a known variant.
const DefaultPersonality = PersonalityCurious

var knownPersonalities = map[Personality]bool{
	PersonalityCurious:    true,
	PersonalityAnalytical: true,
	PersonalityPlayful:    true,
	PersonalityShy:        true,
	PersonalityEnergetic:  true,
}

// NormalizePersonality maps a raw string to a closed Personality variant,
// falling back to DefaultPersonality for unknown input.
func NormalizePersonality(raw string) Personality {
	p := Personality(raw)
	if knownPersonalities[p] {
		return p
	}
	return DefaultPersonality
}

// Mood is the student's current emotional state, derived from comprehension
// after each taught concept.
type Mood string

const (
	MoodNeutral       Mood = "neutral"
	MoodJoy           Mood = "joy"
	MoodSatisfaction  Mood = "satisfaction"
	MoodConcentration Mood = "concentration"
	MoodConfusion     Mood = "confusion"
	MoodFrustration   Mood = "frustration"
)

// Level is the student's proficiency on the six-point CEFR-style scale.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists all proficiency levels in ascending order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// NormalizeLevel maps a raw string to a Level, defaulting to A1.
func NormalizeLevel(raw string) Level {
	for _, l := range Levels {
		if string(l) == raw {
			return l
		}
	}
	return LevelA1
}

// LevelIndex returns the ordinal position of a level (A1 = 0), or 0 for
// unknown levels.
func LevelIndex(l Level) int {
	for i, known := range Levels {
		if known == l {
			return i
		}
	}
	return 0
}

// NextLevel returns the level above l, or l itself at C2.
func NextLevel(l Level) Level {
	i := LevelIndex(l)
	if i >= len(Levels)-1 {
		return l
	}
	return Levels[i+1]
}

// DefaultCulturalContext is used when no cultural context is supplied.
const DefaultCulturalContext = "international"

// State is the full simulated-learner state. It is mutated only by the
// session orchestrator after each taught concept; the analytic engines
// receive it read-only.
type State struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Personality     Personality `json:"personality"`
	Level           Level       `json:"level"`
	Mood            Mood        `json:"mood"`
	Strengths       []string    `json:"strengths,omitempty"`
	Weaknesses      []string    `json:"weaknesses,omitempty"`
	CulturalContext string      `json:"cultural_context"`

	// Progress is overall advancement toward the next level, 0..1.
	Progress float64 `json:"progress"`

	// ComprehensionRate is the rolling comprehension estimate, 0..1.
	ComprehensionRate float64 `json:"comprehension_rate"`

	// AttentionSpan is the sustainable focus window in minutes.
	AttentionSpan int `json:"attention_span_min"`
}

// Status is the externally visible view of a student, returned by the
// orchestrator instead of the mutable State.
type Status struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Personality       string  `json:"personality"`
	Level             string  `json:"level"`
	Mood              string  `json:"mood"`
	CulturalContext   string  `json:"cultural_context"`
	Progress          float64 `json:"progress"`
	ComprehensionRate float64 `json:"comprehension_rate"`
	AttentionSpan     int     `json:"attention_span_min"`
}

// StatusOf builds the external view of a student state.
func StatusOf(s *State) *Status {
	if s == nil {
		return nil
	}
	return &Status{
		ID:                s.ID,
		Name:              s.Name,
		Personality:       string(s.Personality),
		Level:             string(s.Level),
		Mood:              string(s.Mood),
		CulturalContext:   s.CulturalContext,
		Progress:          s.Progress,
		ComprehensionRate: s.ComprehensionRate,
		AttentionSpan:     s.AttentionSpan,
	}
}

// Clone returns a deep copy of the state. Engines that need a snapshot
// isolated from orchestrator mutation work on clones.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := *s
	c.Strengths = append([]string(nil), s.Strengths...)
	c.Weaknesses = append([]string(nil), s.Weaknesses...)
	return &c
}
