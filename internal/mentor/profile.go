package mentor

// TeachingStyle is the closed set of mentor teaching-style variants.
type TeachingStyle string

const (
	StyleDirective     TeachingStyle = "directive"
	StyleCollaborative TeachingStyle = "collaborative"
	StyleSupportive    TeachingStyle = "supportive"
	StyleDelegative    TeachingStyle = "delegative"
	StyleAdaptive      TeachingStyle = "adaptive"
	StyleMethodical    TeachingStyle = "methodical-structured"
)

// DefaultStyle is assigned when the supplied style is missing or unknown.
const DefaultStyle = StyleAdaptive

var knownStyles = map[TeachingStyle]bool{
	StyleDirective:     true,
	StyleCollaborative: true,
	StyleSupportive:    true,
	StyleDelegative:    true,
	StyleAdaptive:      true,
	StyleMethodical:    true,
}

// NormalizeStyle maps a raw string to a closed TeachingStyle variant,
// falling back to DefaultStyle for unknown input.
func NormalizeStyle(raw string) TeachingStyle {
	s := TeachingStyle(raw)
	if knownStyles[s] {
		return s
	}
	return DefaultStyle
}

// Known mentor personality variants. Unlike student personalities these are
// compound descriptors; the compatibility matrix keys on them directly and
// falls back to a neutral default for unseen values, so normalization is
// tolerant rather than strict.
const (
	PersonalityMethodical  = "methodical-structured"
	PersonalityEmpathetic  = "empathetic-patient"
	PersonalityDynamic     = "dynamic-encouraging"
	PersonalityCalm        = "calm-analytical"
	PersonalitySpontaneous = "spontaneous-creative"
)

// DefaultProfile returns the profile used before a mentor has introduced
// themselves. Mid-range adaptability keeps the compatibility engine neutral.
func DefaultProfile(id string) Profile {
	return Profile{
		ID:           id,
		Name:         "Mentor",
		Personality:  PersonalityEmpathetic,
		Style:        DefaultStyle,
		Adaptability: 0.5,
	}
}

// Profile describes a human mentor. It is an immutable input to the
// compatibility and predictive engines; ownership lies with the profile
// store.
type Profile struct {
	ID                 string
	Name               string
	Personality        string
	Style              TeachingStyle
	CulturalBackground string

	// Adaptability is the mentor's ability to bridge cultural and
	// personality gaps, 0..1.
	Adaptability float64

	YearsExperience  int
	PreferredMethods []string
	Specializations  []string
}
