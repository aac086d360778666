package analytics

// Fixed threshold rules for behavioral-pattern classification. The labels
// name recurring sign-language learning patterns: temporal confusion (mixing
// up time-line placement), spatial grammar gaps, manual precision and so on.
const (
	lowComprehension  = 0.6
	lowParticipation  = 0.5
	lowSuccess        = 0.5
	highSuccess       = 0.85
	highParticipation = 0.8
	highComprehension = 0.75
	erraticVariance   = 0.08
	steadyStability   = 0.9
)

func detectErrorPatterns(comprehension, participation, success []float64) []string {
	patterns := []string{}
	if mean(comprehension) < lowComprehension {
		patterns = append(patterns, "temporal_confusion")
	}
	if mean(participation) < lowParticipation {
		patterns = append(patterns, "attention_drift")
	}
	if mean(success) < lowSuccess {
		patterns = append(patterns, "spatial_grammar_gaps")
	}
	if variance(success) > erraticVariance {
		patterns = append(patterns, "inconsistent_retention")
	}
	return patterns
}

func detectStrengthAreas(comprehension, participation, success []float64, emotionalStability float64) []string {
	areas := []string{}
	if mean(success) > highSuccess {
		areas = append(areas, "manual_precision")
	}
	if mean(participation) > highParticipation {
		areas = append(areas, "expressive_engagement")
	}
	if mean(comprehension) > highComprehension {
		areas = append(areas, "visual_vocabulary")
	}
	if emotionalStability > steadyStability {
		areas = append(areas, "steady_focus")
	}
	return areas
}
