package session

// Concept outcome thresholds for closing metrics.
const (
	masteredThreshold = 0.7
	reviewThreshold   = 0.5
)

// closeMetrics computes the closing measurements from the accumulated
// interactions. Success is the mean comprehension; teaching effectiveness is
// 0.5 plus the bounded first-to-last comprehension delta.
func closeMetrics(interactions []Interaction) Metrics {
	m := Metrics{
		TeachingEffectiveness: 0.5,
		ConceptsMastered:      []string{},
		ConceptsToReview:      []string{},
	}
	if len(interactions) == 0 {
		m.ParticipationRate = 0.5
		return m
	}

	sum := 0.0
	for _, ia := range interactions {
		sum += ia.Comprehension
		if ia.Comprehension > masteredThreshold {
			m.ConceptsMastered = append(m.ConceptsMastered, ia.Concept)
		} else if ia.Comprehension < reviewThreshold {
			m.ConceptsToReview = append(m.ConceptsToReview, ia.Concept)
		}
		if ia.NeedsHelp {
			m.Interventions++
		}
	}
	avg := sum / float64(len(interactions))
	m.SuccessScore = avg

	delta := interactions[len(interactions)-1].Comprehension - interactions[0].Comprehension
	if delta > 0.5 {
		delta = 0.5
	}
	if delta < -0.5 {
		delta = -0.5
	}
	m.TeachingEffectiveness = clamp01(0.5 + delta)

	helpFrac := float64(m.Interventions) / float64(len(interactions))
	m.ParticipationRate = clamp01(0.3 + 0.5*avg + 0.2*(1-helpFrac))

	return m
}

// progressDelta is the total progress the interactions contributed, mirroring
// the per-concept update applied in TeachConcept.
func progressDelta(interactions []Interaction) float64 {
	d := 0.0
	for _, ia := range interactions {
		d += ia.Comprehension * progressPerConcept
	}
	return d
}

// Fixed sub-competency defaults for the per-session mentor evaluation. Only
// the overall score varies with the session; the sub-competencies start from
// these baselines until enough history exists to differentiate them.
var defaultCompetencies = map[string]float64{
	"clarity":            0.70,
	"patience":           0.75,
	"adaptability":       0.70,
	"cultural-awareness": 0.65,
}

// evaluateMentor produces the per-session mentor evaluation: overall score
// is the session's mean comprehension.
func evaluateMentor(s *TeachingSession, m Metrics) *MentorEvaluation {
	comps := make(map[string]float64, len(defaultCompetencies))
	for k, v := range defaultCompetencies {
		comps[k] = v
	}
	return &MentorEvaluation{
		MentorID:     s.MentorID,
		SessionID:    s.ID,
		OverallScore: m.SuccessScore,
		Competencies: comps,
	}
}
