package simulation

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

// heuristicReaction is the deterministic fallback used when no LLM provider
// is configured or the provider call fails. It scores the explanation from
// observable signals only, so the same input always yields the same
// reaction.
func heuristicReaction(st *student.State, concept, explanation, method string) session.Reaction {
	score := st.ComprehensionRate

	// Explanation quality: too terse loses the student, a developed
	// explanation helps.
	switch n := len(explanation); {
	case n < 20:
		score -= 0.2
	case n >= 40 && n <= 240:
		score += 0.15
	case n > 400:
		score -= 0.05
	}

	// Naming the concept in the explanation anchors it.
	if strings.Contains(strings.ToLower(explanation), strings.ToLower(concept)) {
		score += 0.1
	}

	// A method matched to the personality lands better.
	if method == session.MethodFor(st.Personality) {
		score += 0.1
	}

	// Mood carries over from the previous concept.
	switch st.Mood {
	case student.MoodJoy, student.MoodSatisfaction:
		score += 0.05
	case student.MoodConfusion:
		score -= 0.05
	case student.MoodFrustration:
		score -= 0.1
	}

	score += jitter(concept + "|" + explanation)

	if score < 0.05 {
		score = 0.05
	}
	if score > 0.98 {
		score = 0.98
	}

	return session.Reaction{
		Text:          reactionText(st, concept, score),
		Comprehension: score,
	}
}

// jitter derives a stable ±0.08 offset from the input so repeated drills on
// the same wording don't produce identical scores across concepts.
func jitter(s string) float64 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return (float64(h.Sum32()%1600)/1600 - 0.5) * 0.16
}

func reactionText(st *student.State, concept string, score float64) string {
	switch {
	case score > 0.8:
		return fmt.Sprintf("%s signs %q back fluidly and beams — that explanation clicked.", st.Name, concept)
	case score > 0.6:
		return fmt.Sprintf("%s repeats %q with minor hesitation but clearly got the idea.", st.Name, concept)
	case score > 0.4:
		return fmt.Sprintf("%s attempts %q slowly, watching your hands for confirmation.", st.Name, concept)
	case score > 0.2:
		return fmt.Sprintf("%s frowns and mixes up the handshape for %q — something didn't land.", st.Name, concept)
	default:
		return fmt.Sprintf("%s drops their hands, frustrated — %q needs a different approach.", st.Name, concept)
	}
}
