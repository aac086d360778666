package session

import "github.com/marqos/signmentor/internal/student"

// Comprehension bands for emotion derivation. The thresholds are fixed
// behavioral constants; HelpThreshold additionally gates the needs-help flag.
const (
	joyThreshold           = 0.8
	satisfactionThreshold  = 0.6
	concentrationThreshold = 0.4
	confusionThreshold     = 0.2

	// HelpThreshold: below this comprehension the student needs help.
	HelpThreshold = 0.5
)

// EmotionFor derives the student's emotional reaction from a comprehension
// score.
func EmotionFor(comprehension float64) student.Mood {
	switch {
	case comprehension > joyThreshold:
		return student.MoodJoy
	case comprehension > satisfactionThreshold:
		return student.MoodSatisfaction
	case comprehension > concentrationThreshold:
		return student.MoodConcentration
	case comprehension > confusionThreshold:
		return student.MoodConfusion
	default:
		return student.MoodFrustration
	}
}
