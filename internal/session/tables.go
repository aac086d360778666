package session

import (
	"sort"

	"github.com/marqos/signmentor/internal/student"
)

// topicConcepts maps a teaching topic to its default concept sequence,
// used when StartSession is called without explicit concepts.
var topicConcepts = map[string][]string{
	"greetings":        {"hello", "goodbye", "thank-you", "please", "nice-to-meet-you"},
	"family":           {"mother", "father", "sibling", "grandparent", "family-sign"},
	"numbers":          {"one-to-five", "six-to-ten", "counting-rhythm", "number-incorporation"},
	"colors":           {"red", "blue", "green", "yellow", "color-placement"},
	"emotions":         {"happy", "sad", "angry", "surprised", "facial-grammar"},
	"food":             {"eat", "drink", "bread", "water", "mealtime-phrases"},
	"time":             {"today", "tomorrow", "yesterday", "week", "time-line"},
	"everyday-objects": {"house", "phone", "book", "chair", "classifier-handshapes"},
}

// defaultConcepts is used for topics without a lookup entry.
var defaultConcepts = []string{"core-vocabulary", "handshape-drill", "facial-expression", "spatial-reference"}

// ConceptsForTopic returns the default concepts for a topic. Unknown topics
// get a generic concept sequence rather than an error.
func ConceptsForTopic(topic string) []string {
	if cs, ok := topicConcepts[topic]; ok {
		return append([]string(nil), cs...)
	}
	return append([]string(nil), defaultConcepts...)
}

// Topics lists the known teaching topics in alphabetical order.
func Topics() []string {
	out := make([]string, 0, len(topicConcepts))
	for t := range topicConcepts {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// personalityMethod maps a student personality to the teaching method that
// suits it best, used when StartSession is called without a method.
var personalityMethod = map[student.Personality]string{
	student.PersonalityCurious:    "storytelling",
	student.PersonalityAnalytical: "structured-decomposition",
	student.PersonalityPlayful:    "game-based",
	student.PersonalityShy:        "mirrored-practice",
	student.PersonalityEnergetic:  "rapid-repetition",
}

// DefaultMethod is the fallback teaching method.
const DefaultMethod = "visual-demonstration"

// MethodFor returns the preferred teaching method for a student personality.
func MethodFor(p student.Personality) string {
	if m, ok := personalityMethod[p]; ok {
		return m
	}
	return DefaultMethod
}
