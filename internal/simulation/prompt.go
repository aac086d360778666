package simulation

import (
	"fmt"
	"strings"

	"github.com/marqos/signmentor/internal/student"
)

const systemPrompt = `You simulate an AI student learning sign language from a human mentor.
Stay in character: react as the student would, given their personality, mood
and current level. Judge the mentor's explanation honestly — a vague or
rushed explanation should produce low comprehension, a clear and
well-structured one high comprehension. Respond only with the requested JSON.`

// buildPrompt renders the student card and the taught concept into the user
// message.
func buildPrompt(st *student.State, concept, explanation, method string) string {
	var b strings.Builder

	b.WriteString("Student:\n")
	fmt.Fprintf(&b, "- Name: %s\n", st.Name)
	fmt.Fprintf(&b, "- Personality: %s\n", st.Personality)
	fmt.Fprintf(&b, "- Level: %s\n", st.Level)
	fmt.Fprintf(&b, "- Current mood: %s\n", st.Mood)
	fmt.Fprintf(&b, "- Rolling comprehension: %.2f\n", st.ComprehensionRate)
	if len(st.Weaknesses) > 0 {
		fmt.Fprintf(&b, "- Known weaknesses: %s\n", strings.Join(st.Weaknesses, ", "))
	}

	b.WriteString("\nLesson:\n")
	fmt.Fprintf(&b, "- Concept: %s\n", concept)
	fmt.Fprintf(&b, "- Teaching method: %s\n", method)
	fmt.Fprintf(&b, "- Mentor's explanation: %s\n", explanation)

	b.WriteString("\nProduce the student's reaction and a comprehension score.")
	return b.String()
}
