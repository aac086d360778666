package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marqos/signmentor/internal/ui/theme"
)

const (
	minWidth  = 60
	minHeight = 16
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render produces the full frame as a string.
func (m Model) render() string {
	if m.width < minWidth || m.height < minHeight {
		msg := theme.Hint.Render(fmt.Sprintf("Terminal too small (need %dx%d)", minWidth, minHeight))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	var body string
	switch m.phase {
	case phaseLoading:
		body = theme.Hint.Render("Loading student...")
	case phaseWelcome:
		body = m.viewWelcome()
	case phaseTopic:
		body = m.viewTopic()
	case phaseTeach:
		body = m.viewTeach()
	case phaseThinking:
		body = theme.Hint.Render("Waiting for " + m.studentName() + "...")
	case phaseReaction:
		body = m.viewReaction()
	case phaseSummary:
		body = m.viewSummary()
	case phaseError:
		body = theme.Negative.Render("Error: " + m.errMsg)
	}

	header := theme.Header.Width(m.width).Render("SignMentor")
	footer := theme.Footer.Width(m.width).Render(m.footerHints())

	content := lipgloss.Place(
		m.width,
		m.height-lipgloss.Height(header)-lipgloss.Height(footer),
		lipgloss.Center, lipgloss.Center,
		body,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) studentName() string {
	if m.status != nil {
		return m.status.Name
	}
	return "your student"
}

func (m Model) viewWelcome() string {
	st := m.status
	lines := []string{
		theme.Title.Render("Welcome back"),
		"",
		theme.Body.Render(fmt.Sprintf("%s  ·  %s  ·  %s", st.Name, st.Personality, st.Level)),
		theme.Body.Render(fmt.Sprintf("Progress %.0f%%   Comprehension %.0f%%", st.Progress*100, st.ComprehensionRate*100)),
		theme.Body.Render("Mood: ") + lipgloss.NewStyle().Foreground(theme.EmotionColor(st.Mood)).Render(st.Mood),
		"",
		theme.Hint.Render("Press Enter to start a session"),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) viewTopic() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Choose a topic"))
	b.WriteString("\n\n")
	for i, t := range m.topics {
		if i == m.topicIdx {
			b.WriteString(theme.Selected.Render("> " + t))
		} else {
			b.WriteString(theme.Unselected.Render("  " + t))
		}
		b.WriteString("\n")
	}
	return theme.Card.Render(b.String())
}

func (m Model) viewTeach() string {
	progress := fmt.Sprintf("Concept %d of %d", m.conceptIdx+1, len(m.concepts))
	lines := []string{
		theme.Subtitle.Render(m.topic),
		theme.Hint.Render(progress),
		"",
		theme.Body.Render("Teach: ") + theme.Selected.Render(m.currentConcept()),
		"",
		m.input.View(),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) viewReaction() string {
	r := m.lastResult
	emotion := lipgloss.NewStyle().
		Foreground(theme.EmotionColor(string(r.Emotion))).
		Bold(true).
		Render(string(r.Emotion))

	lines := []string{
		theme.Subtitle.Render(m.studentName() + " reacts"),
		"",
		theme.Body.Width(56).Render(r.Reaction),
		"",
		theme.Body.Render("Comprehension ") + comprehensionBar(r.Comprehension),
		theme.Body.Render("Feeling ") + emotion,
	}
	if r.NeedsHelp {
		lines = append(lines, theme.Negative.Render("Needs more help with this one"))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) viewSummary() string {
	sum := m.summary
	mx := sum.Metrics

	lines := []string{
		theme.Title.Render("Session complete"),
		"",
		theme.Body.Render(fmt.Sprintf("Topic: %s (%s)", sum.Topic, sum.Method)),
		theme.Body.Render(fmt.Sprintf("Success %.0f%%   Effectiveness %.0f%%   Participation %.0f%%",
			mx.SuccessScore*100, mx.TeachingEffectiveness*100, mx.ParticipationRate*100)),
	}
	if len(mx.ConceptsMastered) > 0 {
		lines = append(lines, theme.Positive.Render("Mastered: "+strings.Join(mx.ConceptsMastered, ", ")))
	}
	if len(mx.ConceptsToReview) > 0 {
		lines = append(lines, theme.Negative.Render("Review: "+strings.Join(mx.ConceptsToReview, ", ")))
	}
	if m.eval != nil {
		lines = append(lines, "", theme.Body.Render(fmt.Sprintf("Your teaching score: %.0f%%", m.eval.OverallScore*100)))
	}
	lines = append(lines, "", theme.Hint.Render("Press any key to exit"))
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) footerHints() string {
	switch m.phase {
	case phaseTopic:
		return "↑↓ Navigate  ·  Enter Select  ·  Esc Back  ·  Ctrl+C Quit"
	case phaseTeach:
		return "Enter Teach  ·  Esc End session  ·  Ctrl+C Quit"
	case phaseReaction:
		return "Any key Next concept  ·  Esc End session  ·  Ctrl+C Quit"
	default:
		return "Ctrl+C Quit"
	}
}

// comprehensionBar renders a ten-segment bar for a 0..1 score.
func comprehensionBar(score float64) string {
	filled := int(score*10 + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	style := lipgloss.NewStyle().Foreground(theme.Secondary)
	if score < 0.5 {
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	return style.Render(bar) + theme.Hint.Render(fmt.Sprintf(" %.0f%%", score*100))
}
