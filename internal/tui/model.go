package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

// phase is the screen the teach loop is currently showing.
type phase int

const (
	phaseLoading phase = iota
	phaseWelcome
	phaseTopic
	phaseTeach
	phaseThinking
	phaseReaction
	phaseSummary
	phaseError
)

// Options configures the teach loop.
type Options struct {
	Orchestrator *session.Orchestrator
	Profile      mentor.Profile
}

// Model is the root Bubble Tea model for the interactive teach loop.
type Model struct {
	orch    *session.Orchestrator
	profile mentor.Profile

	phase  phase
	width  int
	height int

	status *student.Status

	topics   []string
	topicIdx int

	sessionID  string
	topic      string
	method     string
	concepts   []string
	conceptIdx int
	input      textinput.Model

	lastResult *session.TeachResult
	summary    *session.Summary
	eval       *session.MentorEvaluation
	errMsg     string
}

// NewModel builds the initial teach-loop model.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Explain the sign in your own words..."
	ti.CharLimit = 400

	return Model{
		orch:    opts.Orchestrator,
		profile: opts.Profile,
		phase:   phaseLoading,
		topics:  session.Topics(),
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadStudent()
}

// loadStudent fetches the mentor's student, creating one on first run.
func (m Model) loadStudent() tea.Cmd {
	orch := m.orch
	mentorID := m.profile.ID
	return func() tea.Msg {
		ctx := context.Background()
		status, err := orch.Status(ctx, mentorID)
		if err == nil {
			return studentReadyMsg{Status: status}
		}

		var notFound *session.ErrStudentNotFound
		if !errors.As(err, &notFound) {
			return studentReadyMsg{Err: err}
		}

		status, err = orch.CreateStudent(ctx, mentorID, session.CreateOptions{})
		return studentReadyMsg{Status: status, Err: err}
	}
}

func (m Model) startSession(topic string) tea.Cmd {
	orch := m.orch
	mentorID := m.profile.ID
	return func() tea.Msg {
		ctx := context.Background()
		id, err := orch.StartSession(ctx, mentorID, topic, session.StartOptions{})
		if err != nil {
			return sessionStartedMsg{Err: err}
		}
		return sessionStartedMsg{
			SessionID: id,
			Concepts:  session.ConceptsForTopic(topic),
		}
	}
}

func (m Model) teachConcept(concept, explanation string) tea.Cmd {
	orch := m.orch
	mentorID := m.profile.ID
	sessionID := m.sessionID
	return func() tea.Msg {
		ctx := context.Background()
		result, err := orch.TeachConcept(ctx, mentorID, sessionID, concept, explanation)
		if err != nil {
			return reactionMsg{Err: err}
		}
		status, err := orch.Status(ctx, mentorID)
		return reactionMsg{Result: result, Status: status, Err: err}
	}
}

func (m Model) endSession() tea.Cmd {
	orch := m.orch
	mentorID := m.profile.ID
	sessionID := m.sessionID
	return func() tea.Msg {
		ctx := context.Background()
		sum, eval, err := orch.EndSession(ctx, mentorID, sessionID)
		return sessionEndedMsg{Summary: sum, Eval: eval, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case studentReadyMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		m.status = msg.Status
		m.phase = phaseWelcome
		return m, nil

	case sessionStartedMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		m.sessionID = msg.SessionID
		m.concepts = msg.Concepts
		m.conceptIdx = 0
		m.phase = phaseTeach
		m.input.SetValue("")
		return m, m.input.Focus()

	case reactionMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		m.lastResult = msg.Result
		m.status = msg.Status
		m.phase = phaseReaction
		return m, nil

	case sessionEndedMsg:
		if msg.Err != nil {
			return m.fail(msg.Err), nil
		}
		m.summary = msg.Summary
		m.eval = msg.Eval
		m.phase = phaseSummary
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseTeach {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseWelcome:
		switch key {
		case "enter":
			m.phase = phaseTopic
			return m, nil
		case "q", "esc":
			return m, tea.Quit
		}

	case phaseTopic:
		switch key {
		case "up", "k":
			if m.topicIdx > 0 {
				m.topicIdx--
			}
			return m, nil
		case "down", "j":
			if m.topicIdx < len(m.topics)-1 {
				m.topicIdx++
			}
			return m, nil
		case "enter":
			m.topic = m.topics[m.topicIdx]
			m.phase = phaseThinking
			return m, m.startSession(m.topic)
		case "esc":
			m.phase = phaseWelcome
			return m, nil
		}

	case phaseTeach:
		switch key {
		case "enter":
			explanation := m.input.Value()
			if explanation == "" {
				return m, nil
			}
			m.phase = phaseThinking
			return m, m.teachConcept(m.currentConcept(), explanation)
		case "esc":
			m.phase = phaseThinking
			return m, m.endSession()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

	case phaseReaction:
		switch key {
		case "esc":
			m.phase = phaseThinking
			return m, m.endSession()
		default:
			m.conceptIdx++
			if m.conceptIdx >= len(m.concepts) {
				m.phase = phaseThinking
				return m, m.endSession()
			}
			m.phase = phaseTeach
			m.input.SetValue("")
			return m, m.input.Focus()
		}

	case phaseSummary, phaseError:
		return m, tea.Quit
	}

	return m, nil
}

// currentConcept returns the concept being taught, guarding the index.
func (m Model) currentConcept() string {
	if m.conceptIdx < len(m.concepts) {
		return m.concepts[m.conceptIdx]
	}
	return "free-practice"
}

func (m Model) fail(err error) Model {
	m.errMsg = err.Error()
	m.phase = phaseError
	return m
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
