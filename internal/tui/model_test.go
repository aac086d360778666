package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

// stubSimulator implements session.Simulator for testing.
type stubSimulator struct {
	reaction session.Reaction
}

func (s *stubSimulator) Simulate(_ context.Context, _ *student.State, _, _, _ string) (session.Reaction, error) {
	return s.reaction, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testModel() Model {
	orch := session.New(session.Options{
		Records:  session.NewMemoryRecordStore(),
		Students: session.NewMemoryStudentStore(),
		Sim: &stubSimulator{reaction: session.Reaction{
			Text:          "Oh, I see! The handshape makes sense now.",
			Comprehension: 0.85,
		}},
	})
	profile := mentor.Profile{ID: "mentor-1", Name: "Sam"}
	return NewModel(Options{Orchestrator: orch, Profile: profile})
}

// runCmd executes a command and feeds its message back into the model.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_InitLoadsStudent(t *testing.T) {
	m := testModel()
	m = runCmd(t, m, m.Init())

	if m.phase != phaseWelcome {
		t.Errorf("phase = %d, want phaseWelcome", m.phase)
	}
	if m.status == nil {
		t.Fatal("expected a student status after Init")
	}
	if m.status.Name != session.DefaultStudentName {
		t.Errorf("student name = %q, want %q", m.status.Name, session.DefaultStudentName)
	}
}

func TestModel_WelcomeToTopic(t *testing.T) {
	m := testModel()
	m = runCmd(t, m, m.Init())

	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if m.phase != phaseTopic {
		t.Errorf("phase = %d, want phaseTopic", m.phase)
	}
	if len(m.topics) == 0 {
		t.Error("expected a non-empty topic list")
	}
}

func TestModel_TopicSelectionStartsSession(t *testing.T) {
	m := testModel()
	m = runCmd(t, m, m.Init())

	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	m = runCmd(t, m, cmd)

	if m.phase != phaseTeach {
		t.Errorf("phase = %d, want phaseTeach", m.phase)
	}
	if m.sessionID == "" {
		t.Error("expected a session ID after starting")
	}
	if len(m.concepts) == 0 {
		t.Error("expected concepts for the chosen topic")
	}
}

func TestModel_TeachConceptShowsReaction(t *testing.T) {
	m := testModel()
	m = runCmd(t, m, m.Init())
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = runCmd(t, next.(Model), cmd)

	m.input.SetValue("Flat hand at the chin, moving outward.")
	next, cmd = m.Update(specialKey(tea.KeyEnter))
	m = runCmd(t, next.(Model), cmd)

	if m.phase != phaseReaction {
		t.Errorf("phase = %d, want phaseReaction", m.phase)
	}
	if m.lastResult == nil {
		t.Fatal("expected a teach result")
	}
	if m.lastResult.Comprehension != 0.85 {
		t.Errorf("comprehension = %v, want 0.85", m.lastResult.Comprehension)
	}
}

func TestModel_EscEndsSession(t *testing.T) {
	m := testModel()
	m = runCmd(t, m, m.Init())
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = runCmd(t, next.(Model), cmd)

	next, cmd = m.Update(specialKey(tea.KeyEscape))
	m = runCmd(t, next.(Model), cmd)

	if m.phase != phaseSummary {
		t.Errorf("phase = %d, want phaseSummary", m.phase)
	}
	if m.summary == nil {
		t.Fatal("expected a session summary")
	}
	if m.eval == nil {
		t.Error("expected a mentor evaluation")
	}
}

func TestModel_EmptyExplanationIgnored(t *testing.T) {
	m := testModel()
	m = runCmd(t, m, m.Init())
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = runCmd(t, next.(Model), cmd)

	next, cmd = m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	if cmd != nil {
		t.Error("expected no command for an empty explanation")
	}
	if m.phase != phaseTeach {
		t.Errorf("phase = %d, want phaseTeach", m.phase)
	}
}

func TestModel_ViewNonEmpty(t *testing.T) {
	m := testModel()
	m.width = 80
	m.height = 24
	m = runCmd(t, m, m.Init())

	if m.render() == "" {
		t.Error("expected non-empty view for welcome state")
	}
}

func TestModel_ViewTooSmall(t *testing.T) {
	m := testModel()
	m.width = 20
	m.height = 5

	if m.render() == "" {
		t.Error("expected a min-size message")
	}
}
