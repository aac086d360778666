package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marqos/signmentor/internal/student"
)

// progressPerConcept scales how much one fully understood concept moves the
// student's overall progress.
const progressPerConcept = 0.03

// comprehensionBlend is the weight of the newest comprehension score in the
// student's rolling comprehension rate.
const comprehensionBlend = 0.3

// Default student attributes applied by CreateStudent when not supplied.
const (
	DefaultStudentName   = "Noa"
	defaultAttentionSpan = 15
	initialComprehension = 0.5
)

// Options configures an Orchestrator.
type Options struct {
	Records  RecordStore
	Students StudentStore
	Sim      Simulator

	// Events receives durable lifecycle events. Optional.
	Events EventLog

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Orchestrator owns the active-session lifecycle for all mentors. All
// mutable state lives in the injected stores; the orchestrator itself only
// keeps per-mentor locks so that concurrent operations on the same mentor
// apply as a strict sequence while different mentors stay independent.
type Orchestrator struct {
	records  RecordStore
	students StudentStore
	sim      Simulator
	events   EventLog
	now      func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an Orchestrator from options. Records, Students and Sim are
// required.
func New(opts Options) *Orchestrator {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		records:  opts.Records,
		students: opts.Students,
		sim:      opts.Sim,
		events:   opts.Events,
		now:      now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockMentor returns the serialization lock for a mentor, creating it on
// first use.
func (o *Orchestrator) lockMentor(mentorID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	l, ok := o.locks[mentorID]
	if !ok {
		l = &sync.Mutex{}
		o.locks[mentorID] = l
	}
	return l
}

// CreateOptions holds the optional attributes for CreateStudent.
type CreateOptions struct {
	Name            string
	Personality     string
	CulturalContext string
	Level           string

	// Recreate allows replacing an existing student.
	Recreate bool
}

// CreateStudent constructs a fresh student for the mentor and persists it.
// Fails with ErrInvalidState when a student already exists and Recreate is
// not set.
func (o *Orchestrator) CreateStudent(ctx context.Context, mentorID string, opts CreateOptions) (*student.Status, error) {
	l := o.lockMentor(mentorID)
	l.Lock()
	defer l.Unlock()

	existing, err := o.students.Get(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if existing != nil && !opts.Recreate {
		return nil, &ErrInvalidState{
			MentorID: mentorID,
			Op:       "create student",
			Reason:   "student already exists (set Recreate to replace)",
		}
	}

	name := opts.Name
	if name == "" {
		name = DefaultStudentName
	}
	culture := opts.CulturalContext
	if culture == "" {
		culture = student.DefaultCulturalContext
	}

	st := &student.State{
		ID:                uuid.NewString(),
		Name:              name,
		Personality:       student.NormalizePersonality(opts.Personality),
		Level:             student.NormalizeLevel(opts.Level),
		Mood:              student.MoodNeutral,
		CulturalContext:   culture,
		Progress:          0,
		ComprehensionRate: initialComprehension,
		AttentionSpan:     defaultAttentionSpan,
	}

	if err := o.students.Put(ctx, mentorID, st); err != nil {
		return nil, err
	}
	return student.StatusOf(st), nil
}

// StartOptions holds the optional attributes for StartSession.
type StartOptions struct {
	Concepts []string
	Method   string
}

// StartSession opens a new teaching session for the mentor and returns its
// ID. Concepts default from the topic table and the method from the
// student's personality when omitted. Fails with ErrStudentNotFound when no
// student exists, and with ErrInvalidState when a session is already active.
func (o *Orchestrator) StartSession(ctx context.Context, mentorID, topic string, opts StartOptions) (string, error) {
	l := o.lockMentor(mentorID)
	l.Lock()
	defer l.Unlock()

	st, err := o.students.Get(ctx, mentorID)
	if err != nil {
		return "", err
	}
	if st == nil {
		return "", &ErrStudentNotFound{MentorID: mentorID}
	}

	active, err := o.records.Active(ctx, mentorID)
	if err != nil {
		return "", err
	}
	if active != nil {
		return "", &ErrInvalidState{
			MentorID: mentorID,
			Op:       "start session",
			Reason:   "a session is already active",
		}
	}

	concepts := opts.Concepts
	if len(concepts) == 0 {
		concepts = ConceptsForTopic(topic)
	}
	method := opts.Method
	if method == "" {
		method = MethodFor(st.Personality)
	}

	sess := &TeachingSession{
		ID:        uuid.NewString(),
		MentorID:  mentorID,
		StudentID: st.ID,
		Topic:     topic,
		Method:    method,
		Concepts:  concepts,
		StartedAt: o.now(),
	}

	if err := o.records.Create(ctx, mentorID, sess); err != nil {
		return "", err
	}
	o.logStart(ctx, sess)
	return sess.ID, nil
}

// TeachConcept records one teaching interaction: the simulator produces the
// student's reaction and comprehension, the emotion is derived from fixed
// comprehension bands, and the student state is updated in the store before
// the call returns.
func (o *Orchestrator) TeachConcept(ctx context.Context, mentorID, sessionID, concept, explanation string) (*TeachResult, error) {
	l := o.lockMentor(mentorID)
	l.Lock()
	defer l.Unlock()

	active, err := o.activeSession(ctx, mentorID, sessionID)
	if err != nil {
		return nil, err
	}

	st, err := o.students.Get(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, &ErrStudentNotFound{MentorID: mentorID}
	}

	reaction, err := o.sim.Simulate(ctx, st, concept, explanation, active.Method)
	if err != nil {
		return nil, err
	}

	emotion := EmotionFor(reaction.Comprehension)
	needsHelp := reaction.Comprehension < HelpThreshold

	ia := Interaction{
		Concept:       concept,
		Explanation:   explanation,
		Reaction:      reaction.Text,
		Comprehension: reaction.Comprehension,
		Emotion:       emotion,
		NeedsHelp:     needsHelp,
		At:            o.now(),
	}
	if err := o.records.Append(ctx, mentorID, ia); err != nil {
		return nil, err
	}

	st.Mood = emotion
	st.ComprehensionRate = (1-comprehensionBlend)*st.ComprehensionRate + comprehensionBlend*reaction.Comprehension
	st.Progress = clamp01(st.Progress + reaction.Comprehension*progressPerConcept)
	if err := o.students.Put(ctx, mentorID, st); err != nil {
		return nil, err
	}

	o.logTeach(ctx, mentorID, sessionID, ia)

	return &TeachResult{
		Reaction:      reaction.Text,
		Comprehension: reaction.Comprehension,
		Emotion:       emotion,
		NeedsHelp:     needsHelp,
	}, nil
}

// EndSession freezes the active session into a summary, computes closing
// metrics and the mentor evaluation, and persists the summary. A second
// EndSession on the same session fails with ErrSessionNotFound.
func (o *Orchestrator) EndSession(ctx context.Context, mentorID, sessionID string) (*Summary, *MentorEvaluation, error) {
	l := o.lockMentor(mentorID)
	l.Lock()
	defer l.Unlock()

	active, err := o.activeSession(ctx, mentorID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	now := o.now()
	sum := &Summary{
		SessionID:    active.ID,
		MentorID:     active.MentorID,
		StudentID:    active.StudentID,
		Topic:        active.Topic,
		Method:       active.Method,
		StartedAt:    active.StartedAt,
		EndedAt:      now,
		Interactions: append([]Interaction(nil), active.Interactions...),
		Metrics:      closeMetrics(active.Interactions),
	}
	sum.ProgressDelta = progressDelta(active.Interactions)

	if err := o.records.Terminate(ctx, mentorID, sum); err != nil {
		return nil, nil, err
	}
	o.logEnd(ctx, sum)

	eval := evaluateMentor(active, sum.Metrics)
	return sum, eval, nil
}

// Status returns the externally visible student status for a mentor.
func (o *Orchestrator) Status(ctx context.Context, mentorID string) (*student.Status, error) {
	st, err := o.students.Get(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, &ErrStudentNotFound{MentorID: mentorID}
	}
	return student.StatusOf(st), nil
}

// Phase reports the derived lifecycle phase for a mentor.
func (o *Orchestrator) Phase(ctx context.Context, mentorID string) (Phase, error) {
	st, err := o.students.Get(ctx, mentorID)
	if err != nil {
		return PhaseNoStudent, err
	}
	if st == nil {
		return PhaseNoStudent, nil
	}
	active, err := o.records.Active(ctx, mentorID)
	if err != nil {
		return PhaseNoStudent, err
	}
	if active != nil {
		return PhaseSessionActive, nil
	}
	hist, err := o.records.History(ctx, mentorID)
	if err != nil {
		return PhaseNoStudent, err
	}
	if len(hist) > 0 {
		return PhaseSessionClosed, nil
	}
	return PhaseStudentCreated, nil
}

// History returns the mentor's closed sessions in chronological order.
func (o *Orchestrator) History(ctx context.Context, mentorID string) ([]*Summary, error) {
	return o.records.History(ctx, mentorID)
}

// activeSession fetches the active session and checks the ID matches.
func (o *Orchestrator) activeSession(ctx context.Context, mentorID, sessionID string) (*TeachingSession, error) {
	active, err := o.records.Active(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if active == nil || active.ID != sessionID {
		return nil, &ErrSessionNotFound{MentorID: mentorID, SessionID: sessionID}
	}
	return active, nil
}

// Event logging never fails the teaching operation that triggered it.
func (o *Orchestrator) logStart(ctx context.Context, s *TeachingSession) {
	if o.events != nil {
		if err := o.events.SessionStarted(ctx, s); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log session start: %v\n", err)
		}
	}
}

func (o *Orchestrator) logTeach(ctx context.Context, mentorID, sessionID string, ia Interaction) {
	if o.events != nil {
		if err := o.events.ConceptTaught(ctx, mentorID, sessionID, ia); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log interaction: %v\n", err)
		}
	}
}

func (o *Orchestrator) logEnd(ctx context.Context, sum *Summary) {
	if o.events != nil {
		if err := o.events.SessionEnded(ctx, sum); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log session end: %v\n", err)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
