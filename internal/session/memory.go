package session

import (
	"context"
	"sync"

	"github.com/marqos/signmentor/internal/student"
)

// MemoryRecordStore is an in-memory RecordStore. It backs tests and runs
// without a database; durable persistence goes through the EventLog.
type MemoryRecordStore struct {
	mu      sync.Mutex
	active  map[string]*TeachingSession
	history map[string][]*Summary
}

// NewMemoryRecordStore creates an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		active:  make(map[string]*TeachingSession),
		history: make(map[string][]*Summary),
	}
}

func (s *MemoryRecordStore) Active(_ context.Context, mentorID string) (*TeachingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[mentorID], nil
}

func (s *MemoryRecordStore) Create(_ context.Context, mentorID string, sess *TeachingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[mentorID] = sess
	return nil
}

func (s *MemoryRecordStore) Append(_ context.Context, mentorID string, ia Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.active[mentorID]
	if sess == nil {
		return &ErrSessionNotFound{MentorID: mentorID}
	}
	sess.Interactions = append(sess.Interactions, ia)
	return nil
}

func (s *MemoryRecordStore) Terminate(_ context.Context, mentorID string, sum *Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[mentorID] == nil {
		return &ErrSessionNotFound{MentorID: mentorID}
	}
	delete(s.active, mentorID)
	s.history[mentorID] = append(s.history[mentorID], sum)
	return nil
}

// Seed preloads closed-session history for a mentor, replacing whatever is
// already held. Used at startup to rebuild from the durable event log.
func (s *MemoryRecordStore) Seed(mentorID string, history []*Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[mentorID] = append([]*Summary(nil), history...)
}

func (s *MemoryRecordStore) History(_ context.Context, mentorID string) ([]*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Summary(nil), s.history[mentorID]...), nil
}

// MemoryStudentStore is an in-memory StudentStore.
type MemoryStudentStore struct {
	mu       sync.Mutex
	students map[string]*student.State
}

// NewMemoryStudentStore creates an empty in-memory student store.
func NewMemoryStudentStore() *MemoryStudentStore {
	return &MemoryStudentStore{students: make(map[string]*student.State)}
}

func (s *MemoryStudentStore) Get(_ context.Context, mentorID string) (*student.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students[mentorID].Clone(), nil
}

func (s *MemoryStudentStore) Put(_ context.Context, mentorID string, st *student.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[mentorID] = st.Clone()
	return nil
}
