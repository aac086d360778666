// Package app assembles the orchestrator from its stores and launches the
// interactive teach loop.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/marqos/signmentor/internal/llm"
	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/simulation"
	"github.com/marqos/signmentor/internal/store"
	"github.com/marqos/signmentor/internal/tui"
)

// Options carries the app's dependencies.
type Options struct {
	Store    *store.Store
	MentorID string

	// Provider drives the simulated student. Optional; without it the
	// deterministic heuristic takes over.
	Provider llm.Provider
}

// Run builds the orchestrator, rebuilds session history from the event log,
// and starts the TUI.
func Run(ctx context.Context, opts Options) error {
	eventRepo := opts.Store.EventRepo()

	records := session.NewMemoryRecordStore()
	history, err := store.LoadSummaries(ctx, eventRepo, opts.MentorID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load session history:", err)
	} else {
		records.Seed(opts.MentorID, history)
	}

	orch := session.New(session.Options{
		Records:  records,
		Students: store.NewStudentStore(opts.Store.SnapshotRepo()),
		Sim:      simulation.NewService(opts.Provider, simulation.DefaultConfig()),
		Events:   store.NewEventLog(eventRepo),
	})

	profile, err := loadProfile(ctx, opts.Store, opts.MentorID)
	if err != nil {
		return fmt.Errorf("load mentor profile: %w", err)
	}

	return tui.Run(tui.Options{
		Orchestrator: orch,
		Profile:      profile,
	})
}

// loadProfile reads the mentor's stored profile, falling back to the
// neutral default for first runs.
func loadProfile(ctx context.Context, st *store.Store, mentorID string) (mentor.Profile, error) {
	p, err := st.ProfileRepo().Get(ctx, mentorID)
	if err != nil {
		return mentor.Profile{}, err
	}
	if p == nil {
		return mentor.DefaultProfile(mentorID), nil
	}
	return *p, nil
}
