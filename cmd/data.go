package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/store"
	"github.com/marqos/signmentor/internal/student"
)

// mentorData bundles everything the read-only analysis commands need.
type mentorData struct {
	store     *store.Store
	mentorID  string
	profile   mentor.Profile
	student   *student.State
	summaries []*session.Summary
}

func (d *mentorData) Close() error {
	return d.store.Close()
}

// loadMentorData opens the store and loads the mentor's profile, student
// state and closed-session history. The student may be nil before the first
// teach run.
func loadMentorData(cmd *cobra.Command) (*mentorData, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx := cmd.Context()
	mentorID := resolveMentorID(cmd)

	d := &mentorData{store: st, mentorID: mentorID}

	p, err := st.ProfileRepo().Get(ctx, mentorID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p != nil {
		d.profile = *p
	} else {
		d.profile = mentor.DefaultProfile(mentorID)
	}

	d.student, err = store.NewStudentStore(st.SnapshotRepo()).Get(ctx, mentorID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load student: %w", err)
	}

	d.summaries, err = store.LoadSummaries(ctx, st.EventRepo(), mentorID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load session history: %w", err)
	}

	return d, nil
}
