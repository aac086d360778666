package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marqos/signmentor/ent"
	"github.com/marqos/signmentor/ent/snapshot"
	"github.com/marqos/signmentor/internal/student"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *StudentSnapshot) error {
	dataMap, err := studentToMap(snap.Student)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	seqNum := snap.Sequence
	if seqNum == 0 {
		seqNum, err = r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
	}

	_, err = r.client.Snapshot.Create().
		SetMentorID(snap.MentorID).
		SetSequence(seqNum).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, mentorID string) (*StudentSnapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.MentorID(mentorID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entStudentSnapshot(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, mentorID string, keep int) error {
	// Find the threshold: get the Nth most recent snapshot for this mentor.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.MentorID(mentorID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(
			snapshot.MentorID(mentorID),
			snapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Delete(ctx context.Context, mentorID string) error {
	_, err := r.client.Snapshot.Delete().
		Where(snapshot.MentorID(mentorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}

// studentToMap converts a student.State to map[string]any for ent JSON storage.
func studentToMap(st student.State) (map[string]any, error) {
	b, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entStudentSnapshot converts an ent Snapshot to a StudentSnapshot.
func entStudentSnapshot(s *ent.Snapshot) (*StudentSnapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var st student.State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &StudentSnapshot{
		ID:        s.ID,
		MentorID:  s.MentorID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Student:   st,
	}, nil
}
