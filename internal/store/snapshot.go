package store

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const snapshotVersion = 1

// Export reads the whole database into a snapshot.
func (s *Store) Export(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Version: snapshotVersion}
	var err error
	if snap.Exercises, err = s.ListExercises(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Routines, err = s.ListRoutines(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Plans, err = s.ListPlans(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Sessions, err = s.ListSessions(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Import upserts every entity of a snapshot. Existing rows with other IDs are kept.
func (s *Store) Import(ctx context.Context, snap Snapshot) error {
	if snap.Version > snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	for _, e := range snap.Exercises {
		if _, err := s.PutExercise(ctx, e); err != nil {
			return err
		}
	}
	for _, r := range snap.Routines {
		if _, err := s.PutRoutine(ctx, r); err != nil {
			return err
		}
	}
	for _, p := range snap.Plans {
		if _, err := s.PutPlan(ctx, p); err != nil {
			return err
		}
	}
	for _, sess := range snap.Sessions {
		if _, err := s.PutSession(ctx, sess); err != nil {
			return err
		}
	}
	return nil
}

// WriteSnapshot encodes a snapshot as YAML.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

// ReadSnapshot decodes a YAML snapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}
