package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ListRoutines returns all routines sorted by name.
func (s *Store) ListRoutines(ctx context.Context) ([]Routine, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM routine ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	var routines []Routine
	for rows.Next() {
		var r Routine
		var created string
		if err := rows.Scan(&r.ID, &r.Name, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		r.CreatedAt = parseTime(created)
		routines = append(routines, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range routines {
		ids, err := s.routineExercises(ctx, routines[i].ID)
		if err != nil {
			return nil, err
		}
		routines[i].ExerciseIDs = ids
	}
	return routines, nil
}

// GetRoutine returns one routine with its exercise order.
func (s *Store) GetRoutine(ctx context.Context, id string) (Routine, error) {
	var r Routine
	var created string
	err := s.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM routine WHERE id = ?`, id).
		Scan(&r.ID, &r.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Routine{}, notFound("routine", id)
	}
	if err != nil {
		return Routine{}, fmt.Errorf("get routine: %w", err)
	}
	r.CreatedAt = parseTime(created)
	r.ExerciseIDs, err = s.routineExercises(ctx, id)
	if err != nil {
		return Routine{}, err
	}
	return r, nil
}

// PutRoutine inserts or replaces a routine.
func (s *Store) PutRoutine(ctx context.Context, r Routine) (Routine, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return Routine{}, errors.New("routine name is required")
	}
	if r.ID == "" {
		r.ID = newID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO routine (id, name, created_at) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
			r.ID, r.Name, formatTime(r.CreatedAt))
		if err != nil {
			return fmt.Errorf("put routine: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM routine_exercise WHERE routine_id = ?`, r.ID); err != nil {
			return fmt.Errorf("clear routine exercises: %w", err)
		}
		for i, exID := range r.ExerciseIDs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO routine_exercise (routine_id, position, exercise_id) VALUES (?, ?, ?)`, r.ID, i, exID)
			if err != nil {
				return fmt.Errorf("insert routine exercise: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Routine{}, err
	}
	return r, nil
}

// DeleteRoutine removes a routine and unassigns it from every plan.
func (s *Store) DeleteRoutine(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM routine WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete routine: %w", err)
		}
		if err := requireAffected(res, "routine", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM plan_day WHERE routine_id = ?`, id); err != nil {
			return fmt.Errorf("unassign routine: %w", err)
		}
		return nil
	})
}

func (s *Store) routineExercises(ctx context.Context, routineID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT exercise_id FROM routine_exercise WHERE routine_id = ? ORDER BY position`, routineID)
	if err != nil {
		return nil, fmt.Errorf("query routine exercises: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan routine exercise: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
