package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ListExercises returns the library sorted by name.
func (s *Store) ListExercises(ctx context.Context) ([]Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, muscle_group, created_at FROM exercise ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var out []Exercise
	for rows.Next() {
		var e Exercise
		var created string
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &created); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetExercise returns one exercise.
func (s *Store) GetExercise(ctx context.Context, id string) (Exercise, error) {
	var e Exercise
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, muscle_group, created_at FROM exercise WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.MuscleGroup, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Exercise{}, notFound("exercise", id)
	}
	if err != nil {
		return Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	e.CreatedAt = parseTime(created)
	return e, nil
}

// PutExercise inserts or updates an exercise. An empty ID is assigned.
func (s *Store) PutExercise(ctx context.Context, e Exercise) (Exercise, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return Exercise{}, errors.New("exercise name is required")
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercise (id, name, muscle_group, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, muscle_group = excluded.muscle_group`,
		e.ID, e.Name, strings.TrimSpace(e.MuscleGroup), formatTime(e.CreatedAt))
	if err != nil {
		return Exercise{}, fmt.Errorf("put exercise: %w", err)
	}
	return e, nil
}

// DeleteExercise removes an exercise. Logged sets keep their exercise ID.
func (s *Store) DeleteExercise(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exercise WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return requireAffected(res, "exercise", id)
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}
