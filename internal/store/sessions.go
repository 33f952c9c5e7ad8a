package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hy4ri/workout-tui/internal/calendar"
)

// ListSessions returns every session, oldest date first.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	return s.querySessions(ctx, `SELECT id, date, routine_id, note, created_at FROM session ORDER BY date, created_at`)
}

// SessionsOn returns the sessions logged on a date key.
func (s *Store) SessionsOn(ctx context.Context, date string) ([]Session, error) {
	return s.querySessions(ctx,
		`SELECT id, date, routine_id, note, created_at FROM session WHERE date = ? ORDER BY created_at, id`, date)
}

// GetSession returns one session with its sets.
func (s *Store) GetSession(ctx context.Context, id string) (Session, error) {
	sessions, err := s.querySessions(ctx,
		`SELECT id, date, routine_id, note, created_at FROM session WHERE id = ?`, id)
	if err != nil {
		return Session{}, err
	}
	if len(sessions) == 0 {
		return Session{}, notFound("session", id)
	}
	return sessions[0], nil
}

// PutSession inserts or replaces a session and all of its sets.
func (s *Store) PutSession(ctx context.Context, sess Session) (Session, error) {
	if _, err := calendar.ParseKey(sess.Date); err != nil {
		return Session{}, fmt.Errorf("invalid session date %q: %w", sess.Date, err)
	}
	if sess.ID == "" {
		sess.ID = newID()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = s.now()
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO session (id, date, routine_id, note, created_at) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET date = excluded.date, routine_id = excluded.routine_id, note = excluded.note`,
			sess.ID, sess.Date, sess.RoutineID, sess.Note, formatTime(sess.CreatedAt))
		if err != nil {
			return fmt.Errorf("put session: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_set WHERE session_id = ?`, sess.ID); err != nil {
			return fmt.Errorf("clear sets: %w", err)
		}
		for i, set := range sess.Sets {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO session_set (session_id, position, exercise_id, weight, reps) VALUES (?, ?, ?, ?, ?)`,
				sess.ID, i, set.ExerciseID, set.Weight, set.Reps)
			if err != nil {
				return fmt.Errorf("insert set: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

// DeleteSession removes a session and its sets.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return requireAffected(res, "session", id)
}

// ListSessionDates returns every distinct date key with at least one session, ascending.
func (s *Store) ListSessionDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT date FROM session ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list session dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (s *Store) querySessions(ctx context.Context, query string, args ...any) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	var sessions []Session
	index := make(map[string]int)
	for rows.Next() {
		var sess Session
		var created string
		if err := rows.Scan(&sess.ID, &sess.Date, &sess.RoutineID, &sess.Note, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.CreatedAt = parseTime(created)
		index[sess.ID] = len(sessions)
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// Close before the next query: the pool holds a single connection.
	rows.Close()

	if len(sessions) == 0 {
		return nil, nil
	}
	if err := s.attachSets(ctx, sessions, index); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) attachSets(ctx context.Context, sessions []Session, index map[string]int) error {
	ids := make([]any, len(sessions))
	for i, sess := range sessions {
		ids[i] = sess.ID
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, exercise_id, weight, reps FROM session_set
		 WHERE session_id IN (`+placeholders+`) ORDER BY session_id, position`, ids...)
	if err != nil {
		return fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID string
		var set Set
		if err := rows.Scan(&sessionID, &set.ExerciseID, &set.Weight, &set.Reps); err != nil {
			return fmt.Errorf("scan set: %w", err)
		}
		i, ok := index[sessionID]
		if !ok {
			continue
		}
		sessions[i].Sets = append(sessions[i].Sets, set)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return nil
}

var errEmptySet = errors.New("set needs an exercise and at least one rep")

// AddSet appends a set to the first session on date, creating the session if needed.
func (s *Store) AddSet(ctx context.Context, date string, set Set) (Session, error) {
	if set.ExerciseID == "" || set.Reps <= 0 || set.Weight < 0 {
		return Session{}, errEmptySet
	}
	existing, err := s.SessionsOn(ctx, date)
	if err != nil {
		return Session{}, err
	}
	sess := Session{Date: date}
	if len(existing) > 0 {
		sess = existing[0]
	}
	sess.Sets = append(sess.Sets, set)
	return s.PutSession(ctx, sess)
}
