package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ListPlans returns all plans sorted by name.
func (s *Store) ListPlans(ctx context.Context) ([]Plan, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, active FROM plan ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	var plans []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Active); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range plans {
		days, err := s.planDays(ctx, plans[i].ID)
		if err != nil {
			return nil, err
		}
		plans[i].Days = days
	}
	return plans, nil
}

// GetPlan returns one plan with its weekday assignments.
func (s *Store) GetPlan(ctx context.Context, id string) (Plan, error) {
	var p Plan
	err := s.db.QueryRowContext(ctx, `SELECT id, name, active FROM plan WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return Plan{}, notFound("plan", id)
	}
	if err != nil {
		return Plan{}, fmt.Errorf("get plan: %w", err)
	}
	p.Days, err = s.planDays(ctx, id)
	if err != nil {
		return Plan{}, err
	}
	return p, nil
}

// GetActivePlan returns the active plan, or nil when no plan is active.
func (s *Store) GetActivePlan(ctx context.Context) (*Plan, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM plan WHERE active = 1 ORDER BY id LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active plan: %w", err)
	}
	p, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PutPlan inserts or replaces a plan. Saving an active plan deactivates the others.
func (s *Store) PutPlan(ctx context.Context, p Plan) (Plan, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = "Weekly plan"
	}
	if p.ID == "" {
		p.ID = newID()
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if p.Active {
			if _, err := tx.ExecContext(ctx, `UPDATE plan SET active = 0 WHERE id <> ?`, p.ID); err != nil {
				return fmt.Errorf("deactivate plans: %w", err)
			}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO plan (id, name, active) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name, active = excluded.active`,
			p.ID, p.Name, p.Active)
		if err != nil {
			return fmt.Errorf("put plan: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM plan_day WHERE plan_id = ?`, p.ID); err != nil {
			return fmt.Errorf("clear plan days: %w", err)
		}
		for weekday, routineID := range p.Days {
			if routineID == "" {
				continue
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO plan_day (plan_id, weekday, routine_id) VALUES (?, ?, ?)`, p.ID, weekday, routineID)
			if err != nil {
				return fmt.Errorf("insert plan day: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return Plan{}, err
	}
	return p, nil
}

// SetActivePlan makes id the only active plan.
func (s *Store) SetActivePlan(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE plan SET active = 1 WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("activate plan: %w", err)
		}
		if err := requireAffected(res, "plan", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE plan SET active = 0 WHERE id <> ?`, id); err != nil {
			return fmt.Errorf("deactivate plans: %w", err)
		}
		return nil
	})
}

// DeletePlan removes a plan.
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM plan WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return requireAffected(res, "plan", id)
}

func (s *Store) planDays(ctx context.Context, planID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT weekday, routine_id FROM plan_day WHERE plan_id = ?`, planID)
	if err != nil {
		return nil, fmt.Errorf("query plan days: %w", err)
	}
	defer rows.Close()

	days := make(map[string]string)
	for rows.Next() {
		var weekday, routineID string
		if err := rows.Scan(&weekday, &routineID); err != nil {
			return nil, fmt.Errorf("scan plan day: %w", err)
		}
		days[weekday] = routineID
	}
	return days, rows.Err()
}
