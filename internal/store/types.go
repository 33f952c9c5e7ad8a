// Package store persists workouts locally in SQLite: exercises, logged sessions,
// routines and weekly plans. It also answers the two day facts the week strip
// needs: which dates have a logged session and which routine the active plan
// assigns to each weekday.
package store

import (
	"strconv"
	"time"
)

// Exercise is an entry in the exercise library.
type Exercise struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	MuscleGroup string    `yaml:"muscle_group,omitempty"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// Set is one logged set inside a session. Weight is always kilograms.
type Set struct {
	ExerciseID string  `yaml:"exercise_id"`
	Weight     float64 `yaml:"weight"`
	Reps       int     `yaml:"reps"`
}

// Volume returns weight times reps.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// Session is a workout logged on a date.
type Session struct {
	ID        string    `yaml:"id"`
	Date      string    `yaml:"date"` // YYYY-MM-DD
	RoutineID string    `yaml:"routine_id,omitempty"`
	Note      string    `yaml:"note,omitempty"`
	Sets      []Set     `yaml:"sets"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Volume returns the summed volume of all sets.
func (s Session) Volume() float64 {
	var total float64
	for _, set := range s.Sets {
		total += set.Volume()
	}
	return total
}

// Routine is a named, ordered list of exercises.
type Routine struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	ExerciseIDs []string  `yaml:"exercise_ids"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// Plan assigns routines to weekdays. Days is keyed "1" (Monday) through "7" (Sunday).
type Plan struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Active bool              `yaml:"active"`
	Days   map[string]string `yaml:"days"`
}

// RoutineFor returns the routine ID planned for a weekday index (1 = Monday), or "".
func (p *Plan) RoutineFor(weekday int) string {
	if p == nil || p.Days == nil {
		return ""
	}
	return p.Days[strconv.Itoa(weekday)]
}

// Assign sets or clears (routineID == "") the routine for a weekday index.
func (p *Plan) Assign(weekday int, routineID string) {
	if p.Days == nil {
		p.Days = make(map[string]string)
	}
	key := strconv.Itoa(weekday)
	if routineID == "" {
		delete(p.Days, key)
		return
	}
	p.Days[key] = routineID
}

// Snapshot is the whole database, used for export and import.
type Snapshot struct {
	Version   int        `yaml:"version"`
	Exercises []Exercise `yaml:"exercises"`
	Routines  []Routine  `yaml:"routines"`
	Plans     []Plan     `yaml:"plans"`
	Sessions  []Session  `yaml:"sessions"`
}
