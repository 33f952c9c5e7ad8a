package strip

import (
	"time"

	"github.com/hy4ri/workout-tui/internal/store"
)

// FactsLoadedMsg carries the day facts fetched for one render pass.
type FactsLoadedMsg struct {
	Pass  int
	Dates []string
	Plan  *store.Plan
	Err   error
}

// DaySelectedMsg is emitted when a day cell is clicked.
type DaySelectedMsg struct {
	Date time.Time
}

type frameStep int

const (
	stepSnap frameStep = iota
	stepSettle
)

// FrameMsg is one deferred step of a scroll snap.
type FrameMsg struct {
	seq  int
	step frameStep
}
