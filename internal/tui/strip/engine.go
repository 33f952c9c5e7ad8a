// Package strip implements the virtual week strip: an endless, horizontally
// scrollable row of day cells backed by exactly three recycled week pages.
//
// The engine is driven by the bubbletea loop. Every method must be called from
// the program's Update goroutine; commands returned by the engine run elsewhere
// but only ever produce messages.
package strip

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/store"
)

const (
	pageCount = 3

	slotCenter = 1

	// WheelStep is the number of columns one mouse wheel notch scrolls.
	WheelStep = 2

	defaultFrameInterval = 16 * time.Millisecond
)

var (
	ErrNoFactSource     = errors.New("strip: no day fact source")
	ErrNoHost           = errors.New("strip: no navigation host")
	ErrInvalidCellWidth = errors.New("strip: cell width must be positive")
)

// FactSource answers which days have sessions and which weekdays are planned.
type FactSource interface {
	ListSessionDates(ctx context.Context) ([]string, error)
	GetActivePlan(ctx context.Context) (*store.Plan, error)
}

// Host owns the selection and the anchor. A zero time means unset. The
// engine writes the anchor back whenever paging moves the centered week.
type Host interface {
	SelectedDate() time.Time
	Anchor() time.Time
	SetAnchor(t time.Time)
}

// Options configure geometry and timing.
type Options struct {
	CellWidth     int
	EdgeTolerance int
	FrameInterval time.Duration
	Now           func() time.Time
}

// Engine is the strip's window state.
type Engine struct {
	facts FactSource
	host  Host
	opts  Options

	pool [pageCount]*Page
	head int

	centerStart time.Time
	adjusting   bool
	offset      int

	sessionDates map[string]struct{}
	activePlan   *store.Plan
	loaded       bool

	pass int
	seq  int
}

// New validates the collaborators and geometry. Pages are created by Ensure.
func New(facts FactSource, host Host, opts Options) (*Engine, error) {
	if facts == nil {
		return nil, ErrNoFactSource
	}
	if host == nil {
		return nil, ErrNoHost
	}
	if opts.CellWidth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCellWidth, opts.CellWidth)
	}
	if opts.EdgeTolerance < 0 {
		opts.EdgeTolerance = 0
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{facts: facts, host: host, opts: opts}, nil
}

// Ensure creates the three pages once. Later calls do nothing.
func (e *Engine) Ensure() {
	if e.pool[0] != nil {
		return
	}
	for i := range e.pool {
		e.pool[i] = &Page{slot: i}
	}
	e.offset = e.PageWidth()
	logrus.Debug("strip: page pool created")
}

// PageWidth is the width of one week in columns.
func (e *Engine) PageWidth() int {
	return e.opts.CellWidth * calendar.DaysPerWeek
}

// ScrollOffset is the left edge of the viewport within the three pages.
func (e *Engine) ScrollOffset() int { return e.offset }

// CenterStart is the Monday of the centered week.
func (e *Engine) CenterStart() time.Time { return e.centerStart }

// Adjusting reports whether a snap is in flight.
func (e *Engine) Adjusting() bool { return e.adjusting }

// Loaded reports whether a fact snapshot has been applied.
func (e *Engine) Loaded() bool { return e.loaded }

// Pages returns the pages in logical order: previous, center, next.
func (e *Engine) Pages() [pageCount]*Page {
	var out [pageCount]*Page
	for i := range out {
		out[i] = e.page(i)
	}
	return out
}

func (e *Engine) page(logical int) *Page {
	return e.pool[(e.head+logical)%pageCount]
}

// RenderWeek starts a full render pass. The returned command fetches the day
// facts in parallel and reports them as a FactsLoadedMsg for ApplyFacts.
func (e *Engine) RenderWeek() tea.Cmd {
	e.Ensure()
	e.pass++
	pass := e.pass
	facts := e.facts
	logrus.WithField("pass", pass).Debug("strip: render requested")

	return func() tea.Msg {
		var (
			dates []string
			plan  *store.Plan
		)
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			d, err := facts.ListSessionDates(ctx)
			if err != nil {
				return fmt.Errorf("list session dates: %w", err)
			}
			dates = d
			return nil
		})
		g.Go(func() error {
			p, err := facts.GetActivePlan(ctx)
			if err != nil {
				return fmt.Errorf("get active plan: %w", err)
			}
			plan = p
			return nil
		})
		if err := g.Wait(); err != nil {
			return FactsLoadedMsg{Pass: pass, Err: err}
		}
		return FactsLoadedMsg{Pass: pass, Dates: dates, Plan: plan}
	}
}

// ApplyFacts finishes a render pass. A failed fetch leaves every page as it
// was and returns the error. Results of superseded passes are dropped.
func (e *Engine) ApplyFacts(msg FactsLoadedMsg) (tea.Cmd, error) {
	log := logrus.WithField("pass", msg.Pass)
	if msg.Pass != e.pass {
		log.WithField("current", e.pass).Debug("strip: stale facts dropped")
		return nil, nil
	}
	if msg.Err != nil {
		log.WithError(msg.Err).Error("strip: fact fetch failed")
		return nil, fmt.Errorf("render week: %w", msg.Err)
	}

	e.Ensure()
	dates := make(map[string]struct{}, len(msg.Dates))
	for _, d := range msg.Dates {
		dates[d] = struct{}{}
	}
	e.sessionDates = dates
	e.activePlan = msg.Plan
	e.loaded = true

	e.centerStart = calendar.StartOfWeek(e.anchor())
	e.adjusting = true
	e.paintAll()
	log.WithField("center", calendar.DateKey(e.centerStart)).Debug("strip: rendered")
	return e.scheduleSnap(), nil
}

// Repaint rebuilds the pages from the cached snapshot, e.g. after the host
// changed the selection within the visible weeks.
func (e *Engine) Repaint() {
	if !e.loaded {
		return
	}
	e.paintAll()
}

// Shows reports whether date is on one of the three painted pages.
func (e *Engine) Shows(date time.Time) bool {
	if !e.loaded {
		return false
	}
	for _, p := range e.Pages() {
		if p.Contains(date) {
			return true
		}
	}
	return false
}

func (e *Engine) anchor() time.Time {
	if a := e.host.Anchor(); !a.IsZero() {
		return a
	}
	if s := e.host.SelectedDate(); !s.IsZero() {
		return s
	}
	return e.opts.Now()
}

func (e *Engine) paintAll() {
	for i := 0; i < pageCount; i++ {
		e.renderPage(e.page(i), calendar.AddDays(e.centerStart, (i-slotCenter)*calendar.DaysPerWeek))
	}
}

func (e *Engine) renderPage(p *Page, start time.Time) {
	today := calendar.Today(e.opts.Now)
	selected := e.host.SelectedDate()

	cells := make([]DayCell, 0, calendar.DaysPerWeek)
	for i := 0; i < calendar.DaysPerWeek; i++ {
		date := calendar.AddDays(start, i)
		key := calendar.DateKey(date)
		_, hasSession := e.sessionDates[key]
		cells = append(cells, DayCell{
			Date:       date,
			Key:        key,
			Label:      calendar.Label(date),
			HasSession: hasSession,
			IsPlanned:  e.isPlanned(date, today),
			IsSelected: !selected.IsZero() && calendar.SameDay(date, selected),
			IsToday:    calendar.SameDay(date, today),
		})
	}
	p.Start = start
	p.Cells = cells
	p.paints++
}

func (e *Engine) isPlanned(date, today time.Time) bool {
	if e.activePlan.RoutineFor(calendar.WeekdayIndex(date)) == "" {
		return false
	}
	return calendar.IsTodayOrFuture(date, today)
}

// ScrollBy moves the viewport by delta columns, as a user gesture would, and
// then runs the boundary check. Gestures during a snap are ignored.
func (e *Engine) ScrollBy(delta int) tea.Cmd {
	if !e.loaded || e.adjusting {
		return nil
	}
	e.offset = clamp(e.offset+delta, 0, 2*e.PageWidth())
	return e.HandleScroll()
}

// HandleScroll recycles a page when the viewport reaches the first or last page.
func (e *Engine) HandleScroll() tea.Cmd {
	if e.adjusting {
		logrus.WithField("offset", e.offset).Debug("strip: scroll ignored while adjusting")
		return nil
	}
	if !e.loaded {
		return nil
	}
	tol := e.opts.EdgeTolerance
	switch {
	case e.offset <= tol:
		return e.shiftPages(-1)
	case e.offset >= 2*e.PageWidth()-tol:
		return e.shiftPages(+1)
	}
	return nil
}

// HandleNav moves one week back (dir < 0) or forward (dir > 0).
func (e *Engine) HandleNav(dir int) tea.Cmd {
	if e.adjusting {
		logrus.Debug("strip: nav ignored while adjusting")
		return nil
	}
	if !e.loaded || dir == 0 {
		return nil
	}
	if dir < 0 {
		return e.shiftPages(-1)
	}
	return e.shiftPages(+1)
}

// shiftPages rotates the pool by one slot. The page leaving one end is reused
// at the other end and every page is repainted for its new position.
func (e *Engine) shiftPages(dir int) tea.Cmd {
	e.adjusting = true
	if dir > 0 {
		e.head = (e.head + 1) % pageCount
	} else {
		e.head = (e.head + pageCount - 1) % pageCount
	}
	e.centerStart = calendar.AddDays(e.centerStart, dir*calendar.DaysPerWeek)
	e.host.SetAnchor(e.centerStart)
	e.paintAll()
	logrus.WithFields(logrus.Fields{
		"dir":    dir,
		"center": calendar.DateKey(e.centerStart),
	}).Debug("strip: pages shifted")
	return e.scheduleSnap()
}

// scheduleSnap defers the offset reset by one frame and the guard release by
// another. A newer snap invalidates pending frames of an older one.
func (e *Engine) scheduleSnap() tea.Cmd {
	e.seq++
	return e.frame(e.seq, stepSnap)
}

func (e *Engine) frame(seq int, step frameStep) tea.Cmd {
	return tea.Tick(e.opts.FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{seq: seq, step: step}
	})
}

// Update advances a pending snap.
func (e *Engine) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok {
		return nil
	}
	if frame.seq != e.seq {
		logrus.WithField("seq", frame.seq).Debug("strip: stale frame dropped")
		return nil
	}
	switch frame.step {
	case stepSnap:
		e.offset = e.PageWidth()
		return e.frame(frame.seq, stepSettle)
	case stepSettle:
		e.adjusting = false
	}
	return nil
}

// DateAt returns the date under a column of the three concatenated pages.
func (e *Engine) DateAt(col int) (time.Time, bool) {
	if !e.loaded || col < 0 || col >= pageCount*e.PageWidth() {
		return time.Time{}, false
	}
	idx := col / e.opts.CellWidth
	p := e.page(idx / calendar.DaysPerWeek)
	return p.Cells[idx%calendar.DaysPerWeek].Date, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
