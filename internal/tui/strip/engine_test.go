package strip

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/workout-tui/internal/calendar"
	"github.com/hy4ri/workout-tui/internal/store"
)

type fakeFacts struct {
	dates    []string
	plan     *store.Plan
	err      error
	dateHits atomic.Int32
	planHits atomic.Int32
}

func (f *fakeFacts) ListSessionDates(ctx context.Context) ([]string, error) {
	f.dateHits.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.dates, nil
}

func (f *fakeFacts) GetActivePlan(ctx context.Context) (*store.Plan, error) {
	f.planHits.Add(1)
	return f.plan, nil
}

type fakeHost struct {
	selected time.Time
	anchor   time.Time
}

func (h *fakeHost) SelectedDate() time.Time { return h.selected }
func (h *fakeHost) Anchor() time.Time       { return h.anchor }
func (h *fakeHost) SetAnchor(t time.Time)   { h.anchor = t }

const testCellWidth = 8

func day(key string) time.Time {
	d, err := calendar.ParseKey(key)
	if err != nil {
		panic(err)
	}
	return d
}

// scenarioFacts: a session on Saturday 2024-06-08 and Tuesday planned.
func scenarioFacts() *fakeFacts {
	plan := &store.Plan{ID: "p", Active: true}
	plan.Assign(2, "upper")
	return &fakeFacts{dates: []string{"2024-06-08"}, plan: plan}
}

func newTestEngine(t *testing.T, facts FactSource, host Host) *Engine {
	t.Helper()
	now := day("2024-06-10").Add(12 * time.Hour)
	e, err := New(facts, host, Options{
		CellWidth:     testCellWidth,
		EdgeTolerance: 1,
		FrameInterval: time.Millisecond,
		Now:           func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

// render runs a full pass and lets the snap settle.
func render(t *testing.T, e *Engine) {
	t.Helper()
	msg := e.RenderWeek()().(FactsLoadedMsg)
	cmd, err := e.ApplyFacts(msg)
	if err != nil {
		t.Fatalf("ApplyFacts() error = %v", err)
	}
	settle(t, e, cmd)
}

// settle runs snap commands until the guard clears.
func settle(t *testing.T, e *Engine, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 4 {
			t.Fatal("snap did not settle")
		}
		cmd = e.Update(cmd())
	}
	if e.Adjusting() {
		t.Fatal("engine still adjusting after settle")
	}
}

func assertContiguous(t *testing.T, e *Engine) {
	t.Helper()
	pages := e.Pages()
	for i, p := range pages {
		want := calendar.AddDays(e.CenterStart(), (i-1)*7)
		if !p.Start.Equal(want) {
			t.Errorf("page %d starts %s, want %s", i, calendar.DateKey(p.Start), calendar.DateKey(want))
		}
		if len(p.Cells) != 7 {
			t.Fatalf("page %d has %d cells", i, len(p.Cells))
		}
		for j, c := range p.Cells {
			if want := calendar.AddDays(p.Start, j); !calendar.SameDay(c.Date, want) {
				t.Errorf("page %d cell %d = %s, want %s", i, j, c.Key, calendar.DateKey(want))
			}
		}
	}
	if calendar.WeekdayIndex(e.CenterStart()) != 1 {
		t.Errorf("center start %s is not a Monday", calendar.DateKey(e.CenterStart()))
	}
}

func findCell(e *Engine, key string) (DayCell, int, bool) {
	for i, p := range e.Pages() {
		for _, c := range p.Cells {
			if c.Key == key {
				return c, i, true
			}
		}
	}
	return DayCell{}, 0, false
}

func TestNewValidates(t *testing.T) {
	host := &fakeHost{}
	tests := []struct {
		name  string
		facts FactSource
		host  Host
		width int
		want  error
	}{
		{"no facts", nil, host, 8, ErrNoFactSource},
		{"no host", &fakeFacts{}, nil, 8, ErrNoHost},
		{"zero width", &fakeFacts{}, host, 0, ErrInvalidCellWidth},
		{"negative width", &fakeFacts{}, host, -3, ErrInvalidCellWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.facts, tt.host, Options{CellWidth: tt.width})
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	e := newTestEngine(t, &fakeFacts{}, &fakeHost{})
	e.Ensure()
	first := e.Pages()
	e.Ensure()
	second := e.Pages()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("page %d replaced by second Ensure", i)
		}
	}
	if e.ScrollOffset() != e.PageWidth() {
		t.Errorf("initial offset = %d, want %d", e.ScrollOffset(), e.PageWidth())
	}
}

func TestScenarioA(t *testing.T) {
	today := day("2024-06-10")
	facts := scenarioFacts()
	e := newTestEngine(t, facts, &fakeHost{selected: today, anchor: today})
	render(t, e)

	if facts.dateHits.Load() != 1 || facts.planHits.Load() != 1 {
		t.Errorf("facts fetched %d/%d times, want once each", facts.dateHits.Load(), facts.planHits.Load())
	}
	assertContiguous(t, e)

	center := e.Pages()[1]
	if center.Cells[0].Key != "2024-06-10" || center.Cells[6].Key != "2024-06-16" {
		t.Fatalf("center page %s..%s", center.Cells[0].Key, center.Cells[6].Key)
	}

	sat, page, ok := findCell(e, "2024-06-08")
	if !ok || page != 0 || !sat.HasSession {
		t.Errorf("Sat 8: page=%d ok=%v cell=%+v, want session on previous page", page, ok, sat)
	}
	tue, page, _ := findCell(e, "2024-06-11")
	if page != 1 || !tue.IsPlanned || tue.HasSession {
		t.Errorf("Tue 11 = %+v, want planned on center page", tue)
	}
	pastTue, _, _ := findCell(e, "2024-06-04")
	if pastTue.IsPlanned {
		t.Error("past Tuesday must not be planned")
	}
	nextTue, _, _ := findCell(e, "2024-06-18")
	if !nextTue.IsPlanned {
		t.Error("next Tuesday should be planned")
	}
	mon, _, _ := findCell(e, "2024-06-10")
	if !mon.IsSelected || !mon.IsToday || mon.Kind() != KindSelected {
		t.Errorf("Mon 10 = %+v, want selected today", mon)
	}
}

func TestRenderWeekIsIdempotent(t *testing.T) {
	today := day("2024-06-10")
	e := newTestEngine(t, scenarioFacts(), &fakeHost{selected: today, anchor: today})

	snapshot := func() map[string][4]bool {
		out := make(map[string][4]bool)
		for _, p := range e.Pages() {
			for _, c := range p.Cells {
				out[c.Key] = [4]bool{c.HasSession, c.IsPlanned, c.IsSelected, c.IsToday}
			}
		}
		return out
	}

	render(t, e)
	first := snapshot()
	render(t, e)
	second := snapshot()

	if len(first) != 21 || len(second) != 21 {
		t.Fatalf("expected 21 distinct days, got %d and %d", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Errorf("%s flags changed: %v -> %v", k, v, second[k])
		}
	}
}

func TestAnchorFallsBack(t *testing.T) {
	tests := []struct {
		name string
		host *fakeHost
		want string
	}{
		{"anchor", &fakeHost{anchor: day("2024-01-17"), selected: day("2024-03-01")}, "2024-01-15"},
		{"selected", &fakeHost{selected: day("2024-03-01")}, "2024-02-26"},
		{"today", &fakeHost{}, "2024-06-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, &fakeFacts{}, tt.host)
			render(t, e)
			if got := calendar.DateKey(e.CenterStart()); got != tt.want {
				t.Errorf("center = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestShiftRotatesPhysicalPages(t *testing.T) {
	today := day("2024-06-10")

	t.Run("forward", func(t *testing.T) {
		e := newTestEngine(t, scenarioFacts(), &fakeHost{anchor: today})
		render(t, e)
		before := e.Pages()

		cmd := e.HandleNav(+1)
		if cmd == nil {
			t.Fatal("HandleNav(+1) returned no snap")
		}
		after := e.Pages()
		if got := calendar.DateKey(e.CenterStart()); got != "2024-06-17" {
			t.Errorf("center = %s, want 2024-06-17", got)
		}
		if after[2] != before[0] {
			t.Error("old previous page was not reused as next")
		}
		if after[0] != before[1] || after[1] != before[2] {
			t.Error("center/next did not move left")
		}
		if got := calendar.DateKey(after[2].Start); got != "2024-06-24" {
			t.Errorf("recycled page shows %s, want 2024-06-24", got)
		}
		assertContiguous(t, e)
	})

	t.Run("backward", func(t *testing.T) {
		e := newTestEngine(t, scenarioFacts(), &fakeHost{anchor: today})
		render(t, e)
		before := e.Pages()

		e.HandleNav(-1)
		after := e.Pages()
		if got := calendar.DateKey(e.CenterStart()); got != "2024-06-03" {
			t.Errorf("center = %s, want 2024-06-03", got)
		}
		if after[0] != before[2] {
			t.Error("old next page was not reused as previous")
		}
		assertContiguous(t, e)
	})
}

func TestShiftRepaintsEveryPage(t *testing.T) {
	e := newTestEngine(t, &fakeFacts{}, &fakeHost{})
	render(t, e)
	paints := [3]int{}
	for _, p := range e.Pages() {
		paints[p.Slot()] = p.paints
	}
	e.HandleNav(+1)
	for _, p := range e.Pages() {
		if p.paints != paints[p.Slot()]+1 {
			t.Errorf("slot %d painted %d times, want %d", p.Slot(), p.paints, paints[p.Slot()]+1)
		}
	}
}

func TestScenarioB(t *testing.T) {
	e := newTestEngine(t, scenarioFacts(), &fakeHost{})
	render(t, e)
	start := e.CenterStart()

	for i := 0; i < 3; i++ {
		cmd := e.HandleNav(+1)
		if cmd == nil {
			t.Fatalf("click %d ignored", i+1)
		}
		slots := map[int]bool{}
		for _, p := range e.Pages() {
			slots[p.Slot()] = true
		}
		if len(slots) != 3 {
			t.Fatalf("after click %d pages share slots: %v", i+1, slots)
		}
		settle(t, e, cmd)
		assertContiguous(t, e)
	}

	if want := calendar.AddDays(start, 21); !e.CenterStart().Equal(want) {
		t.Errorf("center = %s, want %s", calendar.DateKey(e.CenterStart()), calendar.DateKey(want))
	}
}

func TestPagingKeepsAnchorAcrossRenders(t *testing.T) {
	host := &fakeHost{selected: day("2024-06-12"), anchor: day("2024-06-10")}
	e := newTestEngine(t, scenarioFacts(), host)
	render(t, e)

	for i := 0; i < 3; i++ {
		settle(t, e, e.HandleNav(+1))
	}
	want := day("2024-07-01")
	if !host.anchor.Equal(want) {
		t.Fatalf("host anchor = %s, want %s", calendar.DateKey(host.anchor), calendar.DateKey(want))
	}

	settle(t, e, e.ScrollBy(-e.PageWidth()))
	if got := calendar.DateKey(host.anchor); got != "2024-06-24" {
		t.Fatalf("host anchor after scroll = %s, want 2024-06-24", got)
	}

	render(t, e)
	if got := calendar.DateKey(e.CenterStart()); got != "2024-06-24" {
		t.Errorf("center after re-render = %s, want 2024-06-24", got)
	}
	if !host.selected.Equal(day("2024-06-12")) {
		t.Error("paging changed the selection")
	}
}

func TestScenarioC(t *testing.T) {
	e := newTestEngine(t, scenarioFacts(), &fakeHost{})
	render(t, e)

	cmd := e.HandleNav(+1)
	if !e.Adjusting() {
		t.Fatal("guard not set by shift")
	}
	center, seq := e.CenterStart(), e.seq

	// Scroll event lands on the left boundary mid-snap.
	e.offset = 0
	if e.HandleScroll() != nil {
		t.Error("HandleScroll rotated while adjusting")
	}
	if e.ScrollBy(-testCellWidth) != nil {
		t.Error("ScrollBy acted while adjusting")
	}
	if e.HandleNav(+1) != nil {
		t.Error("HandleNav acted while adjusting")
	}
	if !e.CenterStart().Equal(center) || e.seq != seq {
		t.Fatal("guarded events changed the window")
	}

	settle(t, e, cmd)
	if e.ScrollOffset() != e.PageWidth() {
		t.Errorf("offset after snap = %d, want %d", e.ScrollOffset(), e.PageWidth())
	}
}

func TestSnapTakesTwoFrames(t *testing.T) {
	e := newTestEngine(t, &fakeFacts{}, &fakeHost{})
	render(t, e)

	e.ScrollBy(-3 * testCellWidth)
	cmd := e.HandleNav(+1)

	next := e.Update(cmd())
	if e.ScrollOffset() != e.PageWidth() {
		t.Errorf("offset after first frame = %d, want %d", e.ScrollOffset(), e.PageWidth())
	}
	if !e.Adjusting() || next == nil {
		t.Fatal("guard released on first frame")
	}
	if e.Update(next()) != nil {
		t.Error("unexpected third frame")
	}
	if e.Adjusting() {
		t.Error("guard not released on second frame")
	}
}

func TestScrollRecyclesAtEdges(t *testing.T) {
	e := newTestEngine(t, &fakeFacts{}, &fakeHost{})
	render(t, e)
	start := e.CenterStart()

	for i := 0; i < 6; i++ {
		if cmd := e.ScrollBy(-testCellWidth); cmd != nil {
			t.Fatalf("step %d shifted early at offset %d", i+1, e.ScrollOffset())
		}
	}
	if e.ScrollOffset() != testCellWidth {
		t.Fatalf("offset = %d, want %d", e.ScrollOffset(), testCellWidth)
	}
	cmd := e.ScrollBy(-testCellWidth)
	if cmd == nil {
		t.Fatal("left edge did not shift")
	}
	if want := calendar.AddDays(start, -7); !e.CenterStart().Equal(want) {
		t.Errorf("center = %s, want %s", calendar.DateKey(e.CenterStart()), calendar.DateKey(want))
	}
	settle(t, e, cmd)

	cmd = e.ScrollBy(e.PageWidth() - 1)
	if cmd == nil {
		t.Fatal("right edge within tolerance did not shift")
	}
	if !e.CenterStart().Equal(start) {
		t.Errorf("center = %s, want %s", calendar.DateKey(e.CenterStart()), calendar.DateKey(start))
	}
}

func TestScrollClampsOffset(t *testing.T) {
	e := newTestEngine(t, &fakeFacts{}, &fakeHost{})
	render(t, e)
	e.ScrollBy(10 * e.PageWidth())
	if e.ScrollOffset() != 2*e.PageWidth() {
		t.Errorf("offset = %d, want %d", e.ScrollOffset(), 2*e.PageWidth())
	}
}

func TestNoOpBeforeFirstRender(t *testing.T) {
	e := newTestEngine(t, &fakeFacts{}, &fakeHost{})
	e.Ensure()
	if e.HandleNav(+1) != nil || e.ScrollBy(-100) != nil || e.HandleScroll() != nil {
		t.Fatal("engine acted before facts were loaded")
	}
	if !e.CenterStart().IsZero() {
		t.Error("center moved before first render")
	}
}

func TestFetchErrorLeavesPagesUntouched(t *testing.T) {
	facts := scenarioFacts()
	host := &fakeHost{anchor: day("2024-06-10")}
	e := newTestEngine(t, facts, host)
	render(t, e)
	before := e.Pages()
	cells := before[1].Cells

	facts.err = errors.New("disk gone")
	host.anchor = day("2024-07-01")
	cmd, err := e.ApplyFacts(e.RenderWeek()().(FactsLoadedMsg))
	if err == nil || !errors.Is(err, facts.err) {
		t.Fatalf("ApplyFacts() error = %v, want wrapped fetch error", err)
	}
	if cmd != nil {
		t.Error("failed render scheduled a snap")
	}
	if got := calendar.DateKey(e.CenterStart()); got != "2024-06-10" {
		t.Errorf("center moved to %s on failure", got)
	}
	if &e.Pages()[1].Cells[0] != &cells[0] {
		t.Error("center page repainted on failure")
	}
	if e.Adjusting() {
		t.Error("guard set by failed render")
	}
}

func TestStaleFactsAreDropped(t *testing.T) {
	e := newTestEngine(t, scenarioFacts(), &fakeHost{})
	first := e.RenderWeek()().(FactsLoadedMsg)
	second := e.RenderWeek()().(FactsLoadedMsg)

	cmd, err := e.ApplyFacts(first)
	if err != nil || cmd != nil || e.Loaded() {
		t.Fatalf("stale pass applied: cmd=%v err=%v loaded=%v", cmd != nil, err, e.Loaded())
	}
	if _, err := e.ApplyFacts(second); err != nil {
		t.Fatalf("ApplyFacts() error = %v", err)
	}
	if !e.Loaded() {
		t.Error("current pass not applied")
	}
}

func TestRenderSupersedesPendingSnap(t *testing.T) {
	e := newTestEngine(t, scenarioFacts(), &fakeHost{})
	render(t, e)

	old := e.HandleNav(+1)
	staleSeq := e.seq
	cmd, err := e.ApplyFacts(e.RenderWeek()().(FactsLoadedMsg))
	if err != nil {
		t.Fatal(err)
	}

	if e.Update(old()) != nil {
		t.Error("superseded snap scheduled a settle frame")
	}
	if e.Update(FrameMsg{seq: staleSeq, step: stepSettle}) != nil || !e.Adjusting() {
		t.Error("stale settle released the guard")
	}
	settle(t, e, cmd)
}

func TestRepaintFollowsSelection(t *testing.T) {
	host := &fakeHost{selected: day("2024-06-10")}
	e := newTestEngine(t, &fakeFacts{}, host)
	render(t, e)

	host.selected = day("2024-06-05")
	e.Repaint()

	selected := 0
	for _, p := range e.Pages() {
		for _, c := range p.Cells {
			if c.IsSelected {
				selected++
				if c.Key != "2024-06-05" {
					t.Errorf("wrong cell selected: %s", c.Key)
				}
			}
		}
	}
	if selected != 1 {
		t.Errorf("%d cells selected, want 1", selected)
	}
}

func TestCellKindPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		cell   DayCell
		kind   Kind
		marker string
	}{
		{"plain", DayCell{}, KindPlain, " "},
		{"today", DayCell{IsToday: true}, KindToday, "·"},
		{"planned", DayCell{IsPlanned: true, IsToday: true}, KindPlanned, "○"},
		{"session beats planned", DayCell{HasSession: true, IsPlanned: true}, KindSession, "●"},
		{"selected beats all", DayCell{IsSelected: true, HasSession: true, IsPlanned: true, IsToday: true}, KindSelected, "●"},
		{"selected alone", DayCell{IsSelected: true}, KindSelected, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.cell.Marker(); got != tt.marker {
				t.Errorf("Marker() = %q, want %q", got, tt.marker)
			}
		})
	}
}

func TestShowsCoversThreePages(t *testing.T) {
	e := newTestEngine(t, scenarioFacts(), &fakeHost{anchor: day("2024-06-10")})
	if e.Shows(day("2024-06-10")) {
		t.Error("Shows before the first render")
	}
	render(t, e)

	tests := []struct {
		key  string
		want bool
	}{
		{"2024-06-02", false},
		{"2024-06-03", true},
		{"2024-06-16", true},
		{"2024-06-23", true},
		{"2024-06-24", false},
	}
	for _, tt := range tests {
		if got := e.Shows(day(tt.key)); got != tt.want {
			t.Errorf("Shows(%s) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
