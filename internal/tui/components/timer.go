package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerTickMsg is sent every second while a timer is running.
type TimerTickMsg struct {
	ID int
}

// RestTimer counts down the rest between sets. Ticks carry the timer's
// generation so a restarted timer ignores ticks of its previous run.
type RestTimer struct {
	id        int
	target    time.Duration
	remaining time.Duration
	running   bool
}

// NewRestTimer creates a stopped timer preset to target.
func NewRestTimer(target time.Duration) *RestTimer {
	return &RestTimer{target: target, remaining: target}
}

// Start resumes the countdown. A finished timer restarts from the target.
func (m *RestTimer) Start() tea.Cmd {
	if m.running {
		return nil
	}
	if m.remaining <= 0 {
		m.remaining = m.target
	}
	m.running = true
	m.id++
	return m.tick()
}

// Stop pauses the countdown.
func (m *RestTimer) Stop() {
	m.running = false
}

// Toggle starts a paused timer or pauses a running one.
func (m *RestTimer) Toggle() tea.Cmd {
	if m.running {
		m.Stop()
		return nil
	}
	return m.Start()
}

// Reset stops the timer and restores the target.
func (m *RestTimer) Reset() {
	m.running = false
	m.id++
	m.remaining = m.target
}

// Adjust changes the target by d, never below 5 seconds. A stopped timer
// shows the new target immediately.
func (m *RestTimer) Adjust(d time.Duration) {
	m.target += d
	if m.target < 5*time.Second {
		m.target = 5 * time.Second
	}
	if !m.running {
		m.remaining = m.target
	}
}

// Update handles a tick. It returns the next tick, or a RestFinishedMsg
// command when the countdown reaches zero.
func (m *RestTimer) Update(msg TimerTickMsg) tea.Cmd {
	if !m.running || msg.ID != m.id {
		return nil
	}
	m.remaining -= time.Second
	if m.remaining <= 0 {
		m.remaining = 0
		m.running = false
		id := m.id
		return func() tea.Msg { return RestFinishedMsg{ID: id} }
	}
	return m.tick()
}

func (m *RestTimer) tick() tea.Cmd {
	id := m.id
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TimerTickMsg{ID: id}
	})
}

// Running reports whether the countdown is active.
func (m *RestTimer) Running() bool { return m.running }

// Remaining is the time left.
func (m *RestTimer) Remaining() time.Duration { return m.remaining }

// Target is the configured rest length.
func (m *RestTimer) Target() time.Duration { return m.target }

// Progress is the elapsed share of the target, 0 to 1.
func (m *RestTimer) Progress() float64 {
	if m.target <= 0 {
		return 0
	}
	return 1 - float64(m.remaining)/float64(m.target)
}

// FormatDuration formats a duration as MM:SS or HH:MM:SS if needed.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Digits are the block glyphs used by RenderLargeTime.
var Digits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	'2': {" ███ ", "    █", " ███ ", "█    ", " ███ "},
	'3': {" ███ ", "    █", " ███ ", "    █", " ███ "},
	'4': {"█   █", "█   █", " ███ ", "    █", "    █"},
	'5': {" ███ ", "█    ", " ███ ", "    █", " ███ "},
	'6': {" ███ ", "█    ", " ███ ", "█   █", " ███ "},
	'7': {" ███ ", "    █", "   █ ", "  █  ", "  █  "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ███ ", "    █", " ███ "},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// RenderLargeTime renders time in large block characters.
func RenderLargeTime(tStr string) string {
	var rows [5]strings.Builder
	for _, r := range tStr {
		lines, ok := Digits[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i].WriteString(lines[i] + "  ")
		}
	}

	var res strings.Builder
	for i := range rows {
		res.WriteString(rows[i].String() + "\n")
	}
	return res.String()
}
