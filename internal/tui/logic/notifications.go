package logic

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hy4ri/workout-tui/internal/calendar"
)

type reminderTickMsg time.Time

// reminderCheckedMsg reports the outcome of one reminder check. Failed means
// the check could not finish and the day should be checked again.
type reminderCheckedMsg struct {
	Date   string
	Sent   bool
	Failed bool
}

func reminderTickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

func (h *Handler) handleReminderTick(msg reminderTickMsg) tea.Cmd {
	return tea.Batch(reminderTickCmd(), h.checkReminder(time.Time(msg)))
}

// handleReminderChecked releases the day mark of a failed check so the next
// tick retries it.
func (h *Handler) handleReminderChecked(msg reminderCheckedMsg) {
	switch {
	case msg.Sent:
		logrus.WithField("date", msg.Date).Info("workout reminder sent")
	case msg.Failed && h.LastReminder == msg.Date:
		h.LastReminder = ""
	}
}

// checkReminder fires at most once per day, once the configured hour has
// passed, and only for a planned day with nothing logged yet.
func (h *Handler) checkReminder(t time.Time) tea.Cmd {
	cfg := h.Config.Reminders
	if !cfg.Enabled || t.Hour() < cfg.Hour {
		return nil
	}
	key := calendar.DateKey(t)
	if h.LastReminder == key {
		return nil
	}
	h.LastReminder = key

	st := h.Store
	notify := h.notify
	weekday := calendar.WeekdayIndex(t)
	return func() tea.Msg {
		ctx := context.Background()
		log := logrus.WithField("date", key)

		plan, err := st.GetActivePlan(ctx)
		if err != nil {
			log.WithError(err).Warn("reminder: load plan")
			return reminderCheckedMsg{Date: key, Failed: true}
		}
		routineID := plan.RoutineFor(weekday)
		if routineID == "" {
			return reminderCheckedMsg{Date: key}
		}

		sessions, err := st.SessionsOn(ctx, key)
		if err != nil {
			log.WithError(err).Warn("reminder: load sessions")
			return reminderCheckedMsg{Date: key, Failed: true}
		}
		if len(sessions) > 0 {
			return reminderCheckedMsg{Date: key}
		}

		routine, err := st.GetRoutine(ctx, routineID)
		if err != nil {
			log.WithError(err).Warn("reminder: load routine")
			return reminderCheckedMsg{Date: key, Failed: true}
		}

		if err := notify("Workout reminder", fmt.Sprintf("%s is planned for today", routine.Name)); err != nil {
			log.WithError(err).Warn("reminder: notify")
			return reminderCheckedMsg{Date: key, Failed: true}
		}
		return reminderCheckedMsg{Date: key, Sent: true}
	}
}
