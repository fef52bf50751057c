package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DueAt overlays an "HH:MM" wall-clock time onto the date's calendar day in
// the date's location, with seconds and below zeroed. A malformed time
// string falls back to midnight; the input boundary is expected to have
// validated it.
func DueAt(date time.Time, clock string) time.Time {
	hours, minutes := parseClock(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, date.Location())
}

func parseClock(clock string) (int, int) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return hours, 0
	}
	return hours, minutes
}

// IsOverdue reports whether the due instant is strictly before now. An
// activity due exactly at now is not overdue.
func IsOverdue(date time.Time, clock string, now time.Time) bool {
	return DueAt(date, clock).Before(now)
}

// IsSameDay reports whether two instants fall on the same calendar day in
// local time.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TodayActivities returns the activities dated on now's calendar day,
// regardless of status.
func TodayActivities(activities []Activity, now time.Time) []Activity {
	var out []Activity
	for _, a := range activities {
		if IsSameDay(a.Date, now) {
			out = append(out, a)
		}
	}
	return out
}

// OverdueActivities returns the pending activities whose due instant has
// passed. Completed and already-vencido activities are excluded.
func OverdueActivities(activities []Activity, now time.Time) []Activity {
	var out []Activity
	for _, a := range activities {
		if a.Status == StatusPendiente && IsOverdue(a.Date, a.Time, now) {
			out = append(out, a)
		}
	}
	return out
}

// UpcomingActivities returns activities due strictly after now and no later
// than now plus the given number of days (window end inclusive).
func UpcomingActivities(activities []Activity, now time.Time, days int) []Activity {
	end := now.AddDate(0, 0, days)
	var out []Activity
	for _, a := range activities {
		due := DueAt(a.Date, a.Time)
		if due.After(now) && !due.After(end) {
			out = append(out, a)
		}
	}
	return out
}

// ActivitiesForDate returns the activities dated on the given calendar day.
func ActivitiesForDate(activities []Activity, day time.Time) []Activity {
	var out []Activity
	for _, a := range activities {
		if IsSameDay(a.Date, day) {
			out = append(out, a)
		}
	}
	return out
}

// FormatDayLabel renders a date relative to now: Hoy, Mañana, Ayer, or
// dd/MM/yyyy otherwise.
func FormatDayLabel(date, now time.Time) string {
	switch {
	case IsSameDay(date, now):
		return "Hoy"
	case IsSameDay(date, now.AddDate(0, 0, 1)):
		return "Mañana"
	case IsSameDay(date, now.AddDate(0, 0, -1)):
		return "Ayer"
	default:
		return date.Format("02/01/2006")
	}
}

// FormatRelativeTime renders the distance between now and an instant in
// whole hours, switching to days past 24 hours.
func FormatRelativeTime(t, now time.Time) string {
	diff := t.Sub(now)
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	if diff < 0 {
		if -hours < 24 {
			return fmt.Sprintf("Hace %d horas", -hours)
		}
		return fmt.Sprintf("Hace %d días", -days)
	}
	if hours < 24 {
		return fmt.Sprintf("En %d horas", hours)
	}
	return fmt.Sprintf("En %d días", days)
}
