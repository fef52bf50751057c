// Package insight derives aggregate statistics and attention-needed
// subsets from an activity collection. Everything here is pure and
// recomputed from scratch on every call; the store is responsible for
// calling back in after each mutation.
package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/agendago/backend/domain"
)

// DefaultPriorityLimit caps the priority shortlist.
const DefaultPriorityLimit = 5

// Stats computes the aggregate counts at the given instant. Overdue is
// observational: it counts pending activities whose due instant has passed
// without mutating their stored status. TodayCount counts activities dated
// today regardless of status.
func Stats(activities []domain.Activity, now time.Time) domain.ActivityStats {
	stats := domain.ActivityStats{Total: len(activities)}
	for _, a := range activities {
		switch a.Status {
		case domain.StatusPendiente:
			stats.Pending++
		case domain.StatusCompletado:
			stats.Completed++
		}
		if a.Status == domain.StatusVencido || (a.Status == domain.StatusPendiente && domain.IsOverdue(a.Date, a.Time, now)) {
			stats.Overdue++
		}
		if domain.IsSameDay(a.Date, now) {
			stats.TodayCount++
		}
	}
	return stats
}

// BadgeCount sums overdue activities and pending activities due today. The
// two sets may overlap (an activity due earlier today is in both); the sum
// is deliberately not deduplicated.
func BadgeCount(activities []domain.Activity, now time.Time) int {
	return len(domain.OverdueActivities(activities, now)) + pendingToday(activities, now)
}

// ShouldNotify reports whether anything needs the user's attention.
func ShouldNotify(activities []domain.Activity, now time.Time) bool {
	return len(domain.OverdueActivities(activities, now)) > 0 || pendingToday(activities, now) > 0
}

// Message builds the user-facing attention summary, or "" when there is
// nothing to report.
func Message(activities []domain.Activity, now time.Time) string {
	overdue := len(domain.OverdueActivities(activities, now))
	today := pendingToday(activities, now)

	switch {
	case overdue > 0 && today > 0:
		return fmt.Sprintf("Tienes %d actividades vencidas y %d para hoy", overdue, today)
	case overdue > 0:
		return fmt.Sprintf("Tienes %d actividades vencidas", overdue)
	case today > 0:
		return fmt.Sprintf("Tienes %d actividades para hoy", today)
	default:
		return ""
	}
}

// PriorityActivities returns up to limit pending activities ordered by
// priority rank descending, then date ascending. The sort is stable so
// equal entries keep their original relative order. A non-positive limit
// falls back to DefaultPriorityLimit.
func PriorityActivities(activities []domain.Activity, limit int) []domain.Activity {
	if limit <= 0 {
		limit = DefaultPriorityLimit
	}

	var pending []domain.Activity
	for _, a := range activities {
		if a.Status == domain.StatusPendiente {
			pending = append(pending, a)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		if ri, rj := pending[i].Priority.Rank(), pending[j].Priority.Rank(); ri != rj {
			return ri > rj
		}
		return pending[i].Date.Before(pending[j].Date)
	})

	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

func pendingToday(activities []domain.Activity, now time.Time) int {
	count := 0
	for _, a := range domain.TodayActivities(activities, now) {
		if a.Status == domain.StatusPendiente {
			count++
		}
	}
	return count
}
