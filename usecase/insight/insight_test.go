package insight

import (
	"testing"
	"time"

	"github.com/agendago/backend/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStatsPartition(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	activities := []domain.Activity{
		{ID: "1", Date: day(2024, 1, 11), Time: "09:00", Status: domain.StatusPendiente},
		{ID: "2", Date: day(2024, 1, 8), Time: "09:00", Status: domain.StatusCompletado},
		{ID: "3", Date: day(2024, 1, 8), Time: "09:00", Status: domain.StatusVencido},
	}

	stats := Stats(activities, now)
	if stats.Total != len(activities) {
		t.Errorf("total = %d, want %d", stats.Total, len(activities))
	}

	vencido := 0
	for _, a := range activities {
		if a.Status == domain.StatusVencido {
			vencido++
		}
	}
	if stats.Pending+stats.Completed+vencido != stats.Total {
		t.Errorf("statuses do not partition the collection: pending=%d completed=%d vencido=%d total=%d",
			stats.Pending, stats.Completed, vencido, stats.Total)
	}
}

func TestStatsOverdueIsObservational(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	// Still stored as pendiente, but its due instant has passed.
	activities := []domain.Activity{
		{ID: "1", Date: day(2024, 1, 9), Time: "09:00", Status: domain.StatusPendiente},
		{ID: "2", Date: day(2024, 1, 8), Time: "09:00", Status: domain.StatusVencido},
	}

	stats := Stats(activities, now)
	if stats.Overdue != 2 {
		t.Errorf("overdue = %d, want 2 (stored vencido plus past-due pending)", stats.Overdue)
	}
	if stats.Pending != 1 {
		t.Errorf("pending = %d, stored status must not be mutated", stats.Pending)
	}
	if activities[0].Status != domain.StatusPendiente {
		t.Error("Stats mutated a stored status")
	}
}

func TestStatsTodayCountIgnoresStatus(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	activities := []domain.Activity{
		{ID: "1", Date: day(2024, 1, 10), Time: "18:00", Status: domain.StatusCompletado},
		{ID: "2", Date: day(2024, 1, 10), Time: "19:00", Status: domain.StatusPendiente},
	}

	if stats := Stats(activities, now); stats.TodayCount != 2 {
		t.Errorf("todayCount = %d, want 2", stats.TodayCount)
	}
}

func TestBadgeCountDoesNotDeduplicate(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	// One pending activity dated today whose time already passed: it is
	// both overdue and due today, and the badge counts it twice.
	activities := []domain.Activity{
		{ID: "1", Date: day(2024, 1, 10), Time: "08:00", Status: domain.StatusPendiente},
	}

	if got := BadgeCount(activities, now); got != 2 {
		t.Errorf("badge = %d, want 2 (1 overdue + 1 pending today)", got)
	}
}

func TestPriorityActivitiesOrdering(t *testing.T) {
	a := domain.Activity{ID: "A", Priority: domain.PriorityAlta, Date: day(2024, 1, 5), Status: domain.StatusPendiente}
	b := domain.Activity{ID: "B", Priority: domain.PriorityAlta, Date: day(2024, 1, 1), Status: domain.StatusPendiente}
	c := domain.Activity{ID: "C", Priority: domain.PriorityMedia, Date: day(2024, 1, 1), Status: domain.StatusPendiente}

	got := PriorityActivities([]domain.Activity{a, b, c}, 0)
	if len(got) != 3 || got[0].ID != "B" || got[1].ID != "A" || got[2].ID != "C" {
		t.Fatalf("order = %v, want [B A C]", ids(got))
	}
}

func TestPriorityActivitiesStableAndLimited(t *testing.T) {
	var activities []domain.Activity
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		activities = append(activities, domain.Activity{
			ID:       id,
			Priority: domain.PriorityMedia,
			Date:     day(2024, 1, 1),
			Status:   domain.StatusPendiente,
		})
	}
	activities = append(activities, domain.Activity{ID: "done", Priority: domain.PriorityAlta, Status: domain.StatusCompletado})

	got := PriorityActivities(activities, 0)
	if len(got) != DefaultPriorityLimit {
		t.Fatalf("limit not applied, got %d", len(got))
	}
	for i, a := range got {
		if want := activities[i].ID; a.ID != want {
			t.Errorf("stability broken at %d: got %s want %s", i, a.ID, want)
		}
	}
}

func TestShouldNotifyAndMessage(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	if ShouldNotify(nil, now) {
		t.Error("empty collection must not notify")
	}
	if msg := Message(nil, now); msg != "" {
		t.Errorf("expected empty message, got %q", msg)
	}

	overdue := domain.Activity{ID: "1", Date: day(2024, 1, 9), Time: "09:00", Status: domain.StatusPendiente}
	todayPending := domain.Activity{ID: "2", Date: day(2024, 1, 10), Time: "20:00", Status: domain.StatusPendiente}

	if !ShouldNotify([]domain.Activity{overdue}, now) {
		t.Error("overdue activity must notify")
	}
	if got := Message([]domain.Activity{overdue}, now); got != "Tienes 1 actividades vencidas" {
		t.Errorf("overdue message = %q", got)
	}
	if got := Message([]domain.Activity{todayPending}, now); got != "Tienes 1 actividades para hoy" {
		t.Errorf("today message = %q", got)
	}
	if got := Message([]domain.Activity{overdue, todayPending}, now); got != "Tienes 1 actividades vencidas y 1 para hoy" {
		t.Errorf("combined message = %q", got)
	}
}

func ids(activities []domain.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.ID
	}
	return out
}
