package domain

import "testing"

func sampleActivities() []Activity {
	return []Activity{
		{ID: "1", Title: "Informe mensual", Description: "enviar al equipo", Date: date(2024, 1, 3), Priority: PriorityAlta, Category: CategoryTrabajo, Status: StatusPendiente},
		{ID: "2", Title: "Cita médica", Date: date(2024, 1, 1), Priority: PriorityMedia, Category: CategorySalud, Status: StatusCompletado},
		{ID: "3", Title: "Comprar pan", Date: date(2024, 1, 2), Priority: PriorityBaja, Category: CategoryHogar, Status: StatusPendiente},
	}
}

func TestFilterActivitiesByStatus(t *testing.T) {
	got := FilterActivities(sampleActivities(), ActivityFilter{Status: "pendiente"})
	if len(got) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(got))
	}

	// "all" and empty behave as wildcards
	if n := len(FilterActivities(sampleActivities(), ActivityFilter{Status: FilterAll})); n != 3 {
		t.Errorf("wildcard 'all' returned %d", n)
	}
	if n := len(FilterActivities(sampleActivities(), ActivityFilter{})); n != 3 {
		t.Errorf("empty filter returned %d", n)
	}
}

func TestFilterActivitiesCombined(t *testing.T) {
	f := ActivityFilter{Status: "pendiente", Category: "trabajo", Priority: "alta"}
	got := FilterActivities(sampleActivities(), f)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("combined filter = %+v", got)
	}
}

func TestFilterActivitiesSearch(t *testing.T) {
	got := FilterActivities(sampleActivities(), ActivityFilter{SearchTerm: "EQUIPO"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search should match description case-insensitively, got %+v", got)
	}

	if n := len(FilterActivities(sampleActivities(), ActivityFilter{SearchTerm: "nada"})); n != 0 {
		t.Errorf("unmatched search returned %d", n)
	}
}

func TestSortActivities(t *testing.T) {
	byDate := SortActivities(sampleActivities(), SortDateAsc)
	if byDate[0].ID != "2" || byDate[2].ID != "1" {
		t.Errorf("date-asc order wrong: %s %s %s", byDate[0].ID, byDate[1].ID, byDate[2].ID)
	}

	byDateDesc := SortActivities(sampleActivities(), SortDateDesc)
	if byDateDesc[0].ID != "1" {
		t.Errorf("date-desc should start with the latest, got %s", byDateDesc[0].ID)
	}

	byPriority := SortActivities(sampleActivities(), SortPriority)
	if byPriority[0].Priority != PriorityAlta || byPriority[2].Priority != PriorityBaja {
		t.Errorf("priority order wrong: %+v", byPriority)
	}

	byTitle := SortActivities(sampleActivities(), SortTitle)
	if byTitle[0].ID != "2" {
		t.Errorf("title order wrong, got %s first", byTitle[0].ID)
	}

	// input slice untouched
	original := sampleActivities()
	SortActivities(original, SortDateAsc)
	if original[0].ID != "1" {
		t.Error("SortActivities mutated its input")
	}
}
