package activity

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/agendago/backend/domain"
	boltRepo "github.com/agendago/backend/repository/bolt"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) (*Store, *boltRepo.ActivityRepository) {
	t.Helper()
	repo, err := boltRepo.Open(filepath.Join(t.TempDir(), "activities.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	store := New(repo, nil)
	store.now = func() time.Time { return testNow }
	return store, repo
}

func futureForm(title string) domain.ActivityFormData {
	return domain.ActivityFormData{
		Title:    title,
		Date:     testNow.AddDate(0, 0, 1),
		Time:     "10:00",
		Priority: domain.PriorityMedia,
		Category: domain.CategoryPersonal,
	}
}

func TestCreateInitializesLifecycle(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	created := store.Create(ctx, futureForm("Llamar al médico"))

	if created.ID == "" {
		t.Error("create must assign an id")
	}
	if created.Status != domain.StatusPendiente {
		t.Errorf("status = %s, want pendiente", created.Status)
	}
	if !created.CreatedAt.Equal(testNow) || !created.UpdatedAt.Equal(testNow) {
		t.Errorf("createdAt/updatedAt not set to now: %v %v", created.CreatedAt, created.UpdatedAt)
	}

	if persisted := repo.Load(ctx); len(persisted) != 1 || persisted[0].ID != created.ID {
		t.Fatalf("create not persisted: %+v", persisted)
	}
	if stats := store.Stats(); stats.Total != 1 || stats.Pending != 1 {
		t.Errorf("stats not recomputed: %+v", stats)
	}
}

func TestLoadPromotesOverdueAndPersists(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	// Seed a pending activity due yesterday directly through the gateway.
	repo.SaveAll(ctx, []domain.Activity{{
		ID:       "late",
		Title:    "Pagar la factura",
		Date:     testNow.AddDate(0, 0, -1),
		Time:     "09:00",
		Priority: domain.PriorityAlta,
		Category: domain.CategoryHogar,
		Status:   domain.StatusPendiente,
	}})

	store.Load(ctx)

	got := store.Activities()
	if len(got) != 1 || got[0].Status != domain.StatusVencido {
		t.Fatalf("activity not promoted: %+v", got)
	}

	// The promotion is persisted: a second store over the same gateway sees
	// vencido without recomputing anything.
	second := New(repo, nil)
	second.now = func() time.Time { return testNow }
	second.Load(ctx)
	if got := second.Activities(); got[0].Status != domain.StatusVencido {
		t.Fatalf("promotion was not persisted: %+v", got)
	}
}

func TestLoadIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	store.Create(ctx, futureForm("Estudiar Go"))
	store.Create(ctx, futureForm("Regar las plantas"))

	store.Load(ctx)
	first := store.Activities()
	firstStats := store.Stats()

	store.Load(ctx)
	second := store.Activities()
	secondStats := store.Stats()

	if !reflect.DeepEqual(first, second) {
		t.Error("activities differ between two loads with no mutation")
	}
	if firstStats != secondStats {
		t.Errorf("stats differ: %+v vs %+v", firstStats, secondStats)
	}
	if store.Loading() {
		t.Error("loading flag still set after load")
	}
}

func TestToggleInvolution(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	created := store.Create(ctx, futureForm("Leer un capítulo"))

	store.ToggleStatus(ctx, created.ID)
	if got := store.Activities()[0].Status; got != domain.StatusCompletado {
		t.Fatalf("after first toggle: %s", got)
	}

	store.ToggleStatus(ctx, created.ID)
	if got := store.Activities()[0].Status; got != domain.StatusPendiente {
		t.Fatalf("toggle twice should return to pendiente, got %s", got)
	}
}

func TestToggleVencidoCompletes(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	repo.SaveAll(ctx, []domain.Activity{{
		ID:     "late",
		Title:  "Entregar informe",
		Date:   testNow.AddDate(0, 0, -2),
		Time:   "09:00",
		Status: domain.StatusPendiente,
	}})
	store.Load(ctx)

	store.ToggleStatus(ctx, "late")
	if got := store.Activities()[0].Status; got != domain.StatusCompletado {
		t.Fatalf("toggling vencido should complete it, got %s", got)
	}

	// Back to pendiente, then a refresh re-classifies it as vencido since
	// its due instant is still in the past.
	store.ToggleStatus(ctx, "late")
	store.Refresh(ctx)
	if got := store.Activities()[0].Status; got != domain.StatusVencido {
		t.Fatalf("refresh should re-promote a past-due pending activity, got %s", got)
	}
}

func TestRefreshPersistsPromotion(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	created := store.Create(ctx, domain.ActivityFormData{
		Title:    "Sacar la basura",
		Date:     testNow,
		Time:     "20:00",
		Priority: domain.PriorityBaja,
		Category: domain.CategoryHogar,
	})

	// Time passes beyond the due instant.
	store.now = func() time.Time { return testNow.Add(9 * time.Hour) }
	store.Refresh(ctx)

	if got := store.Activities()[0].Status; got != domain.StatusVencido {
		t.Fatalf("refresh did not promote, got %s", got)
	}
	persisted := repo.Load(ctx)
	if persisted[0].ID != created.ID || persisted[0].Status != domain.StatusVencido {
		t.Fatalf("refresh promotion not persisted: %+v", persisted)
	}
	if stats := store.Stats(); stats.Overdue != 1 || stats.Pending != 0 {
		t.Errorf("stats after refresh: %+v", stats)
	}
}

func TestUpdatePartialMergesAndBumpsUpdatedAt(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	created := store.Create(ctx, futureForm("Comprar entradas"))

	later := testNow.Add(time.Hour)
	store.now = func() time.Time { return later }

	title := "Comprar entradas de cine"
	priority := domain.PriorityAlta
	store.UpdatePartial(ctx, created.ID, domain.ActivityPatch{Title: &title, Priority: &priority})

	got := store.Activities()[0]
	if got.Title != title || got.Priority != priority {
		t.Errorf("patch not merged: %+v", got)
	}
	if got.Category != created.Category || got.Time != created.Time {
		t.Errorf("unpatched fields changed: %+v", got)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("updatedAt = %v, want %v", got.UpdatedAt, later)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must never change")
	}
}

func TestUnknownIDOperationsAreNoops(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	store.Create(ctx, futureForm("Única actividad"))
	before := store.Activities()
	beforeStats := store.Stats()

	title := "cambiado"
	store.UpdatePartial(ctx, "nonexistent-id", domain.ActivityPatch{Title: &title})
	store.ToggleStatus(ctx, "nonexistent-id")
	store.Delete(ctx, "nonexistent-id")

	if !reflect.DeepEqual(before, store.Activities()) {
		t.Error("unknown-id operation mutated the collection")
	}
	if beforeStats != store.Stats() {
		t.Error("unknown-id operation changed stats")
	}
}

func TestDeleteRemovesEverywhere(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	a := store.Create(ctx, futureForm("Primera"))
	b := store.Create(ctx, futureForm("Segunda"))

	store.Delete(ctx, a.ID)

	if got := store.Activities(); len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("in-memory delete wrong: %+v", got)
	}
	if persisted := repo.Load(ctx); len(persisted) != 1 || persisted[0].ID != b.ID {
		t.Fatalf("persisted delete wrong: %+v", persisted)
	}
	if stats := store.Stats(); stats.Total != 1 {
		t.Errorf("stats after delete: %+v", stats)
	}
}

func TestClearAll(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	store.Create(ctx, futureForm("Una"))
	store.Create(ctx, futureForm("Otra"))

	store.ClearAll(ctx)

	if len(store.Activities()) != 0 {
		t.Error("memory not cleared")
	}
	if len(repo.Load(ctx)) != 0 {
		t.Error("persistence not cleared")
	}
	if stats := store.Stats(); stats != (domain.ActivityStats{}) {
		t.Errorf("stats not reset: %+v", stats)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	a := store.Create(ctx, futureForm("Actividad uno"))
	b := store.Create(ctx, futureForm("Actividad dos"))

	exported := store.ExportData(ctx)
	store.ClearAll(ctx)

	result := store.ImportData(ctx, exported)
	if !result.Success || result.Count != 2 {
		t.Fatalf("import failed: %+v", result)
	}

	got := store.Activities()
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("round trip lost activities: %+v", got)
	}
	if got[0].Title != a.Title || got[1].Title != b.Title {
		t.Error("round trip lost field values")
	}
}

func TestImportInvalidLeavesStateUntouched(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	store.Create(ctx, futureForm("Intacta"))
	before := store.Activities()

	result := store.ImportData(ctx, `{"foo": 1}`)
	if result.Success {
		t.Fatal("invalid import succeeded")
	}
	if result.Message == "" {
		t.Error("invalid import must carry a message")
	}
	if !reflect.DeepEqual(before, store.Activities()) {
		t.Error("failed import altered the in-memory collection")
	}
}
