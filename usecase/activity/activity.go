// Package activity holds the authoritative in-memory activity collection.
// Every mutation flows through the Store, which keeps the persisted
// document and the derived statistics consistent with the collection.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agendago/backend/domain"
	"github.com/agendago/backend/repository"
	"github.com/agendago/backend/usecase/insight"
)

// Store mediates all reads and mutations of the activity collection. The
// mutex serializes the periodic refresh tick against caller mutations;
// within one operation the load-modify-save sequence is atomic.
type Store struct {
	repo   repository.ActivityRepository
	logger *zap.Logger

	mu         sync.RWMutex
	activities []domain.Activity
	stats      domain.ActivityStats
	loading    bool

	now func() time.Time
}

// New builds a store over the given persistence gateway. Call Load before
// serving reads.
func New(repo repository.ActivityRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:    repo,
		logger:  logger,
		loading: true,
		now:     time.Now,
	}
}

// Load fetches the persisted collection, promotes pending activities whose
// due instant has passed to vencido (persisting each promotion), replaces
// the in-memory collection and recomputes stats. Idempotent: a second call
// with no intervening mutation yields the same visible state.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	now := s.now()

	activities := s.repo.Load(ctx)
	promoted := 0
	for i := range activities {
		if activities[i].Status == domain.StatusPendiente && domain.IsOverdue(activities[i].Date, activities[i].Time, now) {
			activities[i].Status = domain.StatusVencido
			activities[i].UpdatedAt = now
			s.repo.Update(ctx, activities[i])
			promoted++
		}
	}
	if promoted > 0 {
		s.logger.Info("promoted overdue activities", zap.Int("count", promoted))
	}

	s.activities = activities
	s.stats = insight.Stats(activities, now)
	s.loading = false
}

// Create assigns a fresh id, initializes the lifecycle fields, persists the
// activity and appends it to the in-memory collection.
func (s *Store) Create(ctx context.Context, form domain.ActivityFormData) domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	created := domain.Activity{
		ID:          uuid.NewString(),
		Title:       form.Title,
		Description: form.Description,
		Date:        form.Date,
		Time:        form.Time,
		Priority:    form.Priority,
		Category:    form.Category,
		Status:      domain.StatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.repo.Add(ctx, created)
	s.activities = append(s.activities, created)
	s.stats = insight.Stats(s.activities, now)

	s.logger.Debug("activity created", zap.String("id", created.ID), zap.String("title", created.Title))
	return created
}

// UpdatePartial merges the patch over the stored activity, refreshes
// UpdatedAt, persists and recomputes stats. Unknown ids are a silent no-op.
func (s *Store) UpdatePartial(ctx context.Context, id string, patch domain.ActivityPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateLocked(ctx, id, patch)
}

func (s *Store) updateLocked(ctx context.Context, id string, patch domain.ActivityPatch) {
	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		now := s.now()
		updated := s.activities[i].Merge(patch)
		updated.UpdatedAt = now

		s.repo.Update(ctx, updated)
		s.activities[i] = updated
		s.stats = insight.Stats(s.activities, now)
		return
	}
}

// ToggleStatus flips completado back to pendiente; any other status
// (pendiente or vencido) becomes completado. Unknown ids are a no-op.
func (s *Store) ToggleStatus(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		next := domain.StatusCompletado
		if s.activities[i].Status == domain.StatusCompletado {
			next = domain.StatusPendiente
		}
		s.updateLocked(ctx, id, domain.ActivityPatch{Status: &next})
		return
	}
}

// Delete removes the activity from persistence and memory. Unknown ids are
// a no-op.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		s.repo.Delete(ctx, id)
		s.activities = append(s.activities[:i], s.activities[i+1:]...)
		s.stats = insight.Stats(s.activities, s.now())
		return
	}
}

// ClearAll empties both persistence and memory.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repo.ClearAll(ctx)
	s.activities = nil
	s.stats = domain.ActivityStats{}
}

// ExportData returns the backup document text.
func (s *Store) ExportData(ctx context.Context) string {
	return s.repo.ExportAll(ctx)
}

// ImportData replaces the persisted collection from a backup document and,
// on success, reloads so the in-memory state and the overdue-promotion
// pass resynchronize.
func (s *Store) ImportData(ctx context.Context, data string) repository.ImportResult {
	result := s.repo.ImportAll(ctx, data)
	if result.Success {
		s.Load(ctx)
	}
	return result
}

// Refresh re-evaluates overdue state at the current instant. Promotions
// are persisted, matching the load-time pass, and stats are recomputed.
// The refresher service calls this on its periodic tick.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.activities {
		if s.activities[i].Status == domain.StatusPendiente && domain.IsOverdue(s.activities[i].Date, s.activities[i].Time, now) {
			s.activities[i].Status = domain.StatusVencido
			s.activities[i].UpdatedAt = now
			s.repo.Update(ctx, s.activities[i])
		}
	}
	s.stats = insight.Stats(s.activities, now)
}

// Activities returns a snapshot copy of the collection.
func (s *Store) Activities() []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Stats returns the current derived statistics.
func (s *Store) Stats() domain.ActivityStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Loading reports whether an initial load is in progress.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
