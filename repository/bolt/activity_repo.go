package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bbolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/agendago/backend/domain"
	"github.com/agendago/backend/repository"
)

const (
	bucketName = "activities"
	storageKey = "activity-reminders-app"

	// ExportVersion tags exported backup documents.
	ExportVersion = "1.0"
)

// ExportDocument is the wrapped backup form produced by ExportAll and
// accepted by ImportAll. The internal persisted form is the bare
// activities array.
type ExportDocument struct {
	ExportDate string            `json:"exportDate"`
	Version    string            `json:"version"`
	Activities []domain.Activity `json:"activities"`
}

// ActivityRepository persists the full activity collection as a single
// JSON document under one key of a BoltDB bucket.
type ActivityRepository struct {
	db     *bbolt.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, logger *zap.Logger) (*ActivityRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &ActivityRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Close closes the Bolt database.
func (r *ActivityRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Ping verifies the database is reachable.
func (r *ActivityRepository) Ping() error {
	if r == nil || r.db == nil {
		return bbolt.ErrDatabaseNotOpen
	}
	return r.db.View(func(tx *bbolt.Tx) error { return nil })
}

// Count returns the number of persisted activities.
func (r *ActivityRepository) Count(ctx context.Context) int {
	return len(r.Load(ctx))
}

// Load returns the persisted collection. A missing or unreadable document
// yields an empty collection; the failure is logged, never surfaced.
func (r *ActivityRepository) Load(ctx context.Context) []domain.Activity {
	if r == nil || r.db == nil {
		return nil
	}

	var raw []byte
	if err := r.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(storageKey)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		r.logger.Error("failed to read activities", zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}

	var activities []domain.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		r.logger.Error("corrupt activities document, starting empty", zap.Error(err))
		return nil
	}
	return activities
}

// SaveAll replaces the entire persisted collection. Best-effort: failures
// are logged and swallowed.
func (r *ActivityRepository) SaveAll(ctx context.Context, activities []domain.Activity) {
	if r == nil || r.db == nil {
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}

	payload, err := json.Marshal(activities)
	if err != nil {
		r.logger.Error("failed to encode activities", zap.Error(err))
		return
	}
	if err := r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(storageKey), payload)
	}); err != nil {
		r.logger.Error("failed to save activities", zap.Error(err))
	}
}

// Add appends one activity to the persisted collection.
func (r *ActivityRepository) Add(ctx context.Context, activity domain.Activity) {
	activities := r.Load(ctx)
	activities = append(activities, activity)
	r.SaveAll(ctx, activities)
}

// Update replaces the stored activity with the same id, refreshing
// UpdatedAt to the write instant regardless of the caller-supplied value.
// Unknown ids are a silent no-op.
func (r *ActivityRepository) Update(ctx context.Context, activity domain.Activity) {
	activities := r.Load(ctx)
	for i := range activities {
		if activities[i].ID == activity.ID {
			activity.UpdatedAt = r.now()
			activities[i] = activity
			r.SaveAll(ctx, activities)
			return
		}
	}
}

// Delete removes the activity with the given id, if present.
func (r *ActivityRepository) Delete(ctx context.Context, id string) {
	activities := r.Load(ctx)
	filtered := activities[:0]
	for _, a := range activities {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) != len(activities) {
		r.SaveAll(ctx, filtered)
	}
}

// ExportAll produces the versioned backup document as indented JSON text.
func (r *ActivityRepository) ExportAll(ctx context.Context) string {
	activities := r.Load(ctx)
	if activities == nil {
		activities = []domain.Activity{}
	}
	doc := ExportDocument{
		ExportDate: r.now().UTC().Format(time.RFC3339),
		Version:    ExportVersion,
		Activities: activities,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		r.logger.Error("failed to encode export document", zap.Error(err))
		return ""
	}
	return string(out)
}

// ImportAll parses a backup document and fully replaces the persisted
// collection on success. Malformed input yields a descriptive result, not
// an error, and leaves the stored state untouched.
func (r *ActivityRepository) ImportAll(ctx context.Context, data string) repository.ImportResult {
	var doc struct {
		Activities json.RawMessage `json:"activities"`
	}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return repository.ImportResult{
			Success: false,
			Message: "Error al procesar el archivo. Verifica que sea un archivo JSON válido.",
		}
	}
	if doc.Activities == nil || !strings.HasPrefix(strings.TrimSpace(string(doc.Activities)), "[") {
		return repository.ImportResult{
			Success: false,
			Message: "Formato de datos inválido. No se encontraron actividades.",
		}
	}

	var activities []domain.Activity
	if err := json.Unmarshal(doc.Activities, &activities); err != nil {
		return repository.ImportResult{
			Success: false,
			Message: "Error al procesar el archivo. Verifica que sea un archivo JSON válido.",
		}
	}

	r.SaveAll(ctx, activities)
	return repository.ImportResult{
		Success: true,
		Message: fmt.Sprintf("%d actividades importadas correctamente.", len(activities)),
		Count:   len(activities),
	}
}

// ClearAll removes the persisted document entirely.
func (r *ActivityRepository) ClearAll(ctx context.Context) {
	if r == nil || r.db == nil {
		return
	}
	if err := r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(storageKey))
	}); err != nil {
		r.logger.Error("failed to clear activities", zap.Error(err))
	}
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)
