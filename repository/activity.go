package repository

import (
	"context"

	"github.com/agendago/backend/domain"
)

// ImportResult is the user-facing outcome of an import. Message is
// human-readable and specific enough to display directly.
type ImportResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// ActivityRepository is the only boundary to durable storage. It owns a
// single versioned document holding the full collection and fails soft:
// unreadable state loads as empty, write failures are logged and swallowed.
type ActivityRepository interface {
	Load(ctx context.Context) []domain.Activity
	SaveAll(ctx context.Context, activities []domain.Activity)
	Add(ctx context.Context, activity domain.Activity)
	Update(ctx context.Context, activity domain.Activity)
	Delete(ctx context.Context, id string)
	ExportAll(ctx context.Context) string
	ImportAll(ctx context.Context, data string) ImportResult
	ClearAll(ctx context.Context)
}
