package reports

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/opencivic/civicmap/pkg/errors"
)

// MaxListLimit caps the recent-reports window.
const MaxListLimit = 100

// Repository wraps the document store with the normalized Report type.
// It surfaces one failure signal per call and never retries; not-found and
// backend-unavailable stay distinct outcomes.
type Repository struct {
	store DocumentStore
}

func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// ListRecent returns up to limit reports, newest first by creation time
// (ties keep the backend-assigned order). limit is clamped to
// [1, MaxListLimit]; zero or negative means the full window. A fetch failure
// is an error, never a silent empty list.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	docs, err := r.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]Report, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, Normalize(doc.ID, doc.Data))
	}

	return rows, nil
}

// GetByID fetches one report. A missing document yields ErrNotFound,
// distinct from a transport failure.
func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	doc, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rep := Normalize(doc.ID, doc.Data)
	return &rep, nil
}

// Create persists a citizen submission. The backend assigns the id and both
// timestamps; status always starts at pending.
func (r *Repository) Create(ctx context.Context, req *CreateReportRequest) (string, error) {
	data := map[string]interface{}{
		"title":       strings.TrimSpace(req.Title),
		"description": strings.TrimSpace(req.Description),
		"category":    NormalizeCategory(req.Category),
		"city":        NormalizeCity(req.City),
		"lat":         req.Lat,
		"lng":         req.Lng,
		"photoURL":    req.PhotoURL,
		"status":      StatusPending,
	}

	return r.store.Create(ctx, data)
}

// UpdateStatus persists only the status field and a server-assigned
// updatedAt. An invalid status is rejected locally before any backend call.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, status)
	}

	return r.store.SetStatus(ctx, id, status)
}
