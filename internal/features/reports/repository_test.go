package reports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/opencivic/civicmap/pkg/errors"
)

// fakeStore is an in-memory DocumentStore standing in for Firestore.
type fakeStore struct {
	docs       []Document
	failList   bool
	failGet    bool
	failSet    bool
	setCalls   int
	lastStatus string
}

func (f *fakeStore) ListRecent(ctx context.Context, limit int) ([]Document, error) {
	if f.failList {
		return nil, fmt.Errorf("%w: list reports: connection refused", apperrors.ErrUnavailable)
	}
	if limit > len(f.docs) {
		limit = len(f.docs)
	}
	return f.docs[:limit], nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (Document, error) {
	if f.failGet {
		return Document{}, fmt.Errorf("%w: get report %s: connection refused", apperrors.ErrUnavailable, id)
	}
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return Document{}, fmt.Errorf("%w: report %s", apperrors.ErrNotFound, id)
}

func (f *fakeStore) Create(ctx context.Context, data map[string]interface{}) (string, error) {
	id := fmt.Sprintf("gen-%d", len(f.docs)+1)
	now := time.Now()
	data["createdAt"] = now
	data["updatedAt"] = now
	f.docs = append([]Document{{ID: id, Data: data}}, f.docs...)
	return id, nil
}

func (f *fakeStore) SetStatus(ctx context.Context, id, status string) error {
	f.setCalls++
	f.lastStatus = status
	if f.failSet {
		return fmt.Errorf("%w: update report %s: connection refused", apperrors.ErrUnavailable, id)
	}
	for _, d := range f.docs {
		if d.ID == id {
			d.Data["status"] = status
			d.Data["updatedAt"] = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: report %s", apperrors.ErrNotFound, id)
}

func seededStore() *fakeStore {
	return &fakeStore{docs: []Document{
		{ID: "r1", Data: map[string]interface{}{"title": "Pothole on Main Road", "category": "Roads", "city": "Mumbai", "status": "pending", "createdAt": time.Now()}},
		{ID: "r2", Data: map[string]interface{}{"title": "Garbage pileup", "status": "in_progress"}},
		{ID: "r3", Data: map[string]interface{}{}},
	}}
}

func TestListRecentNormalizes(t *testing.T) {
	repo := NewRepository(seededStore())

	rows, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "roads", rows[0].Category)
	require.Equal(t, "mumbai", rows[0].City)
	require.Equal(t, "Untitled report", rows[2].Title)
	require.Equal(t, StatusPending, rows[2].Status)
}

func TestListRecentClampsLimit(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 150; i++ {
		store.docs = append(store.docs, Document{ID: fmt.Sprintf("r%d", i), Data: map[string]interface{}{}})
	}
	repo := NewRepository(store)

	rows, err := repo.ListRecent(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, rows, MaxListLimit)

	rows, err = repo.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 5)
}

func TestListRecentFailureIsNotEmptyList(t *testing.T) {
	repo := NewRepository(&fakeStore{failList: true})

	rows, err := repo.ListRecent(context.Background(), 10)
	require.Nil(t, rows)
	require.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestListRecentEmptyCollection(t *testing.T) {
	repo := NewRepository(&fakeStore{})

	rows, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestGetByIDOutcomesStayDistinct(t *testing.T) {
	repo := NewRepository(seededStore())

	rep, err := repo.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, "r1", rep.ID)

	_, err = repo.GetByID(context.Background(), "missing-id")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NotErrorIs(t, err, apperrors.ErrUnavailable)

	failing := NewRepository(&fakeStore{failGet: true})
	_, err = failing.GetByID(context.Background(), "r1")
	require.ErrorIs(t, err, apperrors.ErrUnavailable)
	require.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateStatusRejectsInvalidLocally(t *testing.T) {
	store := seededStore()
	repo := NewRepository(store)

	err := repo.UpdateStatus(context.Background(), "r1", "bogus_status")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	// the backend must not be called for a local validation error
	require.Zero(t, store.setCalls)
}

func TestUpdateStatusNormalizesCase(t *testing.T) {
	store := seededStore()
	repo := NewRepository(store)

	err := repo.UpdateStatus(context.Background(), "r1", "  In_Progress ")
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, store.lastStatus)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := NewRepository(seededStore())

	err := repo.UpdateStatus(context.Background(), "missing-id", StatusCompleted)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateForcesPendingAndNormalizedKeys(t *testing.T) {
	store := seededStore()
	repo := NewRepository(store)

	id, err := repo.Create(context.Background(), &CreateReportRequest{
		Title:    "  Broken Street Light  ",
		Category: "Street Lights",
		City:     "Mumbai",
		Lat:      19.1,
		Lng:      72.9,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rep, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Broken Street Light", rep.Title)
	require.Equal(t, "street_lights", rep.Category)
	require.Equal(t, "mumbai", rep.City)
	require.Equal(t, StatusPending, rep.Status)
	require.NotNil(t, rep.CreatedAt)
}
