package reports

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	apperrors "github.com/opencivic/civicmap/pkg/errors"
)

// Document is one raw backend document plus its identifier, the adapter's
// input shape.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// DocumentStore is the capability set the Repository needs from the backend:
// query-with-order-and-limit, get-by-id, create, and a partial status update
// with a server-assigned timestamp. Keeping it an interface lets tests swap
// in an in-memory fake.
type DocumentStore interface {
	ListRecent(ctx context.Context, limit int) ([]Document, error)
	Get(ctx context.Context, id string) (Document, error)
	Create(ctx context.Context, data map[string]interface{}) (string, error)
	SetStatus(ctx context.Context, id, status string) error
}

const reportsCollection = "reports"

// FirestoreStore is the production DocumentStore over the Firestore
// "reports" collection.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) ListRecent(ctx context.Context, limit int) ([]Document, error) {
	iter := s.client.Collection(reportsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list reports: %v", apperrors.ErrUnavailable, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (Document, error) {
	snap, err := s.client.Collection(reportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if grpcstatus.Code(err) == codes.NotFound {
			return Document{}, fmt.Errorf("%w: report %s", apperrors.ErrNotFound, id)
		}
		return Document{}, fmt.Errorf("%w: get report %s: %v", apperrors.ErrUnavailable, id, err)
	}

	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *FirestoreStore) Create(ctx context.Context, data map[string]interface{}) (string, error) {
	ref := s.client.Collection(reportsCollection).NewDoc()

	data["createdAt"] = firestore.ServerTimestamp
	data["updatedAt"] = firestore.ServerTimestamp

	if _, err := ref.Create(ctx, data); err != nil {
		return "", fmt.Errorf("%w: create report: %v", apperrors.ErrUnavailable, err)
	}

	return ref.ID, nil
}

// SetStatus writes only the status field and a fresh server timestamp; no
// other field is touched.
func (s *FirestoreStore) SetStatus(ctx context.Context, id, status string) error {
	_, err := s.client.Collection(reportsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if grpcstatus.Code(err) == codes.NotFound {
			return fmt.Errorf("%w: report %s", apperrors.ErrNotFound, id)
		}
		return fmt.Errorf("%w: update report %s: %v", apperrors.ErrUnavailable, id, err)
	}

	return nil
}
