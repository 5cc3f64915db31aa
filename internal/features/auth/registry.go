package auth

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	apperrors "github.com/opencivic/civicmap/pkg/errors"
)

const adminsCollection = "admins"

// AdminRegistry answers whether a verified identity holds admin rights.
type AdminRegistry interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

// FirestoreRegistry reads admin grants from the admins collection.
// A grant is a document keyed by uid with isAdmin set to true; a
// missing document or any other value means no grant.
type FirestoreRegistry struct {
	client *firestore.Client
}

func NewFirestoreRegistry(client *firestore.Client) *FirestoreRegistry {
	return &FirestoreRegistry{client: client}
}

func (r *FirestoreRegistry) IsAdmin(ctx context.Context, uid string) (bool, error) {
	snap, err := r.client.Collection(adminsCollection).Doc(uid).Get(ctx)
	if err != nil {
		if grpcstatus.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("%w: check admin grant: %v", apperrors.ErrUnavailable, err)
	}

	isAdmin, ok := snap.Data()["isAdmin"].(bool)
	return ok && isAdmin, nil
}
