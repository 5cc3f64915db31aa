package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"

	apperrors "github.com/opencivic/civicmap/pkg/errors"
)

// TokenVerifier checks a Firebase ID token and returns the identity
// it carries.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// FirebaseVerifier verifies ID tokens against Firebase Auth.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id token", apperrors.ErrUnauthorized)
	}

	identity := &Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
