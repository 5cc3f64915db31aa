package backend

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/opencivic/civicmap/internal/config"
)

// Clients bundles the Firebase-backed services the API depends on.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

// Connect initializes the Firebase Admin SDK and opens the Firestore and
// Auth clients.
func Connect(ctx context.Context, cfg *config.Config) (*Clients, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsFile)

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firestore client: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("error getting firebase auth client: %v", err)
	}

	return &Clients{Firestore: fs, Auth: authClient}, nil
}

// Close releases the underlying client connections.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
