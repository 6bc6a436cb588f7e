// Package firebase bootstraps the Firestore client backing all persistence.
package firebase

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Config holds Firebase configuration.
type Config struct {
	ProjectID                    string
	GoogleApplicationCredentials string // path to service account JSON (optional)
}

// Clients holds the initialized Firestore client. Point
// FIRESTORE_EMULATOR_HOST at the emulator for local runs; the client picks
// the variable up automatically.
type Clients struct {
	Firestore *firestore.Client
}

// InitializeClients sets up the Firebase app and returns its Firestore client.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	config := &firebase.Config{ProjectID: cfg.ProjectID}
	fbApp, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return nil, err
	}

	fc, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{Firestore: fc}, nil
}

// Close closes the Firestore client.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
