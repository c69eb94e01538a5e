package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/service/storage"
	"github.com/maham-hq/maham/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Storage holds CLI flags for file storage configuration
type Storage struct {
	backend string
	bucket  string
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-backend",
			Usage:       "File storage backend (gcs or memory)",
			Value:       "gcs",
			Sources:     cli.EnvVars("MAHAM_STORAGE_BACKEND"),
			Destination: &s.backend,
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "GCS bucket for task attachments (required when using gcs backend)",
			Sources:     cli.EnvVars("MAHAM_GCS_BUCKET"),
			Destination: &s.bucket,
		},
	}
}

// Configure initializes and returns a storage client based on the configured
// backend. The caller is responsible for calling Close() on the returned client.
func (s *Storage) Configure(ctx context.Context) (storage.Client, error) {
	switch s.backend {
	case "gcs":
		if s.bucket == "" {
			return nil, goerr.New("gcs-bucket is required when using gcs backend")
		}
		client, err := storage.NewGCS(ctx, s.bucket)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize GCS storage")
		}
		logging.Default().Info("Using GCS storage", "bucket", s.bucket)
		return client, nil

	case "memory":
		logging.Default().Info("Using in-memory storage (development mode)")
		return storage.NewMemory(), nil

	default:
		return nil, goerr.New("invalid storage backend", goerr.V("backend", s.backend))
	}
}
