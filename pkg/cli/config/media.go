package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/service/media"
	"github.com/mandap-labs/vivaha/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Media holds CLI flags for media store configuration
type Media struct {
	backend string
	bucket  string
	prefix  string
}

// Flags returns CLI flags for media store configuration
func (m *Media) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "media-backend",
			Usage:       "Media store backend (gcs or memory)",
			Value:       "memory",
			Sources:     cli.EnvVars("VIVAHA_MEDIA_BACKEND"),
			Destination: &m.backend,
		},
		&cli.StringFlag{
			Name:        "media-bucket",
			Usage:       "GCS bucket for uploaded media (required when using gcs backend)",
			Sources:     cli.EnvVars("VIVAHA_MEDIA_BUCKET"),
			Destination: &m.bucket,
		},
		&cli.StringFlag{
			Name:        "media-prefix",
			Usage:       "Object name prefix inside the media bucket",
			Sources:     cli.EnvVars("VIVAHA_MEDIA_PREFIX"),
			Destination: &m.prefix,
		},
	}
}

// Configure initializes and returns a media store based on the flags
func (m *Media) Configure(ctx context.Context) (interfaces.MediaStore, error) {
	switch m.backend {
	case "gcs":
		if m.bucket == "" {
			return nil, goerr.New("media-bucket is required when using gcs backend")
		}
		var opts []media.GCSOption
		if m.prefix != "" {
			opts = append(opts, media.WithObjectPrefix(m.prefix))
		}
		store, err := media.NewGCS(ctx, m.bucket, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize gcs media store")
		}
		logging.Default().Info("Using GCS media store", "bucket", m.bucket, "prefix", m.prefix)
		return store, nil

	case "memory":
		logging.Default().Info("Using in-memory media store (development mode)")
		return media.NewMemory(), nil

	default:
		return nil, goerr.New("invalid media backend", goerr.V("backend", m.backend))
	}
}
