package storage

import (
	"context"
	"fmt"
	"io"

	"petsit_backend/internal/config"
)

// Storage abstracts where uploaded files (certificates, profile images)
// end up. Paths are forward-slash relative keys, e.g.
// "certificates/<user-id>/<timestamp>.pdf".
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	GetURL(ctx context.Context, path string) (string, error)
	Delete(ctx context.Context, path string) error
}

// New builds the backend selected in config. An empty type means local;
// anything else unrecognized is an error so a typo in config fails fast.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Storage(cfg)
	case "local", "":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
