package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	DB *DB

	AccountRepository    AccountRepository
	TagSequence          TagSequence
	ReviewRepository     ReviewRepository
	RestaurantRepository RestaurantRepository
	IconStore            BlobStore
}

// NewStorages connects to the database, applies migrations and builds the
// repositories. Icons go to S3 when a bucket is configured and to the local
// icon directory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	var icons BlobStore
	if cfg.UseS3() {
		icons, err = NewS3BlobStore(ctx, cfg.S3, log)
	} else {
		icons, err = NewFileBlobStore(cfg.Files, log)
	}
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, icons, log), nil
}

func newStorages(db *DB, icons BlobStore, log *logger.Logger) *Storages {
	return &Storages{
		DB:                   db,
		AccountRepository:    NewAccountRepository(db, log),
		TagSequence:          NewTagSequence(db, log),
		ReviewRepository:     NewReviewRepository(db, log),
		RestaurantRepository: NewRestaurantRepository(db, log),
		IconStore:            icons,
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
