package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/logger"
)

// ErrInvalidBlobKey is returned when a blob key would escape the store root.
var ErrInvalidBlobKey = errors.New("invalid blob key")

// fileBlobStore writes blobs below a local directory that the HTTP server
// exposes under publicURL.
type fileBlobStore struct {
	root      string
	publicURL string
	logger    *logger.Logger
}

// NewFileBlobStore constructs a [BlobStore] rooted at cfg.IconDir. The
// directory is created if it does not exist.
func NewFileBlobStore(cfg config.Files, logger *logger.Logger) (BlobStore, error) {
	if err := os.MkdirAll(cfg.IconDir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewFileBlobStore").Str("dir", cfg.IconDir).Msg("error creating icon directory")
		return nil, fmt.Errorf("error creating icon directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.IconDir).Msg("creating file blob store")
	return &fileBlobStore{
		root:      cfg.IconDir,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}, nil
}

// Put writes body to root/key through a temporary file, so a failed upload
// never leaves a truncated blob behind.
func (s *fileBlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	log := logger.FromContext(ctx)

	if !filepath.IsLocal(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobKey, key)
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Err(err).Str("func", "*fileBlobStore.Put").Msg("error creating blob directory")
		return "", fmt.Errorf("error creating blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*fileBlobStore.Put").Msg("error creating temporary file")
		return "", fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		log.Err(err).Str("func", "*fileBlobStore.Put").Str("key", key).Msg("error writing blob")
		return "", fmt.Errorf("error writing blob: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).Str("func", "*fileBlobStore.Put").Str("key", key).Msg("error moving blob into place")
		return "", fmt.Errorf("error moving blob into place: %w", err)
	}

	log.Debug().
		Str("func", "*fileBlobStore.Put").
		Str("key", key).
		Str("content_type", contentType).
		Int64("size", written).
		Msg("blob stored")

	return s.publicURL + "/" + key, nil
}
