// Package media reads and writes the tree's media files. Files live either
// under a local base directory, addressed by the media object's relative
// path, or in an S3-compatible bucket, addressed by the object's checksum.
package media

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/hollis-git/lineagebackend/config"
	"github.com/hollis-git/lineagebackend/models"
)

// Handler is the storage-neutral access surface for media files.
type Handler interface {
	// Exists reports whether the file backing the media object is present.
	Exists(ctx context.Context, obj *models.Media) (bool, error)
	// Open returns a reader for the file backing the media object.
	Open(ctx context.Context, obj *models.Media) (io.ReadCloser, error)
	// Save stores the file backing the media object.
	Save(ctx context.Context, obj *models.Media, r io.Reader) error
	// FilterExisting returns the subset of objects whose files are present.
	FilterExisting(ctx context.Context, objects []*models.Media) ([]*models.Media, error)
}

// NewHandler builds the media handler matching the configured base dir: an
// "s3://bucket" value selects object storage, anything else the local
// filesystem.
func NewHandler(ctx context.Context, cfg config.Config) (Handler, error) {
	if cfg.MediaOnS3() {
		return NewS3Handler(ctx, cfg.S3Bucket(), cfg.S3Region, cfg.S3Endpoint)
	}
	return NewLocalHandler(cfg.MediaBaseDir)
}

// FilterMissing returns the subset of objects whose files are missing.
func FilterMissing(ctx context.Context, h Handler, objects []*models.Media) ([]*models.Media, error) {
	existing, err := h.FilterExisting(ctx, objects)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(existing))
	for _, obj := range existing {
		present[obj.Handle] = true
	}
	var missing []*models.Media
	for _, obj := range objects {
		if !present[obj.Handle] {
			missing = append(missing, obj)
		}
	}
	return missing, nil
}

var supportedImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// IsRasterImage checks if the filename has a common raster image extension
func IsRasterImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return supportedImageExtensions[ext]
}
