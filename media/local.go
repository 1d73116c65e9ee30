package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hollis-git/lineagebackend/models"
)

// LocalHandler serves media files from a base directory. Media paths are
// relative to the base dir; paths resolving outside it are rejected.
type LocalHandler struct {
	baseDir string
}

// NewLocalHandler creates a handler rooted at the given directory.
func NewLocalHandler(baseDir string) (*LocalHandler, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("invalid media base dir '%s': %w", baseDir, err)
	}
	log.Printf("media.local: serving media files from %s", absBase)
	return &LocalHandler{baseDir: absBase}, nil
}

// FullPath resolves a media object's path against the base dir, rejecting
// absolute paths and traversal outside it.
func (h *LocalHandler) FullPath(obj *models.Media) (string, error) {
	if obj.Path == "" {
		return "", fmt.Errorf("media %q has no path", obj.Handle)
	}
	path := obj.Path
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("media path '%s' must be relative", path)
	}
	full := filepath.Clean(filepath.Join(h.baseDir, path))
	if !strings.HasPrefix(full, h.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("media path '%s' resolves outside base dir", path)
	}
	return full, nil
}

func (h *LocalHandler) Exists(ctx context.Context, obj *models.Media) (bool, error) {
	full, err := h.FullPath(obj)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat media file '%s': %w", full, err)
	}
	return true, nil
}

func (h *LocalHandler) Open(ctx context.Context, obj *models.Media) (io.ReadCloser, error) {
	full, err := h.FullPath(obj)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open media file '%s': %w", full, err)
	}
	return f, nil
}

func (h *LocalHandler) Save(ctx context.Context, obj *models.Media, r io.Reader) error {
	full, err := h.FullPath(obj)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create media directory for '%s': %w", full, err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create media file '%s': %w", full, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write media file '%s': %w", full, err)
	}
	return nil
}

func (h *LocalHandler) FilterExisting(ctx context.Context, objects []*models.Media) ([]*models.Media, error) {
	var existing []*models.Media
	for _, obj := range objects {
		ok, err := h.Exists(ctx, obj)
		if err != nil {
			// a malformed path counts as missing, not as a failure of the
			// whole scan
			continue
		}
		if ok {
			existing = append(existing, obj)
		}
	}
	return existing, nil
}
