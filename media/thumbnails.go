package media

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ThumbnailPath returns where the thumbnail for a media object lives.
// Thumbnails are keyed by checksum so regenerating after a rename is free.
func ThumbnailPath(thumbnailDir, checksum string) string {
	return filepath.Join(thumbnailDir, checksum+".jpg")
}

// GenerateThumbnail reads an image and writes a JPEG thumbnail fitting
// within maxSize x maxSize, named after the media object's checksum.
func GenerateThumbnail(r io.Reader, thumbnailDir, checksum string, maxSize int) (string, error) {
	if err := os.MkdirAll(thumbnailDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory %s: %w", thumbnailDir, err)
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image for %s: %w", checksum, err)
	}

	thumb := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	savePath := ThumbnailPath(thumbnailDir, checksum)
	err = imaging.Save(thumb, savePath, imaging.JPEGQuality(80))
	if err != nil {
		return "", fmt.Errorf("failed to save thumbnail to %s: %w", savePath, err)
	}

	log.Printf("media.thumbnails: generated thumbnail for %s at %s", checksum, savePath)
	return savePath, nil
}
