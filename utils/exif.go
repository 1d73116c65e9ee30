package utils

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// ImageInfo holds what media import needs from an image file: dimensions,
// MIME type, and the EXIF capture time when present.
type ImageInfo struct {
	Width   int
	Height  int
	Mime    string
	TakenAt *time.Time
}

// GetImageInfo reads image dimensions and EXIF capture time from a file.
// Files without EXIF data still yield dimensions and MIME type.
func GetImageInfo(filePath string) (*ImageInfo, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info := &ImageInfo{
		Mime: mime.TypeByExtension(filepath.Ext(filePath)),
	}

	config, _, err := image.DecodeConfig(file)
	if err == nil {
		info.Width = config.Width
		info.Height = config.Height
	} else {
		log.Printf("exif: could not decode dimensions of %s: %v", filePath, err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		return nil, err
	}

	exifData, err := exif.Decode(file)
	if err != nil {
		// not necessarily an error, file might just lack EXIF data
		return info, nil
	}
	if taken, err := exifData.DateTime(); err == nil {
		info.TakenAt = &taken
	}
	return info, nil
}
