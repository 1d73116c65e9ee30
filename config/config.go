package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultThumbnailsSubDir = "thumbnails"
)

const (
	defaultThumbnailQueueSize  = 200
	defaultNumThumbnailWorkers = 4
	defaultThumbnailMaxSize    = 300
)

type Config struct {
	// database path
	DatabasePath string

	// read-only mode rejects every mutation
	ReadOnly bool

	// where original media files live; an "s3://bucket" value selects
	// object storage keyed by file checksum
	MediaBaseDir string

	// S3 settings, used when MediaBaseDir points at a bucket
	S3Endpoint string
	S3Region   string

	// generated-asset storage
	ThumbnailsPath string

	// thumbnail generation settings
	ThumbnailMaxSize int

	// worker settings
	ThumbnailQueueSize  int
	NumThumbnailWorkers int

	// default BCP 47 language for profile rendering
	DefaultLocale string

	// face detection model paths (DNN)
	FaceDNNNetConfigPath string
	FaceDNNNetModelPath  string
}

// MediaOnS3 reports whether media files live on object storage.
func (c Config) MediaOnS3() bool {
	return strings.HasPrefix(c.MediaBaseDir, "s3://")
}

// S3Bucket returns the bucket name from an "s3://bucket" media base dir.
func (c Config) S3Bucket() string {
	return strings.TrimPrefix(c.MediaBaseDir, "s3://")
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", "tree.db")

	mediaBase := getEnvOrDefault("MEDIA_BASE_DIR", filepath.Join(".", "media"))
	if !strings.HasPrefix(mediaBase, "s3://") {
		absMediaBase, err := filepath.Abs(mediaBase)
		if err != nil {
			return Config{}, fmt.Errorf("failed to get absolute path for media base dir '%s': %w", mediaBase, err)
		}
		mediaBase = absMediaBase
	}

	thumbsDir := getEnvOrDefault("THUMBNAILS_PATH", filepath.Join(".", DefaultThumbnailsSubDir))
	absThumbsDir, err := filepath.Abs(thumbsDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for thumbnails dir '%s': %w", thumbsDir, err)
	}

	cfg := Config{
		DatabasePath:         dbPath,
		ReadOnly:             strings.EqualFold(os.Getenv("TREE_READ_ONLY"), "true"),
		MediaBaseDir:         mediaBase,
		S3Endpoint:           os.Getenv("AWS_ENDPOINT_URL"),
		S3Region:             getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
		ThumbnailsPath:       absThumbsDir,
		ThumbnailMaxSize:     getEnvIntOrDefault("THUMBNAIL_MAX_SIZE", defaultThumbnailMaxSize),
		ThumbnailQueueSize:   getEnvIntOrDefault("THUMBNAIL_QUEUE_SIZE", defaultThumbnailQueueSize),
		NumThumbnailWorkers:  getEnvIntOrDefault("NUM_THUMBNAIL_WORKERS", defaultNumThumbnailWorkers),
		DefaultLocale:        getEnvOrDefault("DEFAULT_LOCALE", "en"),
		FaceDNNNetConfigPath: os.Getenv("FACE_DNN_CONFIG_PATH"),
		FaceDNNNetModelPath:  os.Getenv("FACE_DNN_MODEL_PATH"),
	}

	return cfg, nil
}
