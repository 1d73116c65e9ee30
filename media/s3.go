package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hollis-git/lineagebackend/models"
)

// S3Handler serves media files from a single S3-compatible bucket. Objects
// are keyed by the media object's checksum, so renaming a media file never
// touches storage.
type S3Handler struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3Handler creates a handler for the given bucket. An explicit
// endpoint enables S3-compatible services like MinIO.
func NewS3Handler(ctx context.Context, bucket, region, endpoint string) (*S3Handler, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	log.Printf("media.s3: serving media files from bucket %s", bucket)
	return &S3Handler{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

func (h *S3Handler) key(obj *models.Media) (string, error) {
	if obj.Checksum == "" {
		return "", fmt.Errorf("media %q has no checksum", obj.Handle)
	}
	return obj.Checksum, nil
}

func (h *S3Handler) Exists(ctx context.Context, obj *models.Media) (bool, error) {
	key, err := h.key(obj)
	if err != nil {
		return false, err
	}
	_, err = h.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &h.bucket, Key: &key})
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (h *S3Handler) Open(ctx context.Context, obj *models.Media) (io.ReadCloser, error) {
	key, err := h.key(obj)
	if err != nil {
		return nil, err
	}
	out, err := h.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &h.bucket, Key: &key})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 object %s: %w", key, err)
	}
	return out.Body, nil
}

func (h *S3Handler) Save(ctx context.Context, obj *models.Media, r io.Reader) error {
	key, err := h.key(obj)
	if err != nil {
		return err
	}
	input := &s3.PutObjectInput{Bucket: &h.bucket, Key: &key, Body: r}
	if obj.Mime != "" {
		input.ContentType = &obj.Mime
	}
	if _, err := h.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to put s3 object %s: %w", key, err)
	}
	return nil
}

// PresignURL returns a time-limited GET URL for the media file.
func (h *S3Handler) PresignURL(ctx context.Context, obj *models.Media, expires time.Duration) (string, error) {
	key, err := h.key(obj)
	if err != nil {
		return "", err
	}
	req, err := h.presign.PresignGetObject(ctx,
		&s3.GetObjectInput{Bucket: &h.bucket, Key: &key},
		s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign s3 object %s: %w", key, err)
	}
	return req.URL, nil
}

// FilterExisting lists the bucket once and checks checksums against the
// listing, avoiding a HeadObject round trip per file.
func (h *S3Handler) FilterExisting(ctx context.Context, objects []*models.Media) ([]*models.Media, error) {
	keys := make(map[string]bool)
	var token *string
	for {
		out, err := h.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            &h.bucket,
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", h.bucket, err)
		}
		for _, item := range out.Contents {
			if item.Key != nil {
				keys[*item.Key] = true
			}
		}
		if out.IsTruncated == nil || !*out.IsTruncated {
			break
		}
		token = out.NextContinuationToken
	}
	var existing []*models.Media
	for _, obj := range objects {
		if keys[obj.Checksum] {
			existing = append(existing, obj)
		}
	}
	return existing, nil
}
