package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"agency-cms.backend/internal/config"
)

// Uploader stores media files and returns their public URLs.
type Uploader interface {
	Upload(ctx context.Context, prefix, filename, contentType string, size int64, reader io.Reader) (string, error)
}

// BucketStorage stores uploads in an S3-compatible bucket.
type BucketStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewBucketStorage connects to the object store and ensures the bucket exists.
func NewBucketStorage(cfg config.StorageConfig) (*BucketStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: create bucket: %w", err)
		}
	}

	return &BucketStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the file under prefix and returns its public URL.
// The object key embeds a millisecond timestamp so repeated uploads
// of the same filename never collide.
func (s *BucketStorage) Upload(ctx context.Context, prefix, filename, contentType string, size int64, reader io.Reader) (string, error) {
	key := ObjectKey(prefix, filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// ObjectKey builds the bucket key for an upload.
func ObjectKey(prefix, filename string) string {
	return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), SanitizeFilename(filename))
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename strips path components and characters that are not
// safe in an object key. An empty result falls back to "file".
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		return "file"
	}
	return name
}
