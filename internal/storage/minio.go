package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig carries the connection settings for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStore is the minio-backed ObjectStore implementation.
// Construct it once in main and pass it down — there is no package-level client.
type MinioStore struct {
	client *minio.Client
	bucket string
	base   string
}

// NewMinioStore connects to the object store and verifies the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage.NewMinioStore: %w", err)
	}

	ok, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage.NewMinioStore: check bucket: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("storage.NewMinioStore: bucket %q does not exist", cfg.Bucket)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &MinioStore{
		client: client,
		bucket: cfg.Bucket,
		base:   fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
	}, nil
}

// Upload writes the object, overwriting any existing object at the same path,
// and returns its public URL.
func (s *MinioStore) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, path, r, size, opts); err != nil {
		return "", fmt.Errorf("storage.MinioStore.Upload: %w", err)
	}
	return s.PublicURL(path), nil
}

// Remove deletes the object at path. minio treats removal of a missing object
// as a no-op, which is exactly the tolerance cleanup callers need.
func (s *MinioStore) Remove(ctx context.Context, path string) error {
	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("storage.MinioStore.Remove: %w", err)
	}
	return nil
}

// PublicURL returns the public URL for path. Always one shape: scheme,
// endpoint, bucket, path.
func (s *MinioStore) PublicURL(path string) string {
	return s.base + "/" + path
}
