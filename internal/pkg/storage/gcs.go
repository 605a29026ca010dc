package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com/"

// GCSStore keeps files in a Google Cloud Storage bucket
type GCSStore struct {
	client *storage.Client
	bucket string
	limits Limits
}

// NewGCSStore uses explicit credentials JSON when given, otherwise ADC
func NewGCSStore(ctx context.Context, bucket, credentialsJSON string, limits Limits) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("GCS bucket is required")
	}

	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{client: client, bucket: bucket, limits: limits}, nil
}

// Save uploads r and returns its public URL
func (s *GCSStore) Save(ctx context.Context, folder string, r io.Reader) (string, error) {
	obj, err := prepare(folder, r, s.limits)
	if err != nil {
		return "", err
	}

	wc := s.client.Bucket(s.bucket).Object(obj.key).NewWriter(ctx)
	wc.ContentType = obj.contentType

	if _, err := wc.Write(obj.data); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to upload file to GCS: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return s.publicURL(obj.key), nil
}

// Delete removes the object behind url. Missing objects are not an error.
func (s *GCSStore) Delete(ctx context.Context, url string) error {
	key := s.objectKey(url)
	if key == "" {
		return nil
	}

	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete GCS object: %w", err)
	}
	return nil
}

// Close releases the client
func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) publicURL(key string) string {
	return gcsPublicHost + s.bucket + "/" + key
}

func (s *GCSStore) objectKey(url string) string {
	prefix := gcsPublicHost + s.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	key := strings.TrimPrefix(url, prefix)
	if strings.Contains(key, "..") {
		return ""
	}
	return key
}
