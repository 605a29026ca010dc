package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps files on disk. URLs are <baseURL>/<key> and echo serves
// the directory under /uploads.
type LocalStore struct {
	dir     string
	baseURL string
	limits  Limits
}

// NewLocalStore creates dir when missing
func NewLocalStore(dir, baseURL string, limits Limits) (*LocalStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), limits: limits}, nil
}

// Dir is the root directory of the store
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes r under dir and returns its URL
func (s *LocalStore) Save(_ context.Context, folder string, r io.Reader) (string, error) {
	obj, err := prepare(folder, r, s.limits)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(obj.key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}
	if err := os.WriteFile(target, obj.data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + obj.key, nil
}

// Delete removes the file behind url. Missing files are not an error.
func (s *LocalStore) Delete(_ context.Context, url string) error {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
