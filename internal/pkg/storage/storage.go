package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

const (
	ProviderGCS   = "gcs"
	ProviderLocal = "local"

	DefaultMaxUploadBytes = 10 << 20
	DefaultMaxImageSide   = 2000
)

var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/piresc/freightdesk/internal/pkg/storage FileStore

// FileStore persists uploaded receipts and returns their public URL
type FileStore interface {
	Save(ctx context.Context, folder string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// Limits bounds what a store accepts
type Limits struct {
	MaxBytes     int64
	MaxImageSide int
}

func (l Limits) withDefaults() Limits {
	if l.MaxBytes <= 0 {
		l.MaxBytes = DefaultMaxUploadBytes
	}
	if l.MaxImageSide <= 0 {
		l.MaxImageSide = DefaultMaxImageSide
	}
	return l
}

// New builds the store selected by cfg.Provider
func New(ctx context.Context, cfg models.StorageConfig) (FileStore, error) {
	limits := Limits{MaxBytes: cfg.MaxUploadBytes, MaxImageSide: cfg.MaxImageSide}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderGCS:
		return NewGCSStore(ctx, cfg.Bucket, cfg.CredentialsJSON, limits)
	case ProviderLocal, "":
		return NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL, limits)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// object is an upload ready to be written
type object struct {
	key         string
	contentType string
	data        []byte
}

// prepare reads the upload, checks its size and sniffed type and shrinks
// oversized images. Keys are <folder>/<uuid><ext>.
func prepare(folder string, r io.Reader, limits Limits) (*object, error) {
	limits = limits.withDefaults()

	data, err := io.ReadAll(io.LimitReader(r, limits.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, models.NewValidationError("file is empty")
	}
	if int64(len(data)) > limits.MaxBytes {
		return nil, models.NewValidationError("file exceeds %d MB", limits.MaxBytes>>20)
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, models.NewValidationError("unsupported file type %s", contentType)
	}

	if contentType != "application/pdf" {
		if data, err = downscale(data, contentType, limits.MaxImageSide); err != nil {
			return nil, err
		}
	}

	return &object{
		key:         path.Join(folder, uuid.NewString()+ext),
		contentType: contentType,
		data:        data,
	}, nil
}

func downscale(data []byte, contentType string, maxSide int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, models.NewValidationError("invalid image")
	}
	if cfg.Width <= maxSide && cfg.Height <= maxSide {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, models.NewValidationError("invalid image")
	}
	img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)

	format := imaging.JPEG
	if contentType == "image/png" {
		format = imaging.PNG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
