package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 50 {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepare(t *testing.T) {
	t.Run("small png is kept as is", func(t *testing.T) {
		data := pngBytes(t, 300, 200)
		obj, err := prepare("comprovantes/carga", bytes.NewReader(data), Limits{})
		require.NoError(t, err)

		assert.Equal(t, "image/png", obj.contentType)
		assert.True(t, strings.HasPrefix(obj.key, "comprovantes/carga/"))
		assert.True(t, strings.HasSuffix(obj.key, ".png"))
		assert.Equal(t, data, obj.data)
	})

	t.Run("large image is downscaled to the max side", func(t *testing.T) {
		obj, err := prepare("x", bytes.NewReader(pngBytes(t, 3000, 1500)), Limits{MaxImageSide: 2000})
		require.NoError(t, err)

		cfg, _, err := image.DecodeConfig(bytes.NewReader(obj.data))
		require.NoError(t, err)
		assert.Equal(t, 2000, cfg.Width)
		assert.Equal(t, 1000, cfg.Height)
	})

	t.Run("pdf is accepted", func(t *testing.T) {
		obj, err := prepare("pagamentos", strings.NewReader("%PDF-1.7\n1 0 obj\n"), Limits{})
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", obj.contentType)
		assert.True(t, strings.HasSuffix(obj.key, ".pdf"))
	})

	t.Run("unsupported type is a validation error", func(t *testing.T) {
		_, err := prepare("x", strings.NewReader("just some text"), Limits{})
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Contains(t, err.Error(), "unsupported file type")
	})

	t.Run("oversized upload is rejected", func(t *testing.T) {
		_, err := prepare("x", bytes.NewReader(pngBytes(t, 400, 400)), Limits{MaxBytes: 100})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("empty upload is rejected", func(t *testing.T) {
		_, err := prepare("x", bytes.NewReader(nil), Limits{})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/uploads/", Limits{})
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "comprovantes/descarga", bytes.NewReader(pngBytes(t, 10, 10)))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/comprovantes/descarga/"), url)

	key := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(context.Background(), url), "deleting twice is fine")
	assert.NoError(t, store.Delete(context.Background(), "http://localhost:8080/uploads/../etc/passwd"))
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), models.StorageConfig{Provider: "s3"})
	assert.Error(t, err)
}

func TestGCSStore_URLs(t *testing.T) {
	s := &GCSStore{bucket: "freightdesk-receipts"}

	url := s.publicURL("comprovantes/carga/a.jpg")
	assert.Equal(t, "https://storage.googleapis.com/freightdesk-receipts/comprovantes/carga/a.jpg", url)
	assert.Equal(t, "comprovantes/carga/a.jpg", s.objectKey(url))
	assert.Empty(t, s.objectKey("https://storage.googleapis.com/other-bucket/a.jpg"))
	assert.Empty(t, s.objectKey("https://storage.googleapis.com/freightdesk-receipts/../x"))
}
