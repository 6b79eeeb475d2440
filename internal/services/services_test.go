package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"avatar-filter/internal/logger"
	"avatar-filter/internal/models"
	"avatar-filter/internal/render"

	"github.com/stretchr/testify/require"
)

// memSource is an in-memory Source. When gate is set, Open blocks until it
// is closed and signals opened first.
type memSource struct {
	name      string
	mediaType string
	data      []byte

	gate   chan struct{}
	opened chan struct{}
	once   sync.Once
}

func (m *memSource) Name() string      { return m.name }
func (m *memSource) MediaType() string { return m.mediaType }

func (m *memSource) Open() (io.ReadCloser, error) {
	if m.gate != nil {
		m.once.Do(func() { close(m.opened) })
		<-m.gate
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func solid(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// memDownloader keeps saved files in memory.
type memDownloader struct {
	mu    sync.Mutex
	saved map[string][]byte
	types map[string]string
}

func newMemDownloader() *memDownloader {
	return &memDownloader{saved: map[string][]byte{}, types: map[string]string{}}
}

func (m *memDownloader) Save(_ context.Context, name, mediaType string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[name] = append([]byte(nil), data...)
	m.types[name] = mediaType
	return "/mem/" + name, nil
}

func newRenderer() (*RendererService, *models.PanState, *render.ImageSurface) {
	surface := render.NewImageSurface(1, 1)
	pan := models.NewPanState()
	return NewRendererService(surface, pan, logger.Nop()), pan, surface
}
