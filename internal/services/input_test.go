package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"testing"
	"time"

	"avatar-filter/internal/logger"
	"avatar-filter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestAcceptDeclaredTypes(t *testing.T) {
	is := NewInputService(models.NewImageRepository(), logger.Nop(), time.Second)

	for _, mediaType := range []string{"image/png", "image/bmp", "image/jpg", "image/jpeg", "image/gif", "IMAGE/PNG", "image/jpeg; charset=binary"} {
		assert.NoError(t, is.Accept(mediaType), mediaType)
	}
	for _, mediaType := range []string{"image/webp", "image/tiff", "application/pdf", "text/plain", "", "image/svg+xml"} {
		assert.ErrorIs(t, is.Accept(mediaType), ErrUnsupportedType, mediaType)
	}
}

func TestLoadRejectsUnsupportedWithoutReading(t *testing.T) {
	repo := models.NewImageRepository()
	is := NewInputService(repo, logger.Nop(), time.Second)

	src := &memSource{name: "scan.tiff", mediaType: "image/tiff", data: []byte("not read")}
	_, err := is.Load(context.Background(), src)

	assert.ErrorIs(t, err, ErrUnsupportedType)
	_, err = repo.Avatar()
	assert.ErrorIs(t, err, models.ErrNoAvatar)
}

func TestLoadDecodesAcceptedFormats(t *testing.T) {
	img := solid(40, 30, color.NRGBA{R: 10, G: 200, B: 30, A: 255})

	var bmpBuf, gifBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, img))
	require.NoError(t, gif.Encode(&gifBuf, img, nil))

	tests := []struct {
		name      string
		mediaType string
		data      []byte
		format    string
	}{
		{"png", "image/png", encodePNG(t, img), "png"},
		{"bmp", "image/bmp", bmpBuf.Bytes(), "bmp"},
		{"gif", "image/gif", gifBuf.Bytes(), "gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := models.NewImageRepository()
			is := NewInputService(repo, logger.Nop(), time.Second)

			avatar, err := is.Load(context.Background(), &memSource{name: "me." + tt.name, mediaType: tt.mediaType, data: tt.data})
			require.NoError(t, err)
			assert.Equal(t, 40, avatar.Width)
			assert.Equal(t, 30, avatar.Height)
			assert.Equal(t, tt.format, avatar.Metadata.Format)
			assert.Equal(t, int64(len(tt.data)), avatar.Metadata.FileSize)

			stored, err := repo.Avatar()
			require.NoError(t, err)
			assert.Same(t, avatar, stored)
		})
	}
}

func TestLoadCorruptImageFails(t *testing.T) {
	repo := models.NewImageRepository()
	is := NewInputService(repo, logger.Nop(), time.Second)

	_, err := is.Load(context.Background(), &memSource{name: "broken.png", mediaType: "image/png", data: []byte("\x89PNG garbage")})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
	_, err = repo.Avatar()
	assert.ErrorIs(t, err, models.ErrNoAvatar)
}

func TestNewerDropWins(t *testing.T) {
	repo := models.NewImageRepository()
	is := NewInputService(repo, logger.Nop(), time.Second)

	slow := &memSource{
		name:      "slow.png",
		mediaType: "image/png",
		data:      encodePNG(t, solid(20, 10, color.NRGBA{R: 255, A: 255})),
		gate:      make(chan struct{}),
		opened:    make(chan struct{}),
	}
	fast := &memSource{
		name:      "fast.png",
		mediaType: "image/png",
		data:      encodePNG(t, solid(12, 12, color.NRGBA{B: 255, A: 255})),
	}

	slowErr := make(chan error, 1)
	go func() {
		_, err := is.Load(context.Background(), slow)
		slowErr <- err
	}()
	<-slow.opened

	avatar, err := is.Load(context.Background(), fast)
	require.NoError(t, err)
	assert.Equal(t, "fast.png", avatar.Source)

	close(slow.gate)
	assert.ErrorIs(t, <-slowErr, ErrSuperseded)

	stored, err := repo.Avatar()
	require.NoError(t, err)
	assert.Equal(t, "fast.png", stored.Source)
}

func TestDecodeURLRejectsNonDataURL(t *testing.T) {
	is := NewInputService(models.NewImageRepository(), logger.Nop(), time.Second)
	_, err := is.DecodeURL(context.Background(), "file:///tmp/avatar.png")
	assert.Error(t, err)
}

func TestDecodedImageBounds(t *testing.T) {
	is := NewInputService(models.NewImageRepository(), logger.Nop(), time.Second)
	avatar, err := is.Load(context.Background(), &memSource{name: "a.png", mediaType: "image/png", data: encodePNG(t, solid(7, 9, color.White))})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 7, 9), avatar.Image.Bounds())
}

func TestLoadStalledReadTimesOut(t *testing.T) {
	repo := models.NewImageRepository()
	is := NewInputService(repo, logger.Nop(), 50*time.Millisecond)

	stalled := &memSource{
		name:      "stalled.png",
		mediaType: "image/png",
		data:      encodePNG(t, solid(4, 4, color.NRGBA{A: 255})),
		gate:      make(chan struct{}),
		opened:    make(chan struct{}),
	}
	defer close(stalled.gate)

	done := make(chan error, 1)
	go func() {
		_, err := is.Load(context.Background(), stalled)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not give up after the decode timeout")
	}

	_, err := repo.Avatar()
	assert.ErrorIs(t, err, models.ErrNoAvatar)
}
