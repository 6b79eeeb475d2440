package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryDownloaderNeverOverwrites(t *testing.T) {
	test.NewTempApp(t)
	dir := t.TempDir()
	dd := NewDirectoryDownloader(dir)

	first, err := dd.Save(context.Background(), "filter.jpg", "application/octet-stream", []byte("one"))
	require.NoError(t, err)
	second, err := dd.Save(context.Background(), "filter.jpg", "application/octet-stream", []byte("two"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "filter.jpg"), first)
	assert.Equal(t, filepath.Join(dir, "filter (1).jpg"), second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestDirectoryDownloaderHonoursCancellation(t *testing.T) {
	test.NewTempApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirectoryDownloader(t.TempDir()).Save(ctx, "filter.jpg", "application/octet-stream", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
