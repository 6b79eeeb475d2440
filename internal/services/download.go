package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// Downloader delivers exported bytes to the user.
type Downloader interface {
	// Save stores data under name, or a free variant of it, and returns
	// where it went.
	Save(ctx context.Context, name, mediaType string, data []byte) (string, error)
}

// DirectoryDownloader writes into a local directory through Fyne storage.
// Existing files are never overwritten: "filter.jpg" becomes
// "filter (1).jpg", "filter (2).jpg", and so on.
type DirectoryDownloader struct {
	dir         fyne.URI
	maxAttempts int
}

func NewDirectoryDownloader(dir string) *DirectoryDownloader {
	return &DirectoryDownloader{
		dir:         storage.NewFileURI(dir),
		maxAttempts: 1000,
	}
}

func (dd *DirectoryDownloader) Save(ctx context.Context, name, mediaType string, data []byte) (string, error) {
	target, err := dd.freeName(ctx, name)
	if err != nil {
		return "", err
	}

	writer, err := storage.Writer(target)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", target.Path(), err)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("write %s (%s): %w", target.Path(), mediaType, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", target.Path(), err)
	}
	return target.Path(), nil
}

func (dd *DirectoryDownloader) freeName(ctx context.Context, name string) (fyne.URI, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < dd.maxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		uri, err := storage.Child(dd.dir, candidate)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", candidate, err)
		}
		exists, err := storage.Exists(uri)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", uri.Path(), err)
		}
		if !exists {
			return uri, nil
		}
	}
	return nil, fmt.Errorf("no free name for %s in %s", name, dd.dir.Path())
}
