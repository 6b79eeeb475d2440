package services

import (
	"context"
	"fmt"
	"image"
	"time"

	"avatar-filter/internal/dataurl"
	"avatar-filter/internal/logger"
	"avatar-filter/internal/models"
	"avatar-filter/internal/render"
)

const exportMediaType = "image/jpeg"

// ExportResult describes a finished download.
type ExportResult struct {
	Name         string
	Path         string
	MediaType    string
	Bytes        []byte
	HeaderLength int
	Duration     time.Duration
}

// ExportService composites the active filter over a copy of the canvas and
// hands the JPEG to a Downloader.
type ExportService struct {
	downloader Downloader
	quality    int
	logger     logger.Logger
}

func NewExportService(downloader Downloader, quality int, log logger.Logger) *ExportService {
	if quality <= 0 || quality > 100 {
		quality = models.DefaultJPEGQuality
	}
	return &ExportService{
		downloader: downloader,
		quality:    quality,
		logger:     log,
	}
}

// Snapshot copies the canvas so the visible surface stays untouched. It must
// run wherever the canvas is painted; the copy can then travel.
func (es *ExportService) Snapshot(canvas render.Surface) (render.Surface, error) {
	w, h := canvas.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("export: %w", models.ErrNoAvatar)
	}
	clone, err := canvas.Clone()
	if err != nil {
		return nil, fmt.Errorf("export: clone canvas: %w", err)
	}
	return clone, nil
}

// Compose draws overlay across all of clone, encodes it and saves it as
// filter.jpg. It takes ownership of clone.
func (es *ExportService) Compose(ctx context.Context, clone render.Surface, overlay image.Image) (*ExportResult, error) {
	defer clone.Close()
	startTime := time.Now()

	if overlay != nil {
		w, h := clone.Size()
		clone.DrawImageScaled(overlay, float64(w), float64(h))
	}

	encoded, err := clone.EncodeJPEG(es.quality)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	url := dataurl.Encode(exportMediaType, encoded)

	headerLength, err := dataurl.HeaderLength(url)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	data, err := dataurl.Decode(url)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := es.downloader.Save(ctx, models.DownloadName, models.DownloadMediaType, data)
	if err != nil {
		return nil, fmt.Errorf("export: save %s: %w", models.DownloadName, err)
	}

	result := &ExportResult{
		Name:         models.DownloadName,
		Path:         path,
		MediaType:    models.DownloadMediaType,
		Bytes:        data,
		HeaderLength: headerLength,
		Duration:     time.Since(startTime),
	}

	es.logger.Info("ExportService", "filter exported", map[string]interface{}{
		"path":          path,
		"bytes":         len(data),
		"header_length": headerLength,
		"duration_ms":   result.Duration.Milliseconds(),
	})
	return result, nil
}

// Export runs Snapshot and Compose back to back.
func (es *ExportService) Export(ctx context.Context, canvas render.Surface, overlay image.Image) (*ExportResult, error) {
	clone, err := es.Snapshot(canvas)
	if err != nil {
		return nil, err
	}
	return es.Compose(ctx, clone, overlay)
}

