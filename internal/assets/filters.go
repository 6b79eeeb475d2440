// Package assets supplies the static images the editor starts with: the
// ordered filter set and the default avatar.
package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"avatar-filter/internal/models"
	"avatar-filter/internal/opencv/conversion"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

const (
	// OverlaySize is the side of generated overlays. Export rescales them to
	// the canvas, so this only bounds the quality of the stretch.
	OverlaySize = 512
	// ThumbnailSize is the side of the box strip thumbnails fit into.
	ThumbnailSize = 96
)

// Thumbnailer shrinks an overlay for display in the strip.
type Thumbnailer func(img image.Image, box int) (image.Image, error)

// LoadFilters returns the ordered filter set. With dir set, every *.png in it
// is a filter in lexical order; otherwise the built-in set is generated.
func LoadFilters(dir string, thumb Thumbnailer) ([]models.FilterEntry, error) {
	if thumb == nil {
		thumb = conversion.Thumbnail
	}

	var (
		entries []models.FilterEntry
		err     error
	)
	if dir != "" {
		entries, err = loadFilterDir(dir)
	} else {
		entries = BuiltinFilters(OverlaySize)
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no filters in %q: %w", dir, models.ErrEmptyCarousel)
	}

	for i := range entries {
		t, err := thumb(entries[i].Image, ThumbnailSize)
		if err != nil {
			return nil, fmt.Errorf("thumbnail for filter %q: %w", entries[i].Name, err)
		}
		entries[i].Thumbnail = t
	}
	return entries, nil
}

func loadFilterDir(dir string) ([]models.FilterEntry, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, fmt.Errorf("list filters: %w", err)
	}
	sort.Strings(matches)

	entries := make([]models.FilterEntry, 0, len(matches))
	for _, path := range matches {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open filter %s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		entries = append(entries, models.FilterEntry{Name: name, Image: img})
	}
	return entries, nil
}

// BuiltinFilters draws the default overlays at size x size.
func BuiltinFilters(size int) []models.FilterEntry {
	s := float64(size)
	return []models.FilterEntry{
		{Name: "Original", Image: paint(size, nil)},
		{Name: "Warm", Image: paint(size, gg.NewLinearGradientBrush(0, 0, 0, s).
			AddColorStop(0, gg.RGBA2(1, 0.6, 0.2, 0.35)).
			AddColorStop(1, gg.RGBA2(1, 0.3, 0.1, 0.20)))},
		{Name: "Cool", Image: paint(size, gg.NewLinearGradientBrush(0, 0, s, s).
			AddColorStop(0, gg.RGBA2(0.2, 0.5, 1, 0.30)).
			AddColorStop(1, gg.RGBA2(0.1, 0.8, 0.9, 0.20)))},
		{Name: "Vignette", Image: paint(size, gg.NewRadialGradientBrush(s/2, s/2, s*0.3, s*0.72).
			AddColorStop(0, gg.RGBA2(0, 0, 0, 0)).
			AddColorStop(1, gg.RGBA2(0, 0, 0, 0.75)))},
		{Name: "Dusk", Image: paint(size, gg.NewLinearGradientBrush(0, 0, 0, s).
			AddColorStop(0, gg.RGBA2(0.45, 0.15, 0.6, 0.40)).
			AddColorStop(1, gg.RGBA2(1, 0.55, 0.2, 0.30)))},
	}
}

// paint fills a transparent square with brush. A nil brush leaves it clear.
func paint(size int, brush gg.Brush) image.Image {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	dc.Clear()
	if brush != nil {
		dc.SetFillBrush(brush)
		dc.DrawRectangle(0, 0, float64(size), float64(size))
		_ = dc.Fill()
	}
	return dc.Image()
}
