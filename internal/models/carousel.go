package models

import (
	"errors"
	"fmt"
	"image"
)

// StepVmin is the strip translation per filter, in viewport-min units.
const StepVmin = 62

// ErrEmptyCarousel is returned when a carousel is built without filters.
var ErrEmptyCarousel = errors.New("carousel needs at least one filter")

// FilterEntry is one selectable overlay.
type FilterEntry struct {
	Name      string
	Image     image.Image
	Thumbnail image.Image
}

// FilterCarousel is a saturating index over an ordered filter set.
// Exactly one entry is active; 0 <= index < len(entries) always holds.
type FilterCarousel struct {
	entries []FilterEntry
	index   int
}

// NewFilterCarousel starts at the first entry.
func NewFilterCarousel(entries []FilterEntry) (*FilterCarousel, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCarousel
	}
	owned := make([]FilterEntry, len(entries))
	copy(owned, entries)
	return &FilterCarousel{entries: owned}, nil
}

// Next moves one entry forward. At the last entry it does nothing and
// returns false.
func (fc *FilterCarousel) Next() bool {
	if fc.index >= len(fc.entries)-1 {
		return false
	}
	fc.index++
	return true
}

// Previous moves one entry back. At the first entry it does nothing and
// returns false.
func (fc *FilterCarousel) Previous() bool {
	if fc.index <= 0 {
		return false
	}
	fc.index--
	return true
}

func (fc *FilterCarousel) Index() int {
	return fc.index
}

func (fc *FilterCarousel) Len() int {
	return len(fc.entries)
}

// Active returns the entry holding the marker.
func (fc *FilterCarousel) Active() FilterEntry {
	return fc.entries[fc.index]
}

// IsActive reports whether entry i holds the marker.
func (fc *FilterCarousel) IsActive(i int) bool {
	return i == fc.index
}

// Entries returns a copy of the ordered filter set.
func (fc *FilterCarousel) Entries() []FilterEntry {
	out := make([]FilterEntry, len(fc.entries))
	copy(out, fc.entries)
	return out
}

// Offset is the strip translation in vmin.
func (fc *FilterCarousel) Offset() float32 {
	return -float32(fc.index * StepVmin)
}

// OffsetPixels converts Offset to pixels for a viewport whose shorter side is
// viewportMin pixels long.
func (fc *FilterCarousel) OffsetPixels(viewportMin float32) float32 {
	return fc.Offset() * viewportMin / 100
}

// Transform renders the translation the way a CSS transform would read.
func (fc *FilterCarousel) Transform() string {
	return fmt.Sprintf("translateX(-%dvmin)", fc.index*StepVmin)
}
