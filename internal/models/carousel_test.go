package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarousel(t *testing.T, n int) *FilterCarousel {
	t.Helper()
	entries := make([]FilterEntry, n)
	for i := range entries {
		entries[i] = FilterEntry{Name: string(rune('a' + i))}
	}
	fc, err := NewFilterCarousel(entries)
	require.NoError(t, err)
	return fc
}

func TestCarouselRejectsEmptySet(t *testing.T) {
	_, err := NewFilterCarousel(nil)
	assert.ErrorIs(t, err, ErrEmptyCarousel)
}

func TestCarouselSaturatesAtBoundaries(t *testing.T) {
	fc := newTestCarousel(t, 3)

	assert.False(t, fc.Previous())
	assert.Equal(t, 0, fc.Index())

	assert.True(t, fc.Next())
	assert.True(t, fc.Next())
	assert.Equal(t, 2, fc.Index())

	assert.False(t, fc.Next())
	assert.Equal(t, 2, fc.Index())

	assert.True(t, fc.Previous())
	assert.Equal(t, 1, fc.Index())
}

func TestCarouselSingleActiveMarker(t *testing.T) {
	fc := newTestCarousel(t, 5)
	fc.Next()
	fc.Next()

	active := 0
	for i := 0; i < fc.Len(); i++ {
		if fc.IsActive(i) {
			active++
			assert.Equal(t, 2, i)
		}
	}
	assert.Equal(t, 1, active)
	assert.Equal(t, "c", fc.Active().Name)
}

func TestCarouselTransform(t *testing.T) {
	fc := newTestCarousel(t, 5)
	assert.Equal(t, "translateX(-0vmin)", fc.Transform())

	fc.Next()
	fc.Next()

	assert.Equal(t, "translateX(-124vmin)", fc.Transform())
	assert.Equal(t, float32(-124), fc.Offset())
	assert.InDelta(t, -248.0, fc.OffsetPixels(200), 0.001)
}
