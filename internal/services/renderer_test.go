package services

import (
	"image/color"
	"testing"

	"avatar-filter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowAvatarSizesSquareCanvas(t *testing.T) {
	rs, pan, surface := newRenderer()
	pan.LoadAvatar(10, 10)
	pan.BeginDrag(models.Point{})
	pan.EndDrag(models.Point{X: -5})

	require.NoError(t, rs.ShowAvatar(solid(400, 300, color.NRGBA{R: 255, A: 255})))

	w, h := surface.Size()
	assert.Equal(t, 300, w)
	assert.Equal(t, 300, h)
	assert.Equal(t, models.Point{}, pan.Offset())
	assert.True(t, rs.HasAvatar())
}

func TestRepaintFollowsPanOffset(t *testing.T) {
	rs, pan, _ := newRenderer()

	avatar := solid(400, 300, color.NRGBA{R: 255, A: 255})
	for y := 0; y < 300; y++ {
		for x := 300; x < 400; x++ {
			avatar.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	require.NoError(t, rs.ShowAvatar(avatar))

	_, _, b, _ := rs.Snapshot().At(250, 10).RGBA()
	assert.Zero(t, b>>8, "blue strip starts off-canvas")

	pan.BeginDrag(models.Point{X: 200, Y: 100})
	pan.DragTo(models.Point{X: 0, Y: 100})
	rs.Repaint()

	_, _, b, _ = rs.Snapshot().At(250, 10).RGBA()
	assert.Equal(t, uint32(255), b>>8, "dragging left by 200 clamps to -100 and shows the blue strip")
}

func TestRepaintWithoutAvatarIsNoop(t *testing.T) {
	rs, _, surface := newRenderer()
	rs.Repaint()
	w, h := surface.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
