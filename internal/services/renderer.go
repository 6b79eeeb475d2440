package services

import (
	"fmt"
	"image"

	"avatar-filter/internal/logger"
	"avatar-filter/internal/models"
	"avatar-filter/internal/render"
)

// RendererService paints the avatar into the square canvas surface at the
// current pan offset. It is driven from the UI goroutine only.
type RendererService struct {
	surface render.Surface
	pan     *models.PanState
	logger  logger.Logger
	avatar  image.Image
}

func NewRendererService(surface render.Surface, pan *models.PanState, log logger.Logger) *RendererService {
	return &RendererService{
		surface: surface,
		pan:     pan,
		logger:  log,
	}
}

// ShowAvatar resets the pan, resizes the canvas to the avatar's shorter side
// and paints its top-left square.
func (rs *RendererService) ShowAvatar(img image.Image) error {
	bounds := img.Bounds()
	rs.pan.LoadAvatar(bounds.Dx(), bounds.Dy())

	side := rs.pan.CanvasSide()
	if err := rs.surface.Resize(side, side); err != nil {
		return fmt.Errorf("show avatar: %w", err)
	}
	rs.avatar = img
	rs.surface.DrawImageAt(img, 0, 0)

	rs.logger.Debug("RendererService", "canvas resized", map[string]interface{}{
		"side":   side,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	})
	return nil
}

// Repaint draws the avatar at the pan state's current offset.
func (rs *RendererService) Repaint() {
	if rs.avatar == nil {
		return
	}
	offset := rs.pan.Offset()
	rs.surface.Clear()
	rs.surface.DrawImageAt(rs.avatar, offset.X, offset.Y)
}

func (rs *RendererService) HasAvatar() bool {
	return rs.avatar != nil
}

// Surface is the canvas being painted.
func (rs *RendererService) Surface() render.Surface {
	return rs.surface
}

// Snapshot copies the canvas pixels for display.
func (rs *RendererService) Snapshot() image.Image {
	return rs.surface.Snapshot()
}

func (rs *RendererService) Shutdown() {
	if err := rs.surface.Close(); err != nil {
		rs.logger.Error("RendererService", err, nil)
	}
}
