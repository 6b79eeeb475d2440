package components

import (
	"image"
	"image/color"

	"avatar-filter/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CanvasMinSide is the smallest on-screen side of the avatar square.
const CanvasMinSide = 360

// AvatarCanvas shows the square avatar canvas with the active filter
// stretched over it, and reports pointer drags in canvas pixels.
type AvatarCanvas struct {
	widget.BaseWidget

	avatar  *canvas.Image
	overlay *canvas.Image
	side    int

	dragging bool
	last     fyne.Position

	onPanStart func(models.Point)
	onPanMove  func(models.Point)
	onPanEnd   func(models.Point)
}

var (
	_ fyne.Draggable    = (*AvatarCanvas)(nil)
	_ desktop.Mouseable = (*AvatarCanvas)(nil)
	_ desktop.Hoverable = (*AvatarCanvas)(nil)
)

func NewAvatarCanvas() *AvatarCanvas {
	ac := &AvatarCanvas{
		avatar:  canvas.NewImageFromImage(nil),
		overlay: canvas.NewImageFromImage(nil),
	}
	ac.avatar.FillMode = canvas.ImageFillStretch
	ac.avatar.ScaleMode = canvas.ImageScaleSmooth
	ac.overlay.FillMode = canvas.ImageFillStretch
	ac.overlay.ScaleMode = canvas.ImageScaleSmooth
	ac.ExtendBaseWidget(ac)
	return ac
}

// SetPanHandlers registers the gesture callbacks. Points are in canvas
// pixels.
func (ac *AvatarCanvas) SetPanHandlers(start, move, end func(models.Point)) {
	ac.onPanStart = start
	ac.onPanMove = move
	ac.onPanEnd = end
}

// SetAvatar replaces the painted canvas. side is the canvas side in pixels.
func (ac *AvatarCanvas) SetAvatar(img image.Image, side int) {
	ac.avatar.Image = img
	ac.side = side
	ac.avatar.Refresh()
}

// SetOverlay replaces the filter drawn over the avatar.
func (ac *AvatarCanvas) SetOverlay(img image.Image) {
	ac.overlay.Image = img
	ac.overlay.Refresh()
}

// Overlay returns the filter image currently shown.
func (ac *AvatarCanvas) Overlay() image.Image {
	return ac.overlay.Image
}

// Avatar returns the canvas image currently shown.
func (ac *AvatarCanvas) Avatar() image.Image {
	return ac.avatar.Image
}

// square is the on-screen square the canvas is drawn into.
func (ac *AvatarCanvas) square() (fyne.Position, float32) {
	size := ac.Size()
	d := min(size.Width, size.Height)
	return fyne.NewPos((size.Width-d)/2, (size.Height-d)/2), d
}

// ToCanvas converts a widget position to canvas pixels.
func (ac *AvatarCanvas) ToCanvas(pos fyne.Position) models.Point {
	origin, d := ac.square()
	scale := float64(1)
	if d > 0 && ac.side > 0 {
		scale = float64(ac.side) / float64(d)
	}
	return models.Point{
		X: float64(pos.X-origin.X) * scale,
		Y: float64(pos.Y-origin.Y) * scale,
	}
}

func (ac *AvatarCanvas) begin(pos fyne.Position) {
	if ac.dragging {
		return
	}
	ac.dragging = true
	ac.last = pos
	if ac.onPanStart != nil {
		ac.onPanStart(ac.ToCanvas(pos))
	}
}

func (ac *AvatarCanvas) end(pos fyne.Position) {
	if !ac.dragging {
		return
	}
	ac.dragging = false
	if ac.onPanEnd != nil {
		ac.onPanEnd(ac.ToCanvas(pos))
	}
}

func (ac *AvatarCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonPrimary {
		ac.begin(ev.Position)
	}
}

func (ac *AvatarCanvas) MouseUp(ev *desktop.MouseEvent) {
	ac.end(ev.Position)
}

func (ac *AvatarCanvas) Dragged(ev *fyne.DragEvent) {
	ac.begin(ev.Position.Subtract(ev.Dragged))
	ac.last = ev.Position
	if ac.onPanMove != nil {
		ac.onPanMove(ac.ToCanvas(ev.Position))
	}
}

func (ac *AvatarCanvas) DragEnd() {
	ac.end(ac.last)
}

func (ac *AvatarCanvas) MouseIn(*desktop.MouseEvent) {}

func (ac *AvatarCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if ac.dragging {
		ac.last = ev.Position
	}
}

// MouseOut commits a drag that leaves the canvas.
func (ac *AvatarCanvas) MouseOut() {
	ac.end(ac.last)
}

func (ac *AvatarCanvas) MinSize() fyne.Size {
	return fyne.NewSquareSize(CanvasMinSide)
}

func (ac *AvatarCanvas) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF})
	return &avatarCanvasRenderer{
		canvas:     ac,
		background: background,
		objects:    []fyne.CanvasObject{background, ac.avatar, ac.overlay},
	}
}

type avatarCanvasRenderer struct {
	canvas     *AvatarCanvas
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *avatarCanvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	origin, d := r.canvas.square()
	for _, o := range []fyne.CanvasObject{r.canvas.avatar, r.canvas.overlay} {
		o.Move(origin)
		o.Resize(fyne.NewSquareSize(d))
	}
}

func (r *avatarCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.MinSize()
}

func (r *avatarCanvasRenderer) Refresh() {
	r.Layout(r.canvas.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *avatarCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *avatarCanvasRenderer) Destroy() {}
