package models

import "math"

// Point is a 2D position or offset in surface pixels.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// PanState tracks where the avatar sits inside the square canvas.
//
// The committed offset is the baseline between drags. While a drag is in
// progress the candidate offset is what gets painted; it only replaces the
// baseline when the drag ends. Both offsets always satisfy
// canvas-image <= offset <= 0 on each axis, so the avatar covers the canvas.
type PanState struct {
	committed Point
	candidate Point
	origin    Point
	dragging  bool

	imageWidth  float64
	imageHeight float64
	canvasSide  float64
}

// NewPanState returns a pan state with no avatar loaded.
func NewPanState() *PanState {
	return &PanState{}
}

// LoadAvatar resets the offset to the origin and sizes the canvas to the
// shorter side of the new avatar. Any drag in progress is abandoned.
func (ps *PanState) LoadAvatar(width, height int) {
	ps.imageWidth = float64(width)
	ps.imageHeight = float64(height)
	ps.canvasSide = float64(min(width, height))
	ps.committed = Point{}
	ps.candidate = Point{}
	ps.origin = Point{}
	ps.dragging = false
}

// CanvasSide is the side length of the square canvas.
func (ps *PanState) CanvasSide() int {
	return int(ps.canvasSide)
}

// ImageSize returns the dimensions of the loaded avatar.
func (ps *PanState) ImageSize() (int, int) {
	return int(ps.imageWidth), int(ps.imageHeight)
}

// BeginDrag records the pointer position at gesture start.
func (ps *PanState) BeginDrag(p Point) {
	ps.origin = p
	ps.candidate = ps.committed
	ps.dragging = true
}

// Dragging reports whether a drag is in progress.
func (ps *PanState) Dragging() bool {
	return ps.dragging
}

// DragTo moves the uncommitted candidate offset to follow the pointer.
// It returns false when no drag is active.
func (ps *PanState) DragTo(p Point) (Point, bool) {
	if !ps.dragging {
		return ps.committed, false
	}
	ps.candidate = ps.clamp(ps.committed.Add(p.Sub(ps.origin)))
	return ps.candidate, true
}

// EndDrag commits the clamped offset for the final pointer position as the
// new baseline. It returns false when no drag was active.
func (ps *PanState) EndDrag(p Point) (Point, bool) {
	if !ps.dragging {
		return ps.committed, false
	}
	ps.committed = ps.clamp(ps.committed.Add(p.Sub(ps.origin)))
	ps.candidate = ps.committed
	ps.dragging = false
	return ps.committed, true
}

// Offset is the offset to paint the avatar at right now.
func (ps *PanState) Offset() Point {
	if ps.dragging {
		return ps.candidate
	}
	return ps.committed
}

// Committed is the baseline offset outside of any drag.
func (ps *PanState) Committed() Point {
	return ps.committed
}

func (ps *PanState) clamp(p Point) Point {
	return Point{
		X: ClampAxis(p.X, ps.canvasSide, ps.imageWidth),
		Y: ClampAxis(p.Y, ps.canvasSide, ps.imageHeight),
	}
}

// ClampAxis limits v to [canvas-image, 0]. An image smaller than the canvas
// inverts that range; the offset is then pinned to 0.
func ClampAxis(v, canvas, image float64) float64 {
	lower := canvas - image
	if lower > 0 {
		return 0
	}
	return math.Max(math.Min(v, 0), lower)
}
