// Package render abstracts the drawing surface the editor paints into, so the
// pan, filter and export logic never touch a concrete graphics backend.
package render

import (
	"image"
)

// Surface is a resizable pixel buffer.
type Surface interface {
	// Resize sets new dimensions and discards all previous pixel content.
	Resize(width, height int) error
	Size() (int, int)
	Clear()
	// DrawImageAt paints img unscaled with its top-left corner at (x, y).
	// Parts falling outside the surface are clipped.
	DrawImageAt(img image.Image, x, y float64)
	// DrawImageScaled paints img stretched to width x height at the origin.
	DrawImageScaled(img image.Image, width, height float64)
	// Clone returns an independent copy of the current pixels.
	Clone() (Surface, error)
	// Snapshot returns a copy of the current pixels.
	Snapshot() image.Image
	EncodeJPEG(quality int) ([]byte, error)
	Close() error
}

// visibleRegion returns the part of src that lands on a width x height
// surface when src's top-left corner is placed at (x, y), together with the
// destination point of that part. ok is false when nothing is visible.
func visibleRegion(src image.Rectangle, x, y, width, height int) (image.Rectangle, image.Point, bool) {
	dst := image.Rect(x, y, x+src.Dx(), y+src.Dy()).Intersect(image.Rect(0, 0, width, height))
	if dst.Empty() {
		return image.Rectangle{}, image.Point{}, false
	}
	srcMin := src.Min.Add(dst.Min.Sub(image.Pt(x, y)))
	return image.Rectangle{Min: srcMin, Max: srcMin.Add(dst.Size())}, dst.Min, true
}
