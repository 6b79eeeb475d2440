package components

import (
	"image"
	"image/color"

	"avatar-filter/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	// StripCell is the on-screen width of one filter slot. It plays the role
	// of models.StepVmin when converting the carousel offset to pixels.
	StripCell    = 124
	stripPadding = 6
)

// FilterStrip lays the filter thumbnails out in a row that slides so the
// active one sits in the middle, outlined by a marker.
type FilterStrip struct {
	widget.BaseWidget

	thumbs     []*canvas.Image
	marker     *canvas.Rectangle
	index      int
	offsetVmin float32
}

func NewFilterStrip() *FilterStrip {
	marker := canvas.NewRectangle(color.Transparent)
	marker.StrokeColor = theme.Color(theme.ColorNamePrimary)
	marker.StrokeWidth = 3
	marker.CornerRadius = 4

	fs := &FilterStrip{marker: marker}
	fs.ExtendBaseWidget(fs)
	return fs
}

// SetFilters replaces the thumbnails. The first entry becomes active.
func (fs *FilterStrip) SetFilters(entries []models.FilterEntry) {
	fs.thumbs = make([]*canvas.Image, len(entries))
	for i, e := range entries {
		var img image.Image = e.Thumbnail
		if img == nil {
			img = e.Image
		}
		thumb := canvas.NewImageFromImage(img)
		thumb.FillMode = canvas.ImageFillContain
		fs.thumbs[i] = thumb
	}
	fs.index = 0
	fs.offsetVmin = 0
	fs.Refresh()
}

// SetActive moves the marker to index and slides the row by offsetVmin.
func (fs *FilterStrip) SetActive(index int, offsetVmin float32) {
	fs.index = index
	fs.offsetVmin = offsetVmin
	fs.Refresh()
}

func (fs *FilterStrip) Active() int {
	return fs.index
}

// Translation is the row's horizontal shift in pixels.
func (fs *FilterStrip) Translation() float32 {
	return fs.offsetVmin * StripCell / models.StepVmin
}

// CellPosition is where slot i is placed for the current translation.
func (fs *FilterStrip) CellPosition(i int) fyne.Position {
	size := fs.Size()
	start := (size.Width - StripCell) / 2
	return fyne.NewPos(start+float32(i)*StripCell+fs.Translation(), 0)
}

func (fs *FilterStrip) MinSize() fyne.Size {
	return fyne.NewSize(StripCell*3, StripCell)
}

func (fs *FilterStrip) CreateRenderer() fyne.WidgetRenderer {
	return &filterStripRenderer{strip: fs}
}

type filterStripRenderer struct {
	strip *FilterStrip
}

func (r *filterStripRenderer) Layout(size fyne.Size) {
	fs := r.strip
	thumbSize := fyne.NewSquareSize(StripCell - 2*stripPadding)
	for i, t := range fs.thumbs {
		t.Move(fs.CellPosition(i).AddXY(stripPadding, stripPadding))
		t.Resize(thumbSize)
	}
	fs.marker.Move(fs.CellPosition(fs.index).AddXY(stripPadding/2, stripPadding/2))
	fs.marker.Resize(fyne.NewSquareSize(StripCell - stripPadding))
}

func (r *filterStripRenderer) MinSize() fyne.Size {
	return r.strip.MinSize()
}

func (r *filterStripRenderer) Refresh() {
	r.Layout(r.strip.Size())
	for _, t := range r.strip.thumbs {
		t.Refresh()
	}
	r.strip.marker.Refresh()
}

func (r *filterStripRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.strip.thumbs)+1)
	for _, t := range r.strip.thumbs {
		objects = append(objects, t)
	}
	return append(objects, r.strip.marker)
}

func (r *filterStripRenderer) Destroy() {}
