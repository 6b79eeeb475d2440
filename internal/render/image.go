package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ImageSurface is a Surface on a plain *image.RGBA. It has no backend
// dependencies and is what tests and headless tools paint into.
type ImageSurface struct {
	img *image.RGBA
}

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize surface: invalid dimensions %dx%d", width, height)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *ImageSurface) DrawImageAt(img image.Image, x, y float64) {
	w, h := s.Size()
	b := img.Bounds()
	srcRect, dstPt, ok := visibleRegion(b, int(math.Round(x)), int(math.Round(y)), w, h)
	if !ok {
		return
	}
	draw.Draw(s.img, image.Rectangle{Min: dstPt, Max: dstPt.Add(srcRect.Size())}, img, srcRect.Min, draw.Over)
}

func (s *ImageSurface) DrawImageScaled(img image.Image, width, height float64) {
	dst := image.Rect(0, 0, int(math.Round(width)), int(math.Round(height)))
	xdraw.ApproxBiLinear.Scale(s.img, dst, img, img.Bounds(), xdraw.Over, nil)
}

func (s *ImageSurface) Clone() (Surface, error) {
	clone := image.NewRGBA(s.img.Bounds())
	copy(clone.Pix, s.img.Pix)
	return &ImageSurface{img: clone}, nil
}

func (s *ImageSurface) Snapshot() image.Image {
	clone := image.NewRGBA(s.img.Bounds())
	copy(clone.Pix, s.img.Pix)
	return clone
}

func (s *ImageSurface) EncodeJPEG(quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, s.img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ImageSurface) Close() error {
	return nil
}
