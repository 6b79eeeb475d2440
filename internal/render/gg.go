package render

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// GGSurface is a Surface on a software gg.Context.
type GGSurface struct {
	dc    *gg.Context
	cache bufCache
}

// NewGGSurface allocates a surface. Non-positive dimensions become 1.
func NewGGSurface(width, height int) *GGSurface {
	return &GGSurface{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

func (s *GGSurface) Resize(width, height int) error {
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}
	s.dc.Clear()
	return nil
}

func (s *GGSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *GGSurface) Clear() {
	s.dc.Clear()
}

func (s *GGSurface) DrawImageAt(img image.Image, x, y float64) {
	buf := s.cache.get(img)
	srcRect, dstPt, ok := visibleRegion(
		image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()),
		int(math.Round(x)), int(math.Round(y)),
		s.dc.Width(), s.dc.Height(),
	)
	if !ok {
		return
	}
	s.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:         float64(dstPt.X),
		Y:         float64(dstPt.Y),
		SrcRect:   &srcRect,
		Opacity:   1.0,
		BlendMode: gg.BlendNormal,
	})
}

func (s *GGSurface) DrawImageScaled(img image.Image, width, height float64) {
	s.dc.DrawImageEx(s.cache.get(img), gg.DrawImageOptions{
		DstWidth:      width,
		DstHeight:     height,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
}

func (s *GGSurface) Clone() (Surface, error) {
	if s.dc.Width() <= 0 || s.dc.Height() <= 0 {
		return nil, fmt.Errorf("clone surface: empty %dx%d", s.dc.Width(), s.dc.Height())
	}
	return &GGSurface{dc: gg.NewContextForImage(s.dc.Image())}, nil
}

func (s *GGSurface) Snapshot() image.Image {
	return s.dc.Image()
}

func (s *GGSurface) EncodeJPEG(quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodeJPEG(&buf, quality); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *GGSurface) Close() error {
	s.cache = bufCache{}
	return s.dc.Close()
}

// bufCache remembers the last few converted sources. During a drag the same
// avatar is painted on every pointer move.
type bufCache struct {
	keys [2]image.Image
	bufs [2]*gg.ImageBuf
	next int
}

func (c *bufCache) get(img image.Image) *gg.ImageBuf {
	for i, k := range c.keys {
		if k == img && c.bufs[i] != nil {
			return c.bufs[i]
		}
	}
	buf := gg.ImageBufFromImage(img)
	c.keys[c.next] = img
	c.bufs[c.next] = buf
	c.next = (c.next + 1) % len(c.keys)
	return buf
}
