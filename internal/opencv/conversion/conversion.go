package conversion

import (
	"fmt"
	"image"

	"avatar-filter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// ImageToMat converts a Go image into a 4-channel BGRA Mat.
func ImageToMat(img image.Image) (*safe.Mat, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	mat, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return nil, fmt.Errorf("image to Mat: %w", err)
	}
	return safe.Wrap(mat, "image")
}

// MatToImage converts a Mat back into a Go image.
func MatToImage(src *safe.Mat) (image.Image, error) {
	if err := src.Validate("Mat to image conversion"); err != nil {
		return nil, err
	}

	mat := src.GetMat()
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("Mat to image: %w", err)
	}
	return img, nil
}

// ResizeMat scales src to newWidth x newHeight into a new Mat.
func ResizeMat(src *safe.Mat, newWidth, newHeight int, interpolation gocv.InterpolationFlags) (*safe.Mat, error) {
	if err := src.Validate("resize"); err != nil {
		return nil, err
	}
	if newWidth <= 0 || newHeight <= 0 {
		return nil, fmt.Errorf("invalid resize dimensions: %dx%d", newWidth, newHeight)
	}

	dst := gocv.NewMat()
	gocv.Resize(src.GetMat(), &dst, image.Pt(newWidth, newHeight), 0, 0, interpolation)
	return safe.Wrap(dst, src.Tag()+"_resized")
}

// FitWithin returns the largest size with the aspect ratio of width x height
// that fits in a box x box square. Neither side drops below 1.
func FitWithin(width, height, box int) (int, int) {
	if width <= 0 || height <= 0 || box <= 0 {
		return 0, 0
	}
	if width >= height {
		return box, max(1, height*box/width)
	}
	return max(1, width*box/height), box
}

// Thumbnail downsamples img to fit a box x box square using area
// interpolation, which avoids moiré on large overlays.
func Thumbnail(img image.Image, box int) (image.Image, error) {
	bounds := img.Bounds()
	w, h := FitWithin(bounds.Dx(), bounds.Dy(), box)
	if w == 0 {
		return nil, fmt.Errorf("thumbnail of %dx%d into %d", bounds.Dx(), bounds.Dy(), box)
	}

	src, err := ImageToMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	resized, err := ResizeMat(src, w, h, gocv.InterpolationArea)
	if err != nil {
		return nil, fmt.Errorf("thumbnail resize: %w", err)
	}
	defer resized.Close()

	return MatToImage(resized)
}
