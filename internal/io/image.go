package ioutils

import (
	"context"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// ImageService provides image operations for rendered drawings.
//
// ImageService is used to:
//   - Downscale supersampled renders to their final size (smooth edges)
//   - Encode images as PNG, to a writer or straight to a file
//
// Example usage:
//
//	svc := NewImageService()
//
//	// Render at twice the size, then shrink
//	big := canvas.Raster(strokes, vp, 2)
//	img := svc.Fit(ctx, big, vp.Width, vp.Height)
//	err := svc.SavePNG(ctx, img, "spiro.png")
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Fit scales an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. Images already within bounds are returned
// unchanged.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// A 1600x1200 render becomes 800x600
//	small := svc.Fit(ctx, img, 800, 600)
func (s *ImageService) Fit(ctx context.Context, img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxWidth <= 0 || maxHeight <= 0 || (width <= maxWidth && height <= maxHeight) {
		return img
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(math.Round(float64(maxHeight) * ratio))
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(math.Round(float64(maxWidth) / ratio))
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// EncodePNG writes img to w in PNG format.
func (s *ImageService) EncodePNG(ctx context.Context, w io.Writer, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}

// SavePNG writes img to path in PNG format, truncating any existing file.
func (s *ImageService) SavePNG(ctx context.Context, img image.Image, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return imaging.Save(img, path)
}
