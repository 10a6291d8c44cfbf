package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/handiism/spirotunes/internal/spiro"
	"golang.org/x/image/vector"
)

// LineWidth is the pen width of rasterized strokes, in logical units.
const LineWidth = 1.5

// Raster renders strokes onto a white image of the viewport size times scale.
//
// Each segment is filled as a thin quad with the vector rasterizer, so the
// result is anti-aliased. Rendering at scale 2 and shrinking afterwards
// gives smoother curves still.
func Raster(strokes []Stroke, vp spiro.Viewport, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(vp.Width) * scale))
	h := int(math.Ceil(float64(vp.Height) * scale))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	tf := newTransform(vp, float64(w), float64(h), true)
	half := LineWidth * scale / 2

	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		z := vector.NewRasterizer(w, h)
		if len(s.Points) == 1 {
			x, y := tf.apply(s.Points[0])
			square(z, x, y, half)
		}
		for i := 1; i < len(s.Points); i++ {
			x0, y0 := tf.apply(s.Points[i-1])
			x1, y1 := tf.apply(s.Points[i])
			segment(z, x0, y0, x1, y1, half)
		}
		src := image.NewUniform(toRGBA(s))
		z.Draw(dst, dst.Bounds(), src, image.Point{})
	}

	return dst
}

// segment adds a quad of half-width hw around the line from (x0,y0) to
// (x1,y1), extended by hw at both ends so consecutive segments overlap.
// Every quad has the same winding so overlaps never cancel out.
func segment(z *vector.Rasterizer, x0, y0, x1, y1, hw float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		square(z, x0, y0, hw)
		return
	}
	ux, uy := dx/length*hw, dy/length*hw
	nx, ny := -uy, ux

	ax, ay := x0-ux, y0-uy
	bx, by := x1+ux, y1+uy

	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
}

func square(z *vector.Rasterizer, x, y, hw float64) {
	z.MoveTo(float32(x-hw), float32(y-hw))
	z.LineTo(float32(x+hw), float32(y-hw))
	z.LineTo(float32(x+hw), float32(y+hw))
	z.LineTo(float32(x-hw), float32(y+hw))
	z.ClosePath()
}

func toRGBA(s Stroke) color.RGBA {
	r, g, b := s.Color.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
