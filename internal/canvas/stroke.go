package canvas

import (
	"github.com/handiism/spirotunes/internal/spiro"
	"github.com/lucasb-eyer/go-colorful"
)

// Stroke is one polyline drawn with a single pen color.
type Stroke struct {
	Points []spiro.Point
	Color  colorful.Color

	// Cursor marks the head of the stroke with a pen glyph when true.
	Cursor bool
}

// StrokesFromCurves snapshots the trails of the given curves.
func StrokesFromCurves(curves []*spiro.Curve, cursors bool) []Stroke {
	out := make([]Stroke, 0, len(curves))
	for _, c := range curves {
		out = append(out, Stroke{
			Points: c.Trail(),
			Color:  c.Params().Color,
			Cursor: cursors && !c.Complete(),
		})
	}
	return out
}

// transform maps logical viewport coordinates onto a target surface of
// the given size. Flip selects a y-down target (raster, terminal).
type transform struct {
	scale  float64
	width  float64
	height float64
	flip   bool
}

func newTransform(vp spiro.Viewport, width, height float64, flip bool) transform {
	sx := width / float64(vp.Width)
	sy := height / float64(vp.Height)
	return transform{scale: min(sx, sy), width: width, height: height, flip: flip}
}

func (t transform) apply(p spiro.Point) (float64, float64) {
	x := t.width/2 + p.X*t.scale
	if t.flip {
		return x, t.height/2 - p.Y*t.scale
	}
	return x, t.height/2 + p.Y*t.scale
}
