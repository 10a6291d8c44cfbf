package spiro

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Rand is the source of randomness used by Generator.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Viewport is the logical drawing area, centered on the origin.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport matches a typical desktop drawing window.
var DefaultViewport = Viewport{Width: 800, Height: 600}

const (
	minOuterRadius = 50
	minInnerRadius = 10
	minHoleRatio   = 0.1
	maxHoleRatio   = 0.9
)

// Generator draws random curve parameters bounded by a viewport.
type Generator struct {
	rng      Rand
	viewport Viewport
}

// NewGenerator creates a Generator. A nil rng falls back to a randomly
// seeded PCG source.
func NewGenerator(rng Rand, vp Viewport) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng, viewport: vp}
}

// Viewport returns the bounds used for drawing centers and radii.
func (g *Generator) Viewport() Viewport {
	return g.viewport
}

// Params draws one random set of curve parameters:
//   - R uniform in [50, min(width, height)/2]
//   - r uniform in [10, 9R/10]
//   - l uniform in [0.1, 0.9)
//   - center uniform inside the viewport
//   - color with three uniform channels
func (g *Generator) Params() Params {
	w, h := g.viewport.Width, g.viewport.Height

	bigR := g.intBetween(minOuterRadius, min(w, h)/2)
	smallR := g.intBetween(minInnerRadius, 9*bigR/10)
	l := minHoleRatio + g.rng.Float64()*(maxHoleRatio-minHoleRatio)
	center := Point{
		X: float64(g.intBetween(-w/2, w/2)),
		Y: float64(g.intBetween(-h/2, h/2)),
	}
	col := colorful.Color{R: g.rng.Float64(), G: g.rng.Float64(), B: g.rng.Float64()}

	// Radii are at least 10 and l is inside (0, 1), so validation cannot fail.
	p, _ := NewParams(bigR, smallR, l, center, col)
	return p
}

// intBetween returns an integer in [lo, hi]. An empty range yields lo.
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
