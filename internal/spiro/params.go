package spiro

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultStep is the angle increment, in degrees, between two curve points.
const DefaultStep = 5

var (
	// ErrInvalidRadius is returned when a radius is not strictly positive.
	ErrInvalidRadius = errors.New("radius must be a positive integer")

	// ErrInvalidHoleRatio is returned when l is outside (0, 1].
	ErrInvalidHoleRatio = errors.New("hole ratio must be in (0, 1]")
)

// Point is a position in logical drawing coordinates.
// The origin is the center of the viewport and y grows upward.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Params holds the parameters of one Spirograph curve.
//
// Params is a value type. A drawing pass keeps its own copy, so changing
// parameters means building a new Params and restarting the curve.
type Params struct {
	// R is the radius of the outer circle.
	R int

	// SmallR is the radius of the inner circle.
	SmallR int

	// L is the ratio of the hole distance to SmallR.
	L float64

	// Center is where the curve's origin sits in the viewport.
	Center Point

	// Color is the pen color.
	Color colorful.Color

	rotations int
	k         float64
}

// NewParams validates the radii and hole ratio and precomputes the reduced
// rotation count and radius ratio.
//
// Example:
//
//	p, err := NewParams(220, 65, 0.8, Point{}, colorful.Color{})
//	// p.Rotations() == 13, since gcd(65, 220) == 5
func NewParams(bigR, smallR int, l float64, center Point, col colorful.Color) (Params, error) {
	if bigR <= 0 {
		return Params{}, fmt.Errorf("outer radius %d: %w", bigR, ErrInvalidRadius)
	}
	if smallR <= 0 {
		return Params{}, fmt.Errorf("inner radius %d: %w", smallR, ErrInvalidRadius)
	}
	if !(l > 0 && l <= 1) {
		return Params{}, fmt.Errorf("hole ratio %g: %w", l, ErrInvalidHoleRatio)
	}

	return Params{
		R:         bigR,
		SmallR:    smallR,
		L:         l,
		Center:    center,
		Color:     col,
		rotations: smallR / GCD(smallR, bigR),
		k:         float64(smallR) / float64(bigR),
	}, nil
}

// GCD returns the greatest common divisor of a and b.
//
// GCD(0, x) is |x|. GCD(0, 0) is 1 rather than 0 so that callers can always
// divide by the result.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// Rotations is the number of full turns needed for the curve to close.
func (p Params) Rotations() int {
	return p.rotations
}

// Ratio is k = r/R.
func (p Params) Ratio() float64 {
	return p.k
}

// Bound is the closing angle of the curve in degrees.
func (p Params) Bound() int {
	return 360 * p.rotations
}

// At returns the pen position at the given angle in degrees, offset by Center.
func (p Params) At(deg float64) Point {
	a := deg * math.Pi / 180
	k, l, bigR := p.k, p.L, float64(p.R)
	x := bigR * ((1-k)*math.Cos(a) + l*k*math.Cos((1-k)*a/k))
	y := bigR * ((1-k)*math.Sin(a) - l*k*math.Sin((1-k)*a/k))
	return p.Center.Add(Point{X: x, Y: y})
}

// Points computes the whole curve from angle 0 to Bound in step-degree
// increments. The closing point is always included.
func Points(p Params, step int) []Point {
	if step <= 0 {
		step = DefaultStep
	}
	bound := p.Bound()
	pts := make([]Point, 0, bound/step+2)
	last := 0
	for deg := 0; deg <= bound; deg += step {
		pts = append(pts, p.At(float64(deg)))
		last = deg
	}
	if last != bound {
		pts = append(pts, p.At(float64(bound)))
	}
	return pts
}
