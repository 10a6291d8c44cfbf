// Package spiro computes Spirograph curves (hypotrochoids).
//
// A curve is described by three numbers:
//   - R: radius of the outer, fixed circle
//   - r: radius of the inner, rolling circle
//   - l: ratio of the pen hole distance to r
//
// The pen position at angle a (radians) is
//
//	x(a) = R*((1-k)*cos(a) + l*k*cos((1-k)*a/k))
//	y(a) = R*((1-k)*sin(a) - l*k*sin((1-k)*a/k))
//
// with k = r/R. The curve closes after r/gcd(r, R) full turns.
//
// # Batch Drawing
//
// Points returns the whole curve at once:
//
//	p, err := spiro.NewParams(220, 65, 0.8, spiro.Point{}, colorful.Color{})
//	pts := spiro.Points(p, spiro.DefaultStep)
//
// # Incremental Drawing
//
// Curve advances one step per Update call. The caller owns the clock:
//
//	c := spiro.NewCurve(p, spiro.DefaultStep)
//	for !c.Complete() {
//	    c.Update()
//	}
//
// # Animation
//
// Animator keeps a set of randomized curves and restarts all of them once
// every curve has closed. Randomness comes from an injectable Rand so runs
// can be reproduced in tests.
package spiro
