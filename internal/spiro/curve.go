package spiro

// Curve draws a Spirograph one step at a time.
//
// The angle accumulator starts at 0 and grows by step degrees on every
// Update until it reaches the closing angle. Every visited point is kept in
// the trail so a renderer can redraw the partial curve at any moment.
type Curve struct {
	params   Params
	step     int
	angle    int
	complete bool
	trail    []Point
}

// NewCurve creates a curve positioned at its starting point.
func NewCurve(p Params, step int) *Curve {
	if step <= 0 {
		step = DefaultStep
	}
	c := &Curve{step: step}
	c.SetParams(p)
	return c
}

// SetParams replaces the curve parameters and restarts the drawing.
func (c *Curve) SetParams(p Params) {
	c.params = p
	c.Restart()
}

// Restart clears the trail and moves the pen back to angle 0.
func (c *Curve) Restart() Point {
	c.angle = 0
	c.complete = false
	start := c.params.At(0)
	c.trail = append(c.trail[:0], start)
	return start
}

// Update advances the pen by one step.
//
// It returns the new position and true, or the zero Point and false once the
// curve is complete. The final step is clamped to the closing angle.
func (c *Curve) Update() (Point, bool) {
	if c.complete {
		return Point{}, false
	}

	bound := c.params.Bound()
	c.angle += c.step
	if c.angle > bound {
		c.angle = bound
	}

	pt := c.params.At(float64(c.angle))
	c.trail = append(c.trail, pt)

	if c.angle >= bound {
		c.complete = true
	}
	return pt, true
}

// Draw runs the curve to completion in one call.
func (c *Curve) Draw() []Point {
	for !c.complete {
		c.Update()
	}
	return c.Trail()
}

// Complete reports whether the pen has reached the closing angle.
func (c *Curve) Complete() bool {
	return c.complete
}

// Angle is the current angle accumulator in degrees.
func (c *Curve) Angle() int {
	return c.angle
}

// Params returns the parameters of the current drawing pass.
func (c *Curve) Params() Params {
	return c.params
}

// Head is the current pen position.
func (c *Curve) Head() Point {
	return c.trail[len(c.trail)-1]
}

// Trail returns a copy of every point drawn so far.
func (c *Curve) Trail() []Point {
	out := make([]Point, len(c.trail))
	copy(out, c.trail)
	return out
}
