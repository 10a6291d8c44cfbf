package spiro

// DefaultCurveCount is how many curves an Animator draws at once.
const DefaultCurveCount = 4

// Animator drives a set of randomized curves.
//
// Each Tick advances every curve by one step. When all curves have closed,
// they are restarted together with fresh parameters. Animator has no clock
// of its own; the caller decides when to tick.
type Animator struct {
	gen     *Generator
	curves  []*Curve
	cursors bool
	cycles  int
}

// NewAnimator creates n curves with random parameters from gen.
func NewAnimator(gen *Generator, n, step int) *Animator {
	if n <= 0 {
		n = DefaultCurveCount
	}
	a := &Animator{
		gen:     gen,
		curves:  make([]*Curve, n),
		cursors: true,
	}
	for i := range a.curves {
		a.curves[i] = NewCurve(gen.Params(), step)
	}
	return a
}

// Tick advances every curve by one step and reports how many are complete.
// If all of them are, the whole set is restarted before returning.
func (a *Animator) Tick() int {
	done := 0
	for _, c := range a.curves {
		c.Update()
		if c.Complete() {
			done++
		}
	}
	if done == len(a.curves) {
		a.Restart()
	}
	return done
}

// Restart gives every curve new random parameters and clears the drawing.
func (a *Animator) Restart() {
	for _, c := range a.curves {
		c.SetParams(a.gen.Params())
	}
	a.cycles++
}

// ToggleCursors flips the visibility of the pen cursors.
func (a *Animator) ToggleCursors() {
	a.cursors = !a.cursors
}

// CursorsVisible reports whether pen cursors should be drawn.
func (a *Animator) CursorsVisible() bool {
	return a.cursors
}

// Curves returns the curves in drawing order.
func (a *Animator) Curves() []*Curve {
	return a.curves
}

// Cycles counts how many times the set has been restarted.
func (a *Animator) Cycles() int {
	return a.cycles
}

// Viewport returns the logical drawing area of the generator.
func (a *Animator) Viewport() Viewport {
	return a.gen.Viewport()
}
