package canvas

import (
	"bufio"
	"fmt"
	"io"

	"github.com/handiism/spirotunes/internal/spiro"
)

// WriteEPS writes strokes as an Encapsulated PostScript document.
//
// The bounding box equals the viewport and the logical origin is moved to
// its center, so PostScript's y-up convention matches the logical one.
//
// Output layout:
//
//	%!PS-Adobe-3.0 EPSF-3.0
//	%%BoundingBox: 0 0 800 600
//	...
//	0.125 0.500 0.900 setrgbcolor
//	newpath 400.00 300.00 moveto ... stroke
//	showpage
//	%%EOF
func WriteEPS(w io.Writer, strokes []Stroke, vp spiro.Viewport) error {
	bw := bufio.NewWriter(w)
	tf := newTransform(vp, float64(vp.Width), float64(vp.Height), false)

	bw.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	bw.WriteString("%%Creator: spirotunes\n")
	bw.WriteString("%%Title: Spirographs\n")
	fmt.Fprintf(bw, "%%%%BoundingBox: 0 0 %d %d\n", vp.Width, vp.Height)
	bw.WriteString("%%EndComments\n")
	fmt.Fprintf(bw, "%.2f setlinewidth 1 setlinejoin 1 setlinecap\n", LineWidth)

	for _, s := range strokes {
		if len(s.Points) < 2 {
			continue
		}
		c := s.Color.Clamped()
		fmt.Fprintf(bw, "%.3f %.3f %.3f setrgbcolor\n", c.R, c.G, c.B)
		bw.WriteString("newpath")
		for i, p := range s.Points {
			x, y := tf.apply(p)
			op := "lineto"
			if i == 0 {
				op = "moveto"
			}
			// Keep lines short for PostScript readers with line limits.
			if i%6 == 0 {
				bw.WriteByte('\n')
			} else {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%.2f %.2f %s", x, y, op)
		}
		bw.WriteString("\nstroke\n")
	}

	bw.WriteString("showpage\n")
	bw.WriteString("%%EOF\n")
	return bw.Flush()
}
