package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/spirotunes/internal/spiro"
	"github.com/lucasb-eyer/go-colorful"
)

// CursorGlyph marks the pen position of a curve still being drawn.
const CursorGlyph = '●'

const brailleBase = 0x2800

// dotBits maps a dot inside a 2x4 braille cell to its bit, indexed [row][col].
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	bits   uint8
	stroke int
	cursor bool
}

// Braille renders strokes as text using braille patterns, giving a 2x4
// dot resolution per terminal cell.
//
// Example:
//
//	b := NewBraille(80, 24)
//	fmt.Println(b.Render(strokes, spiro.DefaultViewport))
type Braille struct {
	cols int
	rows int
}

// NewBraille creates a renderer for a cols x rows character grid.
func NewBraille(cols, rows int) *Braille {
	return &Braille{cols: max(cols, 1), rows: max(rows, 1)}
}

// Size returns the grid size in characters.
func (b *Braille) Size() (cols, rows int) {
	return b.cols, b.rows
}

// Render draws the strokes and returns rows joined by newlines. Each cell
// takes the color of the last stroke that touched it.
func (b *Braille) Render(strokes []Stroke, vp spiro.Viewport) string {
	cells := make([]cell, b.cols*b.rows)
	for i := range cells {
		cells[i].stroke = -1
	}

	dotsW, dotsH := b.cols*2, b.rows*4
	tf := newTransform(vp, float64(dotsW), float64(dotsH), true)

	plot := func(x, y float64, si int) {
		ix, iy := int(math.Floor(x)), int(math.Floor(y))
		if ix < 0 || iy < 0 || ix >= dotsW || iy >= dotsH {
			return
		}
		c := &cells[(iy/4)*b.cols+ix/2]
		c.bits |= dotBits[iy%4][ix%2]
		c.stroke = si
	}

	for si, s := range strokes {
		for i, p := range s.Points {
			x1, y1 := tf.apply(p)
			if i == 0 {
				plot(x1, y1, si)
				continue
			}
			x0, y0 := tf.apply(s.Points[i-1])
			steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
			for j := 1; j <= steps; j++ {
				t := float64(j) / float64(steps)
				plot(x0+(x1-x0)*t, y0+(y1-y0)*t, si)
			}
		}
	}

	for si, s := range strokes {
		if !s.Cursor || len(s.Points) == 0 {
			continue
		}
		x, y := tf.apply(s.Points[len(s.Points)-1])
		ix, iy := int(math.Floor(x))/2, int(math.Floor(y))/4
		if x < 0 || y < 0 || ix >= b.cols || iy >= b.rows {
			continue
		}
		c := &cells[iy*b.cols+ix]
		c.cursor = true
		c.stroke = si
	}

	styles := make([]lipgloss.Style, len(strokes))
	for i, s := range strokes {
		styles[i] = penStyle(s.Color)
	}

	var sb strings.Builder
	var run strings.Builder
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current >= 0 {
				sb.WriteString(styles[current].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for col := 0; col < b.cols; col++ {
			c := cells[row*b.cols+col]
			if c.stroke != current {
				flush()
				current = c.stroke
			}
			switch {
			case c.cursor:
				run.WriteRune(CursorGlyph)
			case c.bits == 0:
				run.WriteByte(' ')
			default:
				run.WriteRune(rune(brailleBase + int(c.bits)))
			}
		}
		flush()
	}

	return sb.String()
}

// penStyle colors a stroke. Very dark pens would vanish on a dark terminal,
// so they use the default foreground instead.
func penStyle(c colorful.Color) lipgloss.Style {
	if _, _, l := c.Hsl(); l < 0.15 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Clamped().Hex()))
}
