package canvas

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/handiism/spirotunes/internal/spiro"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = colorful.Color{R: 1}

func testStrokes(t *testing.T) []Stroke {
	t.Helper()
	p, err := spiro.NewParams(100, 30, 0.8, spiro.Point{}, red)
	require.NoError(t, err)
	return []Stroke{{Points: spiro.Points(p, spiro.DefaultStep), Color: red}}
}

func TestSnapshotName(t *testing.T) {
	ts := time.Date(2026, time.October, 9, 7, 5, 3, 0, time.UTC)
	assert.Equal(t, "spiro-09Oct2026-070503", SnapshotName(ts))
}

func TestWriteEPS(t *testing.T) {
	var buf bytes.Buffer
	vp := spiro.Viewport{Width: 640, Height: 480}

	err := WriteEPS(&buf, testStrokes(t), vp)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-3.0\n"))
	assert.Contains(t, out, "%%BoundingBox: 0 0 640 480\n")
	assert.Contains(t, out, "1.000 0.000 0.000 setrgbcolor")
	assert.Equal(t, 1, strings.Count(out, "moveto"))
	assert.Equal(t, 1, strings.Count(out, "stroke\n"))
	assert.True(t, strings.HasSuffix(out, "showpage\n%%EOF\n"))
}

func TestWriteEPS_SkipsEmptyStrokes(t *testing.T) {
	var buf bytes.Buffer

	err := WriteEPS(&buf, []Stroke{{Color: red}, {Points: []spiro.Point{{}}, Color: red}}, spiro.DefaultViewport)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "newpath")
}

func TestRaster(t *testing.T) {
	vp := spiro.Viewport{Width: 300, Height: 200}
	img := Raster(testStrokes(t), vp, 1)

	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	// The curve starts at x = R*((1-k) + l*k) = 94, y = 0, right of center.
	c := img.RGBAAt(150+94, 100)
	assert.Greater(t, c.R, c.G, "pixel on the curve should be red, got %v", c)

	corner := img.RGBAAt(0, 0)
	assert.Equal(t, uint8(0xff), corner.G, "background should stay white")
}

func TestRaster_Supersample(t *testing.T) {
	img := Raster(nil, spiro.Viewport{Width: 100, Height: 50}, 2)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestBraille_Render(t *testing.T) {
	b := NewBraille(40, 12)
	strokes := testStrokes(t)

	out := b.Render(strokes, spiro.DefaultViewport)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	hasDots := false
	for _, r := range out {
		if r > brailleBase && r <= brailleBase+0xff {
			hasDots = true
			break
		}
	}
	assert.True(t, hasDots, "rendered output should contain braille dots")
	assert.NotContains(t, out, string(CursorGlyph))
}

func TestBraille_Cursor(t *testing.T) {
	b := NewBraille(20, 10)
	strokes := []Stroke{{
		Points: []spiro.Point{{X: -100, Y: 0}, {X: 0, Y: 0}},
		Color:  red,
		Cursor: true,
	}}

	out := b.Render(strokes, spiro.DefaultViewport)
	assert.Equal(t, 1, strings.Count(out, string(CursorGlyph)))
}

func TestBraille_Empty(t *testing.T) {
	out := NewBraille(5, 2).Render(nil, spiro.DefaultViewport)
	assert.Equal(t, "     \n     ", out)
}

func TestStrokesFromCurves(t *testing.T) {
	p, err := spiro.NewParams(50, 10, 0.5, spiro.Point{}, red)
	require.NoError(t, err)

	drawing := spiro.NewCurve(p, 5)
	drawing.Update()
	done := spiro.NewCurve(p, 5)
	done.Draw()

	strokes := StrokesFromCurves([]*spiro.Curve{drawing, done}, true)
	require.Len(t, strokes, 2)
	assert.True(t, strokes[0].Cursor)
	assert.False(t, strokes[1].Cursor, "completed curves hide their cursor")
	assert.Len(t, strokes[0].Points, 2)

	strokes = StrokesFromCurves([]*spiro.Curve{drawing}, false)
	assert.False(t, strokes[0].Cursor)
}

func TestSnapshot_Save(t *testing.T) {
	dir := t.TempDir()
	vp := spiro.Viewport{Width: 160, Height: 120}
	snap := NewSnapshot(dir, vp, 2)
	now := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

	res, err := snap.Save(context.Background(), now, testStrokes(t))
	require.NoError(t, err)

	assert.Equal(t, dir+"/spiro-02Jan2026-030405.eps", res.EPSPath)
	assert.Equal(t, dir+"/spiro-02Jan2026-030405.png", res.PNGPath)

	eps, err := os.ReadFile(res.EPSPath)
	require.NoError(t, err)
	assert.Contains(t, string(eps), "%%BoundingBox: 0 0 160 120")

	f, err := os.Open(res.PNGPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 160, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
}
