package canvas

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	ioutils "github.com/handiism/spirotunes/internal/io"
	"github.com/handiism/spirotunes/internal/spiro"
)

// SnapshotTimeFormat is the timestamp layout of snapshot file names,
// e.g. 19Oct2026-153012.
const SnapshotTimeFormat = "02Jan2006-150405"

// SnapshotName returns the base file name, without extension, for a
// snapshot taken at t.
func SnapshotName(t time.Time) string {
	return "spiro-" + t.Format(SnapshotTimeFormat)
}

// Snapshot saves the current drawing as an EPS and a PNG file.
type Snapshot struct {
	// Dir is the directory snapshot files are written to.
	Dir string

	// Viewport is the logical drawing area, which is also the PNG size.
	Viewport spiro.Viewport

	// Supersample renders the PNG this many times larger before shrinking
	// it back to the viewport size. Values below 1 mean 1.
	Supersample float64

	images *ioutils.ImageService
}

// NewSnapshot creates a Snapshot writer.
func NewSnapshot(dir string, vp spiro.Viewport, supersample float64) *Snapshot {
	return &Snapshot{
		Dir:         dir,
		Viewport:    vp,
		Supersample: supersample,
		images:      ioutils.NewImageService(),
	}
}

// SnapshotResult holds the paths of the files written by Save.
type SnapshotResult struct {
	EPSPath string
	PNGPath string
}

// Save writes <Dir>/spiro-<timestamp>.eps and .png.
func (s *Snapshot) Save(ctx context.Context, now time.Time, strokes []Stroke) (SnapshotResult, error) {
	if err := ioutils.EnsureDir(s.Dir); err != nil {
		return SnapshotResult{}, fmt.Errorf("create snapshot dir: %w", err)
	}

	base := filepath.Join(s.Dir, SnapshotName(now))
	res := SnapshotResult{EPSPath: base + ".eps", PNGPath: base + ".png"}

	var eps bytes.Buffer
	if err := WriteEPS(&eps, strokes, s.Viewport); err != nil {
		return SnapshotResult{}, fmt.Errorf("encode eps: %w", err)
	}
	if err := ioutils.WriteFile(ctx, res.EPSPath, eps.Bytes()); err != nil {
		return SnapshotResult{}, fmt.Errorf("write eps: %w", err)
	}

	if err := s.SavePNG(ctx, res.PNGPath, strokes); err != nil {
		return SnapshotResult{}, err
	}
	return res, nil
}

// SavePNG rasterizes strokes and writes them to path.
func (s *Snapshot) SavePNG(ctx context.Context, path string, strokes []Stroke) error {
	scale := max(s.Supersample, 1)
	img := s.images.Fit(ctx, Raster(strokes, s.Viewport, scale), s.Viewport.Width, s.Viewport.Height)
	if err := s.images.SavePNG(ctx, img, path); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
