package analysis

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/spirotunes/internal/io"
)

// Output file names, relative to the report directory.
const (
	CommonFileName     = "common.txt"
	DuplicatesFileName = "dups.txt"
	StatsFileName      = "stats.png"
)

// ReportWriter writes analysis results as flat text files.
//
// ReportWriter formats results with a strings.Builder and writes them into
// a single output directory, which is created on first use.
//
// Example:
//
//	w := NewReportWriter("/tmp/out")
//	path, err := w.WriteDuplicates(ctx, dups)
//
//	// dups.txt:
//	// [2] Come Together
//	// [3] Something
type ReportWriter struct {
	dir string
}

// NewReportWriter creates a ReportWriter for dir. An empty dir means the
// working directory.
func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir}
}

// Path returns the full path of a report file.
func (w *ReportWriter) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// WriteCommon writes common.txt, one name per line.
//
// An empty list writes nothing: it returns false and leaves any existing
// file alone.
func (w *ReportWriter) WriteCommon(ctx context.Context, names []string) (bool, string, error) {
	if len(names) == 0 {
		return false, "", nil
	}
	path := w.Path(CommonFileName)
	if err := w.write(ctx, path, FormatCommon(names)); err != nil {
		return false, "", err
	}
	return true, path, nil
}

// WriteDuplicates writes dups.txt. The file is written even when there are
// no duplicates, so a stale report never survives a clean run.
func (w *ReportWriter) WriteDuplicates(ctx context.Context, dups []Duplicate) (string, error) {
	path := w.Path(DuplicatesFileName)
	if err := w.write(ctx, path, FormatDuplicates(dups)); err != nil {
		return "", err
	}
	return path, nil
}

func (w *ReportWriter) write(ctx context.Context, path, content string) error {
	if err := ioutils.EnsureDir(w.dir); err != nil {
		return err
	}
	return ioutils.WriteFile(ctx, path, []byte(content))
}

// FormatCommon renders names as newline-terminated lines.
//
//	Come Together
//	Something
func FormatCommon(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatDuplicates renders one "[count] name" line per duplicate.
//
//	[2] Come Together
func FormatDuplicates(dups []Duplicate) string {
	var sb strings.Builder
	for _, d := range dups {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", d.Count, d.Name))
	}
	return sb.String()
}
