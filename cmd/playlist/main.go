package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/handiism/spirotunes/internal/analysis"
	"github.com/handiism/spirotunes/internal/config"
	"github.com/handiism/spirotunes/internal/errmsg"
	"github.com/handiism/spirotunes/internal/itunes"
	"github.com/handiism/spirotunes/internal/logging"
	"github.com/handiism/spirotunes/internal/model"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args and performs one analysis, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("playlist", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Command line flags
	var (
		commonFlag = fs.Bool("common", false, "Find track names shared by all playlist files given as arguments")
		statsFlag  = fs.String("stats", "", "Plot rating/duration statistics of a playlist file")
		dupFlag    = fs.String("dup", "", "Find duplicate tracks in a playlist file")
		outFlag    = fs.String("out", "", "Output directory (overrides config)")
		configFlag = fs.String("config", "", "Path to config file")
	)

	fs.Usage = func() {
		fmt.Fprintln(stderr, "This program analyzes playlist files (.xml) exported from iTunes")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  playlist -common <file> <file>...")
		fmt.Fprintln(stderr, "  playlist -stats <file>")
		fmt.Fprintln(stderr, "  playlist -dup <file>")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	modes := 0
	for _, set := range []bool{*commonFlag, *statsFlag != "", *dupFlag != ""} {
		if set {
			modes++
		}
	}
	switch {
	case modes > 1:
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpParseArgs, errors.New("-common, -stats and -dup are mutually exclusive")))
		fs.Usage()
		return exitUsage
	case !*commonFlag && fs.NArg() > 0:
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpParseArgs, fmt.Errorf("unexpected arguments %v", fs.Args())))
		fs.Usage()
		return exitUsage
	case *commonFlag && fs.NArg() == 0:
		// Nothing to compare, same as no option at all.
		modes = 0
	}

	if modes == 0 {
		fmt.Fprintln(stdout, "These are not the tracks you are looking for.")
		return exitOK
	}

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return exitError
	}
	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DEBUG") == "" {
		logging.SetLevel(logging.ParseLevel(settings.LogLevel))
	}
	if *outFlag != "" {
		settings.Playlist.OutputDir = *outFlag
	}

	a := &analyzer{
		settings: settings,
		reports:  analysis.NewReportWriter(settings.Playlist.OutputDir),
		stdout:   stdout,
		stderr:   stderr,
	}

	switch {
	case *commonFlag:
		return a.common(ctx, fs.Args())
	case *statsFlag != "":
		return a.stats(ctx, *statsFlag)
	default:
		return a.duplicates(ctx, *dupFlag)
	}
}

// analyzer runs one analysis and prints its outcome.
type analyzer struct {
	settings *config.Settings
	reports  *analysis.ReportWriter
	stdout   io.Writer
	stderr   io.Writer
}

func (a *analyzer) load(path string) (*model.Library, bool) {
	lib, err := itunes.Load(path)
	if err != nil {
		fmt.Fprintln(a.stderr, errmsg.FormatWith(errmsg.OpPlaylistLoad, path, err))
		return nil, false
	}
	logging.Debug("loaded %s tracks from %s", humanize.Comma(int64(len(lib.Tracks))), path)
	return lib, true
}

func (a *analyzer) common(ctx context.Context, paths []string) int {
	libs := make([]*model.Library, 0, len(paths))
	for _, p := range paths {
		lib, ok := a.load(p)
		if !ok {
			return exitError
		}
		libs = append(libs, lib)
	}

	names, err := analysis.Common(libs...)
	if err != nil {
		fmt.Fprintln(a.stderr, errmsg.Format(errmsg.OpParseArgs, err))
		return exitUsage
	}

	wrote, path, err := a.reports.WriteCommon(ctx, names)
	if err != nil {
		fmt.Fprintln(a.stderr, errmsg.Format(errmsg.OpCommonWrite, err))
		return exitError
	}
	if !wrote {
		fmt.Fprintf(a.stdout, "No common tracks in %d playlists.\n", len(libs))
		return exitOK
	}
	fmt.Fprintf(a.stdout, "Found %s common tracks. Track names saved into %s\n",
		humanize.Comma(int64(len(names))), path)
	return exitOK
}

func (a *analyzer) duplicates(ctx context.Context, path string) int {
	fmt.Fprintf(a.stdout, "Finding duplicate tracks in %s...\n", path)
	lib, ok := a.load(path)
	if !ok {
		return exitError
	}

	dups := analysis.Duplicates(lib)
	out, err := a.reports.WriteDuplicates(ctx, dups)
	if err != nil {
		fmt.Fprintln(a.stderr, errmsg.Format(errmsg.OpDuplicateWrite, err))
		return exitError
	}

	if len(dups) == 0 {
		fmt.Fprintln(a.stdout, "No duplicate tracks found!")
		return exitOK
	}
	fmt.Fprintf(a.stdout, "Found %s duplicates. Track names saved into %s\n",
		humanize.Comma(int64(len(dups))), out)
	return exitOK
}

func (a *analyzer) stats(ctx context.Context, path string) int {
	lib, ok := a.load(path)
	if !ok {
		return exitError
	}

	points, err := analysis.Stats(lib)
	if errors.Is(err, analysis.ErrNoStats) {
		fmt.Fprintf(a.stdout, "No valid Album Rating/Total Time data in %s.\n", path)
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(a.stderr, errmsg.Format(errmsg.OpStatsRender, err))
		return exitError
	}

	s := analysis.Summarize(points)
	fmt.Fprintf(a.stdout, "%s of %s tracks rated: mean %.1f min, longest %.1f min, mean rating %.0f\n",
		humanize.Comma(int64(s.Count)), humanize.Comma(int64(len(lib.Tracks))),
		s.MeanMinutes, s.MaxMinutes, s.MeanRating)

	opts := analysis.ChartOptions{
		Bins:   a.settings.Playlist.HistogramBins,
		Width:  a.settings.Playlist.ChartWidth,
		Height: a.settings.Playlist.ChartHeight,
	}
	out := a.reports.Path(analysis.StatsFileName)
	if err := analysis.RenderChart(ctx, points, out, opts); err != nil {
		fmt.Fprintln(a.stderr, errmsg.FormatWith(errmsg.OpStatsRender, out, err))
		return exitError
	}
	fmt.Fprintf(a.stdout, "Chart saved into %s\n", out)
	return exitOK
}
