package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/spirotunes/internal/canvas"
	"github.com/handiism/spirotunes/internal/config"
	"github.com/handiism/spirotunes/internal/errmsg"
	"github.com/handiism/spirotunes/internal/logging"
	"github.com/handiism/spirotunes/internal/spiro"
	"github.com/handiism/spirotunes/internal/tui"
	"github.com/lucasb-eyer/go-colorful"
)

func main() {
	// Command line flags
	var (
		sparamsFlag = flag.Bool("sparams", false, "Draw one curve from the positional arguments R r l")
		configFlag  = flag.String("config", "", "Path to config file")
		renderFlag  = flag.String("render", "", "Write the -sparams curve to this PNG file instead of opening the UI")
	)

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Spirographs - draw hypotrochoid curves")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  spiro [options]                 animate random curves")
		fmt.Fprintln(os.Stderr, "  spiro -sparams R r l [options]  draw one curve")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Keys: s save snapshot, t toggle cursors, space restart, q quit")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}
	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DEBUG") == "" {
		logging.SetLevel(logging.ParseLevel(settings.LogLevel))
	}

	var params *spiro.Params
	if *sparamsFlag {
		p, err := parseParams(flag.Args())
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpParseArgs, err))
			flag.Usage()
			os.Exit(2)
		}
		params = &p
	} else if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpParseArgs, fmt.Errorf("unexpected arguments %v", flag.Args())))
		flag.Usage()
		os.Exit(2)
	}

	if *renderFlag != "" {
		if params == nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpParseArgs, fmt.Errorf("-render needs -sparams")))
			os.Exit(2)
		}
		if err := render(*renderFlag, *params, settings); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpRenderPNG, *renderFlag, err))
			os.Exit(1)
		}
		fmt.Printf("Saved curve to %s\n", *renderFlag)
		return
	}

	// The UI owns the terminal, so logs go to a file.
	f, err := tea.LogToFile(settings.Spiro.LogFile, "spiro")
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpLogFileCreate, settings.Spiro.LogFile, err))
		os.Exit(1)
	}
	defer f.Close()

	opts := tui.Options{Settings: settings, Params: params}
	if seed := settings.Spiro.Seed; seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
		logging.Info("using fixed seed %d", seed)
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInterfaceRun, err))
		f.Close()
		os.Exit(1)
	}
}

// parseParams reads R, r and l. Radii may be given as decimals and are
// truncated. The curve is black and centered on the origin, which is the
// middle of the viewport.
func parseParams(args []string) (spiro.Params, error) {
	if len(args) != 3 {
		return spiro.Params{}, fmt.Errorf("-sparams needs 3 values R r l, got %d", len(args))
	}

	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return spiro.Params{}, fmt.Errorf("invalid number %q", a)
		}
		vals[i] = v
	}

	p, err := spiro.NewParams(int(vals[0]), int(vals[1]), vals[2], spiro.Point{}, colorful.Color{})
	if err != nil {
		return spiro.Params{}, fmt.Errorf("%s: %w", errmsg.OpCurveCreate, err)
	}
	return p, nil
}

// render draws the whole curve and writes it without starting the UI.
func render(path string, p spiro.Params, settings *config.Settings) error {
	curve := spiro.NewCurve(p, settings.Spiro.StepDegrees)
	curve.Draw()
	logging.Debug("rendering R=%d r=%d l=%g with %d points", p.R, p.SmallR, p.L, len(curve.Trail()))

	strokes := canvas.StrokesFromCurves([]*spiro.Curve{curve}, false)
	snap := canvas.NewSnapshot("", settings.Viewport(), settings.Spiro.Supersample)
	return snap.SavePNG(context.Background(), path, strokes)
}
