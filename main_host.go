package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"fieldlines/app"
	"fieldlines/hal"
	"fieldlines/internal/buildinfo"
	"fieldlines/internal/config"
)

const usageLine = "usage: fieldlines [flags] NUMBER_OF_CHARGES_POS NUMBER_OF_CHARGES_NEG NUMBER_OF_FIELD_LINES"

// chargeStream keeps the charge draw independent of the line seeds.
const chargeStream = 0x63686172676573

var errUsage = errors.New("bad arguments")

type options struct {
	configPath string
	seed       uint64
	workers    int
	maxSteps   int
	legend     bool
	headless   bool
	out        string
	tty        bool
	version    bool

	npos, nneg, lines int
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatalf("%v\n%s", err, usageLine)
	}
	if opts.version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fatalf("%v", err)
	}
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sc := buildScene(cfg, opts, seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var renderErr error
	render := func(h hal.HAL) error {
		h.Logger().WriteLineString(fmt.Sprintf("fieldlines %s: seed %d", buildinfo.Short(), seed))
		_, renderErr = app.Render(ctx, h, sc)
		return renderErr
	}

	err = run(ctx, opts, cfg, render)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case renderErr != nil:
		fatalf("render: %v", err)
	default:
		fatalf("Graphics initialization failed!\n%v", err)
	}
}

func run(ctx context.Context, opts options, cfg *config.Config, render hal.RenderFunc) error {
	title := fmt.Sprintf("%s (%s)", cfg.Screen.Title, buildinfo.Short())
	w, h := cfg.Screen.Width, cfg.Screen.Height
	switch {
	case opts.headless:
		return hal.RunHeadless(ctx, hal.HeadlessConfig{Title: title, Width: w, Height: h, Out: opts.out}, render)
	case opts.tty:
		return hal.RunTerminal(title, w, h, render)
	default:
		return hal.RunWindow(title, w, h, render)
	}
}

// parseArgs parses flags followed by the three counts.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("fieldlines", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}
	fs.StringVar(&o.configPath, "config", "", "YAML config file (default $"+config.EnvPath+").")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed (0 = time based).")
	fs.IntVar(&o.workers, "workers", 0, "Tracing goroutines (0 = config, then GOMAXPROCS; 1 = sequential).")
	fs.IntVar(&o.maxSteps, "max-steps", 0, "Step limit per line direction (0 = config, then default).")
	fs.BoolVar(&o.legend, "legend", false, "Draw a legend line.")
	fs.BoolVar(&o.headless, "headless", false, "Render without a window and write -out.")
	fs.StringVar(&o.out, "out", "fieldlines.png", "Output image in headless mode (.png or .bmp).")
	fs.BoolVar(&o.tty, "tty", false, "Render into the terminal.")
	fs.BoolVar(&o.version, "version", false, "Print version and exit.")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.version {
		return o, nil
	}
	if o.workers < 0 || o.maxSteps < 0 {
		return o, fmt.Errorf("%w: -workers and -max-steps must not be negative", errUsage)
	}
	if o.headless && o.tty {
		return o, fmt.Errorf("%w: -headless and -tty are exclusive", errUsage)
	}

	if fs.NArg() != 3 {
		return o, fmt.Errorf("%w: want 3 counts, got %d", errUsage, fs.NArg())
	}
	counts := [3]*int{&o.npos, &o.nneg, &o.lines}
	for i, a := range fs.Args() {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return o, fmt.Errorf("%w: %q is not a non-negative integer", errUsage, a)
		}
		*counts[i] = n
	}
	return o, nil
}

// buildScene merges the config file, the flags and the random charge set.
func buildScene(cfg *config.Config, o options, seed uint64) app.Scene {
	bounds := cfg.ViewBounds()
	rng := rand.New(rand.NewPCG(seed, chargeStream))
	charges := app.BuildCharges(rng, bounds, o.npos, o.nneg, cfg.Physics.ElementaryCharge, cfg.FixedCharges())

	workers := firstNonZero(o.workers, cfg.Tracing.Workers)
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return app.Scene{
		Charges:          charges,
		Params:           cfg.Params(),
		Bounds:           bounds,
		Width:            cfg.Screen.Width,
		Height:           cfg.Screen.Height,
		Lines:            o.lines,
		Workers:          workers,
		MaxSteps:         firstNonZero(o.maxSteps, cfg.Tracing.MaxSteps),
		Step:             cfg.Tracing.Step,
		Seed:             seed,
		Legend:           o.legend || cfg.Render.Legend,
		ElementaryCharge: cfg.Physics.ElementaryCharge,
		GlyphScale:       cfg.Render.GlyphScale,
		Title:            cfg.Screen.Title,
	}
}

// firstNonZero returns the first non-zero value.
func firstNonZero(flagVal, cfgVal int) int {
	if flagVal != 0 {
		return flagVal
	}
	return cfgVal
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
