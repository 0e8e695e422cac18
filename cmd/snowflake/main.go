// Command snowflake drives the crystal-growth engine headlessly: load
// parameters (embedded defaults, a YAML file, or the historical
// "name: value" console-prompt stream), run ticks, and on exit write a
// checkpoint and a PPM rendering. This is the host-side console
// driver the engine is specified against (spec.md §6) — it owns none
// of the dynamics itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pthm-cable/soup/config"
	"github.com/pthm-cable/soup/lattice"
	"github.com/pthm-cable/soup/render"
	"github.com/pthm-cable/soup/sim"
	"github.com/pthm-cable/soup/telemetry"
)

var (
	configPath  = flag.String("config", "", "YAML parameter file (empty = embedded defaults)")
	paramsFile  = flag.String("params", "", "Historical \"name: value\" parameter stream (when set, -config is ignored; fields the stream omits keep the embedded defaults)")
	loadPath    = flag.String("load", "", "Checkpoint file to resume from")
	savePath    = flag.String("save", "", "Checkpoint file to write on exit")
	ppmPath     = flag.String("render", "", "PPM file to write on exit")
	outputDir   = flag.String("output", "", "Directory for telemetry CSVs (empty = disabled)")
	seed        = flag.Int64("seed", 1, "RNG seed")
	maxTicks    = flag.Int("max-ticks", 0, "Stop after N ticks (0 = run until the engine's own stop condition)")
	logInterval = flag.Int("log", 0, "Log growth stats every N ticks (0 = disabled)")
	perfLog     = flag.Bool("perf", false, "Enable per-phase performance logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("snowflake failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	params, err := loadParameters()
	if err != nil {
		return fmt.Errorf("loading parameters: %w", err)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	engine, err := sim.NewEngine(params, *seed)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	if *loadPath != "" {
		if err := engine.Load(*loadPath); err != nil {
			return fmt.Errorf("loading checkpoint: %w", err)
		}
		slog.Info("resumed from checkpoint", "path", *loadPath, "tick", engine.Tick())
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		return fmt.Errorf("initializing output directory: %w", err)
	}
	defer out.Close()

	perf := telemetry.NewPerfCollector(120)
	if *perfLog {
		engine.SetPhaseObserver(perf.StartPhase)
	}
	bookmarks := telemetry.NewBookmarkDetector(200)
	stopRadius := 2 * params.L / 3

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pred := func(t int32) bool {
		return *maxTicks > 0 && int(t) >= *maxTicks
	}

	for !engine.Stopped() && !pred(engine.Tick()) {
		select {
		case <-ctx.Done():
			slog.Info("interrupted, shutting down", "tick", engine.Tick())
			return finish(engine, out)
		default:
		}

		if *perfLog {
			perf.StartTick()
		}
		engine.Step()
		if *perfLog {
			perf.EndTick()
		}

		t := engine.Tick()
		_, rNew := engine.FrontierRadius()
		attached := countAttached(engine)

		for _, b := range bookmarks.Check(telemetry.GrowthStats{
			Tick: t, RNew: rNew, AttachedCount: attached, StopRadius: stopRadius,
		}) {
			b.LogBookmark()
			if err := out.WriteBookmark(b); err != nil {
				slog.Warn("writing bookmark failed", "error", err)
			}
		}

		if err := out.WriteTick(telemetry.TickStats{
			Tick: t, AttachedCount: attached, RNew: rNew,
			TotalMass: engine.Snapshot().TotalMass(),
		}); err != nil {
			slog.Warn("writing telemetry failed", "error", err)
		}

		if *logInterval > 0 && int(t)%*logInterval == 0 {
			slog.Info("tick", "t", t, "r_new", rNew, "attached", attached)
		}
		if *perfLog && int(t)%120 == 0 {
			stats := perf.Stats()
			stats.LogStats()
			if err := out.WritePerf(stats, t); err != nil {
				slog.Warn("writing perf failed", "error", err)
			}
		}
	}

	slog.Info("run complete", "tick", engine.Tick(), "stopped", engine.Stopped())
	return finish(engine, out)
}

func finish(engine *sim.Engine, out *telemetry.OutputManager) error {
	if *savePath != "" {
		if err := engine.Save(*savePath); err != nil {
			return fmt.Errorf("saving checkpoint: %w", err)
		}
		slog.Info("checkpoint saved", "path", *savePath)
	}
	if *ppmPath != "" {
		if err := engine.RenderPPM(*ppmPath, render.Comments{
			Line1: "gravner-griffeath crystal growth",
			Line2: fmt.Sprintf("tick %d", engine.Tick()),
		}); err != nil {
			return fmt.Errorf("rendering PPM: %w", err)
		}
		slog.Info("PPM rendered", "path", *ppmPath)
	}
	return nil
}

func loadParameters() (config.Parameters, error) {
	if *paramsFile != "" {
		f, err := os.Open(*paramsFile)
		if err != nil {
			return config.Parameters{}, fmt.Errorf("opening params stream: %w", err)
		}
		defer f.Close()
		p, _, err := config.ParseKVStream(f)
		return p, err
	}
	return config.Load(*configPath)
}

func countAttached(engine *sim.Engine) int {
	count := 0
	engine.Snapshot().ForEach(func(i, j int, c lattice.Cell) {
		if c.Attached {
			count++
		}
	})
	return count
}
