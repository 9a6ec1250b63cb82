package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles everything the playback loop needs
type game struct {
	config   utils.Config
	sim      *model.Simulation
	pool     *model.FramePool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   *slog.Logger
}

// initializeGame sets up the seeded simulation and its renderer
func initializeGame(config utils.Config, out io.Writer, logger *slog.Logger) (*game, error) {
	boundary, err := model.ParseBoundary(config.Boundary)
	if err != nil {
		return nil, err
	}

	sim, err := model.NewSimulation(config.Width, config.Height, boundary,
		model.WithWorkers(config.Workers),
		model.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	if err = sim.SeedPattern(config.Pattern); err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] failed to seed %q", config.Pattern)
	}

	var pool *model.FramePool
	if config.UseFramePool {
		pool = model.NewFramePool()
	}

	renderer := model.NewTerminalRenderer(out, model.RenderOptions{
		AliveGlyph:  config.AliveGlyph,
		DeadGlyph:   config.DeadGlyph,
		Color:       config.Color && isTerminal(out),
		ClearScreen: config.ClearScreen,
	})

	return &game{
		config:   config,
		sim:      sim,
		pool:     pool,
		renderer: renderer,
		stats:    utils.NewStats(),
		logger:   logger,
	}, nil
}

// isTerminal reports whether out is an interactive terminal
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render snapshots the current generation and displays it
func (g *game) render() error {
	width, height := g.sim.Dimensions()

	var frame *model.Frame
	if g.pool != nil {
		frame = g.pool.Get(width, height)
	} else {
		frame = &model.Frame{}
	}
	defer model.FrameToPool(frame, g.pool)

	g.sim.SnapshotInto(frame)
	return g.renderer.Display(frame)
}

// waitFrame sleeps for the frame delay unless ctx is cancelled first
func waitFrame(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// run renders generation 0 and then the configured number of generations
func (g *game) run(ctx context.Context) error {
	if err := g.render(); err != nil {
		return err
	}

	var (
		detector      model.StagnationDetector
		stagnantCount = 0
	)
	detector.Observe(g.sim.Fingerprint())

	for i := 1; i <= g.config.Generations; i++ {
		if err := waitFrame(ctx, g.config.FrameRate); err != nil {
			return err
		}

		frameStart := time.Now()
		g.sim.Step()
		if err := g.render(); err != nil {
			return err
		}
		g.stats.Update(g.sim.Generation(), g.sim.LivingCells(), time.Since(frameStart))

		if !g.config.StopWhenStable {
			continue
		}
		if detector.Observe(g.sim.Fingerprint()) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if g.sim.LivingCells() == 0 || stagnantCount >= g.config.StagnationThreshold {
			g.logger.Info("stopping early",
				"generation", g.sim.Generation(),
				"living", g.sim.LivingCells(),
				"stagnant_generations", stagnantCount)
			return nil
		}
	}
	return nil
}

// logSummary reports the final performance figures
func (g *game) logSummary() {
	g.logger.Info("simulation finished",
		"generations", g.sim.Generation(),
		"living", g.sim.LivingCells(),
		"gen_per_sec", g.stats.GenerationsPerSecond,
		"avg_population", g.stats.AveragePopulation,
		"runtime", g.stats.Runtime())
}
