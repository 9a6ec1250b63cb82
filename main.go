package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// flagValues mirrors the command line overrides of utils.Config
type flagValues struct {
	configFile     string
	width          int
	height         int
	generations    int
	frameRate      time.Duration
	boundary       string
	pattern        string
	workers        int
	logLevel       string
	noColor        bool
	clearScreen    bool
	stopWhenStable bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var flags flagValues
	defaults := utils.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "go-life",
		Short: "Play Conway's Game of Life in the terminal",
		Long: fmt.Sprintf("Seeds a pattern on a fixed grid and renders each generation as text.\n"+
			"Known patterns: %v", model.PatternNames()),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			logger, err := utils.NewLogger(errOut, config.LogLevel)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, err := initializeGame(config, out, logger)
			if err != nil {
				return err
			}
			logger.Info("starting simulation",
				"width", config.Width,
				"height", config.Height,
				"boundary", config.Boundary,
				"pattern", config.Pattern,
				"generations", config.Generations)

			err = g.run(ctx)
			g.logSummary()
			if errors.Is(err, context.Canceled) {
				logger.Info("shutting down gracefully")
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "JSON or YAML config file")
	f.IntVar(&flags.width, "width", defaults.Width, "grid width in cells")
	f.IntVar(&flags.height, "height", defaults.Height, "grid height in cells")
	f.IntVarP(&flags.generations, "generations", "n", defaults.Generations, "number of generations to play")
	f.DurationVar(&flags.frameRate, "frame-rate", defaults.FrameRate, "delay between generations")
	f.StringVarP(&flags.boundary, "boundary", "b", defaults.Boundary, "edge behaviour: toroidal or finite")
	f.StringVarP(&flags.pattern, "pattern", "p", defaults.Pattern, "seed pattern")
	f.IntVar(&flags.workers, "workers", defaults.Workers, "goroutines per generation (0 = one per CPU)")
	f.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "debug, info, warn or error")
	f.BoolVar(&flags.noColor, "no-color", false, "disable coloured live cells")
	f.BoolVar(&flags.clearScreen, "clear", defaults.ClearScreen, "clear the terminal before each generation")
	f.BoolVar(&flags.stopWhenStable, "stop-when-stable", defaults.StopWhenStable, "stop once the grid dies out or repeats")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file (or defaults) and validates the result
func resolveConfig(cmd *cobra.Command, flags flagValues) (utils.Config, error) {
	config := utils.DefaultConfig()
	if flags.configFile != "" {
		var err error
		if config, err = utils.LoadConfig(flags.configFile); err != nil {
			return config, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		config.Width = flags.width
	}
	if changed("height") {
		config.Height = flags.height
	}
	if changed("generations") {
		config.Generations = flags.generations
	}
	if changed("frame-rate") {
		config.FrameRate = flags.frameRate
	}
	if changed("boundary") {
		config.Boundary = flags.boundary
	}
	if changed("pattern") {
		config.Pattern = flags.pattern
	}
	if changed("workers") {
		config.Workers = flags.workers
	}
	if changed("log-level") {
		config.LogLevel = flags.logLevel
	}
	if changed("no-color") {
		config.Color = !flags.noColor
	}
	if changed("clear") {
		config.ClearScreen = flags.clearScreen
	}
	if changed("stop-when-stable") {
		config.StopWhenStable = flags.stopWhenStable
	}

	return config, config.Validate()
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
