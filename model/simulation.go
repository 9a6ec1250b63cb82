package model

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// Simulation is a Game of Life run on a fixed grid with a fixed boundary.
// It is not safe for concurrent use.
type Simulation struct {
	grid       *Grid
	engine     *Engine
	boundary   Boundary
	generation int
	logger     *slog.Logger
}

type options struct {
	workers int
	logger  *slog.Logger
}

// Option configures a Simulation
type Option func(*options)

// WithWorkers splits each generation across n goroutines; n <= 0 means one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger used for per-generation debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewSimulation creates an all-dead simulation at generation 0.
func NewSimulation(width, height int, boundary Boundary, opts ...Option) (*Simulation, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}
	engine, err := NewEngine(boundary, o.workers)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}

	return &Simulation{
		grid:     grid,
		engine:   engine,
		boundary: boundary,
		logger:   o.logger.With("boundary", boundary.String(), "width", width, "height", height),
	}, nil
}

// Seed replaces the current generation with the given live cells and makes it generation 0.
func (s *Simulation) Seed(cells []Cell) error {
	if err := s.grid.Seed(cells); err != nil {
		return errors.Wrap(err, "[Simulation.Seed]")
	}
	s.generation = 0
	s.logger.Debug("grid seeded", "cells", len(cells))
	return nil
}

// SeedGlider places the standard glider centred on the grid.
func (s *Simulation) SeedGlider() error {
	return s.Seed(Glider(s.grid.width/2, s.grid.height/2))
}

// SeedPattern places a registered pattern centred on the grid.
func (s *Simulation) SeedPattern(name string) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	return s.Seed(p(s.grid.width/2, s.grid.height/2))
}

// Step advances exactly one generation: compute the next buffer, then swap.
func (s *Simulation) Step() {
	s.engine.Compute(s.grid)
	s.grid.Swap()
	s.generation++

	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("generation computed", "generation", s.generation, "living", s.grid.CountLivingCells())
	}
}

// CellAt returns whether (x, y) is alive in the current generation.
func (s *Simulation) CellAt(x, y int) (bool, error) {
	if !s.grid.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[CellAt] (%d, %d) outside %dx%d", x, y, s.grid.width, s.grid.height)
	}
	return s.grid.IsAlive(x, y), nil
}

// LiveNeighbors returns the neighbour count of (x, y) under the simulation's boundary.
func (s *Simulation) LiveNeighbors(x, y int) (int, error) {
	if !s.grid.InBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[LiveNeighbors] (%d, %d) outside %dx%d", x, y, s.grid.width, s.grid.height)
	}
	return s.engine.counter.CountNeighbors(s.grid, x, y), nil
}

// Dimensions returns the grid width and height
func (s *Simulation) Dimensions() (width, height int) {
	return s.grid.width, s.grid.height
}

// Generation returns how many steps have been taken since seeding
func (s *Simulation) Generation() int {
	return s.generation
}

// Boundary returns the boundary the simulation was built with
func (s *Simulation) Boundary() Boundary {
	return s.boundary
}

// LivingCells returns the number of live cells in the current generation
func (s *Simulation) LivingCells() int {
	return s.grid.CountLivingCells()
}

// Fingerprint returns a hash of the current generation
func (s *Simulation) Fingerprint() string {
	return s.grid.GetGridHash()
}

// SnapshotInto copies the current generation into f, resizing it if needed.
func (s *Simulation) SnapshotInto(f *Frame) {
	if f.Width != s.grid.width || f.Height != s.grid.height || len(f.Cells) != s.grid.height {
		f.Reset(s.grid.width, s.grid.height)
	}
	f.Generation = s.generation
	for y, row := range s.grid.cur() {
		copy(f.Cells[y], row)
	}
}
