package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Boundary selects how neighbours are found at the grid edges.
type Boundary int

const (
	// Toroidal wraps each axis so opposite edges touch.
	Toroidal Boundary = iota
	// Finite treats the edges as hard limits; off-grid neighbours do not exist.
	Finite
)

func (b Boundary) String() string {
	switch b {
	case Toroidal:
		return "toroidal"
	case Finite:
		return "finite"
	default:
		return "unknown"
	}
}

// ParseBoundary maps a config value to a Boundary
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "finite", "bounded":
		return Finite, nil
	}
	return 0, errors.Wrapf(ErrUnknownBoundary, "[ParseBoundary] %q", s)
}

// neighborOffsets lists the (dx, dy) pairs of the eight surrounding cells.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborCounter counts the live neighbours of (x, y) in the current generation of a grid.
type NeighborCounter interface {
	CountNeighbors(g *Grid, x, y int) int
}

// NewNeighborCounter returns the counting strategy for a boundary.
func NewNeighborCounter(b Boundary) (NeighborCounter, error) {
	switch b {
	case Toroidal:
		return toroidalCounter{}, nil
	case Finite:
		return finiteCounter{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownBoundary, "[NewNeighborCounter] %d", int(b))
}

type toroidalCounter struct{}

func (toroidalCounter) CountNeighbors(g *Grid, x, y int) (count int) {
	cells := g.cur()
	for _, off := range neighborOffsets {
		nx := (x + off[0] + g.width) % g.width
		ny := (y + off[1] + g.height) % g.height
		if cells[ny][nx] {
			count++
		}
	}
	return
}

type finiteCounter struct{}

func (finiteCounter) CountNeighbors(g *Grid, x, y int) (count int) {
	cells := g.cur()
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if g.InBounds(nx, ny) && cells[ny][nx] {
			count++
		}
	}
	return
}
