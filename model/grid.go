package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Cell identifies a grid position: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Grid holds two equally sized cell matrices. One is the current generation, the other
// is the scratch buffer the next generation is written into. Dimensions never change.
type Grid struct {
	width   int
	height  int
	buffers [2][][]bool
	current int
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width=%d height=%d", width, height)
	}
	g := &Grid{width: width, height: height}
	for i := range g.buffers {
		g.buffers[i] = newCells(width, height)
	}
	return g, nil
}

func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsAlive returns the state of a cell in the current generation.
// Reading outside the grid is a programming error and panics.
func (g *Grid) IsAlive(x, y int) bool {
	if !g.InBounds(x, y) {
		panic(errors.Wrapf(ErrOutOfBounds, "[IsAlive] (%d, %d) outside %dx%d", x, y, g.width, g.height))
	}
	return g.buffers[g.current][y][x]
}

// Seed clears the current generation and marks the given cells alive.
// If any cell is out of range nothing is written and an error is returned.
func (g *Grid) Seed(cells []Cell) error {
	for _, c := range cells {
		if !g.InBounds(c.X, c.Y) {
			return errors.Wrapf(ErrOutOfBounds, "[Seed] (%d, %d) outside %dx%d", c.X, c.Y, g.width, g.height)
		}
	}

	cur := g.buffers[g.current]
	for y := range cur {
		clear(cur[y])
	}
	for _, c := range cells {
		cur[c.Y][c.X] = true
	}
	return nil
}

// Swap makes the scratch buffer the current generation. It only flips an index.
func (g *Grid) Swap() {
	g.current = 1 - g.current
}

func (g *Grid) cur() [][]bool {
	return g.buffers[g.current]
}

func (g *Grid) next() [][]bool {
	return g.buffers[1-g.current]
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cur() {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 fingerprint of the current generation
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for _, cells := range g.cur() {
		for x, alive := range cells {
			if alive {
				row[x] = 1
			} else {
				row[x] = 0
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
