package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.width, tt.height)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrInvalidDimensions))
		})
	}
}

func TestNewGrid_StartsDead(t *testing.T) {
	g, err := NewGrid(7, 4)
	require.NoError(t, err)

	assert.Equal(t, 7, g.GetWidth())
	assert.Equal(t, 4, g.GetHeight())
	assert.Zero(t, g.CountLivingCells())
	for _, buf := range g.buffers {
		require.Len(t, buf, 4)
		for _, row := range buf {
			assert.Len(t, row, 7)
		}
	}
}

func TestGrid_Seed(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	require.NoError(t, g.Seed([]Cell{{0, 0}, {4, 4}, {2, 3}}))
	assert.True(t, g.IsAlive(0, 0))
	assert.True(t, g.IsAlive(4, 4))
	assert.True(t, g.IsAlive(2, 3))
	assert.Equal(t, 3, g.CountLivingCells())

	// reseeding replaces rather than merges
	require.NoError(t, g.Seed([]Cell{{1, 1}}))
	assert.False(t, g.IsAlive(0, 0))
	assert.True(t, g.IsAlive(1, 1))
	assert.Equal(t, 1, g.CountLivingCells())
}

func TestGrid_SeedOutOfBounds(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.Seed([]Cell{{2, 2}}))

	err = g.Seed([]Cell{{1, 1}, {5, 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	// nothing was written
	assert.True(t, g.IsAlive(2, 2))
	assert.False(t, g.IsAlive(1, 1))
}

func TestGrid_IsAlivePanicsOutOfBounds(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		assert.Panics(t, func() { g.IsAlive(c.X, c.Y) }, "(%d, %d)", c.X, c.Y)
	}
}

func TestGrid_SwapExchangesBuffers(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	cur, next := g.cur(), g.next()
	g.Swap()
	assert.Same(t, &next[0][0], &g.cur()[0][0])
	assert.Same(t, &cur[0][0], &g.next()[0][0])

	g.Swap()
	assert.Same(t, &cur[0][0], &g.cur()[0][0])
}

func TestGrid_GetGridHash(t *testing.T) {
	a, err := NewGrid(6, 6)
	require.NoError(t, err)
	b, err := NewGrid(6, 6)
	require.NoError(t, err)

	assert.Equal(t, a.GetGridHash(), b.GetGridHash())

	require.NoError(t, a.Seed([]Cell{{1, 2}}))
	assert.NotEqual(t, a.GetGridHash(), b.GetGridHash())

	require.NoError(t, b.Seed([]Cell{{1, 2}}))
	assert.Equal(t, a.GetGridHash(), b.GetGridHash())
}
