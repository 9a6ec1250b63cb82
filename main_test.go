package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/utils"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() utils.Config {
	c := utils.DefaultConfig()
	c.FrameRate = 0
	c.Color = false
	return c
}

func TestRun_RendersEveryGeneration(t *testing.T) {
	var out bytes.Buffer
	g, err := initializeGame(testConfig(), &out, quietLogger())
	require.NoError(t, err)

	require.NoError(t, g.run(context.Background()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Generation: 0 (Initial State)\n"))
	for i := 1; i <= 10; i++ {
		assert.Contains(t, text, "Generation: "+strconv.Itoa(i)+"\n")
	}
	assert.NotContains(t, text, "Generation: 11")
	// 11 frames of 25 rows, a header and a blank line each
	assert.Equal(t, 11*27, strings.Count(text, "\n"))
	assert.Equal(t, 11*5, strings.Count(text, "■"))
	assert.Equal(t, 10, g.sim.Generation())
}

func TestRun_StopsWhenStable(t *testing.T) {
	c := testConfig()
	c.Pattern = "block"
	c.Generations = 50
	c.StopWhenStable = true
	c.StagnationThreshold = 2

	var out bytes.Buffer
	g, err := initializeGame(c, &out, quietLogger())
	require.NoError(t, err)
	require.NoError(t, g.run(context.Background()))

	assert.Equal(t, 2, g.sim.Generation())
}

func TestRun_Cancelled(t *testing.T) {
	c := testConfig()
	c.FrameRate = time.Hour

	g, err := initializeGame(c, io.Discard, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = g.run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, g.sim.Generation())
}

func TestInitializeGame_Errors(t *testing.T) {
	c := testConfig()
	c.Pattern = "spaceship"
	_, err := initializeGame(c, io.Discard, quietLogger())
	assert.Error(t, err)

	c = testConfig()
	c.Boundary = "mobius"
	_, err = initializeGame(c, io.Discard, quietLogger())
	assert.Error(t, err)

	c = testConfig()
	c.Width, c.Height = 2, 2
	_, err = initializeGame(c, io.Discard, quietLogger())
	assert.Error(t, err)
}

func TestRootCmd_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 8\nheight: 8\ngenerations: 1\nframe_rate: 0s\nboundary: finite\n"), 0o600))

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--config", path, "--generations", "2", "--pattern", "blinker", "--no-color", "--log-level", "info"})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Generation: 2\n")
	assert.NotContains(t, text, "Generation: 3")
	assert.Contains(t, text, ". . . . . . . . \n")
	assert.Contains(t, errOut.String(), "boundary=finite")
	assert.Contains(t, errOut.String(), "simulation finished")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--width", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Width")
	assert.Empty(t, out.String())
}
