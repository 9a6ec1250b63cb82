package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

const (
	DefaultAliveGlyph = "■ "
	DefaultDeadGlyph  = ". "

	clearScreenSeq = "\033[H\033[2J"
	aliveColor     = "42"
)

// RenderOptions controls how frames are drawn
type RenderOptions struct {
	AliveGlyph  string
	DeadGlyph   string
	Color       bool
	ClearScreen bool
}

// TerminalRenderer writes one glyph per cell and one line per row
type TerminalRenderer struct {
	out         io.Writer
	alive       string
	dead        string
	clearScreen bool
	buf         strings.Builder
}

// NewTerminalRenderer builds a renderer writing to out
func NewTerminalRenderer(out io.Writer, opts RenderOptions) *TerminalRenderer {
	r := &TerminalRenderer{
		out:         out,
		alive:       opts.AliveGlyph,
		dead:        opts.DeadGlyph,
		clearScreen: opts.ClearScreen,
	}
	if r.alive == "" {
		r.alive = DefaultAliveGlyph
	}
	if r.dead == "" {
		r.dead = DefaultDeadGlyph
	}
	if opts.Color {
		style := lipgloss.NewRenderer(out).NewStyle().
			Foreground(lipgloss.Color(aliveColor)).
			Bold(true)
		r.alive = style.Render(r.alive)
	}
	return r
}

// Display renders the frame with its generation header, followed by a blank line
func (r *TerminalRenderer) Display(f *Frame) error {
	r.buf.Reset()
	if r.clearScreen {
		r.buf.WriteString(clearScreenSeq)
	}

	if f.Generation == 0 {
		r.buf.WriteString("Generation: 0 (Initial State)\n")
	} else {
		fmt.Fprintf(&r.buf, "Generation: %d\n", f.Generation)
	}

	for _, row := range f.Cells {
		for _, alive := range row {
			if alive {
				r.buf.WriteString(r.alive)
			} else {
				r.buf.WriteString(r.dead)
			}
		}
		r.buf.WriteByte('\n')
	}
	r.buf.WriteByte('\n')

	if _, err := io.WriteString(r.out, r.buf.String()); err != nil {
		return errors.Wrapf(err, "[Display] failed to write generation %d", f.Generation)
	}
	return nil
}
