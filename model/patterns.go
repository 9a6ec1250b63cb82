package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// PatternFunc places a pattern around the centre (midX, midY).
type PatternFunc func(midX, midY int) []Cell

var patterns = map[string]PatternFunc{
	"glider":  Glider,
	"block":   Block,
	"blinker": Blinker,
}

// Glider returns the five cells of a glider heading towards +x, +y:
//
//	. X .
//	. . X
//	X X X
func Glider(midX, midY int) []Cell {
	return []Cell{
		{midX, midY - 1},
		{midX + 1, midY},
		{midX - 1, midY + 1},
		{midX, midY + 1},
		{midX + 1, midY + 1},
	}
}

// Block returns a 2x2 still life with its top-left cell at (midX, midY)
func Block(midX, midY int) []Cell {
	return []Cell{
		{midX, midY},
		{midX + 1, midY},
		{midX, midY + 1},
		{midX + 1, midY + 1},
	}
}

// Blinker returns a horizontal period-2 oscillator centred on (midX, midY)
func Blinker(midX, midY int) []Cell {
	return []Cell{
		{midX - 1, midY},
		{midX, midY},
		{midX + 1, midY},
	}
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (PatternFunc, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q (known: %s)",
			name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

// PatternNames lists the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
