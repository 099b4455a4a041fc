package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellSeparator = " "
	rowTerminator = "\n"

	clearScreen = "\033[H\033[2J"
)

// String renders the grid one row per line, every cell followed by a space.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (2*g.width + 1))
	for _, row := range g.cells {
		for _, cell := range row {
			sb.WriteString(cell.String())
			sb.WriteString(cellSeparator)
		}
		sb.WriteString(rowTerminator)
	}
	return sb.String()
}

// Sink receives each generation for presentation
type Sink interface {
	Present(g *Grid, generation int) error
}

// TextSink writes the plain text rendering of every generation
type TextSink struct {
	W io.Writer
}

// Present writes the grid followed by a blank separator line
func (s *TextSink) Present(g *Grid, generation int) error {
	if _, err := io.WriteString(s.W, g.String()+rowTerminator); err != nil {
		return errors.Wrapf(err, "[TextSink.Present] failed to write generation %d", generation)
	}
	return nil
}

// TerminalRenderer redraws the grid in place on an ANSI terminal
type TerminalRenderer struct {
	W io.Writer
}

// Present clears the screen and draws the grid
func (r *TerminalRenderer) Present(g *Grid, generation int) error {
	if _, err := io.WriteString(r.W, clearScreen+g.String()); err != nil {
		return errors.Wrapf(err, "[TerminalRenderer.Present] failed to write generation %d", generation)
	}
	return nil
}
