package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	defaultAliveSymbol = '1'
	defaultDeadSymbol  = '0'

	initialHeader = "Initial Matrix:"

	macosClearCmd = "clear"
)

// Symbols are the two characters used to read and display cell states
type Symbols struct {
	Alive rune
	Dead  rune
}

// DefaultSymbols returns '1' for alive and '0' for dead
func DefaultSymbols() Symbols {
	return Symbols{Alive: defaultAliveSymbol, Dead: defaultDeadSymbol}
}

// Renderer receives each generation as the simulator produces it
type Renderer interface {
	Render(generation int, g *Grid) error
}

// RendererFunc adapts a plain function to the Renderer interface
type RendererFunc func(generation int, g *Grid) error

// Render calls f(generation, g)
func (f RendererFunc) Render(generation int, g *Grid) error {
	return f(generation, g)
}

// FormatGrid renders the grid row by row, top to bottom, one line per row
func FormatGrid(g *Grid, symbols Symbols) string {
	var sb strings.Builder
	sb.Grow(g.side * (g.side + 1))
	for row := range g.cells {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, alive := range g.cells[row] {
			if alive {
				sb.WriteRune(symbols.Alive)
			} else {
				sb.WriteRune(symbols.Dead)
			}
		}
	}
	return sb.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out         io.Writer
	Symbols     Symbols
	ClearScreen bool
}

// NewTerminalRenderer creates a renderer writing to stdout with the given symbols
func NewTerminalRenderer(symbols Symbols, clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Symbols: symbols, ClearScreen: clearScreen}
}

// Render writes a header line, the grid and a trailing blank line
func (r *TerminalRenderer) Render(generation int, g *Grid) error {
	if r.ClearScreen {
		r.Clear()
	}

	header := initialHeader
	if generation > 0 {
		header = fmt.Sprintf("Generation %d:", generation)
	}
	if _, err := fmt.Fprintf(r.out(), "%s\n%s\n\n", header, FormatGrid(g, r.Symbols)); err != nil {
		return errors.Wrapf(err, "[Render] failed to write generation %d", generation)
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
