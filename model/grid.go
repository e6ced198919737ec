package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// neighborOffsets lists the (row, column) offsets of the eight adjacent cells
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid represents a square game board. Cells outside the board are always dead;
// the board does not wrap at its edges.
type Grid struct {
	side  int
	cells [][]bool
}

// NewGrid creates a sideLength x sideLength grid. Each cell is seeded from init,
// or left dead when init is nil.
func NewGrid(sideLength int, init func(row, column int) bool) (*Grid, error) {
	if sideLength <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] side length %d", sideLength)
	}

	cells := make([][]bool, sideLength)
	for row := range cells {
		cells[row] = make([]bool, sideLength)
		if init == nil {
			continue
		}
		for column := range cells[row] {
			cells[row][column] = init(row, column)
		}
	}
	return &Grid{side: sideLength, cells: cells}, nil
}

// SideLength returns the number of rows, which is also the number of columns
func (g *Grid) SideLength() int {
	return g.side
}

// IsInBounds reports whether (row, column) lies on the grid
func (g *Grid) IsInBounds(row, column int) bool {
	return row >= 0 && row < g.side && column >= 0 && column < g.side
}

// Get returns the state of a cell
func (g *Grid) Get(row, column int) (bool, error) {
	if !g.IsInBounds(row, column) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Get] (%d, %d) on a %dx%d grid", row, column, g.side, g.side)
	}
	return g.cells[row][column], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, column int, alive bool) error {
	if !g.IsInBounds(row, column) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d, %d) on a %dx%d grid", row, column, g.side, g.side)
	}
	g.cells[row][column] = alive
	return nil
}

// CountLivingNeighbors counts the living cells among the up to eight on-grid
// neighbors of (row, column). Off-grid neighbors count as dead.
func (g *Grid) CountLivingNeighbors(row, column int) (int, error) {
	if !g.IsInBounds(row, column) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[CountLivingNeighbors] (%d, %d) on a %dx%d grid",
			row, column, g.side, g.side)
	}
	return g.countLivingNeighbors(row, column), nil
}

// countLivingNeighbors is CountLivingNeighbors without the centre bounds check
func (g *Grid) countLivingNeighbors(row, column int) (count int) {
	for _, offset := range neighborOffsets {
		nr, nc := row+offset[0], column+offset[1]
		if g.IsInBounds(nr, nc) && g.cells[nr][nc] {
			count++
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Cells returns a copy of the cell states, indexed [row][column]
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.side)
	for row := range g.cells {
		out[row] = append([]bool(nil), g.cells[row]...)
	}
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{side: g.side, cells: g.Cells()}
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.side != other.side {
		return false
	}
	for row := range g.cells {
		for column := range g.cells[row] {
			if g.cells[row][column] != other.cells[row][column] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, g.side)
	for _, row := range g.cells {
		for column, alive := range row {
			buf[column] = 0
			if alive {
				buf[column] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
