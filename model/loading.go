package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadGrid reads a square grid from the file at path. A missing file yields
// ErrSourceNotFound; content problems yield ErrMalformedInput.
func LoadGrid(path string, symbols Symbols) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceNotFound, "[LoadGrid] %s", path)
		}
		return nil, errors.Wrapf(err, "[LoadGrid] failed to open file: %s", path)
	}
	defer f.Close()

	g, err := ParseGrid(f, symbols)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] %s", path)
	}
	return g, nil
}

// ParseGrid reads one grid row per line. Every line must have the same length,
// the number of lines must equal that length, and every character must be one
// of the two symbols.
func ParseGrid(r io.Reader, symbols Symbols) (*Grid, error) {
	var (
		rows    [][]bool
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lineNum := len(rows) + 1

		row := make([]bool, 0, len(line))
		for column, ch := range []rune(line) {
			switch ch {
			case symbols.Alive:
				row = append(row, true)
			case symbols.Dead:
				row = append(row, false)
			default:
				return nil, errors.Wrapf(ErrMalformedInput,
					"[ParseGrid] line %d column %d: %q is neither %q nor %q",
					lineNum, column+1, ch, symbols.Alive, symbols.Dead)
			}
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrMalformedInput, "[ParseGrid] line %d has %d cells, expected %d",
				lineNum, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to read input")
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "[ParseGrid] input is empty")
	}
	if len(rows) != len(rows[0]) {
		return nil, errors.Wrapf(ErrMalformedInput, "[ParseGrid] %d lines of %d cells is not square",
			len(rows), len(rows[0]))
	}

	return NewGrid(len(rows), func(row, column int) bool {
		return rows[row][column]
	})
}
