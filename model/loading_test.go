package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]bool
	}{
		{
			name:  "single cell",
			input: "1",
			want:  [][]bool{{true}},
		},
		{
			name:  "trailing newline",
			input: "10\n01\n",
			want:  [][]bool{{true, false}, {false, true}},
		},
		{
			name:  "crlf line endings",
			input: "100\r\n000\r\n001\r\n",
			want:  [][]bool{{true, false, false}, {false, false, false}, {false, false, true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(strings.NewReader(tt.input), DefaultSymbols())
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), g.SideLength())
			assert.Equal(t, tt.want, g.Cells())
		})
	}
}

func TestParseGridRowsAreLines(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("110\n000\n000"), DefaultSymbols())
	require.NoError(t, err)

	alive, err := g.Get(0, 1)
	require.NoError(t, err)
	assert.True(t, alive)

	alive, err = g.Get(1, 0)
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestParseGridCustomSymbols(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("#.\n.#"), Symbols{Alive: '#', Dead: '.'})
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, false}, {false, true}}, g.Cells())

	_, err = ParseGrid(strings.NewReader("10\n01"), Symbols{Alive: '#', Dead: '.'})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseGridMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only newlines", input: "\n\n"},
		{name: "illegal symbol", input: "10\n0x"},
		{name: "space", input: "1 \n00"},
		{name: "ragged rows", input: "100\n01\n000"},
		{name: "blank line inside", input: "10\n\n01"},
		{name: "more rows than columns", input: "10\n01\n11"},
		{name: "more columns than rows", input: "101\n010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(strings.NewReader(tt.input), DefaultSymbols())
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.NotErrorIs(t, err, ErrSourceNotFound)
		})
	}
}

func TestLoadGrid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "blinker.txt")
	require.NoError(t, os.WriteFile(path, []byte("000\n111\n000\n"), 0o644))
	g, err := LoadGrid(path, DefaultSymbols())
	require.NoError(t, err)
	assert.Equal(t, 3, g.SideLength())
	assert.Equal(t, 3, g.CountLivingCells())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0002\n"), 0o644))
	_, err = LoadGrid(bad, DefaultSymbols())
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), bad)

	_, err = LoadGrid(filepath.Join(dir, "missing.txt"), DefaultSymbols())
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.NotErrorIs(t, err, ErrMalformedInput)
}
