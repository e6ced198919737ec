package model

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGrid(t *testing.T) {
	g := gridFromRows(t,
		"100",
		"010",
		"001",
	)
	assert.Equal(t, "100\n010\n001", FormatGrid(g, DefaultSymbols()))
	assert.Equal(t, "█··\n·█·\n··█", FormatGrid(g, Symbols{Alive: '█', Dead: '·'}))
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf, Symbols: DefaultSymbols()}
	g := gridFromRows(t, "10", "01")

	require.NoError(t, r.Render(0, g))
	require.NoError(t, r.Render(1, g))
	assert.Equal(t, "Initial Matrix:\n10\n01\n\nGeneration 1:\n10\n01\n\n", buf.String())
}

func TestRendererFuncReceivesEveryGeneration(t *testing.T) {
	var buf bytes.Buffer
	terminal := &TerminalRenderer{Out: &buf, Symbols: DefaultSymbols()}
	g := gridFromRows(t,
		"000",
		"111",
		"000",
	)

	var populations []int
	err := NewSimulator().Simulate(context.Background(), g, 2, RendererFunc(func(generation int, g *Grid) error {
		populations = append(populations, g.CountLivingCells())
		return terminal.Render(generation, g)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3}, populations)
	assert.Equal(t,
		"Initial Matrix:\n000\n111\n000\n\n"+
			"Generation 1:\n010\n010\n010\n\n"+
			"Generation 2:\n000\n111\n000\n\n",
		buf.String())
}
