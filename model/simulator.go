package model

import (
	"context"
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Simulator advances grids one generation at a time. It holds no grid state of
// its own; every step reads one grid and returns a newly allocated one.
type Simulator struct {
	workers int
}

// Option configures a Simulator
type Option func(*Simulator)

// WithWorkers splits each step across n goroutines by row band. Values below
// one are treated as one.
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		s.workers = max(1, n)
	}
}

// NewSimulator creates a sequential simulator unless overridden by options
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the number of goroutines used per step
func (s *Simulator) Workers() int {
	return s.workers
}

// Step computes the generation after current. current is only read; the result
// is a fresh grid of the same side length.
func (s *Simulator) Step(current *Grid) (*Grid, error) {
	if current == nil || current.side <= 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[Step] grid has no cells")
	}

	next, err := NewGrid(current.side, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[Step] failed to allocate next generation")
	}

	if s.workers <= 1 {
		stepRows(current, next, 0, current.side)
		return next, nil
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (current.side + s.workers - 1) / s.workers // Ceiling division
	)

	for i := range s.workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, current.side)
		)
		if startRow >= current.side {
			break
		}

		eg.Go(func() error {
			stepRows(current, next, startRow, endRow)
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[Step] parallel step failed")
	}
	return next, nil
}

// stepRows writes next's rows [startRow, endRow) from current. Bands never
// overlap, so concurrent calls on disjoint bands share no writes.
func stepRows(current, next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for column := range current.side {
			neighbors := current.countLivingNeighbors(row, column)
			next.cells[row][column] = rules.ApplyConwayRules(neighbors, current.cells[row][column])
		}
	}
}

// Run returns the sequence of generations 0 through generations. Generation 0
// is a copy of initial; each later grid is produced lazily when the consumer
// asks for it, so breaking out of the loop stops the simulation. Consumers
// must treat yielded grids as read-only.
func (s *Simulator) Run(initial *Grid, generations int) (iter.Seq2[int, *Grid], error) {
	if generations < 0 {
		return nil, errors.Wrapf(ErrInvalidGenerationCount, "[Run] requested %d generations", generations)
	}
	if initial == nil || initial.side <= 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[Run] initial grid has no cells")
	}

	start := initial.Clone()
	return func(yield func(int, *Grid) bool) {
		current := start
		if !yield(0, current) {
			return
		}
		for generation := 1; generation <= generations; generation++ {
			next, err := s.Step(current)
			if err != nil {
				// unreachable: current always has a positive side length
				return
			}
			current = next
			if !yield(generation, current) {
				return
			}
		}
	}, nil
}

// Simulate runs the simulation and hands every generation to renderer in
// order. It stops early when ctx is done or the renderer fails.
func (s *Simulator) Simulate(ctx context.Context, initial *Grid, generations int, renderer Renderer) error {
	seq, err := s.Run(initial, generations)
	if err != nil {
		return errors.Wrap(err, "[Simulate] failed to start")
	}

	for generation, grid := range seq {
		if err = ctx.Err(); err != nil {
			return errors.Wrapf(err, "[Simulate] stopped before generation %d", generation)
		}
		if err = renderer.Render(generation, grid); err != nil {
			return errors.Wrapf(err, "[Simulate] failed to render generation %d", generation)
		}
	}
	return nil
}
