package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	exitSuccess        = 0
	exitSourceNotFound = 1
	exitMalformedInput = 2
	exitFailure        = 3

	defaultConfigPath = "config.json"

	generationsPrompt = "Welcome to Conway's Game of Life! Please enter the number of generations you would like to simulate: "
)

// exitCode maps an error from the run to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, model.ErrSourceNotFound):
		return exitSourceNotFound
	case errors.Is(err, model.ErrMalformedInput):
		return exitMalformedInput
	default:
		return exitFailure
	}
}

// loadConfig reads the config file, falling back to defaults when the default
// file is absent. A missing file that was asked for explicitly is an error.
func loadConfig(path string, explicit bool, logger *log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		logger.Printf("Using default configuration (%s not found)", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// applyFlags overrides config fields with the flags that were set on the command line
func applyFlags(flags *flag.FlagSet, config *utils.Config) {
	flags.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch f.Name {
		case "generations":
			config.Generations = getter.Get().(int)
		case "workers":
			config.Workers = getter.Get().(int)
		case "clear":
			config.ClearScreen = getter.Get().(bool)
		case "stats":
			config.ShowStats = getter.Get().(bool)
		case "frame-rate":
			config.FrameRate = getter.Get().(time.Duration)
		case "alive":
			config.AliveSymbol = getter.Get().(string)
		case "dead":
			config.DeadSymbol = getter.Get().(string)
		}
	})
	if flags.NArg() > 0 {
		config.InputPath = flags.Arg(0)
	}
}

// readGenerations prompts for and parses the number of generations to simulate
func readGenerations(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprintln(out, generationsPrompt)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "[readGenerations] failed to read generation count")
		}
		return 0, errors.New("[readGenerations] no generation count given")
	}

	text := strings.TrimSpace(scanner.Text())
	generations, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(err, "[readGenerations] %q is not a number", text)
	}
	return generations, nil
}

// newGameRenderer prints each generation and feeds it to stats. With a frame
// rate set it pauses between generations until ctx is done.
func newGameRenderer(ctx context.Context, config utils.Config, out io.Writer, stats *utils.Stats) model.Renderer {
	alive, dead := config.Symbols()
	terminal := &model.TerminalRenderer{
		Out:         out,
		Symbols:     model.Symbols{Alive: alive, Dead: dead},
		ClearScreen: config.ClearScreen,
	}

	return model.RendererFunc(func(generation int, g *model.Grid) error {
		if generation > 0 && config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.FrameRate):
			}
		}
		stats.Observe(generation, g.CountLivingCells(), g.Hash())
		return terminal.Render(generation, g)
	})
}

// displayStats shows the run summary
func displayStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Generations: %d | Living: %d (initial %d, peak %d, avg %.1f)\n",
		stats.TotalGenerations, stats.FinalPopulation, stats.InitialPopulation,
		stats.PeakPopulation, stats.AveragePopulation)

	switch {
	case stats.ExtinctAt >= 0:
		fmt.Fprintf(out, "Status: Extinct at generation %d\n", stats.ExtinctAt)
	case stats.StableAt >= 0 && stats.StablePeriod == 1:
		fmt.Fprintf(out, "Status: Still life from generation %d\n", stats.StableAt-1)
	case stats.StableAt >= 0:
		fmt.Fprintf(out, "Status: Period %d oscillator from generation %d\n",
			stats.StablePeriod, stats.StableAt-stats.StablePeriod)
	default:
		fmt.Fprintln(out, "Status: Active")
	}

	fmt.Fprintf(out, "Performance: %.1f gen/sec | Runtime: %.3fs\n",
		stats.GenerationsPerSecond(), stats.Elapsed().Seconds())
}
