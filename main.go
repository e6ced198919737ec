package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one simulation and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "go-life: ", 0)

	flags := flag.NewFlagSet("go-life", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: go-life [flags] <input-file>")
		flags.PrintDefaults()
	}
	configPath := flags.String("config", defaultConfigPath, "path to a JSON config file")
	flags.Int("generations", utils.AskGenerations, "number of generations to simulate (-1 asks on stdin)")
	flags.Int("workers", 1, "goroutines used per generation")
	flags.Bool("clear", false, "clear the terminal before each generation")
	flags.Bool("stats", false, "print a run summary at the end")
	flags.Duration("frame-rate", 0, "pause between generations")
	flags.String("alive", "1", "symbol for a living cell")
	flags.String("dead", "0", "symbol for a dead cell")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitFailure
	}

	explicitConfig := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	config, err := loadConfig(*configPath, explicitConfig, logger)
	if err != nil {
		logger.Printf("%v", err)
		return exitFailure
	}
	applyFlags(flags, &config)

	if err = config.Validate(); err != nil {
		logger.Printf("%v", err)
		return exitFailure
	}
	if config.InputPath == "" {
		flags.Usage()
		return exitFailure
	}

	err = play(ctx, config, stdin, stdout, logger)
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, context.Canceled):
		logger.Println("Shutting down gracefully...")
		return exitSuccess
	case errors.Is(err, model.ErrSourceNotFound):
		logger.Printf("File not found! %v", err)
	case errors.Is(err, model.ErrMalformedInput):
		logger.Printf("Invalid file! %v", err)
	default:
		logger.Printf("%v", err)
	}
	return exitCode(err)
}

// play loads the initial grid and runs the simulation
func play(ctx context.Context, config utils.Config, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	alive, dead := config.Symbols()
	grid, err := model.LoadGrid(config.InputPath, model.Symbols{Alive: alive, Dead: dead})
	if err != nil {
		return err
	}

	generations := config.Generations
	if generations == utils.AskGenerations {
		if generations, err = readGenerations(stdin, stdout); err != nil {
			return err
		}
	}

	var (
		stats     = utils.NewStats()
		renderer  = newGameRenderer(ctx, config, stdout, stats)
		simulator = model.NewSimulator(model.WithWorkers(config.Workers))
	)
	if config.Workers > 1 {
		logger.Printf("Stepping %dx%d grid with %d workers", grid.SideLength(), grid.SideLength(), simulator.Workers())
	}

	err = simulator.Simulate(ctx, grid, generations, renderer)
	if config.ShowStats && (err == nil || errors.Is(err, context.Canceled)) {
		displayStats(stdout, stats)
	}
	return err
}
