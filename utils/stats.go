package utils

import "time"

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Stats for a simulation run
type Stats struct {
	TotalGenerations  int
	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int
	AveragePopulation float64
	StartTime         time.Time

	// ExtinctAt is the first generation with no living cells, or -1
	ExtinctAt int
	// StableAt is the first generation that repeats one of the recent
	// generations, or -1. StablePeriod is 1 for a still life, 2 for a blinker.
	StableAt     int
	StablePeriod int

	observed int
	history  []string // Store recent grid states for cycle detection
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), ExtinctAt: -1, StableAt: -1}
}

// Observe records one generation's population and state hash
func (s *Stats) Observe(generation int, population int, hash string) {
	if s.observed == 0 {
		s.InitialPopulation = population
	}
	s.observed++
	s.TotalGenerations = generation
	s.FinalPopulation = population
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Running mean over every observed generation
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(s.observed)

	if population == 0 && s.ExtinctAt < 0 {
		s.ExtinctAt = generation
	}

	if s.StableAt < 0 {
		for back := 1; back <= len(s.history); back++ {
			if s.history[len(s.history)-back] == hash {
				s.StableAt = generation
				s.StablePeriod = back
				break
			}
		}
	}

	s.history = append(s.history, hash)
	// Keep only the last few states to detect cycles
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// Elapsed returns the wall time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// GenerationsPerSecond returns the simulated generations per second of wall time
func (s *Stats) GenerationsPerSecond() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / elapsed
}
