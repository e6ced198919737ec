package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
	"unicode/utf8"
)

// AskGenerations means the generation count is read from stdin at startup
const AskGenerations = -1

// Config holds the configuration for the game
type Config struct {
	InputPath   string        `json:"input_path"`
	Generations int           `json:"generations"`
	AliveSymbol string        `json:"alive_symbol"`
	DeadSymbol  string        `json:"dead_symbol"`
	FrameRate   time.Duration `json:"frame_rate"`
	ClearScreen bool          `json:"clear_screen"`
	Workers     int           `json:"workers"`
	ShowStats   bool          `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations: AskGenerations,
		AliveSymbol: "1",
		DeadSymbol:  "0",
		FrameRate:   0, // print every generation immediately
		ClearScreen: false,
		Workers:     1,
		ShowStats:   false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the symbols are single, distinct characters and that
// the numeric settings are usable
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.AliveSymbol) != 1 {
		return errors.Errorf("[Validate] alive_symbol must be one character, got %q", c.AliveSymbol)
	}
	if utf8.RuneCountInString(c.DeadSymbol) != 1 {
		return errors.Errorf("[Validate] dead_symbol must be one character, got %q", c.DeadSymbol)
	}
	if c.AliveSymbol == c.DeadSymbol {
		return errors.Errorf("[Validate] alive_symbol and dead_symbol are both %q", c.AliveSymbol)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	}
	return nil
}

// Symbols returns the alive and dead symbols as runes. Call Validate first.
func (c Config) Symbols() (alive, dead rune) {
	alive, _ = utf8.DecodeRuneInString(c.AliveSymbol)
	dead, _ = utf8.DecodeRuneInString(c.DeadSymbol)
	return alive, dead
}
