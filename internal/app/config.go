package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gridpath/gridpath/search"
)

// AlgBoth runs A* and Dijkstra on the same scenario.
const AlgBoth = "both"

// Config holds everything an App needs to run one scenario.
type Config struct {
	ScenarioPath string
	// Algorithm is "astar", "dijkstra" or "both". Empty defers to the scenario.
	Algorithm string

	LogFormat string
	LogLevel  string

	Render bool
	Every  int // print a frame every N steps while rendering; 0 prints only the final board
	Frames int // frame cap per run; 0 means no cap
	Delay  time.Duration
	Color  bool

	// Timeout aborts a run after this long; 0 disables it.
	Timeout time.Duration
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}
	if cfg.Algorithm != "" {
		if _, err := algorithms(cfg.Algorithm); err != nil {
			return nil, err
		}
	}
	if cfg.Every < 0 || cfg.Frames < 0 || cfg.Delay < 0 || cfg.Timeout < 0 {
		return nil, errors.New("every, frames, delay and timeout must not be negative")
	}

	return &cfg, nil
}

// algorithms expands an algorithm name into the runs it stands for.
func algorithms(name string) ([]search.Algorithm, error) {
	if name == "" || name == AlgBoth {
		return []search.Algorithm{search.AlgAStar, search.AlgDijkstra}, nil
	}
	alg, err := search.ParseAlgorithm(name)
	if err != nil {
		return nil, fmt.Errorf("invalid algorithm: %w", err)
	}

	return []search.Algorithm{alg}, nil
}
