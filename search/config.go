package search

import (
	"io"

	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/pagerank"
)

// DefaultResultLimit is the number of results returned by a query that does
// not specify a limit.
const DefaultResultLimit = 10

// Config defines the parameters used when building an Engine.
type Config struct {
	// DampingFactor is the PageRank decay factor. Must be in [0, 1].
	DampingFactor float64

	// Epsilon is the PageRank convergence threshold. Must be >= 0.
	Epsilon float64

	// MaxIterations bounds the number of PageRank passes. Must be >= 1.
	MaxIterations int

	// A clock instance used to stamp engine builds. If not specified, the
	// default wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

// DefaultConfig returns a Config populated with the default PageRank
// parameters.
func DefaultConfig() Config {
	return Config{
		DampingFactor: pagerank.DefaultDampingFactor,
		Epsilon:       pagerank.DefaultEpsilon,
		MaxIterations: pagerank.DefaultMaxIterations,
	}
}

// validate fills in the optional fields. The numeric parameters are
// validated by the PageRank calculator.
func (cfg *Config) validate() {
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}
}
