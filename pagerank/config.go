package pagerank

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/webpage"
)

const (
	// DefaultDampingFactor is the customary probability of following an
	// outgoing link rather than teleporting to a random page.
	DefaultDampingFactor = 0.85

	// DefaultEpsilon is the default per-page convergence threshold.
	DefaultEpsilon = 1e-4

	// DefaultMaxIterations is the default upper bound on solver passes.
	DefaultMaxIterations = 100
)

// IterationFunc is invoked after each solver pass with the 1-based
// iteration number, the largest absolute score change observed during the
// pass and a view over the scores it produced. Returning an error aborts
// the calculation.
type IterationFunc func(iteration int, maxDelta float64, gen Generation) error

// Config encapsulates the configuration options for a Calculator.
type Config struct {
	// DampingFactor is the share of a page's score that flows through its
	// outgoing links on each pass. Must be in [0, 1].
	DampingFactor float64

	// Epsilon is the convergence threshold. Iteration stops as soon as no
	// page score changes by more than Epsilon during a pass. Must be >= 0.
	Epsilon float64

	// MaxIterations bounds the number of passes in case the scores never
	// converge. Must be >= 1.
	MaxIterations int

	// PostIteration, if defined, is invoked after every pass.
	PostIteration IterationFunc

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

// DefaultConfig returns a Config populated with the default parameters.
func DefaultConfig() Config {
	return Config{
		DampingFactor: DefaultDampingFactor,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

func (cfg *Config) validate() error {
	var err error

	if math.IsNaN(cfg.DampingFactor) || cfg.DampingFactor < 0 || cfg.DampingFactor > 1 {
		err = multierror.Append(err, fmt.Errorf(
			"invalid value for damping factor, must be in [0, 1]: %w",
			webpage.ErrInvalidArgument,
		))
	}

	if math.IsNaN(cfg.Epsilon) || cfg.Epsilon < 0 {
		err = multierror.Append(err, fmt.Errorf(
			"invalid value for epsilon, must be >= 0: %w", webpage.ErrInvalidArgument,
		))
	}

	if cfg.MaxIterations < 1 {
		err = multierror.Append(err, fmt.Errorf(
			"invalid value for max iterations, must be >= 1: %w",
			webpage.ErrInvalidArgument,
		))
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
