package ranker

import (
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/metrics"
	"github.com/mycok/uRank/search"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/mycok/uRank/corpus Source

// Config defines configurations for the ranker service.
type Config struct {
	// The source of the document snapshots to rank.
	Source corpus.Source

	// Parameters used for every engine build.
	Engine search.Config

	// A clock instance for generating time-related events. If not specified,
	// the default wall-clock will be used instead.
	Clock clock.Clock

	// The duration between subsequent engine rebuilds.
	UpdateInterval time.Duration

	// Metrics registry to record builds into. If not specified, a private
	// registry will be used instead.
	Metrics *metrics.Registry

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.Source == nil {
		err = multierror.Append(err, fmt.Errorf("corpus source not provided"))
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.UpdateInterval <= 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for update interval, must be > 0"))
	}

	if config.Metrics == nil {
		config.Metrics = metrics.NewRegistry()
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	if config.Engine.Clock == nil {
		config.Engine.Clock = config.Clock
	}

	if config.Engine.Logger == nil {
		config.Engine.Logger = config.Logger
	}

	return err
}
