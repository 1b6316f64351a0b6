package frontend

import (
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/metrics"
	"github.com/mycok/uRank/search"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/mycok/uRank/service/frontend EngineAPI,PageStore

const (
	defaultMaxResultsPerPage = 100
	defaultShutdownTimeout   = 5 * time.Second
	maxPageBodyBytes         = 1 << 20
)

// EngineAPI provides access to the currently published search engine.
type EngineAPI interface {
	// Engine returns the current engine or nil if none has been built yet.
	Engine() *search.Engine
}

// PageStore defines the minimum set of API methods for submitting pages
// that will be picked up by the next engine build.
type PageStore interface {
	// UpsertPage creates a new or updates an existing document.
	UpsertPage(doc *corpus.Document) error
}

// Config defines configurations for the front-end service.
type Config struct {
	// API for retrieving the current search engine.
	EngineAPI EngineAPI

	// Store for submitted pages. If not specified, page submission is
	// disabled.
	PageStore PageStore

	// Address to listen for incoming requests.
	ListenAddr string

	// Upper bound for the number of results a single search request may
	// ask for. If not specified, a default value of 100 will be used instead.
	MaxResultsPerPage int

	// Time allowed for in-flight requests to complete on shutdown. If not
	// specified, a default value of 5 seconds will be used instead.
	ShutdownTimeout time.Duration

	// Metrics registry for query instrumentation; also served under
	// /metrics. If not specified, a private registry will be used instead.
	Metrics *metrics.Registry

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.EngineAPI == nil {
		err = multierror.Append(err, fmt.Errorf("engine API not provided"))
	}

	if config.ListenAddr == "" {
		err = multierror.Append(err, fmt.Errorf("listen address not provided"))
	}

	if config.MaxResultsPerPage <= 0 {
		config.MaxResultsPerPage = defaultMaxResultsPerPage
	}

	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = defaultShutdownTimeout
	}

	if config.Metrics == nil {
		config.Metrics = metrics.NewRegistry()
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
