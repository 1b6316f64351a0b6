package ranker

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/search"
)

// Service periodically rebuilds the search engine from a fresh corpus
// snapshot and publishes it for readers. It satisfies the service.Service
// interface.
type Service struct {
	config Config
	engine atomic.Pointer[search.Engine]
}

// New creates and returns a fully configured ranker service instance.
func New(config Config) (*Service, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ranker service: config validation failed: %w", err)
	}

	return &Service{config: config}, nil
}

// Name returns the name of the service.
func (svc *Service) Name() string { return "ranker" }

// Engine returns the most recently published engine or nil if no build has
// succeeded yet.
func (svc *Service) Engine() *search.Engine { return svc.engine.Load() }

// Run builds an engine straight away and then rebuilds it every update
// interval. It blocks until the context gets cancelled.
func (svc *Service) Run(ctx context.Context) error {
	svc.config.Logger.WithField(
		"update_interval", svc.config.UpdateInterval.String(),
	).Info("started service")
	defer svc.config.Logger.Info("stopped service")

	svc.Rebuild()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-svc.config.Clock.After(svc.config.UpdateInterval):
			svc.Rebuild()
		}
	}
}

// Rebuild takes a snapshot of the corpus and builds a new engine from it.
// On success the new engine replaces the published one; on failure the
// error is logged and the previous engine stays published.
func (svc *Service) Rebuild() {
	svc.config.Logger.Info("started engine build pass")
	startedAt := svc.config.Clock.Now()

	engine, err := svc.build()
	took := svc.config.Clock.Now().Sub(startedAt)
	if err != nil {
		svc.config.Metrics.RecordBuildFailure(took)
		svc.config.Logger.WithFields(logrus.Fields{
			"err":  err,
			"took": took,
		}).Error("engine build pass failed; keeping previous engine")

		return
	}

	svc.engine.Store(engine)

	stats := engine.Stats()
	svc.config.Metrics.RecordBuild(took, stats.Documents, stats.Iterations, stats.BuiltAt)
	svc.config.Logger.WithFields(logrus.Fields{
		"build_id":   stats.BuildID,
		"documents":  stats.Documents,
		"iterations": stats.Iterations,
		"converged":  stats.Converged,
		"took":       took,
	}).Info("completed engine build pass")
}

func (svc *Service) build() (*search.Engine, error) {
	set, err := svc.config.Source.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("snapshot corpus: %w", err)
	}

	return search.Build(set, svc.config.Engine)
}
