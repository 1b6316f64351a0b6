/*
	search package combines the PageRank authority of each document with its
	TF-IDF relevance to a query into a single ranked result list.
*/

package search

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/linkgraph/graph"
	"github.com/mycok/uRank/pagerank"
	"github.com/mycok/uRank/tfidf"
	"github.com/mycok/uRank/webpage"
)

// Engine answers authority, relevance and combined queries over a fixed
// document set. An Engine is immutable once built and is safe for
// concurrent use.
type Engine struct {
	id      uuid.UUID
	builtAt time.Time
	took    time.Duration

	set     *webpage.Set
	ranking *pagerank.Ranking
	index   *tfidf.Index

	edges    int
	dangling int
}

// Build computes the PageRank scores and the TF-IDF index of the provided
// document set. Both analyzers are built concurrently.
func Build(set *webpage.Set, cfg Config) (*Engine, error) {
	cfg.validate()

	if set == nil {
		return nil, fmt.Errorf("build search engine: nil document set: %w", webpage.ErrInvalidArgument)
	}

	calc, err := pagerank.NewCalculator(pagerank.Config{
		DampingFactor: cfg.DampingFactor,
		Epsilon:       cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
		Logger:        cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build search engine: %w", err)
	}

	startedAt := cfg.Clock.Now()
	g := graph.Build(set)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ranking *pagerank.Ranking
		index   *tfidf.Index
	)

	wg.Add(2)
	go func() {
		defer wg.Done()

		r, calcErr := calc.Calculate(g)
		if calcErr != nil {
			mu.Lock()
			err = multierror.Append(err, calcErr)
			mu.Unlock()

			return
		}

		ranking = r
	}()

	go func() {
		defer wg.Done()

		idx, indexErr := tfidf.NewIndex(set, tfidf.WithLogger(cfg.Logger))
		if indexErr != nil {
			mu.Lock()
			err = multierror.Append(err, indexErr)
			mu.Unlock()

			return
		}

		index = idx
	}()

	wg.Wait()

	if err != nil {
		return nil, fmt.Errorf("build search engine: %w", err)
	}

	e := &Engine{
		id:       uuid.New(),
		builtAt:  cfg.Clock.Now(),
		set:      set,
		ranking:  ranking,
		index:    index,
		edges:    g.EdgeCount(),
		dangling: g.Dangling(),
	}
	e.took = e.builtAt.Sub(startedAt)

	cfg.Logger.WithFields(logrus.Fields{
		"build_id":   e.id.String(),
		"documents":  set.Len(),
		"edges":      e.edges,
		"vocabulary": index.VocabularySize(),
		"iterations": ranking.Iterations(),
		"converged":  ranking.Converged(),
		"took":       e.took,
	}).Info("built search engine")

	return e, nil
}

// ID returns the unique identifier of this build.
func (e *Engine) ID() uuid.UUID { return e.id }

// BuiltAt returns the time the build completed.
func (e *Engine) BuiltAt() time.Time { return e.builtAt }

// Documents returns the indexed document set.
func (e *Engine) Documents() *webpage.Set { return e.set }

// Ranking returns the underlying PageRank scores.
func (e *Engine) Ranking() *pagerank.Ranking { return e.ranking }

// Index returns the underlying TF-IDF index.
func (e *Engine) Index() *tfidf.Index { return e.index }

// PageRank returns the authority score of the specified document.
func (e *Engine) PageRank(uri string) (float64, error) {
	return e.ranking.PageRank(uri)
}

// Relevance returns the cosine relevance of the specified document to the
// query words.
func (e *Engine) Relevance(query []string, uri string) (float64, error) {
	return e.index.Relevance(query, uri)
}

// Stats summarizes an engine build.
type Stats struct {
	BuildID    string        `json:"build_id"`
	BuiltAt    time.Time     `json:"built_at"`
	Took       time.Duration `json:"took_ns"`
	Documents  int           `json:"documents"`
	Edges      int           `json:"edges"`
	Dangling   int           `json:"dangling"`
	Vocabulary int           `json:"vocabulary"`
	Iterations int           `json:"iterations"`
	Converged  bool          `json:"converged"`
}

// Stats returns the statistics of this build.
func (e *Engine) Stats() Stats {
	return Stats{
		BuildID:    e.id.String(),
		BuiltAt:    e.builtAt,
		Took:       e.took,
		Documents:  e.set.Len(),
		Edges:      e.edges,
		Dangling:   e.dangling,
		Vocabulary: e.index.VocabularySize(),
		Iterations: e.ranking.Iterations(),
		Converged:  e.ranking.Converged(),
	}
}
