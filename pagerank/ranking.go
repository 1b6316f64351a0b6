package pagerank

import (
	"fmt"

	"github.com/mycok/uRank/webpage"
)

// Generation is a read-only view over the scores produced by a single
// solver pass. It is only valid for the duration of the callback that
// receives it.
type Generation struct {
	uris   []string
	scores []float64
}

// Len returns the number of scored pages.
func (gen Generation) Len() int { return len(gen.scores) }

// Sum returns the total score mass of the generation.
func (gen Generation) Sum() float64 { return sum(gen.scores) }

// Visit invokes visitFn for each page score in document order.
func (gen Generation) Visit(visitFn func(uri string, score float64)) {
	for i, score := range gen.scores {
		visitFn(gen.uris[i], score)
	}
}

// Ranking holds the final authority score of every page. A Ranking is
// immutable and safe for concurrent use.
type Ranking struct {
	uris       []string
	index      map[string]int
	scores     []float64
	iterations int
	converged  bool
}

// PageRank returns the authority score of the page with the specified URI.
func (r *Ranking) PageRank(uri string) (float64, error) {
	idx, exists := r.index[uri]
	if !exists {
		return 0, fmt.Errorf("page rank of %q: %w", uri, webpage.ErrNotFound)
	}

	return r.scores[idx], nil
}

// Scores invokes the provided visitor function for each page in document
// order and stops at the first error returned by visitFn.
func (r *Ranking) Scores(visitFn func(uri string, score float64) error) error {
	for i, score := range r.scores {
		if err := visitFn(r.uris[i], score); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of ranked pages.
func (r *Ranking) Len() int { return len(r.scores) }

// Iterations returns the number of solver passes that were executed.
func (r *Ranking) Iterations() int { return r.iterations }

// Converged reports whether the solver stopped because every score change
// fell within epsilon rather than because it hit the iteration limit.
func (r *Ranking) Converged() bool { return r.converged }

// Sum returns the total score mass, which is 1.0 up to rounding.
func (r *Ranking) Sum() float64 { return sum(r.scores) }

func sum(scores []float64) float64 {
	var total float64
	for _, score := range scores {
		total += score
	}

	return total
}
