package pagerank

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/linkgraph/graph"
	"github.com/mycok/uRank/webpage"
)

// Calculator executes the iterative version of the PageRank algorithm on a
// graph until the scores converge or the iteration limit is reached.
type Calculator struct {
	cfg Config
}

// NewCalculator returns a new Calculator instance using the provided config
// options.
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf(
			"PageRank calculator config validation failed: %w", err,
		)
	}

	return &Calculator{cfg: cfg}, nil
}

// NewAnalyzer builds the link graph for the provided document set and
// computes the authority score of every page. The graph is discarded once
// the scores are known.
func NewAnalyzer(set *webpage.Set, decay, epsilon float64, limit int) (*Ranking, error) {
	if set == nil {
		return nil, fmt.Errorf("new analyzer: nil document set: %w", webpage.ErrInvalidArgument)
	}

	calc, err := NewCalculator(Config{
		DampingFactor: decay,
		Epsilon:       epsilon,
		MaxIterations: limit,
	})
	if err != nil {
		return nil, err
	}

	return calc.Calculate(graph.Build(set))
}

// Calculate computes the authority score of every vertex in g. An empty
// graph is rejected since the initial score of 1/N is undefined.
func (c *Calculator) Calculate(g *graph.Graph) (*Ranking, error) {
	n := g.Len()
	if n == 0 {
		return nil, fmt.Errorf(
			"calculate page ranks: graph has no vertices: %w", webpage.ErrInvalidArgument,
		)
	}

	s := newSolver(g, c.cfg.DampingFactor)
	uris := g.URIs()

	var (
		iteration int
		converged bool
	)

	for iteration < c.cfg.MaxIterations {
		iteration++
		maxDelta := s.step()

		if c.cfg.PostIteration != nil {
			if err := c.cfg.PostIteration(
				iteration, maxDelta, Generation{uris: uris, scores: s.curr},
			); err != nil {
				return nil, fmt.Errorf("calculate page ranks: iteration %d: %w", iteration, err)
			}
		}

		// The freshly computed generation becomes the previous one for the
		// next pass; after the swap s.prev always holds the latest scores.
		s.swap()

		if maxDelta <= c.cfg.Epsilon {
			converged = true

			break
		}
	}

	c.cfg.Logger.WithFields(logrus.Fields{
		"pages":      n,
		"edges":      g.EdgeCount(),
		"iterations": iteration,
		"converged":  converged,
	}).Debug("calculated page ranks")

	index := make(map[string]int, n)
	for i, uri := range uris {
		index[uri] = i
	}

	return &Ranking{
		uris:       uris,
		index:      index,
		scores:     s.prev,
		iterations: iteration,
		converged:  converged,
	}, nil
}

// solver holds the two score generations of the power iteration. Every
// pass reads exclusively from prev and writes exclusively into curr so the
// result does not depend on the order in which pages are processed.
type solver struct {
	n             float64
	dampingFactor float64
	edges         [][]int
	prev          []float64
	curr          []float64
}

func newSolver(g *graph.Graph, dampingFactor float64) *solver {
	s := &solver{
		n:             float64(g.Len()),
		dampingFactor: dampingFactor,
		edges:         make([][]int, g.Len()),
		prev:          make([]float64, g.Len()),
		curr:          make([]float64, g.Len()),
	}

	_ = g.Vertices(func(idx int, _ string, dsts []int) error {
		s.edges[idx] = dsts

		return nil
	})

	// Evenly distribute the total score of 1 across all pages.
	for i := range s.prev {
		s.prev[i] = 1.0 / s.n
	}

	return s
}

// step runs a single pass and returns the largest absolute difference
// between the previous and the current score of any page.
func (s *solver) step() float64 {
	for i := range s.curr {
		s.curr[i] = 0
	}

	var (
		teleport     = (1.0 - s.dampingFactor) / s.n
		danglingMass float64
	)

	for src, score := range s.prev {
		dsts := s.edges[src]

		// A dead-end page is treated as if it linked to every page in the
		// graph, itself included. Its d*r/N shares are identical for every
		// page so they are accumulated and applied once after the pass.
		if len(dsts) == 0 {
			danglingMass += score
		} else {
			share := s.dampingFactor * score / float64(len(dsts))
			for _, dst := range dsts {
				s.curr[dst] += share
			}
		}

		// Random surfer teleportation, one (1-d)/N share per source page.
		s.curr[src] += teleport
	}

	danglingShare := s.dampingFactor * danglingMass / s.n

	var maxDelta float64
	for i := range s.curr {
		s.curr[i] += danglingShare
		if delta := math.Abs(s.curr[i] - s.prev[i]); delta > maxDelta {
			maxDelta = delta
		}
	}

	return maxDelta
}

func (s *solver) swap() {
	s.prev, s.curr = s.curr, s.prev
}
