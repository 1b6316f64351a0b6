package search

import (
	"container/heap"
	"fmt"

	"github.com/mycok/uRank/webpage"
)

// Result is a single ranked document.
type Result struct {
	URI       string  `json:"uri"`
	Score     float64 `json:"score"`
	Relevance float64 `json:"relevance"`
	PageRank  float64 `json:"pagerank"`
}

// ranksBefore reports whether a is ordered ahead of b: higher score first,
// then higher relevance, then lexicographically smaller URI.
func ranksBefore(a, b Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}

	if a.Relevance != b.Relevance {
		return a.Relevance > b.Relevance
	}

	return a.URI < b.URI
}

// resultHeap is a min-heap keeping the worst retained result at its root.
type resultHeap []Result

func (h resultHeap) Len() int           { return len(h) }
func (h resultHeap) Less(i, j int) bool { return ranksBefore(h[j], h[i]) }
func (h resultHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *resultHeap) Push(x any) {
	*h = append(*h, x.(Result))
}

func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]

	return x
}

// topK retains the best k results offered to it.
type topK struct {
	k int
	h resultHeap
}

// retainCount returns how many of the best results must be kept to serve
// the requested page, capped at the number of documents. offset+limit is
// only evaluated when it cannot overflow.
func retainCount(offset, limit, documents int) int {
	if offset >= documents || limit >= documents-offset {
		return documents
	}

	return offset + limit
}

func newTopK(k int) *topK {
	return &topK{k: k, h: make(resultHeap, 0, k)}
}

func (t *topK) offer(r Result) {
	if t.k <= 0 {
		return
	}

	if t.h.Len() < t.k {
		heap.Push(&t.h, r)

		return
	}

	if ranksBefore(r, t.h[0]) {
		t.h[0] = r
		heap.Fix(&t.h, 0)
	}
}

// sorted drains the heap and returns the retained results best first.
func (t *topK) sorted() []Result {
	results := make([]Result, t.h.Len())
	for i := len(results) - 1; i >= 0; i-- {
		results[i] = heap.Pop(&t.h).(Result)
	}

	return results
}

// Search scores every document against the query terms. Documents whose
// relevance is zero are not returned; the remaining ones are ordered by
// relevance * pagerank.
func (e *Engine) Search(q Query) (*ResultIterator, error) {
	if q.Offset < 0 {
		return nil, fmt.Errorf("search: negative offset %d: %w", q.Offset, webpage.ErrInvalidArgument)
	}

	if q.Limit <= 0 {
		q.Limit = DefaultResultLimit
	}

	scorer := e.index.Scorer(q.Terms)
	best := newTopK(retainCount(q.Offset, q.Limit, e.set.Len()))

	var total uint64
	err := e.set.Visit(func(p *webpage.Page) error {
		rel, err := scorer.Relevance(p.URI)
		if err != nil {
			return err
		}

		if rel <= 0 {
			return nil
		}

		pr, err := e.ranking.PageRank(p.URI)
		if err != nil {
			return err
		}

		total++
		best.offer(Result{URI: p.URI, Score: rel * pr, Relevance: rel, PageRank: pr})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := best.sorted()
	if q.Offset >= len(results) {
		results = nil
	} else {
		results = results[q.Offset:]
	}

	return &ResultIterator{results: results, total: total}, nil
}

// TopRanked returns the n documents with the highest authority score,
// ordered by score and then URI. A non-positive n returns every document.
func (e *Engine) TopRanked(n int) []Result {
	if n <= 0 || n > e.ranking.Len() {
		n = e.ranking.Len()
	}

	best := newTopK(n)
	_ = e.ranking.Scores(func(uri string, score float64) error {
		best.offer(Result{URI: uri, Score: score, PageRank: score})

		return nil
	})

	return best.sorted()
}

// ResultIterator paginates over the results of a query.
type ResultIterator struct {
	results []Result
	total   uint64
	pos     int
	cur     Result
	closed  bool
}

// Next loads the next result, returns false when no more results are
// available.
func (it *ResultIterator) Next() bool {
	if it.closed || it.pos >= len(it.results) {
		return false
	}

	it.cur = it.results[it.pos]
	it.pos++

	return true
}

// Result returns the current result.
func (it *ResultIterator) Result() Result { return it.cur }

// TotalCount returns the number of documents that matched the query,
// regardless of the offset and limit.
func (it *ResultIterator) TotalCount() uint64 { return it.total }

// Error returns the last error encountered by the iterator.
func (it *ResultIterator) Error() error { return nil }

// Close releases the results held by the iterator.
func (it *ResultIterator) Close() error {
	it.closed = true
	it.results = nil

	return nil
}
