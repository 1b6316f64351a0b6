package tfidf_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	check "gopkg.in/check.v1"

	"github.com/mycok/uRank/tfidf"
	"github.com/mycok/uRank/webpage"
)

var _ = check.Suite(new(RelevanceTestSuite))

type RelevanceTestSuite struct{}

func (s *RelevanceTestSuite) TestSimpleCorpus(c *check.C) {
	idx := mustIndex(c, mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"cat", "dog"}},
		&webpage.Page{URI: "B", Words: []string{"cat"}},
	))

	relA := mustRelevance(c, idx, []string{"dog"}, "A")
	relB := mustRelevance(c, idx, []string{"dog"}, "B")
	c.Assert(relA > relB, check.Equals, true, check.Commentf("rel(A)=%f rel(B)=%f", relA, relB))
	c.Assert(relA > 0, check.Equals, true)
	// "cat" occurs in every document so its IDF, and B's whole vector, is zero.
	c.Assert(relB, check.Equals, 0.0)

	// Words outside the corpus carry no signal.
	c.Assert(mustRelevance(c, idx, []string{"unicorn", "dragon"}, "A"), check.Equals, 0.0)
	c.Assert(mustRelevance(c, idx, []string{"unicorn", "dragon"}, "B"), check.Equals, 0.0)
}

func (s *RelevanceTestSuite) TestOutOfCorpusWordsKeepAZeroWeight(c *check.C) {
	idx := mustIndex(c, mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"cat", "dog"}},
		&webpage.Page{URI: "B", Words: []string{"cat"}},
	))

	vec := idx.QueryVector([]string{"dog", "unicorn"})
	c.Assert(vec, check.HasLen, 2)
	c.Assert(vec["unicorn"], check.Equals, 0.0)
	assertClose(c, vec["dog"], 0.5*math.Log(2))

	// The unknown word dilutes the query TF but the direction of the vector,
	// and therefore the cosine, is unchanged.
	assertClose(c,
		mustRelevance(c, idx, []string{"dog", "unicorn"}, "A"),
		mustRelevance(c, idx, []string{"dog"}, "A"),
	)
}

func (s *RelevanceTestSuite) TestExactCosine(c *check.C) {
	idx := mustIndex(c, mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"x", "y"}},
		&webpage.Page{URI: "B", Words: []string{"y", "z"}},
		&webpage.Page{URI: "C", Words: []string{"z"}},
	))

	// idf(x) = ln 3, idf(y) = idf(z) = ln 1.5, A = (0.5 ln3, 0.5 ln1.5, 0).
	ln3, ln15 := math.Log(3), math.Log(1.5)
	exp := (ln15 * 0.5 * ln15) / (ln15 * math.Sqrt(0.25*ln3*ln3+0.25*ln15*ln15))
	assertClose(c, mustRelevance(c, idx, []string{"y"}, "A"), exp)
}

func (s *RelevanceTestSuite) TestZeroVectorSafety(c *check.C) {
	idx := mustIndex(c, mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"cat", "dog"}},
		&webpage.Page{URI: "B"},
	))

	for _, uri := range []string{"A", "B"} {
		for _, query := range [][]string{nil, {}, {"cat"}, {"nothing"}} {
			rel := mustRelevance(c, idx, query, uri)
			c.Assert(math.IsNaN(rel), check.Equals, false)
			if uri == "B" || len(query) == 0 || query[0] == "nothing" {
				c.Assert(rel, check.Equals, 0.0, check.Commentf("query %v, uri %s", query, uri))
			}
		}
	}
}

func (s *RelevanceTestSuite) TestSelfMatchIsMaximal(c *check.C) {
	rnd := rand.New(rand.NewSource(7))
	vocabulary := make([]string, 40)
	for i := range vocabulary {
		vocabulary[i] = fmt.Sprintf("w%d", i)
	}

	pages := make([]*webpage.Page, 50)
	for i := range pages {
		p := &webpage.Page{URI: fmt.Sprint(i)}
		for j := 0; j < 3+rnd.Intn(20); j++ {
			p.Words = append(p.Words, vocabulary[rnd.Intn(len(vocabulary))])
		}
		pages[i] = p
	}

	set := mustSet(c, pages...)
	idx := mustIndex(c, set)

	for _, p := range pages {
		self := mustRelevance(c, idx, p.Words, p.URI)
		norm, _ := idx.Norm(p.URI)
		if norm == 0 {
			c.Assert(self, check.Equals, 0.0)
			continue
		}

		assertClose(c, self, 1.0)

		scorer := idx.Scorer(p.Words)
		for _, other := range set.URIs() {
			rel, err := scorer.Relevance(other)
			c.Assert(err, check.IsNil)
			c.Assert(rel <= self+1e-12, check.Equals, true, check.Commentf(
				"query of %s scored %f against %s but only %f against itself", p.URI, rel, other, self,
			))
		}
	}
}

func (s *RelevanceTestSuite) TestScorerMatchesRelevance(c *check.C) {
	idx := mustIndex(c, mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"go", "is", "fun", "go"}},
		&webpage.Page{URI: "B", Words: []string{"rust", "is", "fun"}},
		&webpage.Page{URI: "C", Words: []string{"go", "rust"}},
	))

	query := []string{"go", "fun", "unknown"}
	scorer := idx.Scorer(query)
	for _, uri := range []string{"A", "B", "C"} {
		rel, err := scorer.Relevance(uri)
		c.Assert(err, check.IsNil)
		assertClose(c, rel, mustRelevance(c, idx, query, uri))

		// Relevance of non-negative vectors never exceeds [0, 1].
		c.Assert(rel >= 0 && rel <= 1+1e-12, check.Equals, true)
	}
}

func (s *RelevanceTestSuite) TestScorerZeroNorms(c *check.C) {
	idx := mustIndex(c, mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"cat", "dog"}},
		&webpage.Page{URI: "B"},
	))

	specs := []struct {
		query []string
		uri   string
	}{
		// Empty document vector.
		{query: []string{"cat"}, uri: "B"},
		// Out-of-corpus query words only.
		{query: []string{"unicorn"}, uri: "A"},
		// Empty query.
		{query: nil, uri: "A"},
	}

	for i, spec := range specs {
		c.Logf("spec %d", i)
		rel, err := idx.Scorer(spec.query).Relevance(spec.uri)
		c.Assert(err, check.IsNil)
		c.Assert(rel, check.Equals, 0.0)
		c.Assert(mustRelevance(c, idx, spec.query, spec.uri), check.Equals, 0.0)
	}

	_, err := idx.Scorer([]string{"cat"}).Relevance("missing")
	c.Assert(errors.Is(err, webpage.ErrNotFound), check.Equals, true)
}

func mustRelevance(c *check.C, idx *tfidf.Index, query []string, uri string) float64 {
	rel, err := idx.Relevance(query, uri)
	c.Assert(err, check.IsNil)

	return rel
}

func mustIndex(c *check.C, set *webpage.Set) *tfidf.Index {
	idx, err := tfidf.NewIndex(set)
	c.Assert(err, check.IsNil)

	return idx
}

func mustSet(c *check.C, pages ...*webpage.Page) *webpage.Set {
	set, err := webpage.NewSet(pages...)
	c.Assert(err, check.IsNil)

	return set
}

func assertIDF(c *check.C, idx *tfidf.Index, word string, exp float64) {
	idf, exists := idx.IDF(word)
	c.Assert(exists, check.Equals, true, check.Commentf("no IDF for %q", word))
	assertClose(c, idf, exp)
}

func assertClose(c *check.C, got, exp float64) {
	c.Assert(
		math.Abs(got-exp) <= 1e-9, check.Equals, true,
		check.Commentf("expected %f; got %f", exp, got),
	)
}
