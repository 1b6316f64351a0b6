package tfidf

import (
	"fmt"

	"github.com/mycok/uRank/webpage"
)

// QueryVector computes the TF-IDF vector of a query against the corpus IDF
// table. Query words that do not occur in the corpus are present in the
// returned vector with a zero weight.
func (idx *Index) QueryVector(query []string) Vector {
	return idx.weigh(TermFrequencies(query))
}

// Relevance returns the cosine similarity between the TF-IDF vectors of the
// query and the specified document. When either vector has a zero norm the
// relevance is 0.
func (idx *Index) Relevance(query []string, uri string) (float64, error) {
	docVec, exists := idx.vectors[uri]
	if !exists {
		return 0, fmt.Errorf("relevance of %q: %w", uri, webpage.ErrNotFound)
	}

	queryVec := idx.QueryVector(query)

	return cosine(queryVec, docVec, queryVec.Norm(), idx.norms[uri]), nil
}

// Scorer scores many documents against a single query without recomputing
// the query vector for each of them. A Scorer is safe for concurrent use.
type Scorer struct {
	idx       *Index
	query     Vector
	queryNorm float64
}

// Scorer returns a Scorer for the specified query.
func (idx *Index) Scorer(query []string) *Scorer {
	vec := idx.QueryVector(query)

	return &Scorer{idx: idx, query: vec, queryNorm: vec.Norm()}
}

// Relevance returns the cosine similarity between the scorer's query and
// the specified document.
func (s *Scorer) Relevance(uri string) (float64, error) {
	docVec, exists := s.idx.vectors[uri]
	if !exists {
		return 0, fmt.Errorf("relevance of %q: %w", uri, webpage.ErrNotFound)
	}

	return cosine(s.query, docVec, s.queryNorm, s.idx.norms[uri]), nil
}

// cosine returns 0 when either norm is zero.
func cosine(query, doc Vector, queryNorm, docNorm float64) float64 {
	denominator := queryNorm * docNorm
	if denominator == 0 {
		return 0
	}

	return query.Dot(doc) / denominator
}
