/*
	tfidf package scores the lexical relevance of a document to a query as
	the cosine similarity of their TF-IDF vectors.
*/

package tfidf

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uRank/webpage"
)

// Index holds the corpus-wide IDF table together with the TF-IDF vector and
// its norm for every document. An Index is immutable once built and is safe
// for concurrent use.
type Index struct {
	docs    int
	idf     map[string]float64
	vectors map[string]Vector
	norms   map[string]float64
}

// Option configures optional Index parameters.
type Option func(*options)

type options struct {
	logger *logrus.Entry
}

// WithLogger sets the logger used while building the index.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *options) { o.logger = logger }
}

// NewIndex computes the IDF table, the per-document TF-IDF vectors and
// their norms for the provided document set. An empty set yields an empty
// index.
func NewIndex(set *webpage.Set, opts ...Option) (*Index, error) {
	if set == nil {
		return nil, fmt.Errorf("new TF-IDF index: nil document set: %w", webpage.ErrInvalidArgument)
	}

	o := options{logger: logrus.NewEntry(&logrus.Logger{Out: io.Discard})}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		docs:    set.Len(),
		idf:     computeIDF(set),
		vectors: make(map[string]Vector, set.Len()),
		norms:   make(map[string]float64, set.Len()),
	}

	_ = set.Visit(func(p *webpage.Page) error {
		vec := idx.weigh(TermFrequencies(p.Words))
		idx.vectors[p.URI] = vec
		idx.norms[p.URI] = vec.Norm()

		return nil
	})

	o.logger.WithFields(logrus.Fields{
		"documents":  idx.docs,
		"vocabulary": len(idx.idf),
	}).Debug("built TF-IDF index")

	return idx, nil
}

// computeIDF returns ln(N / df) for every word of the corpus, where df is
// the number of distinct documents the word occurs in.
func computeIDF(set *webpage.Set) map[string]float64 {
	docFreq := make(map[string]int)

	_ = set.Visit(func(p *webpage.Page) error {
		seen := make(map[string]struct{}, len(p.Words))
		for _, word := range p.Words {
			if _, dup := seen[word]; dup {
				continue
			}

			seen[word] = struct{}{}
			docFreq[word]++
		}

		return nil
	})

	total := float64(set.Len())
	idf := make(map[string]float64, len(docFreq))
	for word, df := range docFreq {
		idf[word] = math.Log(total / float64(df))
	}

	return idf
}

// weigh turns a term-frequency vector into a TF-IDF vector. Words that are
// not part of the corpus vocabulary are kept with a zero weight.
func (idx *Index) weigh(tf Vector) Vector {
	vec := make(Vector, len(tf))
	for word, freq := range tf {
		vec[word] = freq * idx.idf[word]
	}

	return vec
}

// Documents returns the number of indexed documents.
func (idx *Index) Documents() int { return idx.docs }

// VocabularySize returns the number of distinct words in the corpus.
func (idx *Index) VocabularySize() int { return len(idx.idf) }

// IDF returns the inverse document frequency of word and whether the word
// occurs anywhere in the corpus.
func (idx *Index) IDF(word string) (float64, bool) {
	score, exists := idx.idf[word]

	return score, exists
}

// Vector returns a copy of the TF-IDF vector of the specified document.
func (idx *Index) Vector(uri string) (Vector, error) {
	vec, exists := idx.vectors[uri]
	if !exists {
		return nil, fmt.Errorf("document vector of %q: %w", uri, webpage.ErrNotFound)
	}

	return vec.Clone(), nil
}

// Norm returns the precomputed Euclidean norm of the specified document's
// TF-IDF vector.
func (idx *Index) Norm(uri string) (float64, error) {
	norm, exists := idx.norms[uri]
	if !exists {
		return 0, fmt.Errorf("document norm of %q: %w", uri, webpage.ErrNotFound)
	}

	return norm, nil
}
