package search

import (
	"github.com/blevesearch/bleve/analysis/tokenizer/unicode"
)

var tokenizer = unicode.NewUnicodeTokenizer()

// Query describes a combined authority and relevance query.
type Query struct {
	// Terms are the query words. They are matched case-sensitively.
	Terms []string

	// Limit is the maximum number of results. If not positive,
	// DefaultResultLimit is used instead.
	Limit int

	// Offset is the number of top results to skip. Must be >= 0.
	Offset int
}

// ParseQuery splits free text into word tokens on unicode word boundaries.
// Punctuation and whitespace are dropped; the case of every token is
// preserved.
func ParseQuery(text string) []string {
	if text == "" {
		return nil
	}

	stream := tokenizer.Tokenize([]byte(text))
	terms := make([]string, 0, len(stream))
	for _, token := range stream {
		terms = append(terms, string(token.Term))
	}

	return terms
}
