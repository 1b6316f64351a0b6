/*
Package memory includes an in-memory document store that implements the
corpus.Store interface.
*/
package memory

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/webpage"
)

// Compile-time check for ensuring Store implements corpus.Store.
var _ corpus.Store = (*Store)(nil)

var validate = validator.New()

// Option configures optional Store parameters.
type Option func(*Store)

// WithClock sets the clock used to stamp document updates. The default
// wall-clock is used if not specified.
func WithClock(clk clock.Clock) Option {
	return func(s *Store) { s.clock = clk }
}

// Store implements an in-memory document store that can be concurrently
// accessed by multiple clients.
type Store struct {
	mu       sync.RWMutex
	clock    clock.Clock
	docs     map[uuid.UUID]*corpus.Document
	uriIndex map[string]*corpus.Document
	order    []uuid.UUID
}

// NewStore creates a new, empty in-memory document store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:    clock.WallClock,
		docs:     make(map[uuid.UUID]*corpus.Document),
		uriIndex: make(map[string]*corpus.Document),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UpsertPage creates a new or updates an existing document.
func (s *Store) UpsertPage(doc *corpus.Document) error {
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("upsert page: %v: %w", err, webpage.ErrInvalidArgument)
	}

	// Acquire a write lock to avoid data races while mutating store data.
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = s.clock.Now()

	// Check if a document with the same URI already exists. If so, convert
	// this into an update and point the document ID to the existing one.
	if existing := s.uriIndex[doc.URI]; existing != nil {
		doc.ID = existing.ID
		*existing = *doc.Clone()

		return nil
	}

	// Assign new ID and insert document.
	for {
		doc.ID = uuid.New()
		if s.docs[doc.ID] == nil {
			break
		}
	}

	dCopy := doc.Clone()
	s.docs[dCopy.ID] = dCopy
	s.uriIndex[dCopy.URI] = dCopy
	s.order = append(s.order, dCopy.ID)

	return nil
}

// FindPage performs a document lookup by ID and returns an error if no
// match is found.
func (s *Store) FindPage(id uuid.UUID) (*corpus.Document, error) {
	// Acquire a read lock to avoid data races while reading store data.
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := s.docs[id]
	if doc == nil {
		return nil, fmt.Errorf("find page: %w", webpage.ErrNotFound)
	}

	return doc.Clone(), nil
}

// FindPageByURI performs a document lookup by URI and returns an error if
// no match is found.
func (s *Store) FindPageByURI(uri string) (*corpus.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := s.uriIndex[uri]
	if doc == nil {
		return nil, fmt.Errorf("find page by URI: %w", webpage.ErrNotFound)
	}

	return doc.Clone(), nil
}

// RemovePage deletes the document with the specified ID.
func (s *Store) RemovePage(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.docs[id]
	if doc == nil {
		return fmt.Errorf("remove page: %w", webpage.ErrNotFound)
	}

	delete(s.docs, id)
	delete(s.uriIndex, doc.URI)

	for i, docID := range s.order {
		if docID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return nil
}

// Pages returns an iterator over all stored documents in insertion order.
func (s *Store) Pages() (corpus.Iterator, error) {
	// Acquire a read lock to avoid data races while reading store data.
	s.mu.RLock()

	list := make([]*corpus.Document, len(s.order))
	for i, id := range s.order {
		list[i] = s.docs[id]
	}

	// Release the read lock after the read operations.
	s.mu.RUnlock()

	return &docIterator{s: s, docs: list}, nil
}

// Snapshot returns a document set holding a copy of every stored document
// in insertion order.
func (s *Store) Snapshot() (*webpage.Set, error) {
	s.mu.RLock()
	pages := make([]*webpage.Page, len(s.order))
	for i, id := range s.order {
		pages[i] = s.docs[id].Page()
	}
	s.mu.RUnlock()

	set, err := webpage.NewSet(pages...)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	return set, nil
}
