/*
Package corpustest contains re-usable test suites that can be imported and
run against any object that implements the corpus.Store interface.
*/
package corpustest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	check "gopkg.in/check.v1"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/webpage"
)

// BaseSuite defines a set of re-usable store-related tests that can be
// executed against any concrete type that implements corpus.Store.
type BaseSuite struct {
	s corpus.Store
}

// SetStore configures the test-suite to run all tests against an instance
// of corpus.Store.
func (s *BaseSuite) SetStore(store corpus.Store) {
	s.s = store
}

// TestUpsertPage verifies the document upsert logic.
func (s *BaseSuite) TestUpsertPage(c *check.C) {
	doc := &corpus.Document{
		URI:   "https://example.com",
		Words: []string{"example", "domain"},
		Links: []string{"https://example.com/about"},
	}

	err := s.s.UpsertPage(doc)
	c.Assert(err, check.IsNil)
	c.Assert(doc.ID, check.Not(check.Equals), uuid.Nil, check.Commentf("expected an ID to be assigned to the new document"))
	c.Assert(doc.UpdatedAt.IsZero(), check.Equals, false)

	// Upserting a document with the same URI updates the existing entry.
	updated := &corpus.Document{
		URI:   "https://example.com",
		Words: []string{"changed"},
	}
	err = s.s.UpsertPage(updated)
	c.Assert(err, check.IsNil)
	c.Assert(updated.ID, check.Equals, doc.ID)

	stored, err := s.s.FindPage(doc.ID)
	c.Assert(err, check.IsNil)
	c.Assert(stored.Words, check.DeepEquals, []string{"changed"})
	c.Assert(stored.Links, check.HasLen, 0)

	// Mutating the caller's copy does not leak into the store.
	updated.Words[0] = "mutated"
	stored, err = s.s.FindPage(doc.ID)
	c.Assert(err, check.IsNil)
	c.Assert(stored.Words, check.DeepEquals, []string{"changed"})
}

// TestUpsertInvalidPage verifies that malformed documents are rejected.
func (s *BaseSuite) TestUpsertInvalidPage(c *check.C) {
	specs := []struct {
		descr string
		doc   *corpus.Document
	}{
		{descr: "missing URI", doc: &corpus.Document{Words: []string{"a"}}},
		{descr: "empty link", doc: &corpus.Document{URI: "a", Links: []string{"b", ""}}},
	}

	for specIndex, spec := range specs {
		c.Logf("[spec %d] %s", specIndex, spec.descr)

		err := s.s.UpsertPage(spec.doc)
		c.Assert(errors.Is(err, webpage.ErrInvalidArgument), check.Equals, true, check.Commentf("got %v", err))
	}
}

// TestFindPage verifies the document lookup logic.
func (s *BaseSuite) TestFindPage(c *check.C) {
	doc := &corpus.Document{URI: "https://example.com", Words: []string{"hello"}}
	c.Assert(s.s.UpsertPage(doc), check.IsNil)

	other, err := s.s.FindPage(doc.ID)
	c.Assert(err, check.IsNil)
	c.Assert(other, check.DeepEquals, doc, check.Commentf("lookup by ID returned the wrong document"))

	other, err = s.s.FindPageByURI(doc.URI)
	c.Assert(err, check.IsNil)
	c.Assert(other, check.DeepEquals, doc, check.Commentf("lookup by URI returned the wrong document"))

	_, err = s.s.FindPage(uuid.Nil)
	c.Assert(errors.Is(err, webpage.ErrNotFound), check.Equals, true)

	_, err = s.s.FindPageByURI("https://unknown.example.com")
	c.Assert(errors.Is(err, webpage.ErrNotFound), check.Equals, true)
}

// TestRemovePage verifies that removed documents are no longer visible.
func (s *BaseSuite) TestRemovePage(c *check.C) {
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		doc := &corpus.Document{URI: fmt.Sprintf("page-%d", i)}
		c.Assert(s.s.UpsertPage(doc), check.IsNil)
		ids = append(ids, doc.ID)
	}

	c.Assert(s.s.RemovePage(ids[1]), check.IsNil)

	_, err := s.s.FindPage(ids[1])
	c.Assert(errors.Is(err, webpage.ErrNotFound), check.Equals, true)
	_, err = s.s.FindPageByURI("page-1")
	c.Assert(errors.Is(err, webpage.ErrNotFound), check.Equals, true)

	err = s.s.RemovePage(ids[1])
	c.Assert(errors.Is(err, webpage.ErrNotFound), check.Equals, true)

	c.Assert(s.iterateURIs(c), check.DeepEquals, []string{"page-0", "page-2"})

	// The URI can be reused once the original document is gone.
	doc := &corpus.Document{URI: "page-1"}
	c.Assert(s.s.UpsertPage(doc), check.IsNil)
	c.Assert(doc.ID, check.Not(check.Equals), ids[1])
}

// TestPagesIterator verifies that documents are iterated in insertion order.
func (s *BaseSuite) TestPagesIterator(c *check.C) {
	exp := []string{"c", "a", "b"}
	for _, uri := range exp {
		c.Assert(s.s.UpsertPage(&corpus.Document{URI: uri}), check.IsNil)
	}

	// Updates keep the original position.
	c.Assert(s.s.UpsertPage(&corpus.Document{URI: "c", Words: []string{"again"}}), check.IsNil)

	c.Assert(s.iterateURIs(c), check.DeepEquals, exp)
}

// TestSnapshot verifies that snapshots are independent of later updates.
func (s *BaseSuite) TestSnapshot(c *check.C) {
	c.Assert(s.s.UpsertPage(&corpus.Document{URI: "A", Words: []string{"cat"}, Links: []string{"B"}}), check.IsNil)
	c.Assert(s.s.UpsertPage(&corpus.Document{URI: "B", Words: []string{"dog"}}), check.IsNil)

	set, err := s.s.Snapshot()
	c.Assert(err, check.IsNil)
	c.Assert(set.URIs(), check.DeepEquals, []string{"A", "B"})

	c.Assert(s.s.UpsertPage(&corpus.Document{URI: "A", Words: []string{"fish"}}), check.IsNil)
	c.Assert(s.s.UpsertPage(&corpus.Document{URI: "C"}), check.IsNil)

	p, err := set.Page("A")
	c.Assert(err, check.IsNil)
	c.Assert(p.Words, check.DeepEquals, []string{"cat"})
	c.Assert(p.Links, check.DeepEquals, []string{"B"})
	c.Assert(set.Len(), check.Equals, 2)
}

// TestConcurrentAccess verifies that multiple clients can concurrently
// access the store.
func (s *BaseSuite) TestConcurrentAccess(c *check.C) {
	var (
		wg         sync.WaitGroup
		numWriters = 10
		numPages   = 50
	)

	wg.Add(numWriters)
	for w := 0; w < numWriters; w++ {
		go func(w int) {
			defer wg.Done()

			for i := 0; i < numPages; i++ {
				doc := &corpus.Document{URI: fmt.Sprintf("page-%d-%d", w, i)}
				c.Check(s.s.UpsertPage(doc), check.IsNil)

				_, err := s.s.Snapshot()
				c.Check(err, check.IsNil)
			}
		}(w)
	}
	wg.Wait()

	set, err := s.s.Snapshot()
	c.Assert(err, check.IsNil)
	c.Assert(set.Len(), check.Equals, numWriters*numPages)
}

func (s *BaseSuite) iterateURIs(c *check.C) []string {
	it, err := s.s.Pages()
	c.Assert(err, check.IsNil)

	var uris []string
	for it.Next() {
		uris = append(uris, it.Document().URI)
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)

	return uris
}
