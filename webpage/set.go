package webpage

import "fmt"

// Set is an insertion-ordered collection of pages with unique URIs. A Set
// is immutable once created and is safe for concurrent reads.
type Set struct {
	pages []*Page
	byURI map[string]int
}

// NewSet builds a document set from the provided pages. Nil pages and
// pages whose URI has already been seen are rejected. The empty string is
// treated as an ordinary URI.
func NewSet(pages ...*Page) (*Set, error) {
	s := &Set{
		pages: make([]*Page, 0, len(pages)),
		byURI: make(map[string]int, len(pages)),
	}

	for i, p := range pages {
		if p == nil {
			return nil, fmt.Errorf("new set: page %d is nil: %w", i, ErrInvalidArgument)
		}

		if _, exists := s.byURI[p.URI]; exists {
			return nil, fmt.Errorf(
				"new set: duplicate page URI %q: %w", p.URI, ErrInvalidArgument,
			)
		}

		s.byURI[p.URI] = len(s.pages)
		s.pages = append(s.pages, p)
	}

	return s, nil
}

// Len returns the number of pages in the set.
func (s *Set) Len() int { return len(s.pages) }

// Contains reports whether a page with the specified URI is in the set.
func (s *Set) Contains(uri string) bool {
	_, exists := s.byURI[uri]

	return exists
}

// Page performs a page lookup by URI.
func (s *Set) Page(uri string) (*Page, error) {
	idx, exists := s.byURI[uri]
	if !exists {
		return nil, fmt.Errorf("find page %q: %w", uri, ErrNotFound)
	}

	return s.pages[idx], nil
}

// At returns the page stored at position i. It panics if i is out of range.
func (s *Set) At(i int) *Page { return s.pages[i] }

// URIs returns the page URIs in insertion order.
func (s *Set) URIs() []string {
	uris := make([]string, len(s.pages))
	for i, p := range s.pages {
		uris[i] = p.URI
	}

	return uris
}

// Visit invokes visitFn for each page in insertion order and stops at the
// first error returned by visitFn.
func (s *Set) Visit(visitFn func(p *Page) error) error {
	for _, p := range s.pages {
		if err := visitFn(p); err != nil {
			return err
		}
	}

	return nil
}
