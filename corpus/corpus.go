/*
	corpus package defines where the document snapshots ranked by the search
	engine come from.
*/

package corpus

import (
	"time"

	"github.com/google/uuid"

	"github.com/mycok/uRank/webpage"
)

// Source is implemented by objects that can produce a point-in-time
// snapshot of the document corpus.
type Source interface {
	// Snapshot returns the current set of documents.
	Snapshot() (*webpage.Set, error)
}

// Store is implemented by objects that hold a mutable document corpus.
type Store interface {
	Source

	// UpsertPage creates a new document or, if a document with the same
	// URI exists, replaces its contents. The document ID is updated in
	// place.
	UpsertPage(doc *Document) error

	// FindPage looks up a document by its ID.
	FindPage(id uuid.UUID) (*Document, error)

	// FindPageByURI looks up a document by its URI.
	FindPageByURI(uri string) (*Document, error)

	// RemovePage deletes the document with the specified ID.
	RemovePage(id uuid.UUID) error

	// Pages returns an iterator over every stored document in insertion
	// order.
	Pages() (Iterator, error)
}

// Document is a stored web page.
type Document struct {
	// A unique identifier assigned by the store.
	ID uuid.UUID `json:"id"`

	URI   string   `json:"uri" validate:"required"`
	Words []string `json:"words"`
	Links []string `json:"links" validate:"dive,required"`

	// The time the document was last inserted or updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// Page returns the web page described by the document.
func (d *Document) Page() *webpage.Page {
	p := &webpage.Page{
		URI:   d.URI,
		Words: d.Words,
		Links: d.Links,
	}

	return p.Clone()
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	dCopy := *d
	dCopy.Words = append([]string(nil), d.Words...)
	dCopy.Links = append([]string(nil), d.Links...)

	return &dCopy
}

// Iterator is implemented by objects that iterate stored documents.
type Iterator interface {
	// Next advances the iterator. If no more items are available or an
	// error occurs, calls to Next() return false.
	Next() bool

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources linked to the iterator.
	Close() error

	// Document returns the currently fetched document.
	Document() *Document
}
