package memory

import "github.com/mycok/uRank/corpus"

// docIterator is a corpus.Iterator implementation for the in-memory store.
type docIterator struct {
	s            *Store
	docs         []*corpus.Document
	currentIndex int
}

// Next implements corpus.Iterator.Next()
func (i *docIterator) Next() bool {
	if i.currentIndex >= len(i.docs) {
		return false
	}

	i.currentIndex++

	return true
}

// Error implements corpus.Iterator.Error()
func (i *docIterator) Error() error {
	return nil
}

// Close implements corpus.Iterator.Close()
func (i *docIterator) Close() error {
	i.currentIndex = len(i.docs)

	return nil
}

// Document implements corpus.Iterator.Document() which returns a document
// whenever a call to corpus.Iterator.Next() returns true.
func (i *docIterator) Document() *corpus.Document {
	// The document contents may be overwritten by an update; to avoid
	// data-races we first acquire the read lock and then clone it.
	i.s.mu.RLock()
	doc := i.docs[i.currentIndex-1].Clone()
	i.s.mu.RUnlock()

	return doc
}
