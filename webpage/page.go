/*
	webpage package defines the document model that the ranking engine
	consumes, along with the ordered document set and a corpus loader.
*/

package webpage

// Page represents a parsed web document. Pages are owned by the caller and
// are only ever read by the ranking engine.
type Page struct {
	// URI uniquely identifies the page. No canonicalization is performed.
	URI string `yaml:"uri" json:"uri"`

	// Words contains the page tokens in document order. Duplicates are kept.
	Words []string `yaml:"words" json:"words"`

	// Links contains the outbound link URIs in document order. Duplicates
	// are possible.
	Links []string `yaml:"links" json:"links"`
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	pCopy := &Page{URI: p.URI}
	if p.Words != nil {
		pCopy.Words = append(make([]string, 0, len(p.Words)), p.Words...)
	}

	if p.Links != nil {
		pCopy.Links = append(make([]string, 0, len(p.Links)), p.Links...)
	}

	return pCopy
}
