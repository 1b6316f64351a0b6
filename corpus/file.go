package corpus

import (
	"fmt"

	"github.com/mycok/uRank/webpage"
)

// Static and compile-time check to ensure FileSource implements Source.
var _ Source = (*FileSource)(nil)

// FileSource reads a YAML or JSON corpus file every time a snapshot is
// requested, so edits to the file are picked up by the next snapshot.
type FileSource struct {
	Path string
}

// Snapshot loads the corpus file.
func (s *FileSource) Snapshot() (*webpage.Set, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("file source: no path provided: %w", webpage.ErrInvalidArgument)
	}

	return webpage.LoadFile(s.Path)
}
