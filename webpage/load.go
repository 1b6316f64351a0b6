package webpage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// corpusFile is the on-disk layout of a corpus snapshot. JSON documents are
// valid YAML and are therefore accepted too.
type corpusFile struct {
	Pages []*pageRecord `yaml:"pages" validate:"dive,required"`
}

type pageRecord struct {
	URI   string   `yaml:"uri" validate:"required"`
	Words []string `yaml:"words"`
	Links []string `yaml:"links" validate:"dive,required"`
}

// Load decodes a YAML or JSON corpus from r and returns the resulting
// document set.
func Load(r io.Reader) (*Set, error) {
	var file corpusFile

	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("load corpus: %v: %w", err, ErrInvalidArgument)
	}

	pages := make([]*Page, len(file.Pages))
	for i, rec := range file.Pages {
		pages[i] = &Page{URI: rec.URI, Words: rec.Words, Links: rec.Links}
	}

	return NewSet(pages...)
}

// LoadFile opens the corpus file at path and decodes it with Load.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}
