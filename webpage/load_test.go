package webpage_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	check "gopkg.in/check.v1"

	"github.com/mycok/uRank/webpage"
)

var _ = check.Suite(new(LoadTestSuite))

type LoadTestSuite struct{}

func (s *LoadTestSuite) TestLoadYAML(c *check.C) {
	in := `
pages:
  - uri: http://a.example
    words: [cat, dog, cat]
    links: [http://b.example, http://b.example]
  - uri: http://b.example
    words: [cat]
`
	set, err := webpage.Load(strings.NewReader(in))
	c.Assert(err, check.IsNil)
	c.Assert(set.URIs(), check.DeepEquals, []string{"http://a.example", "http://b.example"})

	p, err := set.Page("http://a.example")
	c.Assert(err, check.IsNil)
	c.Assert(p.Words, check.DeepEquals, []string{"cat", "dog", "cat"})
	c.Assert(p.Links, check.DeepEquals, []string{"http://b.example", "http://b.example"})
}

func (s *LoadTestSuite) TestLoadJSON(c *check.C) {
	in := `{"pages": [{"uri": "a", "words": ["Cat"], "links": ["b"]}, {"uri": "b"}]}`

	set, err := webpage.Load(strings.NewReader(in))
	c.Assert(err, check.IsNil)
	c.Assert(set.Len(), check.Equals, 2)
}

func (s *LoadTestSuite) TestLoadEmptyInput(c *check.C) {
	set, err := webpage.Load(strings.NewReader(""))
	c.Assert(err, check.IsNil)
	c.Assert(set.Len(), check.Equals, 0)
}

func (s *LoadTestSuite) TestLoadValidation(c *check.C) {
	specs := []string{
		// Missing URI.
		`{"pages": [{"words": ["cat"]}]}`,
		// Empty link target.
		`{"pages": [{"uri": "a", "links": [""]}]}`,
		// Duplicate URI.
		`{"pages": [{"uri": "a"}, {"uri": "a"}]}`,
	}

	for i, in := range specs {
		c.Logf("spec %d", i)
		_, err := webpage.Load(strings.NewReader(in))
		c.Assert(errors.Is(err, webpage.ErrInvalidArgument), check.Equals, true, check.Commentf("err: %v", err))
	}
}

func (s *LoadTestSuite) TestLoadMalformed(c *check.C) {
	_, err := webpage.Load(strings.NewReader("pages: [uri: {"))
	c.Assert(err, check.ErrorMatches, "load corpus: .*")
}

func (s *LoadTestSuite) TestLoadFile(c *check.C) {
	path := filepath.Join(c.MkDir(), "corpus.yaml")
	c.Assert(os.WriteFile(path, []byte("pages:\n  - uri: a\n"), 0o600), check.IsNil)

	set, err := webpage.LoadFile(path)
	c.Assert(err, check.IsNil)
	c.Assert(set.Contains("a"), check.Equals, true)

	_, err = webpage.LoadFile(filepath.Join(c.MkDir(), "missing.yaml"))
	c.Assert(err, check.NotNil)
}
