package memory

import (
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	check "gopkg.in/check.v1"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/corpus/corpustest"
)

var _ = check.Suite(new(InMemoryStoreTestSuite))
var _ = check.Suite(new(StoreClockTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

// InMemoryStoreTestSuite embeds the BaseSuite type tests methods.
type InMemoryStoreTestSuite struct {
	corpustest.BaseSuite
}

// SetUpTest resets the store before each test.
func (s *InMemoryStoreTestSuite) SetUpTest(c *check.C) {
	s.SetStore(NewStore())
}

type StoreClockTestSuite struct{}

func (s *StoreClockTestSuite) TestUpdatedAtFollowsClock(c *check.C) {
	clk := testclock.NewClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	store := NewStore(WithClock(clk))

	doc := &corpus.Document{URI: "A"}
	c.Assert(store.UpsertPage(doc), check.IsNil)
	c.Assert(doc.UpdatedAt, check.Equals, clk.Now())

	clk.Advance(time.Hour)
	c.Assert(store.UpsertPage(&corpus.Document{URI: "A"}), check.IsNil)

	stored, err := store.FindPage(doc.ID)
	c.Assert(err, check.IsNil)
	c.Assert(stored.UpdatedAt, check.Equals, clk.Now())
}
