package ranker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/juju/clock/testclock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	check "gopkg.in/check.v1"

	"github.com/mycok/uRank/metrics"
	"github.com/mycok/uRank/search"
	"github.com/mycok/uRank/service/ranker/mocks"
	"github.com/mycok/uRank/webpage"
)

var _ = check.Suite(new(ConfigTestSuite))
var _ = check.Suite(new(RankerServiceTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type ConfigTestSuite struct{}

func (s *ConfigTestSuite) TestConfigValidation(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	originalConfig := Config{
		Source:         mocks.NewMockSource(ctrl),
		Engine:         search.DefaultConfig(),
		UpdateInterval: time.Minute,
	}

	config := originalConfig
	c.Assert(config.validate(), check.IsNil)
	c.Assert(config.Clock, check.Not(check.IsNil), check.Commentf("default clock was not assigned"))
	c.Assert(config.Logger, check.Not(check.IsNil), check.Commentf("default logger was not assigned"))
	c.Assert(config.Metrics, check.Not(check.IsNil), check.Commentf("default metrics registry was not assigned"))
	c.Assert(config.Engine.Clock, check.Equals, config.Clock)

	config = originalConfig
	config.Source = nil
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*corpus source not provided.*")

	config = originalConfig
	config.UpdateInterval = 0
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*invalid value for update interval.*")

	config = originalConfig
	config.UpdateInterval = -time.Second
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*invalid value for update interval.*")
}

type RankerServiceTestSuite struct{}

func (s *RankerServiceTestSuite) TestFullRun(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	clk := testclock.NewClock(time.Now())
	reg := metrics.NewRegistry()
	mockSource := mocks.NewMockSource(ctrl)

	first := mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"cat"}, Links: []string{"B"}},
		&webpage.Page{URI: "B", Words: []string{"dog"}, Links: []string{"A"}},
	)
	second := mustSet(c,
		&webpage.Page{URI: "A", Words: []string{"cat"}, Links: []string{"B"}},
		&webpage.Page{URI: "B", Words: []string{"dog"}, Links: []string{"A"}},
		&webpage.Page{URI: "C", Words: []string{"fish"}, Links: []string{"A"}},
	)

	gomock.InOrder(
		mockSource.EXPECT().Snapshot().Return(first, nil),
		mockSource.EXPECT().Snapshot().Return(nil, errors.New("corpus unavailable")),
		mockSource.EXPECT().Snapshot().Return(second, nil),
	)

	svc, err := New(Config{
		Source:         mockSource,
		Engine:         search.DefaultConfig(),
		Clock:          clk,
		UpdateInterval: time.Minute,
		Metrics:        reg,
	})
	c.Assert(err, check.IsNil)
	c.Assert(svc.Engine(), check.IsNil)

	ctx, cancelFn := context.WithCancel(context.TODO())
	defer cancelFn()

	var afterFirst, afterFailure, afterSecond *search.Engine
	go func() {
		defer cancelFn()

		// Wait until the initial build completes and the main loop calls
		// time.After, then trigger the next pass which fails.
		if clk.WaitAdvance(0, 10*time.Second, 1) != nil {
			return
		}
		afterFirst = svc.Engine()
		clk.Advance(time.Minute)

		// Wait for the failed pass and trigger another one.
		if clk.WaitAdvance(0, 10*time.Second, 1) != nil {
			return
		}
		afterFailure = svc.Engine()
		clk.Advance(time.Minute)

		// Wait for the third pass to complete.
		if clk.WaitAdvance(0, 10*time.Second, 1) != nil {
			return
		}
		afterSecond = svc.Engine()
	}()

	c.Assert(svc.Run(ctx), check.IsNil)

	c.Assert(afterFirst, check.NotNil)
	c.Assert(afterFirst.Stats().Documents, check.Equals, 2)
	c.Assert(afterFailure, check.Equals, afterFirst, check.Commentf("failed build replaced the published engine"))
	c.Assert(afterSecond, check.NotNil)
	c.Assert(afterSecond, check.Not(check.Equals), afterFirst)
	c.Assert(afterSecond.Stats().Documents, check.Equals, 3)

	// The previously published engine is never mutated by a rebuild.
	c.Assert(afterFirst.Stats().Documents, check.Equals, 2)
	_, err = afterFirst.PageRank("C")
	c.Assert(errors.Is(err, webpage.ErrNotFound), check.Equals, true)

	c.Assert(testutil.ToFloat64(reg.BuildsTotal.WithLabelValues(metrics.StatusSuccess)), check.Equals, 2.0)
	c.Assert(testutil.ToFloat64(reg.BuildsTotal.WithLabelValues(metrics.StatusError)), check.Equals, 1.0)
	c.Assert(testutil.ToFloat64(reg.DocumentsTotal), check.Equals, 3.0)
}

func (s *RankerServiceTestSuite) TestRebuildKeepsPreviousEngineOnInvalidCorpus(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	gomock.InOrder(
		mockSource.EXPECT().Snapshot().Return(mustSet(c), nil),
		mockSource.EXPECT().Snapshot().Return(mustSet(c, &webpage.Page{URI: "A"}), nil),
		mockSource.EXPECT().Snapshot().Return(mustSet(c), nil),
	)

	svc, err := New(Config{
		Source:         mockSource,
		Engine:         search.DefaultConfig(),
		UpdateInterval: time.Minute,
	})
	c.Assert(err, check.IsNil)

	// An empty corpus cannot be ranked.
	svc.Rebuild()
	c.Assert(svc.Engine(), check.IsNil)

	svc.Rebuild()
	published := svc.Engine()
	c.Assert(published, check.NotNil)

	svc.Rebuild()
	c.Assert(svc.Engine(), check.Equals, published)
}

func (s *RankerServiceTestSuite) TestInvalidEngineConfig(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().Snapshot().Return(mustSet(c, &webpage.Page{URI: "A"}), nil)

	engineCfg := search.DefaultConfig()
	engineCfg.MaxIterations = 0

	svc, err := New(Config{
		Source:         mockSource,
		Engine:         engineCfg,
		UpdateInterval: time.Minute,
	})
	c.Assert(err, check.IsNil)

	svc.Rebuild()
	c.Assert(svc.Engine(), check.IsNil)
}

func mustSet(c *check.C, pages ...*webpage.Page) *webpage.Set {
	set, err := webpage.NewSet(pages...)
	c.Assert(err, check.IsNil)

	return set
}
