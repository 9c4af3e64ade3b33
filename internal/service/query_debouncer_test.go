package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-lookup/internal/service"
)

type QueryDebouncerTestSuite struct {
	suite.Suite
	mu    sync.Mutex
	fired []string
}

func (s *QueryDebouncerTestSuite) SetupTest() {
	s.mu.Lock()
	s.fired = nil
	s.mu.Unlock()
}

func (s *QueryDebouncerTestSuite) record(query string) {
	s.mu.Lock()
	s.fired = append(s.fired, query)
	s.mu.Unlock()
}

func (s *QueryDebouncerTestSuite) firedQueries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.fired...)
}

func (s *QueryDebouncerTestSuite) TestBurstCoalescesToLatestQuery() {
	d := service.NewQueryDebouncer(30*time.Millisecond, s.record)
	defer d.Stop()

	d.Submit("New")
	d.Submit("New Y")
	d.Submit("New York")

	s.Eventually(func() bool {
		return len(s.firedQueries()) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	s.Equal([]string{"New York"}, s.firedQueries())
}

func (s *QueryDebouncerTestSuite) TestFlushFiresImmediately() {
	d := service.NewQueryDebouncer(time.Hour, s.record)
	defer d.Stop()

	d.Submit("Lon")
	s.Empty(s.firedQueries())

	d.Flush()
	s.Equal([]string{"Lon"}, s.firedQueries())

	d.Flush()
	s.Equal([]string{"Lon"}, s.firedQueries())
}

func (s *QueryDebouncerTestSuite) TestZeroWaitFiresSynchronously() {
	d := service.NewQueryDebouncer(0, s.record)

	d.Submit("Par")
	d.Submit("Pari")

	s.Equal([]string{"Par", "Pari"}, s.firedQueries())
}

func (s *QueryDebouncerTestSuite) TestStopDropsPendingQuery() {
	d := service.NewQueryDebouncer(20*time.Millisecond, s.record)

	d.Submit("Ber")
	d.Stop()
	d.Submit("Berlin")
	d.Flush()

	time.Sleep(60 * time.Millisecond)
	s.Empty(s.firedQueries())
}

func (s *QueryDebouncerTestSuite) TestCancelDropsPendingButAcceptsLaterQueries() {
	d := service.NewQueryDebouncer(20*time.Millisecond, s.record)
	defer d.Stop()

	d.Submit("Ber")
	d.Cancel()
	d.Flush()

	time.Sleep(60 * time.Millisecond)
	s.Empty(s.firedQueries())

	d.Submit("Bern")
	s.Eventually(func() bool {
		return len(s.firedQueries()) == 1
	}, time.Second, 5*time.Millisecond)
	s.Equal([]string{"Bern"}, s.firedQueries())
}

func (s *QueryDebouncerTestSuite) TestSeparateBurstsFireSeparately() {
	d := service.NewQueryDebouncer(10*time.Millisecond, s.record)
	defer d.Stop()

	d.Submit("Mad")
	s.Eventually(func() bool {
		return len(s.firedQueries()) == 1
	}, time.Second, 5*time.Millisecond)

	d.Submit("Madrid")
	s.Eventually(func() bool {
		return len(s.firedQueries()) == 2
	}, time.Second, 5*time.Millisecond)

	s.Equal([]string{"Mad", "Madrid"}, s.firedQueries())
}

func TestQueryDebouncerTestSuite(t *testing.T) {
	suite.Run(t, new(QueryDebouncerTestSuite))
}
