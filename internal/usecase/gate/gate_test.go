//go:build unit

package gate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/pkg/clock"
	"zavvi-web/internal/pkg/config"
	"zavvi-web/internal/usecase/cache"
	"zavvi-web/internal/usecase/gate"
	"zavvi-web/internal/usecase/locationstore"
	"zavvi-web/tests/common/testutil"
	gatemock "zavvi-web/tests/mock/gate"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var cities = []location.Location{
	{ID: "pune", Name: "Pune"},
	{Slug: "mumbai", Name: "Mumbai"},
	{ID: "broken"},
}

type GateTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	source    *gatemock.MockLocationSource
	storage   storage.Store
	locations *locationstore.Store
	cache     *cache.RequestCache
}

func (s *GateTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.source = gatemock.NewMockLocationSource(s.mockCtrl)
	s.storage = storage.NewMemoryStore()
	s.cache = cache.New(config.NewTestConfig(), clock.NewRealClock(), testutil.DiscardLogger())
}

func (s *GateTestSuite) newGate() *gate.Gate {
	s.locations = locationstore.New(s.ctx, s.storage, testutil.DiscardLogger())
	return gate.New(config.NewTestConfig(), s.locations, s.cache, s.source, s.storage, testutil.DiscardLogger())
}

func (s *GateTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GateTestSuite) TestStoredLocationSkipsModal() {
	s.Require().NoError(storage.SetJSON(s.ctx, s.storage, storage.KeySelectedLocation, cities[0]))
	g := s.newGate()
	s.Equal(gate.StateUnchecked, g.State())

	g.Start(s.ctx)

	s.Equal(gate.StateUnblocked, g.State())
	s.False(g.Modal().Visible)
	s.NoError(g.Wait(s.ctx))
}

func (s *GateTestSuite) TestBlocksUntilSelection() {
	s.source.EXPECT().Locations(gomock.Any()).Return(cities, nil)
	g := s.newGate()

	g.Start(s.ctx)

	s.Equal(gate.StateBlocked, g.State())
	s.False(g.Ready())
	modal := g.Modal()
	s.True(modal.Visible)
	s.False(modal.Loading)
	s.Len(modal.Locations, 2, "entries without a name are dropped")

	waitCtx, cancel := context.WithTimeout(s.ctx, 10*time.Millisecond)
	defer cancel()
	s.Error(g.Wait(waitCtx), "protected loads must not run before a selection")

	err := g.Select(s.ctx, "  ")
	s.True(infra.IsKind(err, infra.KindValidation))
	s.Equal(gate.MsgSelectRequired, g.Modal().Error)

	err = g.Select(s.ctx, "delhi")
	s.True(infra.IsKind(err, infra.KindValidation))
	s.Equal(gate.MsgInvalidLocation, g.Modal().Error)
	s.False(g.Ready())

	s.Require().NoError(g.Select(s.ctx, "mumbai"))
	s.Equal(gate.StateUnblocked, g.State())
	s.NoError(g.Wait(s.ctx))
	s.Equal("Mumbai", s.locations.SelectedLocationName())
	s.False(s.locations.IsFirstVisit(s.ctx))
}

func (s *GateTestSuite) TestAutomaticRetries() {
	gomock.InOrder(
		s.source.EXPECT().Locations(gomock.Any()).Return(nil, errors.New("timeout")),
		s.source.EXPECT().Locations(gomock.Any()).Return(nil, errors.New("timeout")),
		s.source.EXPECT().Locations(gomock.Any()).Return(cities, nil),
	)
	g := s.newGate()

	g.Start(s.ctx)

	modal := g.Modal()
	s.Empty(modal.Error)
	s.Equal(0, modal.RetryCount)
	s.Len(modal.Locations, 2)
}

func (s *GateTestSuite) TestManualRetryBudget() {
	// each load makes one attempt plus two automatic retries
	s.source.EXPECT().Locations(gomock.Any()).Return(nil, errors.New("offline")).Times(9)
	g := s.newGate()

	g.Start(s.ctx)
	s.Equal(gate.MsgNetwork, g.Modal().Error)
	s.Equal(1, g.Modal().RetryCount)

	s.Error(g.Retry(s.ctx))
	s.Error(g.Retry(s.ctx))
	s.Equal(3, g.Modal().RetryCount)
	s.False(g.Modal().Terminal)

	err := g.Retry(s.ctx)
	s.True(infra.IsKind(err, infra.KindDomainRejection))
	s.True(g.Modal().Terminal)
	s.Equal(gate.MsgMaxRetries, g.Modal().Error)
}

func (s *GateTestSuite) TestEmptyListIsNotCached() {
	gomock.InOrder(
		s.source.EXPECT().Locations(gomock.Any()).Return([]location.Location{}, nil),
		s.source.EXPECT().Locations(gomock.Any()).Return(cities, nil),
	)
	g := s.newGate()

	g.Start(s.ctx)
	s.Equal(gate.MsgNoLocations, g.Modal().Error)

	s.Require().NoError(g.Retry(s.ctx))
	s.Len(g.Modal().Locations, 2)
}

func (s *GateTestSuite) TestDismissAlwaysRejected() {
	s.source.EXPECT().Locations(gomock.Any()).Return(cities, nil)
	g := s.newGate()
	g.Start(s.ctx)

	for _, reason := range []string{"backdrop", "escape"} {
		err := g.Dismiss(reason)
		s.True(infra.IsKind(err, infra.KindValidation))
		s.Equal(gate.MsgDismissRejected, g.Modal().Error)
		s.Equal(gate.StateBlocked, g.State())
	}
}

func (s *GateTestSuite) TestClearingLocationBlocksAgain() {
	s.source.EXPECT().Locations(gomock.Any()).Return(cities, nil)
	s.Require().NoError(storage.SetJSON(s.ctx, s.storage, storage.KeySelectedLocation, cities[0]))
	g := s.newGate()
	g.Start(s.ctx)
	s.True(g.Ready())

	s.Require().NoError(s.locations.ClearLocationData(s.ctx))

	s.Equal(gate.StateBlocked, g.State())
	s.Eventually(func() bool { return len(g.Modal().Locations) == 2 }, time.Second, time.Millisecond)

	s.Require().NoError(s.locations.SetSelectedLocation(s.ctx, cities[0]))
	s.True(g.Ready())
}

func TestGateTestSuite(t *testing.T) {
	suite.Run(t, new(GateTestSuite))
}
