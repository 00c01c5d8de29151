//go:build unit

package locationstore_test

import (
	"context"
	"sync"
	"testing"

	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/infra/storage"
	"zavvi-web/internal/usecase/locationstore"
	"zavvi-web/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type recorder struct {
	mu   sync.Mutex
	seen []*location.Location
}

func (r *recorder) listen(loc *location.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, loc)
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.seen))
	for _, l := range r.seen {
		if l == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, l.Name)
	}
	return out
}

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	storage storage.Store
	store   *locationstore.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = storage.NewMemoryStore()
	s.store = locationstore.New(s.ctx, s.storage, testutil.DiscardLogger())
}

var locA = location.Location{ID: "a", Name: "A"}

func (s *StoreTestSuite) TestSetAndRead() {
	s.False(s.store.HasSelectedLocation())
	s.Nil(s.store.SelectedLocation())
	s.Equal("", s.store.SelectedLocationName())

	s.Require().NoError(s.store.SetSelectedLocation(s.ctx, locA))

	s.True(s.store.HasSelectedLocation())
	s.Equal("A", s.store.SelectedLocationName())
	s.Equal("a", s.store.SelectedLocationID())

	var persisted location.Location
	ok, err := storage.GetJSON(s.ctx, s.storage, storage.KeySelectedLocation, &persisted)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(locA, persisted)
}

func (s *StoreTestSuite) TestInvalidLocationRejected() {
	err := s.store.SetSelectedLocation(s.ctx, location.Location{Name: "Nowhere"})
	s.True(infra.IsKind(err, infra.KindValidation))
	s.False(s.store.HasSelectedLocation())
}

func (s *StoreTestSuite) TestSubscribersDeduplicateByID() {
	var rec recorder
	unsubscribe := s.store.Subscribe(rec.listen)

	s.Require().NoError(s.store.SetSelectedLocation(s.ctx, locA))
	s.Require().NoError(s.store.SetSelectedLocation(s.ctx, location.Location{ID: "a", Name: "A-renamed"}))
	s.Equal([]string{"<nil>", "A"}, rec.names(), "a same-id rename is not published")
	s.Equal("A-renamed", s.store.SelectedLocationName(), "the rename is stored even though it is not published")

	s.Require().NoError(s.store.SetSelectedLocation(s.ctx, location.Location{ID: "b", Name: "B"}))
	s.Equal([]string{"<nil>", "A", "B"}, rec.names())

	s.store.RefreshCurrentLocation()
	s.Equal([]string{"<nil>", "A", "B", "B"}, rec.names())

	unsubscribe()
	s.Require().NoError(s.store.SetSelectedLocation(s.ctx, location.Location{ID: "c", Name: "C"}))
	s.Len(rec.names(), 4)
}

func (s *StoreTestSuite) TestClearLocationData() {
	var rec recorder
	s.Require().NoError(s.store.SetSelectedLocation(s.ctx, locA))
	s.Require().NoError(s.store.MarkLocationSelected(s.ctx))
	s.store.Subscribe(rec.listen)

	s.Require().NoError(s.store.ClearLocationData(s.ctx))

	s.False(s.store.HasSelectedLocation())
	s.True(s.store.IsFirstVisit(s.ctx))
	s.Equal([]string{"A", "<nil>"}, rec.names())
}

func (s *StoreTestSuite) TestFirstVisitFlagIsIndependent() {
	s.True(s.store.IsFirstVisit(s.ctx))
	s.Require().NoError(s.store.MarkLocationSelected(s.ctx))
	s.False(s.store.IsFirstVisit(s.ctx))

	s.Require().NoError(s.storage.Remove(s.ctx, storage.KeySelectedLocation))
	s.False(s.store.IsFirstVisit(s.ctx), "clearing only the selection keeps first-visit satisfied")
}

func (s *StoreTestSuite) TestRestore() {
	s.Require().NoError(storage.SetJSON(s.ctx, s.storage, storage.KeySelectedLocation, locA))
	restored := locationstore.New(s.ctx, s.storage, testutil.DiscardLogger())
	s.Equal("A", restored.SelectedLocationName())

	s.Require().NoError(s.storage.Set(s.ctx, storage.KeySelectedLocation, "{broken"))
	corrupt := locationstore.New(s.ctx, s.storage, testutil.DiscardLogger())
	s.False(corrupt.HasSelectedLocation())

	s.Require().NoError(s.storage.Set(s.ctx, storage.KeySelectedLocation, `{"name":"no id"}`))
	invalid := locationstore.New(s.ctx, s.storage, testutil.DiscardLogger())
	s.False(invalid.HasSelectedLocation())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestLatestDiscardsSupersededReloads(t *testing.T) {
	var latest locationstore.Latest[[]string]

	first := latest.Begin("pune")
	second := latest.Begin("mumbai")

	assert.True(t, latest.Commit(second, []string{"mumbai shops"}))
	assert.False(t, latest.Commit(first, []string{"pune shops"}), "stale reload must not overwrite")

	got, ok := latest.Current("mumbai")
	assert.True(t, ok)
	assert.Equal(t, []string{"mumbai shops"}, got)

	_, ok = latest.Current("pune")
	assert.False(t, ok)

	third := latest.Begin("pune")
	_, ok = latest.Current("pune")
	assert.False(t, ok, "nothing committed for locA yet")
	latest.Reset()
	assert.False(t, latest.Commit(third, []string{"late"}))
}
