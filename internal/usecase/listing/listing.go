package listing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"zavvi-web/internal/domain/catalog"
	"zavvi-web/internal/domain/coupon"
	"zavvi-web/internal/domain/location"
	"zavvi-web/internal/infra"
	"zavvi-web/internal/pkg/clock"
	"zavvi-web/internal/usecase/cache"
	"zavvi-web/internal/usecase/locationstore"
)

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/listing/listing.go -package=listingmock

// API is the read side of the backend.
type API interface {
	Locations(ctx context.Context) ([]location.Location, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
	Shops(ctx context.Context, q catalog.ShopQuery) ([]catalog.Shop, error)
	Shop(ctx context.Context, id string) (catalog.Shop, error)
	FeaturedShops(ctx context.Context, locationRef string) ([]catalog.Shop, error)
	DealsByShop(ctx context.Context, shopID string) ([]coupon.Deal, error)
	Deal(ctx context.Context, id string) (coupon.Deal, error)
}

// Gate holds protected reads back until a location is selected.
type Gate interface {
	Wait(ctx context.Context) error
}

// Home is the landing view for one location.
type Home struct {
	Location   location.Location  `json:"location"`
	Featured   []catalog.Shop     `json:"featured"`
	Categories []catalog.Category `json:"categories"`
	LoadedAt   time.Time          `json:"loadedAt"`
}

// Service serves the catalog through the request cache. Everything except
// the location list waits on the gate.
type Service struct {
	api       API
	gate      Gate
	cache     *cache.RequestCache
	locations *locationstore.Store
	clock     clock.Clock
	logger    *slog.Logger

	home locationstore.Latest[Home]
}

func New(api API, gate Gate, c *cache.RequestCache, locations *locationstore.Store, clk clock.Clock, logger *slog.Logger) *Service {
	s := &Service{api: api, gate: gate, cache: c, locations: locations, clock: clk, logger: logger}

	c.OnCleared(s.home.Reset)

	// the first delivery is the current selection, which Home loads on demand
	initial := true
	locations.Subscribe(func(loc *location.Location) {
		if initial {
			initial = false
			return
		}
		if loc == nil {
			s.home.Reset()
			return
		}
		go func(loc location.Location) {
			if _, err := s.reloadHome(context.Background(), loc); err != nil {
				s.logger.Warn("Home reload failed", slog.String("location", loc.Name), slog.String("error", err.Error()))
			}
		}(*loc)
	})
	return s
}

// Locations is not gated: the gate itself needs the list.
func (s *Service) Locations(ctx context.Context) ([]location.Location, error) {
	list, err := cache.Get(ctx, s.cache, cache.KeyLocations, cache.TTLLocations, s.api.Locations)
	if err != nil {
		return nil, err
	}
	return location.FilterValid(list), nil
}

func (s *Service) Categories(ctx context.Context) ([]catalog.Category, error) {
	if err := s.gate.Wait(ctx); err != nil {
		return nil, err
	}
	return cache.Get(ctx, s.cache, cache.KeyCategories, cache.TTLCategories, s.api.Categories)
}

func (s *Service) Shops(ctx context.Context, q catalog.ShopQuery) ([]catalog.Shop, error) {
	if err := s.gate.Wait(ctx); err != nil {
		return nil, err
	}
	q.Search = strings.TrimSpace(q.Search)
	return cache.Get(ctx, s.cache, q.CacheKey(), cache.TTLShops, func(ctx context.Context) ([]catalog.Shop, error) {
		return s.api.Shops(ctx, q)
	})
}

func (s *Service) Shop(ctx context.Context, id string) (catalog.Shop, error) {
	if strings.TrimSpace(id) == "" {
		return catalog.Shop{}, infra.NewError(infra.KindValidation, 0, "Shop id is required", nil)
	}
	if err := s.gate.Wait(ctx); err != nil {
		return catalog.Shop{}, err
	}
	return cache.Get(ctx, s.cache, cache.ShopKey(id), cache.TTLShop, func(ctx context.Context) (catalog.Shop, error) {
		return s.api.Shop(ctx, id)
	})
}

func (s *Service) FeaturedShops(ctx context.Context, locationID string) ([]catalog.Shop, error) {
	if err := s.gate.Wait(ctx); err != nil {
		return nil, err
	}
	return cache.Get(ctx, s.cache, cache.FeaturedShopsKey(locationID), cache.TTLFeaturedShops, func(ctx context.Context) ([]catalog.Shop, error) {
		return s.api.FeaturedShops(ctx, locationID)
	})
}

func (s *Service) DealsByShop(ctx context.Context, shopID string) ([]coupon.Deal, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, infra.NewError(infra.KindValidation, 0, "Shop id is required", nil)
	}
	if err := s.gate.Wait(ctx); err != nil {
		return nil, err
	}
	return cache.Get(ctx, s.cache, cache.DealsByShopKey(shopID), cache.TTLDeals, func(ctx context.Context) ([]coupon.Deal, error) {
		return s.api.DealsByShop(ctx, shopID)
	})
}

// Deal is read fresh every time; it gates a claim.
func (s *Service) Deal(ctx context.Context, id string) (coupon.Deal, error) {
	if strings.TrimSpace(id) == "" {
		return coupon.Deal{}, infra.NewError(infra.KindValidation, 0, "Deal id is required", nil)
	}
	if err := s.gate.Wait(ctx); err != nil {
		return coupon.Deal{}, err
	}
	return s.api.Deal(ctx, id)
}

// PrefetchShop warms the shop and its deals.
func (s *Service) PrefetchShop(ctx context.Context, id string) {
	if id == "" {
		return
	}
	cache.Prefetch(ctx, s.cache, cache.ShopKey(id), cache.TTLShop, func(ctx context.Context) (catalog.Shop, error) {
		return s.api.Shop(ctx, id)
	})
	cache.Prefetch(ctx, s.cache, cache.DealsByShopKey(id), cache.TTLDeals, func(ctx context.Context) ([]coupon.Deal, error) {
		return s.api.DealsByShop(ctx, id)
	})
}

// PrefetchCategory warms the shop list of a category at the selected location.
func (s *Service) PrefetchCategory(ctx context.Context, categoryID string) {
	q := catalog.ShopQuery{Category: categoryID, Location: s.locations.SelectedLocationID()}
	cache.Prefetch(ctx, s.cache, q.CacheKey(), cache.TTLShops, func(ctx context.Context) ([]catalog.Shop, error) {
		return s.api.Shops(ctx, q)
	})
}

// Invalidate drops entries whose key contains pattern; an empty pattern clears everything.
func (s *Service) Invalidate(pattern string) int {
	if pattern == "" {
		n := s.cache.Stats().Size
		s.cache.ClearAll()
		return n
	}
	return s.cache.InvalidatePattern(pattern)
}

// Home returns the landing view for the selected location, loading it if the
// location changed since the last load.
func (s *Service) Home(ctx context.Context) (Home, error) {
	if err := s.gate.Wait(ctx); err != nil {
		return Home{}, err
	}
	loc := s.locations.SelectedLocation()
	if loc == nil {
		return Home{}, infra.NewError(infra.KindValidation, 0, "Please select a location to continue", nil)
	}
	if h, ok := s.home.Current(loc.Key()); ok && clock.Since(s.clock, h.LoadedAt) < cache.TTLFeaturedShops {
		return h, nil
	}
	return s.reloadHome(ctx, *loc)
}

// reloadHome loads the home view for loc. The result is kept only if no newer
// reload started meanwhile; the caller gets it either way.
func (s *Service) reloadHome(ctx context.Context, loc location.Location) (Home, error) {
	ticket := s.home.Begin(loc.Key())

	featured, err := s.FeaturedShops(ctx, loc.Key())
	if err != nil {
		return Home{}, err
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return Home{}, err
	}

	h := Home{Location: loc, Featured: s.atLocation(featured, loc), Categories: categories, LoadedAt: s.clock.Now()}
	if !s.home.Commit(ticket, h) {
		s.logger.Debug("Discarded superseded home reload", slog.String("location", loc.Name))
	}
	return h, nil
}

// atLocation drops featured shops that name a different place. Spellings are
// taken from the last location list seen, however old; shops without a
// location name are kept.
func (s *Service) atLocation(shops []catalog.Shop, loc location.Location) []catalog.Shop {
	list, _ := cache.Peek[[]location.Location](s.cache, cache.KeyLocations)
	variations := location.VariationsFrom(list)

	out := shops[:0:0]
	for _, shop := range shops {
		ref := shop.Location
		if ref.Name == "" || (ref.ID != "" && loc.Matches(ref.ID)) || variations.Match(ref.Name, loc.Name) {
			out = append(out, shop)
		}
	}
	return out
}
