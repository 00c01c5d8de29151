package cache

import "time"

// Keys and freshness windows of the catalog reads.
const (
	KeyLocations  = "locations"
	KeyCategories = "categories"

	TTLLocations     = 15 * time.Minute
	TTLCategories    = 10 * time.Minute
	TTLShops         = 3 * time.Minute
	TTLShop          = 5 * time.Minute
	TTLFeaturedShops = 5 * time.Minute
	TTLDeals         = 2 * time.Minute
)

func ShopKey(id string) string {
	return "shop_" + id
}

func DealsByShopKey(shopID string) string {
	return "deals_shop_" + shopID
}

// FeaturedShopsKey is featured_shops_{location|all}.
func FeaturedShopsKey(locationID string) string {
	if locationID == "" {
		locationID = "all"
	}
	return "featured_shops_" + locationID
}
