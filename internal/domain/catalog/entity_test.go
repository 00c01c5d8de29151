//go:build unit

package catalog_test

import (
	"encoding/json"
	"testing"

	"zavvi-web/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopQueryCacheKey(t *testing.T) {
	assert.Equal(t, "shops_all_all_", catalog.ShopQuery{}.CacheKey())
	assert.Equal(t, "shops_food_pune_pizza", catalog.ShopQuery{Category: "food", Location: "pune", Search: "pizza"}.CacheKey())
	assert.Equal(t, "category=food&location=pune", catalog.ShopQuery{Category: "food", Location: "pune"}.Values().Encode())
}

func TestShopDecoding(t *testing.T) {
	var shops []catalog.Shop
	require.NoError(t, json.Unmarshal([]byte(`[
		{"_id":"s1","name":"Cafe","location":{"_id":"l1","name":"Pune"},"category":"c1","phone":"99"},
		{"id":"s2","name":"Deli","contact":"88","phone":"77"}
	]`), &shops))

	require.Len(t, shops, 2)
	assert.Equal(t, "s1", shops[0].ID)
	assert.Equal(t, catalog.Ref{ID: "l1", Name: "Pune"}, shops[0].Location)
	assert.Equal(t, "c1", shops[0].Category.ID)
	assert.Equal(t, "99", shops[0].VendorContact())
	assert.Equal(t, "88", shops[1].VendorContact())
}
