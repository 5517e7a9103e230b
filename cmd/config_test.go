package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(env(map[string]string{
		"SHOP_NAME":           "my-shop.myshopify.com",
		"SHOPIFY_ADMIN_TOKEN": "shpat_x",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "2025-07", cfg.ShopifyAPIVersion)
	assert.InDelta(t, 2.0, cfg.ShopifyRateLimit, 1e-9)
	assert.Equal(t, 10, cfg.ShopifyRateBurst)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"חנות"}, cfg.LocationStoreKeywords)
	assert.Equal(t, []string{"מחסן"}, cfg.LocationWarehouseKeywords)
	assert.Empty(t, cfg.LocationDefault)
	assert.Equal(t, "Pickup confirmed by customer", cfg.FulfillmentMessage)
	assert.Equal(t, "he", cfg.PickupLanguage)
	assert.Equal(t, "0 */5 * * * *", cfg.ReconcileSchedule)
	assert.False(t, cfg.UsesDatabase())
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(env(map[string]string{
		"HTTP_PORT":                   "9090",
		"SHOPIFY_RATE_LIMIT":          "0.5",
		"SHOPIFY_RATE_BURST":          "3",
		"UPSTREAM_TIMEOUT":            "2500ms",
		"LOCATION_STORE_KEYWORDS":     " חנות , store pickup ,,",
		"LOCATION_WAREHOUSE_KEYWORDS": "מחסן,warehouse",
		"LOCATION_DEFAULT":            "Warehouse",
		"PUBLIC_BASE_URL":             "https://pickup.example.com/",
		"DB_HOST":                     "db",
		"RECONCILE_SCHEDULE":          "*/30 * * * * *",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.InDelta(t, 0.5, cfg.ShopifyRateLimit, 1e-9)
	assert.Equal(t, 3, cfg.ShopifyRateBurst)
	assert.Equal(t, 2500*time.Millisecond, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"חנות", "store pickup"}, cfg.LocationStoreKeywords)
	assert.Equal(t, []string{"מחסן", "warehouse"}, cfg.LocationWarehouseKeywords)
	assert.Equal(t, LocationDefaultWarehouse, cfg.LocationDefault)
	assert.Equal(t, "https://pickup.example.com", cfg.PublicBaseURL)
	assert.Equal(t, "*/30 * * * * *", cfg.ReconcileSchedule)
	assert.True(t, cfg.UsesDatabase())
}

func TestLoadConfig_ReportsEveryMalformedValue(t *testing.T) {
	_, err := LoadConfig(env(map[string]string{
		"SHOPIFY_RATE_LIMIT": "fast",
		"SHOPIFY_RATE_BURST": "-1",
		"UPSTREAM_TIMEOUT":   "10",
		"LOCATION_DEFAULT":   "basement",
	}))
	require.Error(t, err)

	for _, key := range []string{"SHOPIFY_RATE_LIMIT", "SHOPIFY_RATE_BURST", "UPSTREAM_TIMEOUT", "LOCATION_DEFAULT"} {
		assert.Contains(t, err.Error(), key)
	}
}

func newOrder(t *testing.T, shippingTitle string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.MustNewOrderID("1001"), "#1001", order.FinancialStatusPaid, order.FulfillmentStatusUnfulfilled,
		nil, []order.ShippingLine{order.NewShippingLine(shippingTitle, "")}, nil)
	require.NoError(t, err)
	return o
}

func TestNewLocationResolver(t *testing.T) {
	base := Config{
		LocationStoreID:           "79217262692",
		LocationStoreKeywords:     []string{"חנות"},
		LocationWarehouseID:       "79217295460",
		LocationWarehouseKeywords: []string{"מחסן"},
	}

	t.Run("keyword rules", func(t *testing.T) {
		resolver, err := NewLocationResolver(base)
		require.NoError(t, err)

		loc, ok := resolver.ResolveLocally(newOrder(t, "איסוף עצמי מהמחסן"))
		require.True(t, ok)
		assert.Equal(t, "79217295460", loc.String())

		loc, ok = resolver.ResolveLocally(newOrder(t, "איסוף מהחנות"))
		require.True(t, ok)
		assert.Equal(t, "79217262692", loc.String())
	})

	t.Run("store is the default without LOCATION_DEFAULT", func(t *testing.T) {
		cfg, err := LoadConfig(env(map[string]string{
			"LOCATION_STORE_ID":     "79217262692",
			"LOCATION_WAREHOUSE_ID": "79217295460",
		}))
		require.NoError(t, err)
		resolver, err := NewLocationResolver(cfg)
		require.NoError(t, err)

		loc, ok := resolver.ResolveLocally(newOrder(t, "Standard shipping"))
		require.True(t, ok)
		assert.Equal(t, "79217262692", loc.String())
	})

	t.Run("explicit warehouse default", func(t *testing.T) {
		cfg := base
		cfg.LocationDefault = LocationDefaultWarehouse
		resolver, err := NewLocationResolver(cfg)
		require.NoError(t, err)

		loc, ok := resolver.ResolveLocally(newOrder(t, "Courier"))
		require.True(t, ok)
		assert.Equal(t, "79217295460", loc.String())
	})

	t.Run("warehouse only has no implicit default", func(t *testing.T) {
		cfg := base
		cfg.LocationStoreID = ""
		resolver, err := NewLocationResolver(cfg)
		require.NoError(t, err)

		loc, ok := resolver.ResolveLocally(newOrder(t, "מחסן"))
		require.True(t, ok)
		assert.Equal(t, "79217295460", loc.String())

		_, ok = resolver.ResolveLocally(newOrder(t, "Courier"))
		assert.False(t, ok)
	})

	t.Run("default without id", func(t *testing.T) {
		cfg := base
		cfg.LocationWarehouseID = ""
		cfg.LocationDefault = LocationDefaultWarehouse

		_, err := NewLocationResolver(cfg)
		assert.ErrorContains(t, err, "LOCATION_DEFAULT")
	})

	t.Run("malformed id", func(t *testing.T) {
		cfg := base
		cfg.LocationStoreID = "store-1"

		_, err := NewLocationResolver(cfg)
		assert.ErrorContains(t, err, "store location id")
	})

	t.Run("shared keyword", func(t *testing.T) {
		cfg := base
		cfg.LocationWarehouseKeywords = []string{"חנות"}

		_, err := NewLocationResolver(cfg)
		assert.Error(t, err)
	})

	t.Run("no locations configured", func(t *testing.T) {
		resolver, err := NewLocationResolver(Config{})
		require.NoError(t, err)

		_, ok := resolver.ResolveLocally(newOrder(t, "איסוף מהחנות"))
		assert.False(t, ok)
	})
}
