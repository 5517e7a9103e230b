package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pickup/internal/adapters/out/shopify"
	"pickup/internal/jobs"
)

const (
	DefaultHTTPPort           = "8080"
	DefaultUpstreamTimeout    = 10 * time.Second
	DefaultShopifyRateLimit   = 2.0
	DefaultShopifyRateBurst   = 10
	DefaultStoreKeywords      = "חנות"
	DefaultWarehouseKeywords  = "מחסן"
	DefaultFulfillmentMessage = "Pickup confirmed by customer"
	DefaultPickupLanguage     = "he"

	LocationDefaultStore     = "store"
	LocationDefaultWarehouse = "warehouse"
)

type Config struct {
	HTTPPort string

	ShopName          string
	ShopifyAdminToken string
	ShopifyAPIVersion string
	ShopifyRateLimit  float64
	ShopifyRateBurst  int
	UpstreamTimeout   time.Duration

	LocationStoreID           string
	LocationStoreKeywords     []string
	LocationWarehouseID       string
	LocationWarehouseKeywords []string
	LocationDefault           string

	FulfillmentMessage string
	PickupLanguage     string
	PublicBaseURL      string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ReconcileSchedule string
}

// LoadConfig reads every setting through getenv, applying defaults to the
// optional ones. All malformed values are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:          value("HTTP_PORT", DefaultHTTPPort),
		ShopName:          value("SHOP_NAME", ""),
		ShopifyAdminToken: value("SHOPIFY_ADMIN_TOKEN", ""),
		ShopifyAPIVersion: value("SHOPIFY_API_VERSION", shopify.DefaultAPIVersion),

		LocationStoreID:           value("LOCATION_STORE_ID", ""),
		LocationStoreKeywords:     splitList(value("LOCATION_STORE_KEYWORDS", DefaultStoreKeywords)),
		LocationWarehouseID:       value("LOCATION_WAREHOUSE_ID", ""),
		LocationWarehouseKeywords: splitList(value("LOCATION_WAREHOUSE_KEYWORDS", DefaultWarehouseKeywords)),
		LocationDefault:           strings.ToLower(value("LOCATION_DEFAULT", "")),

		FulfillmentMessage: value("FULFILLMENT_MESSAGE", DefaultFulfillmentMessage),
		PickupLanguage:     value("PICKUP_LANGUAGE", DefaultPickupLanguage),
		PublicBaseURL:      strings.TrimRight(value("PUBLIC_BASE_URL", ""), "/"),

		DBHost:     value("DB_HOST", ""),
		DBPort:     value("DB_PORT", ""),
		DBUser:     value("DB_USER", ""),
		DBPassword: getenv("DB_PASSWORD"),
		DBName:     value("DB_NAME", ""),
		DBSslMode:  value("DB_SSLMODE", ""),

		ReconcileSchedule: value("RECONCILE_SCHEDULE", jobs.DefaultReconcileSchedule),
	}

	var err error
	cfg.ShopifyRateLimit, err = parseFloat("SHOPIFY_RATE_LIMIT", getenv, DefaultShopifyRateLimit, err)
	cfg.ShopifyRateBurst, err = parseInt("SHOPIFY_RATE_BURST", getenv, DefaultShopifyRateBurst, err)
	cfg.UpstreamTimeout, err = parseDuration("UPSTREAM_TIMEOUT", getenv, DefaultUpstreamTimeout, err)

	switch cfg.LocationDefault {
	case "", LocationDefaultStore, LocationDefaultWarehouse:
	default:
		err = errors.Join(err, fmt.Errorf("LOCATION_DEFAULT must be %q or %q, got %q",
			LocationDefaultStore, LocationDefaultWarehouse, cfg.LocationDefault))
	}

	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UsesDatabase reports whether the journal should be persisted in Postgres.
func (c Config) UsesDatabase() bool {
	return c.DBHost != ""
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloat(key string, getenv func(string) string, fallback float64, prev error) (float64, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, prev
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback, errors.Join(prev, fmt.Errorf("%s must be a positive number, got %q", key, raw))
	}
	return v, prev
}

func parseInt(key string, getenv func(string) string, fallback int, prev error) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, prev
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback, errors.Join(prev, fmt.Errorf("%s must be a positive integer, got %q", key, raw))
	}
	return v, prev
}

func parseDuration(key string, getenv func(string) string, fallback time.Duration, prev error) (time.Duration, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, prev
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return fallback, errors.Join(prev, fmt.Errorf("%s must be a positive duration, got %q", key, raw))
	}
	return v, prev
}
