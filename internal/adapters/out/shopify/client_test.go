package shopify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pickup/internal/adapters/out/shopify"
	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accessToken = "shpat_test"

func newTestClient(t *testing.T, handler http.HandlerFunc) *shopify.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := shopify.NewClient(shopify.Config{
		BaseURL:     server.URL,
		AccessToken: accessToken,
		RateLimit:   1000,
		RateBurst:   100,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		_, err := shopify.NewClient(shopify.Config{ShopName: "shop.myshopify.com", AccessToken: accessToken})
		assert.NoError(t, err)
	})

	t.Run("invalid api version", func(t *testing.T) {
		_, err := shopify.NewClient(shopify.Config{ShopName: "shop.myshopify.com", AccessToken: accessToken, APIVersion: "2025-08"})
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("unstable api version", func(t *testing.T) {
		_, err := shopify.NewClient(shopify.Config{ShopName: "shop.myshopify.com", AccessToken: accessToken, APIVersion: "unstable"})
		assert.NoError(t, err)
	})

	t.Run("missing shop", func(t *testing.T) {
		_, err := shopify.NewClient(shopify.Config{AccessToken: accessToken})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := shopify.NewClient(shopify.Config{ShopName: "shop.myshopify.com"})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestClient_GetOrder(t *testing.T) {
	t.Run("maps the order snapshot", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/admin/api/2025-07/orders/1001.json", r.URL.Path)
			assert.Equal(t, accessToken, r.Header.Get("X-Shopify-Access-Token"))
			_, _ = io.WriteString(w, `{"order":{
				"id":1001,"name":"#1001","financial_status":"paid","fulfillment_status":null,
				"location_id":null,
				"line_items":[
					{"id":11,"title":"Shirt","quantity":2,"fulfillable_quantity":2,"fulfillment_status":null,"fulfillment_service":"manual"},
					{"id":12,"title":"Hat","quantity":1,"fulfillable_quantity":0,"fulfillment_status":"fulfilled","fulfillment_service":"shopify"}
				],
				"shipping_lines":[{"title":"איסוף עצמי מחסן","code":"מחסן"}]
			}}`)
		})

		o, err := client.GetOrder(t.Context(), kernel.MustNewOrderID("1001"))

		require.NoError(t, err)
		assert.Equal(t, "1001", o.ID().String())
		assert.Equal(t, "#1001", o.Name())
		assert.True(t, o.IsPaid())
		assert.Equal(t, order.FulfillmentStatusUnfulfilled, o.FulfillmentStatus())
		_, assigned := o.AssignedLocation()
		assert.False(t, assigned)

		items := o.LineItems()
		require.Len(t, items, 2)
		assert.True(t, items[0].IsManual())
		assert.True(t, items[0].IsEligible())
		assert.Equal(t, order.FulfillmentStatusFulfilled, items[1].FulfillmentStatus())

		line, ok := o.FirstShippingLine()
		require.True(t, ok)
		assert.Equal(t, "מחסן", line.Code())
	})

	t.Run("assigned location", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"order":{"id":1001,"financial_status":"paid","location_id":78097875044}}`)
		})

		o, err := client.GetOrder(t.Context(), kernel.MustNewOrderID("1001"))

		require.NoError(t, err)
		loc, ok := o.AssignedLocation()
		require.True(t, ok)
		assert.Equal(t, int64(78097875044), loc.Int64())
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"errors":"Not Found"}`)
		})

		_, err := client.GetOrder(t.Context(), kernel.MustNewOrderID("1001"))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.GetOrder(t.Context(), kernel.MustNewOrderID("1001"))

		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestClient_ListFulfillmentLocations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2025-07/locations.json", r.URL.Path)
		_, _ = io.WriteString(w, `{"locations":[
			{"id":1,"name":"Closed","active":false},
			{"id":78097875044,"name":"Store","active":true},
			{"id":79217262692,"name":"Warehouse","active":true}
		]}`)
	})

	locations, err := client.ListFulfillmentLocations(t.Context())

	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, int64(78097875044), locations[0].Int64())
	assert.Equal(t, int64(79217262692), locations[1].Int64())
}

func TestClient_CreateFulfillment_Payloads(t *testing.T) {
	location := kernel.MustNewLocationID(79217262692)
	items := []fulfillment.LineItem{{ID: 11, Quantity: 2}}
	const message = "Pickup confirmed by customer"

	tests := []struct {
		strategy fulfillment.Strategy
		want     string
	}{
		{
			fulfillment.StrategyExplicit,
			`{"fulfillment":{"location_id":79217262692,"line_items":[{"id":11,"quantity":2}],"notify_customer":true,"message":"Pickup confirmed by customer"}}`,
		},
		{
			fulfillment.StrategyWithoutLineItems,
			`{"fulfillment":{"location_id":79217262692,"notify_customer":true,"message":"Pickup confirmed by customer"}}`,
		},
		{
			fulfillment.StrategyWithoutLocation,
			`{"fulfillment":{"notify_customer":true,"message":"Pickup confirmed by customer"}}`,
		},
		{
			fulfillment.StrategyNotifyOnly,
			`{"fulfillment":{"notify_customer":true}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/admin/api/2025-07/orders/1001/fulfillments.json", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, tt.want, string(body))

				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(map[string]any{"fulfillment": map[string]any{"id": 555, "status": "success"}})
			})
			req, err := fulfillment.NewRequest(tt.strategy, items, location, message)
			require.NoError(t, err)

			receipt, err := client.CreateFulfillment(t.Context(), kernel.MustNewOrderID("1001"), req)

			require.NoError(t, err)
			assert.Equal(t, fulfillment.Receipt{ID: 555, Status: "success"}, receipt)
		})
	}
}

func TestClient_CreateFulfillment_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantClass  fulfillment.RejectionClass
		wantDetail string
	}{
		{"not acceptable", http.StatusNotAcceptable, ``, fulfillment.RejectionNotAcceptable, ""},
		{
			"line items not fulfillable",
			http.StatusUnprocessableEntity,
			`{"errors":{"line_items":["are not fulfillable"]}}`,
			fulfillment.RejectionItemsUnavailable,
			"line_items: are not fulfillable",
		},
		{
			"base error",
			http.StatusUnprocessableEntity,
			`{"errors":{"base":["Order is closed"]}}`,
			fulfillment.RejectionOrderInvalid,
			"base: Order is closed",
		},
		{
			"string error naming line items",
			http.StatusUnprocessableEntity,
			`{"errors":"Invalid line item quantity"}`,
			fulfillment.RejectionItemsUnavailable,
			"Invalid line item quantity",
		},
		{"unauthorized", http.StatusUnauthorized, `{"errors":"Invalid API key"}`, fulfillment.RejectionOther, "Invalid API key"},
		{"server fault", http.StatusServiceUnavailable, `oops`, fulfillment.RejectionOther, "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			req, err := fulfillment.NewRequest(fulfillment.StrategyNotifyOnly, nil, kernel.LocationID{}, "")
			require.NoError(t, err)

			_, err = client.CreateFulfillment(t.Context(), kernel.MustNewOrderID("1001"), req)

			var rejected *fulfillment.RejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, tt.wantClass, rejected.Class)
			assert.Equal(t, tt.status, rejected.StatusCode)
			assert.Equal(t, tt.wantDetail, rejected.Detail)
		})
	}
}

func TestClient_CreateFulfillment_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := shopify.NewClient(shopify.Config{
		BaseURL:     server.URL,
		AccessToken: accessToken,
		HTTPClient:  &http.Client{Timeout: 20 * time.Millisecond},
	})
	require.NoError(t, err)
	req, err := fulfillment.NewRequest(fulfillment.StrategyNotifyOnly, nil, kernel.LocationID{}, "")
	require.NoError(t, err)

	_, err = client.CreateFulfillment(t.Context(), kernel.MustNewOrderID("1001"), req)

	require.Error(t, err)
	var rejected *fulfillment.RejectedError
	assert.False(t, errors.As(err, &rejected))
	assert.NotErrorIs(t, err, fulfillment.ErrRequestNotSent)
}

func TestClient_CreateFulfillment_RateLimitedRequestIsNotSent(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"fulfillment":{"id":1,"status":"success"}}`)
	}))
	defer server.Close()

	client, err := shopify.NewClient(shopify.Config{
		BaseURL:     server.URL,
		AccessToken: accessToken,
		RateLimit:   0.001,
		RateBurst:   1,
	})
	require.NoError(t, err)
	req, err := fulfillment.NewRequest(fulfillment.StrategyNotifyOnly, nil, kernel.LocationID{}, "")
	require.NoError(t, err)
	id := kernel.MustNewOrderID("1001")

	_, err = client.CreateFulfillment(t.Context(), id, req)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()
	_, err = client.CreateFulfillment(ctx, id, req)

	require.ErrorIs(t, err, fulfillment.ErrRequestNotSent)
	assert.Equal(t, int32(1), hits.Load())
}
