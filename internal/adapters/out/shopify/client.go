// Package shopify implements ports.OrderGateway against the Shopify Admin REST API.
//
// Every call waits on a shared token-bucket limiter before it is sent, so the
// service stays under the shop's API call limit. Requests are never retried
// here; the caller decides what a failure means.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

const (
	DefaultAPIVersion = "2025-07"
	DefaultRateLimit  = 2
	DefaultRateBurst  = 10

	accessTokenHeader = "X-Shopify-Access-Token"
	maxErrorBody      = 64 << 10
)

var _ ports.OrderGateway = (*Client)(nil)

// Stable versions are released quarterly.
var apiVersionPattern = regexp.MustCompile(`^(\d{4}-(01|04|07|10)|unstable)$`)

// Config holds the connection settings of one shop.
type Config struct {
	// ShopName is the shop host, e.g. "my-shop.myshopify.com".
	ShopName    string
	AccessToken string
	APIVersion  string

	// BaseURL overrides "https://<ShopName>"; used to point at a test server.
	BaseURL string

	// RateLimit is the sustained number of requests per second.
	RateLimit float64
	RateBurst int

	HTTPClient *http.Client
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	limiter     *rate.Limiter
	tracer      trace.Tracer
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" && strings.TrimSpace(cfg.ShopName) == "" {
		return nil, errs.NewValueIsRequiredError("shop name")
	}
	if cfg.AccessToken == "" {
		return nil, errs.NewValueIsRequiredError("access token")
	}

	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	if !apiVersionPattern.MatchString(version) {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"shopify api version",
			fmt.Errorf("%q is not YYYY-MM with a quarterly month", version),
		)
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = "https://" + strings.TrimSuffix(strings.TrimSpace(cfg.ShopName), "/")
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = DefaultRateLimit
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = DefaultRateBurst
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     base + "/admin/api/" + version,
		accessToken: cfg.AccessToken,
		limiter:     rate.NewLimiter(limit, burst),
		tracer:      otel.Tracer("pickup/shopify"),
	}, nil
}

func (c *Client) GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var envelope orderEnvelope
	status, body, err := c.do(ctx, http.MethodGet, "/orders/"+id.String()+".json", nil, &envelope)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("order", id.String())
	case status != http.StatusOK:
		return nil, fmt.Errorf("get order %s: unexpected status %d: %s", id, status, errorDetail(body))
	}

	return toDomainOrder(id, envelope.Order)
}

// ListFulfillmentLocations returns active locations in the order Shopify lists them.
func (c *Client) ListFulfillmentLocations(ctx context.Context) ([]kernel.LocationID, error) {
	var envelope locationsEnvelope
	status, body, err := c.do(ctx, http.MethodGet, "/locations.json", nil, &envelope)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list locations: unexpected status %d: %s", status, errorDetail(body))
	}

	locations := make([]kernel.LocationID, 0, len(envelope.Locations))
	for _, l := range envelope.Locations {
		if !l.Active {
			continue
		}
		loc, err := kernel.NewLocationID(l.ID)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// CreateFulfillment posts one fulfillment. Error statuses become
// *fulfillment.RejectedError; transport failures are returned as is.
func (c *Client) CreateFulfillment(
	ctx context.Context,
	id kernel.OrderID,
	req fulfillment.Request,
) (fulfillment.Receipt, error) {
	if err := req.Validate(); err != nil {
		return fulfillment.Receipt{}, err
	}

	payload, err := json.Marshal(fromDomainRequest(req))
	if err != nil {
		return fulfillment.Receipt{}, err
	}

	var envelope receiptEnvelope
	status, body, err := c.do(ctx, http.MethodPost, "/orders/"+id.String()+"/fulfillments.json", payload, &envelope)
	if err != nil && status/100 == 2 {
		// accepted, only the receipt body was unreadable
		return fulfillment.Receipt{Status: "success"}, nil
	}
	if err != nil {
		return fulfillment.Receipt{}, err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return fulfillment.Receipt{}, classifyRejection(status, body)
	}

	return fulfillment.Receipt{ID: envelope.Fulfillment.ID, Status: envelope.Fulfillment.Status}, nil
}

// do sends one request. On 2xx the body is decoded into out; otherwise the
// raw body is returned for error reporting.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) (int, []byte, error) {
	ctx, span := c.tracer.Start(ctx, "shopify "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", method)))
	defer span.End()

	if err := c.limiter.Wait(ctx); err != nil {
		span.RecordError(err)
		return 0, nil, fmt.Errorf("%w: rate limiter: %w", fulfillment.ErrRequestNotSent, err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", fulfillment.ErrRequestNotSent, err)
	}
	req.Header.Set(accessTokenHeader, c.accessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		span.SetStatus(codes.Error, resp.Status)
		return resp.StatusCode, body, nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			span.RecordError(err)
			return resp.StatusCode, nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil, nil
}

// classifyRejection maps an error response of the fulfillment endpoint.
//
//   - 406: the payload shape was refused
//   - 422 naming line items: the items cannot be fulfilled
//   - any other 422: the order as a whole is invalid
//   - everything else: RejectionOther
func classifyRejection(status int, body []byte) *fulfillment.RejectedError {
	detail := errorDetail(body)

	switch status {
	case http.StatusNotAcceptable:
		return fulfillment.NewRejectedError(fulfillment.RejectionNotAcceptable, status, detail)
	case http.StatusUnprocessableEntity:
		if mentionsLineItems(body) {
			return fulfillment.NewRejectedError(fulfillment.RejectionItemsUnavailable, status, detail)
		}
		return fulfillment.NewRejectedError(fulfillment.RejectionOrderInvalid, status, detail)
	default:
		return fulfillment.NewRejectedError(fulfillment.RejectionOther, status, detail)
	}
}

func mentionsLineItems(body []byte) bool {
	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		var fields map[string]json.RawMessage
		if json.Unmarshal(envelope.Errors, &fields) == nil {
			for key := range fields {
				if strings.HasPrefix(strings.ToLower(key), "line_item") {
					return true
				}
			}
			return false
		}
	}

	lower := strings.ToLower(string(body))
	return strings.Contains(lower, "line_item") || strings.Contains(lower, "line item")
}

// errorDetail flattens Shopify's "errors" field, which is either a string or
// an object of field name to messages.
func errorDetail(body []byte) string {
	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Errors) == 0 {
		return strings.TrimSpace(string(body))
	}

	var message string
	if json.Unmarshal(envelope.Errors, &message) == nil {
		return message
	}

	var fields map[string][]string
	if json.Unmarshal(envelope.Errors, &fields) == nil {
		parts := make([]string, 0, len(fields))
		for key, messages := range fields {
			parts = append(parts, key+": "+strings.Join(messages, ", "))
		}
		slices.Sort(parts)
		return strings.Join(parts, "; ")
	}

	return string(envelope.Errors)
}
