package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/pkg/errs"
)

// ErrLocationUnresolved is returned when no rule, default or upstream location applies.
var ErrLocationUnresolved = errors.New("fulfillment location could not be resolved")

// LocationLister is the upstream lookup used as the last resort of LocationResolver.
type LocationLister interface {
	ListFulfillmentLocations(ctx context.Context) ([]kernel.LocationID, error)
}

// LocationRule attributes orders whose shipping line mentions one of its
// keywords to a physical location.
type LocationRule struct {
	location kernel.LocationID
	keywords []string
}

// NewLocationRule normalizes keywords to NFC lower case and drops blanks.
// At least one keyword must remain.
func NewLocationRule(location kernel.LocationID, keywords []string) (LocationRule, error) {
	if err := location.Validate(); err != nil {
		return LocationRule{}, err
	}

	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = normalizeKeyword(kw); kw != "" {
			normalized = append(normalized, kw)
		}
	}
	if len(normalized) == 0 {
		return LocationRule{}, errs.NewValueIsRequiredError("location rule keywords")
	}

	return LocationRule{location: location, keywords: normalized}, nil
}

func (r LocationRule) Location() kernel.LocationID {
	return r.location
}

func (r LocationRule) Keywords() []string {
	return append([]string(nil), r.keywords...)
}

// matches reports whether the title contains a keyword or the code equals one.
func (r LocationRule) matches(line order.ShippingLine) bool {
	title := normalizeKeyword(line.Title())
	code := normalizeKeyword(line.Code())
	for _, kw := range r.keywords {
		if strings.Contains(title, kw) || code == kw {
			return true
		}
	}
	return false
}

// LocationResolver decides which location an order is fulfilled from.
//
// Priority order:
//   - the location already assigned to the order upstream
//   - the first rule whose keywords match the order's first shipping line
//   - the configured default location
//   - the first location returned by the upstream lister
//
// Rules are checked in the order given; their keyword sets must be disjoint.
type LocationResolver struct {
	rules    []LocationRule
	fallback *kernel.LocationID
}

// NewLocationResolver rejects rules that share a keyword. fallback may be nil.
func NewLocationResolver(rules []LocationRule, fallback *kernel.LocationID) (*LocationResolver, error) {
	seen := make(map[string]kernel.LocationID)
	for _, rule := range rules {
		if err := rule.location.Validate(); err != nil {
			return nil, err
		}
		for _, kw := range rule.keywords {
			if owner, ok := seen[kw]; ok {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"location rule keywords",
					fmt.Errorf("keyword %q is used by locations %s and %s", kw, owner, rule.location),
				)
			}
			seen[kw] = rule.location
		}
	}

	r := &LocationResolver{rules: append([]LocationRule(nil), rules...)}
	if fallback != nil {
		if err := fallback.Validate(); err != nil {
			return nil, err
		}
		loc := *fallback
		r.fallback = &loc
	}
	return r, nil
}

// ResolveLocally applies every rule that needs no remote call.
func (r *LocationResolver) ResolveLocally(o *order.Order) (kernel.LocationID, bool) {
	if loc, ok := o.AssignedLocation(); ok {
		return loc, true
	}

	if line, ok := o.FirstShippingLine(); ok {
		for _, rule := range r.rules {
			if rule.matches(line) {
				return rule.location, true
			}
		}
	}

	if r.fallback != nil {
		return *r.fallback, true
	}

	return kernel.LocationID{}, false
}

// Resolve falls back to the upstream location list when local rules do not
// apply. Lister failures and an empty list both yield ErrLocationUnresolved.
func (r *LocationResolver) Resolve(ctx context.Context, o *order.Order, lister LocationLister) (kernel.LocationID, error) {
	if err := o.Validate(); err != nil {
		return kernel.LocationID{}, err
	}

	if loc, ok := r.ResolveLocally(o); ok {
		return loc, nil
	}

	if lister == nil {
		return kernel.LocationID{}, ErrLocationUnresolved
	}

	locations, err := lister.ListFulfillmentLocations(ctx)
	if err != nil {
		return kernel.LocationID{}, fmt.Errorf("%w: %w", ErrLocationUnresolved, err)
	}
	if len(locations) == 0 {
		return kernel.LocationID{}, ErrLocationUnresolved
	}

	return locations[0], nil
}

func normalizeKeyword(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
