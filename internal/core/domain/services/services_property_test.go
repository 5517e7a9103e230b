//go:build property
// +build property

package services_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/domain/services"
)

// TestCapabilityTokenProperties checks Verify(o, Derive(o)) and determinism.
func TestCapabilityTokenProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	tokens := services.NewCapabilityToken()

	properties.Property("derived token always verifies", prop.ForAll(
		func(n uint64) bool {
			id := kernel.MustNewOrderID(strconv.FormatUint(n, 10))
			return tokens.Derive(id) == tokens.Derive(id) && tokens.Verify(id, tokens.Derive(id))
		},
		gen.UInt64(),
	))

	properties.Property("token of one order never verifies another", prop.ForAll(
		func(a, b uint64) bool {
			if a == b {
				return true
			}
			idA := kernel.MustNewOrderID(strconv.FormatUint(a, 10))
			idB := kernel.MustNewOrderID(strconv.FormatUint(b, 10))
			return !tokens.Verify(idA, tokens.Derive(idB))
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestLineItemPartitionerProperties checks that subsets are disjoint and that
// nothing without a fulfillable quantity is selected.
func TestLineItemPartitionerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	partitioner := services.NewLineItemPartitioner()

	statuses := []order.FulfillmentStatus{
		order.FulfillmentStatusUnfulfilled,
		order.FulfillmentStatusPartial,
		order.FulfillmentStatusFulfilled,
		order.FulfillmentStatusOther,
	}

	properties.Property("partition is disjoint and excludes empty items", prop.ForAll(
		func(quantities []int, statusIdx []int, manual []bool) bool {
			items := make([]order.LineItem, 0, len(quantities))
			for i, q := range quantities {
				status := order.FulfillmentStatusUnfulfilled
				if len(statusIdx) > 0 {
					status = statuses[statusIdx[i%len(statusIdx)]]
				}
				service := "shopify"
				if len(manual) > 0 && manual[i%len(manual)] {
					service = order.ManualFulfillmentService
				}
				item, err := order.NewLineItem(int64(i+1), "item", q, q, status, service)
				if err != nil {
					return false
				}
				items = append(items, item)
			}
			o, err := order.NewOrder(kernel.MustNewOrderID("1001"), "#1001", order.FinancialStatusPaid,
				order.FulfillmentStatusUnfulfilled, items, nil, nil)
			if err != nil {
				return false
			}

			p := partitioner.Partition(o)
			seen := make(map[int64]bool)
			for _, li := range append(p.AutoFulfillable, p.Manual...) {
				if seen[li.ID()] || li.FulfillableQuantity() == 0 {
					return false
				}
				seen[li.ID()] = true
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

// TestLocationResolverProperties checks determinism and the assigned-location short circuit.
func TestLocationResolverProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	warehouse, _ := services.NewLocationRule(kernel.MustNewLocationID(warehouseLocation), []string{"מחסן"})
	store, _ := services.NewLocationRule(kernel.MustNewLocationID(storeLocation), []string{"חנות"})
	fallback := kernel.MustNewLocationID(storeLocation)
	resolver, _ := services.NewLocationResolver([]services.LocationRule{warehouse, store}, &fallback)

	titles := gen.OneGenOf(gen.AlphaString(), gen.Const("איסוף מחסן"), gen.Const("חנות תל אביב"))

	properties.Property("assigned location always wins", prop.ForAll(
		func(assigned int64, title, code string) bool {
			loc := kernel.MustNewLocationID(assigned)
			o, err := order.NewOrder(kernel.MustNewOrderID("1001"), "", order.FinancialStatusPaid,
				order.FulfillmentStatusUnfulfilled, nil, []order.ShippingLine{order.NewShippingLine(title, code)}, &loc)
			if err != nil {
				return false
			}
			got, ok := resolver.ResolveLocally(o)
			return ok && got.IsEqual(loc)
		},
		gen.Int64Range(1, 1<<40),
		titles,
		gen.AlphaString(),
	))

	properties.Property("resolution is deterministic", prop.ForAll(
		func(title, code string) bool {
			o, err := order.NewOrder(kernel.MustNewOrderID("1001"), "", order.FinancialStatusPaid,
				order.FulfillmentStatusUnfulfilled, nil, []order.ShippingLine{order.NewShippingLine(title, code)}, nil)
			if err != nil {
				return false
			}
			first, ok1 := resolver.ResolveLocally(o)
			second, ok2 := resolver.ResolveLocally(o)
			return ok1 && ok2 && first.IsEqual(second)
		},
		titles,
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
