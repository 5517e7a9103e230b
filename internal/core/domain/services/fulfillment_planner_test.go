package services_test

import (
	"testing"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFulfillmentPlanner_Plan(t *testing.T) {
	planner := services.NewFulfillmentPlanner("Pickup confirmed by customer")
	location := kernel.MustNewLocationID(warehouseLocation)

	t.Run("cascade from explicit to notify only", func(t *testing.T) {
		partition := services.Partition{AutoFulfillable: []order.LineItem{
			newLineItem(t, 1, 2, order.FulfillmentStatusUnfulfilled, "shopify"),
			newLineItem(t, 2, 1, order.FulfillmentStatusUnfulfilled, "shopify"),
		}}

		plan, err := planner.Plan(partition, location)

		require.NoError(t, err)
		require.Len(t, plan, len(fulfillment.CascadeOrder))
		for i, req := range plan {
			assert.Equal(t, fulfillment.CascadeOrder[i], req.Strategy())
			assert.True(t, req.NotifyCustomer())
		}

		assert.Equal(t, []fulfillment.LineItem{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 1}}, plan[0].LineItems())
		loc, ok := plan[0].Location()
		require.True(t, ok)
		assert.True(t, loc.IsEqual(location))

		assert.Empty(t, plan[1].LineItems())
		_, ok = plan[1].Location()
		assert.True(t, ok)

		_, ok = plan[2].Location()
		assert.False(t, ok)
		assert.Equal(t, "Pickup confirmed by customer", plan[2].Message())

		assert.Empty(t, plan[3].Message())
	})

	t.Run("manual-only partition has no plan", func(t *testing.T) {
		partition := services.Partition{Manual: []order.LineItem{
			newLineItem(t, 1, 1, order.FulfillmentStatusUnfulfilled, order.ManualFulfillmentService),
		}}

		_, err := planner.Plan(partition, location)

		assert.ErrorIs(t, err, services.ErrNothingToFulfill)
	})
}
