package services_test

import (
	"testing"

	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestOrderStateGate_Check(t *testing.T) {
	gate := services.NewOrderStateGate()

	tests := []struct {
		name        string
		financial   order.FinancialStatus
		fulfillment order.FulfillmentStatus
		wantErr     error
	}{
		{"paid and unfulfilled", order.FinancialStatusPaid, order.FulfillmentStatusUnfulfilled, nil},
		{"paid and partially fulfilled", order.FinancialStatusPaid, order.FulfillmentStatusPartial, nil},
		{"pending payment", order.FinancialStatusPending, order.FulfillmentStatusUnfulfilled, services.ErrPaymentIncomplete},
		{"refunded", order.FinancialStatusOther, order.FulfillmentStatusUnfulfilled, services.ErrPaymentIncomplete},
		{"paid and fulfilled", order.FinancialStatusPaid, order.FulfillmentStatusFulfilled, services.ErrOrderAlreadyFulfilled},
		{"fulfilled wins over unpaid", order.FinancialStatusPending, order.FulfillmentStatusFulfilled, services.ErrOrderAlreadyFulfilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrder(t, withFinancial(tt.financial), withFulfillment(tt.fulfillment))

			err := gate.Check(o)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unconstructed order", func(t *testing.T) {
		assert.ErrorIs(t, gate.Check(&order.Order{}), order.ErrOrderIsNotConstructed)
	})
}
