package services_test

import (
	"strings"
	"testing"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityToken_Derive(t *testing.T) {
	tokens := services.NewCapabilityToken()
	id := kernel.MustNewOrderID("1001")

	// sha1("1001")
	assert.Equal(t, "dd01903921ea24941c26a48f2cec24e0bb0e8cc7", tokens.Derive(id))
	assert.Equal(t, tokens.Derive(id), tokens.Derive(kernel.MustNewOrderID("1001")))
	assert.NotEqual(t, tokens.Derive(id), tokens.Derive(kernel.MustNewOrderID("1002")))
}

func TestCapabilityToken_Verify(t *testing.T) {
	tokens := services.NewCapabilityToken()
	id := kernel.MustNewOrderID("1001")
	valid := tokens.Derive(id)

	tests := []struct {
		name      string
		orderID   kernel.OrderID
		presented string
		want      bool
	}{
		{"matching token", id, valid, true},
		{"token of another order", id, tokens.Derive(kernel.MustNewOrderID("1002")), false},
		{"upper-cased token", id, strings.ToUpper(valid), false},
		{"truncated token", id, valid[:39], false},
		{"empty token", id, "", false},
		{"zero order id", kernel.OrderID{}, valid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokens.Verify(tt.orderID, tt.presented))
		})
	}
}
