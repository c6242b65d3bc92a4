package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("180.00"),
	}
	item.ComputeSubtotal()
	require.True(t, item.Subtotal.Equal(decimal.RequireFromString("540.00")),
		"got %s", item.Subtotal)
}

func TestOrderItemSubtotalNoRoundingDrift(t *testing.T) {
	// 0.10 * 3 must be exactly 0.30, not 0.30000000000000004
	item := OrderItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("0.10"),
	}
	item.ComputeSubtotal()
	require.Equal(t, "0.30", item.Subtotal.StringFixed(2))
}

func TestOrderComputeSubtotals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("20.00")},
			{Quantity: 5, UnitPrice: decimal.RequireFromString("18.00")},
		},
	}
	order.ComputeSubtotals()
	require.True(t, order.Items[0].Subtotal.Equal(decimal.RequireFromString("40.00")))
	require.True(t, order.Items[1].Subtotal.Equal(decimal.RequireFromString("90.00")))
}
