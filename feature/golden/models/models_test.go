package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueINR(t *testing.T) {
	t.Run("foreign with rate", func(t *testing.T) {
		h := GoldenHolding{
			Currency:     "USD",
			MarketValue:  decimal.RequireFromString("1750.00"),
			ExchangeRate: decimal.NewNullDecimal(decimal.RequireFromString("83.25")),
		}
		v := h.ValueINR()
		require.True(t, v.Valid)
		assert.True(t, v.Decimal.Equal(decimal.RequireFromString("145687.50")))
		assert.Empty(t, h.Issues())
	})

	t.Run("inr without rate", func(t *testing.T) {
		h := GoldenHolding{Currency: "INR", MarketValue: decimal.RequireFromString("99.5")}
		v := h.ValueINR()
		require.True(t, v.Valid)
		assert.True(t, v.Decimal.Equal(decimal.RequireFromString("99.5")))
	})

	t.Run("foreign without rate is undefined", func(t *testing.T) {
		h := GoldenHolding{Currency: "USD", MarketValue: decimal.RequireFromString("10")}
		assert.False(t, h.ValueINR().Valid)
		assert.Equal(t, []string{"data quality: missing exchange rate for USD"}, h.Issues())

		h.ExchangeRate = decimal.NewNullDecimal(decimal.Zero)
		assert.False(t, h.ValueINR().Valid)

		hold := h.ToHolding()
		assert.False(t, hold.Value.Valid)
		assert.Len(t, hold.Issues, 1)
	})

	t.Run("unknown currency is flagged", func(t *testing.T) {
		h := GoldenHolding{
			Currency:     "XQZ",
			MarketValue:  decimal.RequireFromString("10"),
			ExchangeRate: decimal.NewNullDecimal(decimal.RequireFromString("2")),
		}
		assert.True(t, h.ValueINR().Valid)
		assert.Equal(t, []string{`data quality: unknown currency code "XQZ"`}, h.Issues())
	})
}
