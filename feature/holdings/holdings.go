package holdings

import (
	"context"
	"fmt"
	"time"

	"finledger/core/reconcile"

	"github.com/shopspring/decimal"
)

// SystemHolding is a position computed by the internal ledger. Values are in INR.
type SystemHolding struct {
	AssetClass  reconcile.AssetClass `json:"asset_class"`
	ISIN        string               `json:"isin,omitempty"`
	FolioNumber string               `json:"folio_number,omitempty"`
	Symbol      string               `json:"symbol,omitempty"`
	Name        string               `json:"name,omitempty"`
	Units       decimal.Decimal      `json:"units"`
	MarketValue decimal.Decimal      `json:"market_value"`
}

// ToHolding converts the position to the form compared by the reconcile engine.
func (h SystemHolding) ToHolding() reconcile.Holding {
	return reconcile.Holding{
		ISIN:        h.ISIN,
		FolioNumber: h.FolioNumber,
		Symbol:      h.Symbol,
		Name:        h.Name,
		Units:       h.Units,
		Value:       decimal.NewNullDecimal(h.MarketValue),
	}
}

// Provider returns the system's holdings of a user for one asset class as of a date.
type Provider interface {
	SystemHoldings(ctx context.Context, userID string, asset reconcile.AssetClass, asOf time.Time) ([]SystemHolding, error)
}

// StaticProvider serves fixed holdings, keyed by user, asset class and date.
type StaticProvider struct {
	data map[string][]SystemHolding
}

// NewStaticProvider creates an empty static provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{data: make(map[string][]SystemHolding)}
}

// Set registers the holdings returned for (user, asset, asOf).
func (p *StaticProvider) Set(userID string, asset reconcile.AssetClass, asOf time.Time, holdings []SystemHolding) {
	p.data[staticKey(userID, asset, asOf)] = holdings
}

// SystemHoldings implements Provider. Unknown keys yield no holdings.
func (p *StaticProvider) SystemHoldings(_ context.Context, userID string, asset reconcile.AssetClass, asOf time.Time) ([]SystemHolding, error) {
	return append([]SystemHolding(nil), p.data[staticKey(userID, asset, asOf)]...), nil
}

func staticKey(userID string, asset reconcile.AssetClass, asOf time.Time) string {
	return fmt.Sprintf("%s/%s/%s", userID, asset, asOf.Format(dateLayout))
}
