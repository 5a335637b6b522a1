package models

import (
	"fmt"
	"strings"
	"time"

	"finledger/core/reconcile"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// GoldenReference is one ingested external statement for a user. Rows are append-only.
type GoldenReference struct {
	ID            string               `gorm:"primaryKey;size:36" json:"id"`
	UserID        string               `gorm:"size:64;not null;index" json:"user_id"`
	SourceType    reconcile.SourceType `gorm:"size:32;not null" json:"source_type"`
	StatementDate time.Time            `gorm:"type:date;not null" json:"statement_date"`
	ObjectKey     string               `gorm:"size:512" json:"object_key"`
	IngestedAt    time.Time            `gorm:"not null" json:"ingested_at"`
}

// TableName overrides the table name used by gorm.
func (GoldenReference) TableName() string {
	return "golden_references"
}

// GoldenHolding is one position reported by a golden reference. Rows are append-only.
type GoldenHolding struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	GoldenRefID  string               `gorm:"size:36;not null;index:idx_golden_holdings_ref" json:"golden_ref_id"`
	AssetType    reconcile.AssetClass `gorm:"size:32;not null;index:idx_golden_holdings_ref" json:"asset_type"`
	ISIN         string               `gorm:"size:12" json:"isin,omitempty"`
	FolioNumber  string               `gorm:"size:64" json:"folio_number,omitempty"`
	Symbol       string               `gorm:"size:32" json:"symbol,omitempty"`
	Name         string               `gorm:"size:255" json:"name,omitempty"`
	Units        decimal.Decimal      `gorm:"type:decimal(24,6);not null" json:"units"`
	NAV          decimal.NullDecimal  `gorm:"type:decimal(24,6)" json:"nav"`
	MarketValue  decimal.Decimal      `gorm:"type:decimal(24,6);not null" json:"market_value"`
	CostBasis    decimal.NullDecimal  `gorm:"type:decimal(24,6)" json:"cost_basis"`
	Currency     string               `gorm:"size:3;not null" json:"currency"`
	ExchangeRate decimal.NullDecimal  `gorm:"type:decimal(18,6)" json:"exchange_rate"`
	AsOfDate     time.Time            `gorm:"type:date" json:"as_of_date"`
}

// TableName overrides the table name used by gorm.
func (GoldenHolding) TableName() string {
	return "golden_holdings"
}

// IsBaseCurrency reports whether the holding is denominated in INR.
func (h GoldenHolding) IsBaseCurrency() bool {
	return h.Currency == "" || strings.EqualFold(h.Currency, reconcile.BaseCurrency)
}

// ValueINR is MarketValue × ExchangeRate. INR holdings without a rate use 1.
// Foreign holdings without a positive rate have no defined INR value.
func (h GoldenHolding) ValueINR() decimal.NullDecimal {
	if h.ExchangeRate.Valid && h.ExchangeRate.Decimal.IsPositive() {
		return decimal.NewNullDecimal(h.MarketValue.Mul(h.ExchangeRate.Decimal))
	}
	if h.IsBaseCurrency() {
		return decimal.NewNullDecimal(h.MarketValue)
	}
	return decimal.NullDecimal{}
}

// Issues lists data-quality problems of the row.
func (h GoldenHolding) Issues() []string {
	var issues []string
	if !h.IsBaseCurrency() && money.GetCurrency(strings.ToUpper(h.Currency)) == nil {
		issues = append(issues, fmt.Sprintf("data quality: unknown currency code %q", h.Currency))
	}
	if !h.ValueINR().Valid {
		issues = append(issues, fmt.Sprintf("data quality: missing exchange rate for %s", h.Currency))
	}
	return issues
}

// ToHolding converts the row to the form compared by the reconcile engine.
func (h GoldenHolding) ToHolding() reconcile.Holding {
	return reconcile.Holding{
		ISIN:        h.ISIN,
		FolioNumber: h.FolioNumber,
		Symbol:      h.Symbol,
		Name:        h.Name,
		Units:       h.Units,
		Value:       h.ValueINR(),
		Issues:      h.Issues(),
	}
}
