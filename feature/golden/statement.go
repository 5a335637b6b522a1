package golden

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"finledger/core/reconcile"
	"finledger/core/utils"
	"finledger/feature/golden/models"

	"github.com/shopspring/decimal"
)

// ErrInvalidStatement is returned when a statement document cannot be ingested.
var ErrInvalidStatement = errors.New("invalid statement")

// StatementPrefix is the object-storage prefix external sources deliver statements to.
const StatementPrefix = "golden/"

const dateLayout = "2006-01-02"

// Statement is the JSON document an external source delivers to object storage.
type Statement struct {
	UserID        string             `json:"user_id"`
	SourceType    string             `json:"source_type"`
	StatementDate string             `json:"statement_date"`
	Holdings      []StatementHolding `json:"holdings"`
}

// StatementHolding is one position as written by the source. Numbers may be JSON
// numbers or strings.
type StatementHolding struct {
	AssetType    string `json:"asset_type"`
	ISIN         string `json:"isin"`
	FolioNumber  string `json:"folio_number"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Units        any    `json:"units"`
	NAV          any    `json:"nav"`
	MarketValue  any    `json:"market_value"`
	CostBasis    any    `json:"cost_basis"`
	Currency     string `json:"currency"`
	ExchangeRate any    `json:"exchange_rate"`
	AsOfDate     string `json:"as_of_date"`
}

// ParseStatement decodes a statement into a reference and its holdings.
// The reference has no ID yet.
func ParseStatement(data []byte) (*models.GoldenReference, []models.GoldenHolding, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var st Statement
	if err := dec.Decode(&st); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidStatement, err)
	}

	userID := strings.TrimSpace(st.UserID)
	if userID == "" {
		return nil, nil, fmt.Errorf("%w: user_id is required", ErrInvalidStatement)
	}
	source, err := reconcile.ParseSourceType(st.SourceType)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidStatement, err)
	}
	if source == reconcile.SourceSystem {
		return nil, nil, fmt.Errorf("%w: SYSTEM cannot be a golden source", ErrInvalidStatement)
	}
	statementDate, err := time.Parse(dateLayout, strings.TrimSpace(st.StatementDate))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: statement_date: %v", ErrInvalidStatement, err)
	}

	ref := &models.GoldenReference{
		UserID:        userID,
		SourceType:    source,
		StatementDate: statementDate,
	}

	holdings := make([]models.GoldenHolding, 0, len(st.Holdings))
	for i, raw := range st.Holdings {
		h, err := parseHolding(raw, statementDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: holding %d: %v", ErrInvalidStatement, i, err)
		}
		holdings = append(holdings, h)
	}
	return ref, holdings, nil
}

func parseHolding(raw StatementHolding, statementDate time.Time) (models.GoldenHolding, error) {
	asset, err := reconcile.ParseAssetClass(raw.AssetType)
	if err != nil {
		return models.GoldenHolding{}, err
	}

	units, ok, err := utils.ToDecimal(raw.Units)
	if err != nil {
		return models.GoldenHolding{}, fmt.Errorf("units: %w", err)
	}
	if !ok {
		return models.GoldenHolding{}, errors.New("units is required")
	}
	marketValue, ok, err := utils.ToDecimal(raw.MarketValue)
	if err != nil {
		return models.GoldenHolding{}, fmt.Errorf("market_value: %w", err)
	}
	if !ok {
		return models.GoldenHolding{}, errors.New("market_value is required")
	}

	nav, err := optionalDecimal("nav", raw.NAV)
	if err != nil {
		return models.GoldenHolding{}, err
	}
	costBasis, err := optionalDecimal("cost_basis", raw.CostBasis)
	if err != nil {
		return models.GoldenHolding{}, err
	}
	rate, err := optionalDecimal("exchange_rate", raw.ExchangeRate)
	if err != nil {
		return models.GoldenHolding{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(raw.Currency))
	if currency == "" {
		currency = reconcile.BaseCurrency
	}

	asOf := statementDate
	if s := strings.TrimSpace(raw.AsOfDate); s != "" {
		if asOf, err = time.Parse(dateLayout, s); err != nil {
			return models.GoldenHolding{}, fmt.Errorf("as_of_date: %w", err)
		}
	}

	return models.GoldenHolding{
		AssetType:    asset,
		ISIN:         strings.ToUpper(strings.TrimSpace(raw.ISIN)),
		FolioNumber:  strings.TrimSpace(raw.FolioNumber),
		Symbol:       strings.ToUpper(strings.TrimSpace(raw.Symbol)),
		Name:         strings.TrimSpace(raw.Name),
		Units:        units,
		NAV:          nav,
		MarketValue:  marketValue,
		CostBasis:    costBasis,
		Currency:     currency,
		ExchangeRate: rate,
		AsOfDate:     asOf,
	}, nil
}

func optionalDecimal(field string, val any) (decimal.NullDecimal, error) {
	d, ok, err := utils.ToDecimal(val)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%s: %w", field, err)
	}
	if !ok {
		return decimal.NullDecimal{}, nil
	}
	return decimal.NewNullDecimal(d), nil
}
