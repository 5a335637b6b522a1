package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal converts loosely typed statement values to a decimal.
// It accepts numbers, numeric strings (thousands separators and
// surrounding spaces are tolerated) and json.Number. Empty or nil input yields ok=false.
func ToDecimal(val any) (decimal.Decimal, bool, error) {
	switch v := val.(type) {
	case nil:
		return decimal.Zero, false, nil
	case decimal.Decimal:
		return v, true, nil
	case json.Number:
		return parseDecimal(string(v))
	case string:
		return parseDecimal(v)
	case []byte:
		return parseDecimal(string(v))
	case float64:
		return decimal.NewFromFloat(v), true, nil
	case float32:
		return decimal.NewFromFloat32(v), true, nil
	case int:
		return decimal.NewFromInt(int64(v)), true, nil
	case int64:
		return decimal.NewFromInt(v), true, nil
	case int32:
		return decimal.NewFromInt32(v), true, nil
	case uint:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return parseDecimal(strconv.FormatUint(v, 10))
	case uint32:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	default:
		return decimal.Zero, false, fmt.Errorf("cannot convert %T to decimal", val)
	}
}

func parseDecimal(s string) (decimal.Decimal, bool, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return d, true, nil
}

// ToString converts various types to a trimmed string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	case json.Number:
		return v.String()
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case json.Number:
		i, err := strconv.Atoi(v.String())
		return err == nil && i == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	default:
		return false
	}
}
