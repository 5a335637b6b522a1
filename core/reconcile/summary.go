package reconcile

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Summary aggregates the results of one run.
type Summary struct {
	TotalItems       int `json:"total_items"`
	MatchedExact     int `json:"matched_exact"`
	MatchedTolerance int `json:"matched_tolerance"`
	Mismatches       int `json:"mismatches"`
	MissingSystem    int `json:"missing_system"`
	MissingGolden    int `json:"missing_golden"`
	// NotApplicable holdings are counted here only, not in TotalItems.
	NotApplicable int `json:"not_applicable"`

	SystemTotal     decimal.Decimal `json:"system_total"`
	GoldenTotal     decimal.Decimal `json:"golden_total"`
	DifferenceTotal decimal.Decimal `json:"difference_total"`
}

// Add counts one result. Undefined values contribute nothing to the totals.
func (s *Summary) Add(result MatchResult, system, golden, difference decimal.NullDecimal) {
	if result == MatchNotApplicable {
		s.NotApplicable++
		return
	}

	s.TotalItems++
	switch result {
	case MatchExact:
		s.MatchedExact++
	case MatchWithinTolerance:
		s.MatchedTolerance++
	case MatchMismatch:
		s.Mismatches++
	case MatchMissingSystem:
		s.MissingSystem++
	case MatchMissingGolden:
		s.MissingGolden++
	}

	if system.Valid {
		s.SystemTotal = s.SystemTotal.Add(system.Decimal)
	}
	if golden.Valid {
		s.GoldenTotal = s.GoldenTotal.Add(golden.Decimal)
	}
	if difference.Valid {
		s.DifferenceTotal = s.DifferenceTotal.Add(difference.Decimal)
	}
}

// MatchRate is the percentage of items matched exactly or within tolerance.
// It is 100 when there is nothing to reconcile.
func (s Summary) MatchRate() float64 {
	if s.TotalItems == 0 {
		return 100
	}
	return float64(s.MatchedExact+s.MatchedTolerance) / float64(s.TotalItems) * 100
}

// Summarize builds the summary of a result set.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Add(r.MatchResult, r.SystemValue, r.GoldenValue, r.Difference)
	}
	return s
}

// MarshalJSON includes the derived match rate.
func (s Summary) MarshalJSON() ([]byte, error) {
	type plain Summary
	return json.Marshal(struct {
		plain
		MatchRate float64 `json:"match_rate"`
	}{plain(s), s.MatchRate()})
}
