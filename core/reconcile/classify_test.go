package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompare(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		system string
		golden string
		want   MatchResult
		tol    string
	}{
		{"identical", "5000", "5000", MatchExact, "100"},
		{"below epsilon", "5000.009", "5000", MatchExact, "100"},
		{"at epsilon", "5000.01", "5000", MatchWithinTolerance, "100"},
		{"at absolute tolerance", "5100", "5000", MatchWithinTolerance, "100"},
		{"past absolute tolerance", "5100.01", "5000", MatchMismatch, "100"},
		{"percentage dominates", "999500", "1000000", MatchWithinTolerance, "1000"},
		{"percentage exceeded", "998999", "1000000", MatchMismatch, "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := Compare(d(tt.system), d(tt.golden), cfg)
			assert.Equal(t, tt.want, cmp.Result)
			assert.True(t, cmp.Tolerance.Equal(d(tt.tol)), "tolerance %s", cmp.Tolerance)
			assert.True(t, cmp.Difference.Equal(d(tt.system).Sub(d(tt.golden))))
		})
	}
}

func TestCompare_NegativeGolden(t *testing.T) {
	// A short position overstated by 100 against a golden of -1000.
	cmp := Compare(d("-900"), d("-1000"), DefaultConfig())
	assert.True(t, cmp.Difference.Equal(d("100")))
	assert.True(t, cmp.DifferencePct.Equal(d("-10")), "pct %s", cmp.DifferencePct)
	assert.True(t, cmp.Tolerance.Equal(d("100")))
	assert.Equal(t, MatchWithinTolerance, cmp.Result)
}

func TestCompare_ZeroGolden(t *testing.T) {
	cmp := Compare(d("250"), decimal.Zero, DefaultConfig())
	assert.Equal(t, MatchMismatch, cmp.Result)
	assert.True(t, cmp.DifferencePct.Equal(d("100")))

	cmp = Compare(decimal.Zero, decimal.Zero, DefaultConfig())
	assert.Equal(t, MatchExact, cmp.Result)
	assert.True(t, cmp.DifferencePct.IsZero())
}

func TestSeverityFor_Boundaries(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		diff string
		want Severity
	}{
		{"0", SeverityInfo},
		{"999.99", SeverityInfo},
		{"1000", SeverityWarning},
		{"-1000", SeverityWarning},
		{"9999.99", SeverityWarning},
		{"10000", SeverityError},
		{"99999.99", SeverityError},
		{"100000", SeverityCritical},
		{"-2500000", SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.diff, func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityFor(d(tt.diff), cfg))
		})
	}
}

func TestPriorityFor(t *testing.T) {
	assert.Equal(t, PriorityNormal, PriorityFor(SeverityInfo))
	assert.Equal(t, PriorityNormal, PriorityFor(SeverityWarning))
	assert.Equal(t, PriorityHigh, PriorityFor(SeverityError))
	assert.Equal(t, PriorityCritical, PriorityFor(SeverityCritical))
}

func TestTargetResolutionDate(t *testing.T) {
	opened := time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), TargetResolutionDate(opened, PriorityCritical))
	assert.Equal(t, time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC), TargetResolutionDate(opened, PriorityHigh))
	assert.Equal(t, time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC), TargetResolutionDate(opened, PriorityNormal))
	assert.Equal(t, time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC), TargetResolutionDate(opened, PriorityLow))
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
