package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	exactEpsilon = decimal.RequireFromString("0.01")
	hundred      = decimal.NewFromInt(100)
)

// Comparison is the numeric judgment of one pair of defined values.
type Comparison struct {
	Difference    decimal.Decimal
	DifferencePct decimal.Decimal
	Tolerance     decimal.Decimal
	Result        MatchResult
}

// Tolerance returns max(absolute tolerance, |golden| × percentage tolerance).
func (c Config) Tolerance(golden decimal.Decimal) decimal.Decimal {
	return decimal.Max(c.AbsoluteTolerance, golden.Abs().Mul(c.PercentageTolerance))
}

// Compare classifies a system value against its golden counterpart.
func Compare(system, golden decimal.Decimal, cfg Config) Comparison {
	diff := system.Sub(golden)
	tol := cfg.Tolerance(golden)

	cmp := Comparison{
		Difference:    diff,
		DifferencePct: percentOf(diff, golden),
		Tolerance:     tol,
	}

	abs := diff.Abs()
	switch {
	case abs.LessThan(exactEpsilon):
		cmp.Result = MatchExact
	case abs.LessThanOrEqual(tol):
		cmp.Result = MatchWithinTolerance
	default:
		cmp.Result = MatchMismatch
	}
	return cmp
}

// percentOf returns diff as a percentage of the signed base; 100 when base is zero and
// diff is not.
func percentOf(diff, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		if diff.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return diff.Div(base).Mul(hundred).Round(6)
}

// SeverityFor maps an absolute difference to its band. Lower bounds are inclusive.
func SeverityFor(absDiff decimal.Decimal, cfg Config) Severity {
	absDiff = absDiff.Abs()
	switch {
	case absDiff.LessThan(cfg.WarningThreshold):
		return SeverityInfo
	case absDiff.LessThan(cfg.ErrorThreshold):
		return SeverityWarning
	case absDiff.LessThan(cfg.CriticalThreshold):
		return SeverityError
	default:
		return SeverityCritical
	}
}

// PriorityFor derives the suspense priority of a discrepancy.
func PriorityFor(s Severity) Priority {
	switch s {
	case SeverityCritical:
		return PriorityCritical
	case SeverityError:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}

// TargetResolutionDate returns the date a suspense row of priority p should be closed by.
func TargetResolutionDate(opened time.Time, p Priority) time.Time {
	days := 14
	switch p {
	case PriorityCritical:
		days = 2
	case PriorityHigh:
		days = 7
	case PriorityLow:
		days = 30
	}
	return opened.AddDate(0, 0, days)
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
