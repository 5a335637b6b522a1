package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(s))
}

func holding(isin, units, val string) Holding {
	return Holding{ISIN: isin, Units: d(units), Value: value(val)}
}

func TestCorrelate_EndToEndMismatch(t *testing.T) {
	golden := []Holding{holding("INE000A01011", "1000.5", "150325.125")}
	system := []Holding{holding(" ine000a01011", "1000.0", "150000.00")}

	results, err := Correlate(golden, system, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "ISIN:INE000A01011", r.Key.String())
	assert.Equal(t, MatchMismatch, r.MatchResult)
	assert.Equal(t, StatusMismatch, r.Status)
	assert.True(t, r.ToleranceUsed.Decimal.Equal(d("150.325125")))
	assert.True(t, r.Difference.Decimal.Equal(d("-325.125")))
	assert.True(t, r.DifferencePct.Decimal.IsNegative())
	assert.Equal(t, SeverityInfo, r.Severity)

	require.NotNil(t, r.Suspense)
	assert.Equal(t, PriorityNormal, r.Suspense.Priority)
	assert.True(t, r.Suspense.Units.Equal(d("0.5")))
	assert.True(t, r.Suspense.Value.Decimal.Equal(d("325.125")))
	assert.Equal(t, BaseCurrency, r.Suspense.Currency)
}

func TestCorrelate_WithinTolerance(t *testing.T) {
	golden := []Holding{holding("INE1", "10", "100000")}
	system := []Holding{holding("INE1", "10", "100050")}

	t.Run("auto resolve", func(t *testing.T) {
		results, err := Correlate(golden, system, DefaultConfig())
		require.NoError(t, err)
		r := results[0]
		assert.Equal(t, MatchWithinTolerance, r.MatchResult)
		assert.Equal(t, StatusResolved, r.Status)
		assert.Equal(t, ActionAutoTolerance, r.ResolutionAction)
		assert.Equal(t, SeverityInfo, r.Severity)
		assert.Nil(t, r.Suspense)
	})

	t.Run("left matched", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AutoResolveWithinTolerance = false
		cfg.AbsoluteTolerance = d("2000")
		results, err := Correlate(golden, []Holding{holding("INE1", "10", "101500")}, cfg)
		require.NoError(t, err)
		r := results[0]
		assert.Equal(t, MatchWithinTolerance, r.MatchResult)
		assert.Equal(t, StatusMatched, r.Status)
		assert.Empty(t, r.ResolutionAction)
		assert.Equal(t, SeverityWarning, r.Severity)
		assert.Nil(t, r.Suspense)
	})
}

func TestCorrelate_Exact(t *testing.T) {
	results, err := Correlate(
		[]Holding{holding("INE1", "1", "100.004")},
		[]Holding{holding("INE1", "1", "100")},
		DefaultConfig(),
	)
	require.NoError(t, err)
	assert.Equal(t, MatchExact, results[0].MatchResult)
	assert.Equal(t, StatusMatched, results[0].Status)
	assert.Equal(t, SeverityInfo, results[0].Severity)
}

func TestCorrelate_CriticalMismatchOpensCriticalSuspense(t *testing.T) {
	results, err := Correlate(
		[]Holding{holding("INE1", "100", "500000")},
		[]Holding{holding("INE1", "100", "300000")},
		DefaultConfig(),
	)
	require.NoError(t, err)
	r := results[0]
	assert.Equal(t, MatchMismatch, r.MatchResult)
	assert.Equal(t, SeverityCritical, r.Severity)
	require.NotNil(t, r.Suspense)
	assert.Equal(t, PriorityCritical, r.Suspense.Priority)

	cfg := DefaultConfig()
	cfg.CreateSuspenseOnMismatch = false
	results, err = Correlate(
		[]Holding{holding("INE1", "100", "500000")},
		[]Holding{holding("INE1", "100", "300000")},
		cfg,
	)
	require.NoError(t, err)
	assert.Nil(t, results[0].Suspense)
}

func TestCorrelate_MissingSides(t *testing.T) {
	golden := []Holding{holding("INEG", "5", "20000")}
	system := []Holding{holding("INES", "7", "700")}

	results, err := Correlate(golden, system, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 2)

	missingSystem := results[0]
	assert.Equal(t, "ISIN:INEG", missingSystem.Key.String())
	assert.Equal(t, MatchMissingSystem, missingSystem.MatchResult)
	assert.Equal(t, StatusMismatch, missingSystem.Status)
	assert.True(t, missingSystem.Difference.Decimal.Equal(d("-20000")))
	assert.True(t, missingSystem.DifferencePct.Decimal.Equal(d("-100")))
	assert.False(t, missingSystem.SystemValue.Valid)
	assert.Equal(t, SeverityError, missingSystem.Severity)
	require.NotNil(t, missingSystem.Suspense)
	assert.Equal(t, PriorityHigh, missingSystem.Suspense.Priority)
	assert.True(t, missingSystem.Suspense.Units.Equal(d("5")))

	missingGolden := results[1]
	assert.Equal(t, MatchMissingGolden, missingGolden.MatchResult)
	assert.True(t, missingGolden.Difference.Decimal.Equal(d("700")))
	assert.True(t, missingGolden.DifferencePct.Decimal.Equal(d("100")))
	assert.Equal(t, SeverityInfo, missingGolden.Severity)
	require.NotNil(t, missingGolden.Suspense)

	cfg := DefaultConfig()
	cfg.SuspenseOnMissing = false
	results, err = Correlate(golden, system, cfg)
	require.NoError(t, err)
	for _, r := range results {
		assert.Nil(t, r.Suspense)
	}
}

func TestCorrelate_UndefinedValue(t *testing.T) {
	golden := []Holding{{ISIN: "US0378331005", Units: d("10"), Issues: []string{"data quality: missing exchange rate for USD"}}}
	system := []Holding{holding("US0378331005", "10", "145687.50")}

	results, err := Correlate(golden, system, DefaultConfig())
	require.NoError(t, err)
	r := results[0]
	assert.Equal(t, MatchMismatch, r.MatchResult)
	assert.Equal(t, SeverityCritical, r.Severity)
	assert.False(t, r.Difference.Valid)
	assert.Contains(t, r.Notes, "data quality: missing exchange rate for USD")
	require.NotNil(t, r.Suspense)
	assert.Equal(t, PriorityCritical, r.Suspense.Priority)
	assert.False(t, r.Suspense.Value.Valid)

	results, err = Correlate(golden, nil, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, MatchMissingSystem, results[0].MatchResult)
	assert.Equal(t, SeverityCritical, results[0].Severity)
}

func TestCorrelate_NotApplicableOrdering(t *testing.T) {
	golden := []Holding{
		{Name: "golden orphan", Units: d("1"), Value: value("10")},
		holding("INEB", "1", "10"),
	}
	system := []Holding{
		{Name: "system orphan", Units: d("2"), Value: value("20")},
		holding("INEA", "1", "10"),
		{FolioNumber: "9/1", Units: d("1"), Value: value("10")},
	}

	results, err := Correlate(golden, system, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, "FOLIO:9/1", results[0].Key.String())
	assert.Equal(t, "ISIN:INEA", results[1].Key.String())
	assert.Equal(t, "ISIN:INEB", results[2].Key.String())

	assert.Equal(t, MatchNotApplicable, results[3].MatchResult)
	assert.Equal(t, "golden orphan", results[3].Name)
	assert.Equal(t, StatusPending, results[3].Status)
	assert.Equal(t, SeverityWarning, results[3].Severity)
	assert.True(t, results[3].GoldenValue.Valid)
	assert.Nil(t, results[3].Suspense)

	assert.Equal(t, "system orphan", results[4].Name)
	assert.True(t, results[4].SystemValue.Valid)
}

func TestCorrelate_AggregatesDuplicateKeys(t *testing.T) {
	golden := []Holding{holding("INE1", "10", "1000"), holding("ine1", "5", "500")}
	system := []Holding{holding("INE1", "15", "1500")}

	results, err := Correlate(golden, system, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, MatchExact, results[0].MatchResult)
	assert.True(t, results[0].GoldenUnits.Decimal.Equal(d("15")))
	assert.Contains(t, results[0].Notes, "aggregated 2 rows sharing ISIN:INE1")
	assert.Len(t, golden[0].Issues, 0)
}

func TestCorrelate_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ErrorThreshold = cfg.WarningThreshold

	_, err := Correlate(nil, nil, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCorrelate_Empty(t *testing.T) {
	results, err := Correlate(nil, nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 100.0, Summarize(results).MatchRate())
}
