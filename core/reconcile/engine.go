package reconcile

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Holding is one position on either side of a reconciliation, with its value in INR.
type Holding struct {
	ISIN        string
	FolioNumber string
	Symbol      string
	Name        string
	Units       decimal.Decimal
	// Value is the INR market value. An invalid value means it could not be determined,
	// e.g. a foreign holding without an exchange rate.
	Value decimal.NullDecimal
	// Issues are data-quality notes carried onto the resulting event.
	Issues []string
}

// SuspenseDraft describes the suspense row a discrepancy should open.
type SuspenseDraft struct {
	Units    decimal.Decimal
	Value    decimal.NullDecimal
	Currency string
	Reason   string
	Priority Priority
}

// Result is the outcome of reconciling one identity key.
type Result struct {
	Key         IdentityKey
	ISIN        string
	FolioNumber string
	Symbol      string
	Name        string

	SystemUnits   decimal.NullDecimal
	GoldenUnits   decimal.NullDecimal
	SystemValue   decimal.NullDecimal
	GoldenValue   decimal.NullDecimal
	Difference    decimal.NullDecimal
	DifferencePct decimal.NullDecimal
	ToleranceUsed decimal.NullDecimal

	MatchResult      MatchResult
	Severity         Severity
	Status           Status
	ResolutionAction string
	Notes            []string

	// Suspense is set when the result should open a suspense row.
	Suspense *SuspenseDraft
}

// NeedsSuspense reports whether the result drafts a suspense row.
func (r Result) NeedsSuspense() bool {
	return r.Suspense != nil
}

// Correlate matches golden against system holdings and classifies every identity key.
// Results are ordered by key, followed by unkeyed holdings (golden first, then system).
func Correlate(golden, system []Holding, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	goldenIndex, goldenUnkeyed := index(golden)
	systemIndex, systemUnkeyed := index(system)

	// Build union of keys
	union := make(map[IdentityKey]struct{}, len(goldenIndex)+len(systemIndex))
	for key := range goldenIndex {
		union[key] = struct{}{}
	}
	for key := range systemIndex {
		union[key] = struct{}{}
	}

	keys := make([]IdentityKey, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	results := make([]Result, 0, len(keys)+len(goldenUnkeyed)+len(systemUnkeyed))
	for _, key := range keys {
		g, gok := goldenIndex[key]
		s, sok := systemIndex[key]
		var gp, sp *Holding
		if gok {
			gp = &g
		}
		if sok {
			sp = &s
		}
		results = append(results, buildResult(key, gp, sp, cfg))
	}

	for _, h := range goldenUnkeyed {
		results = append(results, notApplicable(h, true))
	}
	for _, h := range systemUnkeyed {
		results = append(results, notApplicable(h, false))
	}

	for _, r := range results {
		if err := ValidateOutcome(r.MatchResult, r.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", r.Key, err)
		}
	}
	return results, nil
}

// index groups holdings by identity key. Holdings sharing a key are aggregated.
func index(holdings []Holding) (map[IdentityKey]Holding, []Holding) {
	out := make(map[IdentityKey]Holding, len(holdings))
	counts := make(map[IdentityKey]int)
	var unkeyed []Holding

	for _, h := range holdings {
		key, ok := KeyFor(h.ISIN, h.FolioNumber, h.Symbol)
		if !ok {
			unkeyed = append(unkeyed, h)
			continue
		}
		counts[key]++
		prev, exists := out[key]
		if !exists {
			h.Issues = append([]string(nil), h.Issues...)
			out[key] = h
			continue
		}
		out[key] = merge(prev, h)
	}

	for key, n := range counts {
		if n > 1 {
			h := out[key]
			h.Issues = append(h.Issues, fmt.Sprintf("aggregated %d rows sharing %s", n, key))
			out[key] = h
		}
	}
	return out, unkeyed
}

// merge sums two holdings of the same instrument. An undefined value stays undefined.
func merge(a, b Holding) Holding {
	a.Units = a.Units.Add(b.Units)
	if a.Value.Valid && b.Value.Valid {
		a.Value = decimal.NewNullDecimal(a.Value.Decimal.Add(b.Value.Decimal))
	} else {
		a.Value = decimal.NullDecimal{}
	}
	if a.ISIN == "" {
		a.ISIN = b.ISIN
	}
	if a.FolioNumber == "" {
		a.FolioNumber = b.FolioNumber
	}
	if a.Symbol == "" {
		a.Symbol = b.Symbol
	}
	if a.Name == "" {
		a.Name = b.Name
	}
	a.Issues = append(a.Issues, b.Issues...)
	return a
}

// buildResult classifies a key present on at least one side.
func buildResult(key IdentityKey, golden, system *Holding, cfg Config) Result {
	r := Result{Key: key}
	describe(&r, golden, system)

	switch {
	case golden != nil && system != nil:
		classifyPair(&r, *golden, *system, cfg)
	case golden != nil:
		classifyMissing(&r, MatchMissingSystem, golden.Value, cfg)
	default:
		classifyMissing(&r, MatchMissingGolden, system.Value, cfg)
	}

	if r.MatchResult.IsDiscrepancy() && cfg.CreateSuspenseOnMismatch &&
		(r.MatchResult == MatchMismatch || cfg.SuspenseOnMissing) {
		r.Suspense = draftSuspense(r)
	}
	return r
}

// describe copies identity and figures from whichever sides are present.
func describe(r *Result, golden, system *Holding) {
	for _, h := range []*Holding{golden, system} {
		if h == nil {
			continue
		}
		if r.ISIN == "" {
			r.ISIN = h.ISIN
		}
		if r.FolioNumber == "" {
			r.FolioNumber = h.FolioNumber
		}
		if r.Symbol == "" {
			r.Symbol = h.Symbol
		}
		if r.Name == "" {
			r.Name = h.Name
		}
		r.Notes = append(r.Notes, h.Issues...)
	}
	if golden != nil {
		r.GoldenUnits = decimal.NewNullDecimal(golden.Units)
		r.GoldenValue = golden.Value
	}
	if system != nil {
		r.SystemUnits = decimal.NewNullDecimal(system.Units)
		r.SystemValue = system.Value
	}
}

func classifyPair(r *Result, golden, system Holding, cfg Config) {
	if !golden.Value.Valid || !system.Value.Valid {
		r.MatchResult = MatchMismatch
		r.Status = StatusMismatch
		r.Severity = SeverityCritical
		r.Notes = append(r.Notes, "data quality: INR value undefined, difference not computed")
		return
	}

	cmp := Compare(system.Value.Decimal, golden.Value.Decimal, cfg)
	r.Difference = decimal.NewNullDecimal(cmp.Difference)
	r.DifferencePct = decimal.NewNullDecimal(cmp.DifferencePct)
	r.ToleranceUsed = decimal.NewNullDecimal(cmp.Tolerance)
	r.MatchResult = cmp.Result

	switch cmp.Result {
	case MatchExact:
		r.Status = StatusMatched
		r.Severity = SeverityInfo
	case MatchWithinTolerance:
		if cfg.AutoResolveWithinTolerance {
			r.Status = StatusResolved
			r.Severity = SeverityInfo
			r.ResolutionAction = ActionAutoTolerance
		} else {
			r.Status = StatusMatched
			r.Severity = SeverityFor(cmp.Difference, cfg)
		}
	default:
		r.Status = StatusMismatch
		r.Severity = SeverityFor(cmp.Difference, cfg)
	}
}

// classifyMissing treats the absent side as zero.
func classifyMissing(r *Result, result MatchResult, present decimal.NullDecimal, cfg Config) {
	r.MatchResult = result
	r.Status = StatusMismatch

	if !present.Valid {
		r.Severity = SeverityCritical
		r.Notes = append(r.Notes, "data quality: INR value undefined, difference not computed")
		return
	}

	var diff decimal.Decimal
	if result == MatchMissingSystem {
		diff = present.Decimal.Neg()
	} else {
		diff = present.Decimal
	}
	pct := decimal.Zero
	if !present.Decimal.IsZero() {
		pct = hundred
		if diff.IsNegative() {
			pct = hundred.Neg()
		}
	}

	r.Difference = decimal.NewNullDecimal(diff)
	r.DifferencePct = decimal.NewNullDecimal(pct)
	r.Severity = SeverityFor(diff, cfg)
}

func notApplicable(h Holding, golden bool) Result {
	r := Result{
		ISIN:        h.ISIN,
		FolioNumber: h.FolioNumber,
		Symbol:      h.Symbol,
		Name:        h.Name,
		MatchResult: MatchNotApplicable,
		Status:      StatusPending,
		Severity:    SeverityWarning,
	}
	side := "system"
	if golden {
		side = "golden"
		r.GoldenUnits = decimal.NewNullDecimal(h.Units)
		r.GoldenValue = h.Value
	} else {
		r.SystemUnits = decimal.NewNullDecimal(h.Units)
		r.SystemValue = h.Value
	}
	r.Notes = append(r.Notes, fmt.Sprintf("data quality: %s holding %q has no ISIN, folio number or symbol", side, h.Name))
	r.Notes = append(r.Notes, h.Issues...)
	return r
}

func draftSuspense(r Result) *SuspenseDraft {
	units := nullOrZero(r.SystemUnits).Sub(nullOrZero(r.GoldenUnits)).Abs()

	value := decimal.NullDecimal{}
	if r.Difference.Valid {
		value = decimal.NewNullDecimal(r.Difference.Decimal.Abs())
	}

	var reason string
	switch r.MatchResult {
	case MatchMissingSystem:
		reason = fmt.Sprintf("%s held per golden reference but absent from system", r.Key)
	case MatchMissingGolden:
		reason = fmt.Sprintf("%s held in system but absent from golden reference", r.Key)
	default:
		if r.Difference.Valid {
			reason = fmt.Sprintf("%s value differs by %s INR (%s%%)", r.Key,
				r.Difference.Decimal.StringFixed(2), r.DifferencePct.Decimal.StringFixed(2))
		} else {
			reason = fmt.Sprintf("%s value could not be compared", r.Key)
		}
	}

	return &SuspenseDraft{
		Units:    units,
		Value:    value,
		Currency: BaseCurrency,
		Reason:   reason,
		Priority: PriorityFor(r.Severity),
	}
}

func nullOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
