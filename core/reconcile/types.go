package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnum is returned when a value is not part of a closed enumeration.
var ErrInvalidEnum = errors.New("invalid enum value")

// ErrInvalidOutcome is returned when a status is paired with a match result it cannot carry.
var ErrInvalidOutcome = errors.New("invalid status for match result")

// SourceType identifies where a figure comes from.
type SourceType string

const (
	SourceSystem  SourceType = "SYSTEM"
	SourceNSDLCAS SourceType = "NSDL_CAS"
	SourceCDSLCAS SourceType = "CDSL_CAS"
	SourceRTACAS  SourceType = "RTA_CAS"
	SourceBroker  SourceType = "BROKER"
	SourceBank    SourceType = "BANK"
	SourceManual  SourceType = "MANUAL"
)

var sourceTypes = []SourceType{SourceSystem, SourceNSDLCAS, SourceCDSLCAS, SourceRTACAS, SourceBroker, SourceBank, SourceManual}

// MetricType is the kind of figure a truth source is authoritative for.
type MetricType string

const (
	MetricNetWorth     MetricType = "NET_WORTH"
	MetricHoldings     MetricType = "HOLDINGS"
	MetricUnits        MetricType = "UNITS"
	MetricCostBasis    MetricType = "COST_BASIS"
	MetricCapitalGains MetricType = "CAPITAL_GAINS"
	MetricIncome       MetricType = "INCOME"
)

var metricTypes = []MetricType{MetricNetWorth, MetricHoldings, MetricUnits, MetricCostBasis, MetricCapitalGains, MetricIncome}

// AssetClass groups holdings that are reconciled together.
type AssetClass string

const (
	AssetEquity        AssetClass = "EQUITY"
	AssetMutualFund    AssetClass = "MUTUAL_FUND"
	AssetETF           AssetClass = "ETF"
	AssetBond          AssetClass = "BOND"
	AssetFixedDeposit  AssetClass = "FIXED_DEPOSIT"
	AssetCash          AssetClass = "CASH"
	AssetForeignEquity AssetClass = "FOREIGN_EQUITY"
	AssetGold          AssetClass = "GOLD"
)

var assetClasses = []AssetClass{AssetEquity, AssetMutualFund, AssetETF, AssetBond, AssetFixedDeposit, AssetCash, AssetForeignEquity, AssetGold}

// Status is the workflow state of a reconciliation event.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusMatched  Status = "MATCHED"
	StatusMismatch Status = "MISMATCH"
	StatusResolved Status = "RESOLVED"
)

var statuses = []Status{StatusPending, StatusMatched, StatusMismatch, StatusResolved}

// MatchResult is the judgment of one golden/system pair.
type MatchResult string

const (
	MatchExact           MatchResult = "EXACT"
	MatchWithinTolerance MatchResult = "WITHIN_TOLERANCE"
	MatchMismatch        MatchResult = "MISMATCH"
	MatchMissingSystem   MatchResult = "MISSING_SYSTEM"
	MatchMissingGolden   MatchResult = "MISSING_GOLDEN"
	MatchNotApplicable   MatchResult = "NOT_APPLICABLE"
)

var matchResults = []MatchResult{MatchExact, MatchWithinTolerance, MatchMismatch, MatchMissingSystem, MatchMissingGolden, MatchNotApplicable}

// Severity is the materiality of a discrepancy. Values are ordered.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

var severities = []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}

// Priority orders suspense work. Values are ordered.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityNormal   Priority = "NORMAL"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

var priorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}

// SuspenseStatus is the lifecycle state of a suspense row.
type SuspenseStatus string

const (
	SuspenseOpen       SuspenseStatus = "OPEN"
	SuspenseInProgress SuspenseStatus = "IN_PROGRESS"
	SuspenseResolved   SuspenseStatus = "RESOLVED"
	SuspenseWrittenOff SuspenseStatus = "WRITTEN_OFF"
)

var suspenseStatuses = []SuspenseStatus{SuspenseOpen, SuspenseInProgress, SuspenseResolved, SuspenseWrittenOff}

// Resolution actions recorded on events.
const (
	ActionAutoTolerance    = "AUTO_TOLERANCE"
	ActionManual           = "MANUAL"
	ActionSuspenseResolved = "SUSPENSE_RESOLVED"
	ActionWrittenOff       = "WRITTEN_OFF"
)

// BaseCurrency is the currency every reconciled value is expressed in.
const BaseCurrency = "INR"

func indexOf[T ~string](all []T, v T) int {
	for i, candidate := range all {
		if candidate == v {
			return i
		}
	}
	return -1
}

func parseEnum[T ~string](kind string, all []T, s string) (T, error) {
	v := T(strings.ToUpper(strings.TrimSpace(s)))
	if indexOf(all, v) < 0 {
		return "", fmt.Errorf("%w: %s %q", ErrInvalidEnum, kind, s)
	}
	return v, nil
}

// ParseSourceType parses a source identifier, case-insensitively.
func ParseSourceType(s string) (SourceType, error) { return parseEnum("source type", sourceTypes, s) }

// ParseMetricType parses a metric type, case-insensitively.
func ParseMetricType(s string) (MetricType, error) { return parseEnum("metric type", metricTypes, s) }

// ParseAssetClass parses an asset class, case-insensitively.
func ParseAssetClass(s string) (AssetClass, error) { return parseEnum("asset class", assetClasses, s) }

// ParseStatus parses an event status.
func ParseStatus(s string) (Status, error) { return parseEnum("status", statuses, s) }

// ParseMatchResult parses a match result.
func ParseMatchResult(s string) (MatchResult, error) { return parseEnum("match result", matchResults, s) }

// ParseSeverity parses a severity.
func ParseSeverity(s string) (Severity, error) { return parseEnum("severity", severities, s) }

// ParsePriority parses a suspense priority.
func ParsePriority(s string) (Priority, error) { return parseEnum("priority", priorities, s) }

// ParseSuspenseStatus parses a suspense status.
func ParseSuspenseStatus(s string) (SuspenseStatus, error) {
	return parseEnum("suspense status", suspenseStatuses, s)
}

func (s SourceType) IsValid() bool     { return indexOf(sourceTypes, s) >= 0 }
func (m MetricType) IsValid() bool     { return indexOf(metricTypes, m) >= 0 }
func (a AssetClass) IsValid() bool     { return indexOf(assetClasses, a) >= 0 }
func (s Status) IsValid() bool         { return indexOf(statuses, s) >= 0 }
func (m MatchResult) IsValid() bool    { return indexOf(matchResults, m) >= 0 }
func (s Severity) IsValid() bool       { return indexOf(severities, s) >= 0 }
func (p Priority) IsValid() bool       { return indexOf(priorities, p) >= 0 }
func (s SuspenseStatus) IsValid() bool { return indexOf(suspenseStatuses, s) >= 0 }

// UnmarshalText rejects unknown sources, so JSON and YAML documents fail at load time.
func (s *SourceType) UnmarshalText(b []byte) error {
	v, err := ParseSourceType(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (m *MetricType) UnmarshalText(b []byte) error {
	v, err := ParseMetricType(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (a *AssetClass) UnmarshalText(b []byte) error {
	v, err := ParseAssetClass(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AllAssetClasses returns every asset class in declaration order.
func AllAssetClasses() []AssetClass {
	return append([]AssetClass(nil), assetClasses...)
}

// Rank orders severities from INFO (0) to CRITICAL (3).
func (s Severity) Rank() int { return indexOf(severities, s) }

// Rank orders priorities from LOW (0) to CRITICAL (3).
func (p Priority) Rank() int { return indexOf(priorities, p) }

// IsMatched reports whether the result counts towards the match rate.
func (m MatchResult) IsMatched() bool {
	return m == MatchExact || m == MatchWithinTolerance
}

// IsDiscrepancy reports whether the result awaits human action.
func (m MatchResult) IsDiscrepancy() bool {
	return m == MatchMismatch || m == MatchMissingSystem || m == MatchMissingGolden
}

// IsOpen reports whether the suspense row still needs work.
func (s SuspenseStatus) IsOpen() bool {
	return s == SuspenseOpen || s == SuspenseInProgress
}

// OpenSuspenseStatuses lists the statuses of suspense rows that still need work.
func OpenSuspenseStatuses() []SuspenseStatus {
	return []SuspenseStatus{SuspenseOpen, SuspenseInProgress}
}

// ValidateOutcome checks that status can be carried by an event with the given result.
func ValidateOutcome(result MatchResult, status Status) error {
	if !result.IsValid() || !status.IsValid() {
		return fmt.Errorf("%w: %s/%s", ErrInvalidEnum, result, status)
	}

	ok := false
	switch result {
	case MatchExact:
		ok = status == StatusMatched
	case MatchWithinTolerance:
		ok = status == StatusMatched || status == StatusResolved
	case MatchMismatch, MatchMissingSystem, MatchMissingGolden:
		ok = status == StatusMismatch || status == StatusPending || status == StatusResolved
	case MatchNotApplicable:
		ok = status == StatusPending
	}
	if !ok {
		return fmt.Errorf("%w: %s cannot be %s", ErrInvalidOutcome, result, status)
	}
	return nil
}
