package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidConfig is returned when tolerance or severity parameters are inconsistent.
var ErrInvalidConfig = errors.New("invalid reconciliation config")

// Config holds the tolerance and severity parameters of one reconciliation run.
type Config struct {
	// AbsoluteTolerance is the minimum tolerated difference, in INR.
	AbsoluteTolerance decimal.Decimal
	// PercentageTolerance is multiplied by the golden value (0.001 = 0.1%).
	PercentageTolerance decimal.Decimal
	// WarningThreshold, ErrorThreshold and CriticalThreshold are the lower bounds
	// of their severity bands, in INR.
	WarningThreshold  decimal.Decimal
	ErrorThreshold    decimal.Decimal
	CriticalThreshold decimal.Decimal
	// AutoResolveWithinTolerance resolves tolerated differences without human action.
	AutoResolveWithinTolerance bool
	// CreateSuspenseOnMismatch drafts a suspense row for every discrepancy.
	CreateSuspenseOnMismatch bool
	// SuspenseOnMissing extends suspense drafting to MISSING_SYSTEM and MISSING_GOLDEN.
	SuspenseOnMissing bool
}

// DefaultConfig returns the stock parameters. Each call returns a fresh value.
func DefaultConfig() Config {
	return Config{
		AbsoluteTolerance:          decimal.NewFromInt(100),
		PercentageTolerance:        decimal.RequireFromString("0.001"),
		WarningThreshold:           decimal.NewFromInt(1000),
		ErrorThreshold:             decimal.NewFromInt(10000),
		CriticalThreshold:          decimal.NewFromInt(100000),
		AutoResolveWithinTolerance: true,
		CreateSuspenseOnMismatch:   true,
		SuspenseOnMissing:          true,
	}
}

// Validate checks tolerances are non-negative and thresholds strictly increasing and positive.
func (c Config) Validate() error {
	if c.AbsoluteTolerance.IsNegative() {
		return fmt.Errorf("%w: absolute tolerance must not be negative", ErrInvalidConfig)
	}
	if c.PercentageTolerance.IsNegative() {
		return fmt.Errorf("%w: percentage tolerance must not be negative", ErrInvalidConfig)
	}
	if !c.WarningThreshold.IsPositive() {
		return fmt.Errorf("%w: warning threshold must be positive", ErrInvalidConfig)
	}
	if !c.WarningThreshold.LessThan(c.ErrorThreshold) || !c.ErrorThreshold.LessThan(c.CriticalThreshold) {
		return fmt.Errorf("%w: thresholds must satisfy warning < error < critical", ErrInvalidConfig)
	}
	return nil
}

// Settings is the configuration-file form of Config, bound by core/config.
type Settings struct {
	AbsoluteTolerance          string `mapstructure:"absolute_tolerance" default:"100"`
	PercentageTolerance        string `mapstructure:"percentage_tolerance" default:"0.001"`
	WarningThreshold           string `mapstructure:"warning_threshold" default:"1000"`
	ErrorThreshold             string `mapstructure:"error_threshold" default:"10000"`
	CriticalThreshold          string `mapstructure:"critical_threshold" default:"100000"`
	AutoResolveWithinTolerance bool   `mapstructure:"auto_resolve_within_tolerance" default:"true"`
	CreateSuspenseOnMismatch   bool   `mapstructure:"create_suspense_on_mismatch" default:"true"`
	SuspenseOnMissing          bool   `mapstructure:"suspense_on_missing" default:"true"`
	// EnabledAssetClasses is a comma separated list of asset classes that may be reconciled.
	EnabledAssetClasses string `mapstructure:"enabled_asset_classes" default:"EQUITY,MUTUAL_FUND,ETF,BOND"`
}

// ToConfig parses the decimal fields and validates the result.
func (s Settings) ToConfig() (Config, error) {
	cfg := Config{
		AutoResolveWithinTolerance: s.AutoResolveWithinTolerance,
		CreateSuspenseOnMismatch:   s.CreateSuspenseOnMismatch,
		SuspenseOnMissing:          s.SuspenseOnMissing,
	}

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"absolute_tolerance", s.AbsoluteTolerance, &cfg.AbsoluteTolerance},
		{"percentage_tolerance", s.PercentageTolerance, &cfg.PercentageTolerance},
		{"warning_threshold", s.WarningThreshold, &cfg.WarningThreshold},
		{"error_threshold", s.ErrorThreshold, &cfg.ErrorThreshold},
		{"critical_threshold", s.CriticalThreshold, &cfg.CriticalThreshold},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(strings.TrimSpace(f.raw))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f.name, err)
		}
		*f.dst = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AssetClasses parses EnabledAssetClasses. An empty list enables every class.
func (s Settings) AssetClasses() ([]AssetClass, error) {
	if strings.TrimSpace(s.EnabledAssetClasses) == "" {
		return AllAssetClasses(), nil
	}

	var out []AssetClass
	seen := make(map[AssetClass]struct{})
	for _, part := range strings.Split(s.EnabledAssetClasses, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		ac, err := ParseAssetClass(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[ac]; dup {
			continue
		}
		seen[ac] = struct{}{}
		out = append(out, ac)
	}
	return out, nil
}
