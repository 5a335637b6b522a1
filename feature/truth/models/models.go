package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"finledger/core/reconcile"
)

// ErrInvalidSources is returned when a source priority list is empty or repeats a source.
var ErrInvalidSources = errors.New("invalid source list")

// GlobalUserID scopes a TruthSourceConfig to every user without an override.
const GlobalUserID = ""

// SourceList is an ordered source priority list, stored as a JSON array.
type SourceList []reconcile.SourceType

// Validate requires at least one source, every source known and none repeated.
func (l SourceList) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("%w: at least one source is required", ErrInvalidSources)
	}
	seen := make(map[reconcile.SourceType]struct{}, len(l))
	for _, src := range l {
		if !src.IsValid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidSources, reconcile.ErrInvalidEnum, src)
		}
		if _, dup := seen[src]; dup {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidSources, src)
		}
		seen[src] = struct{}{}
	}
	return nil
}

// Value implements driver.Valuer.
func (l SourceList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner. Unknown sources are rejected.
func (l *SourceList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into SourceList", src)
	}
	var out SourceList
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// TruthSourceConfig designates the authoritative sources for a (metric, asset class) pair,
// either as the global default or as one user's override.
type TruthSourceConfig struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	MetricType  reconcile.MetricType `gorm:"size:32;not null;uniqueIndex:idx_truth_scope" json:"metric_type"`
	AssetClass  reconcile.AssetClass `gorm:"size:32;not null;uniqueIndex:idx_truth_scope" json:"asset_class"`
	UserID      string               `gorm:"size:64;not null;uniqueIndex:idx_truth_scope" json:"user_id"`
	Sources     SourceList           `gorm:"type:text;not null" json:"sources"`
	Description string               `gorm:"size:255" json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// TableName overrides the table name used by gorm.
func (TruthSourceConfig) TableName() string {
	return "truth_source_configs"
}

// IsGlobal reports whether the entry is the default for all users.
func (c TruthSourceConfig) IsGlobal() bool {
	return c.UserID == GlobalUserID
}
