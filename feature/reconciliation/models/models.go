package models

import (
	"strings"
	"time"

	"finledger/core/reconcile"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Event is the persisted outcome of reconciling one identity key in one run.
// Events of a superseded run are soft-deleted.
type Event struct {
	ID                 uint                  `gorm:"primaryKey" json:"id"`
	RunID              string                `gorm:"size:36;not null;index" json:"run_id"`
	UserID             string                `gorm:"size:64;not null;index:idx_recon_run_key" json:"user_id"`
	ReconciliationDate time.Time             `gorm:"type:date;not null;index:idx_recon_run_key" json:"reconciliation_date"`
	MetricType         reconcile.MetricType  `gorm:"size:32;not null" json:"metric_type"`
	AssetClass         reconcile.AssetClass  `gorm:"size:32;not null;index:idx_recon_run_key" json:"asset_class"`
	SourceType         reconcile.SourceType  `gorm:"size:32;not null" json:"source_type"`
	GoldenRefID        string                `gorm:"size:36;not null;index:idx_recon_run_key" json:"golden_ref_id"`
	IdentityKey        string                `gorm:"size:160" json:"identity_key"`
	ISIN               string                `gorm:"size:12" json:"isin,omitempty"`
	FolioNumber        string                `gorm:"size:64" json:"folio_number,omitempty"`
	Symbol             string                `gorm:"size:32" json:"symbol,omitempty"`
	Name               string                `gorm:"size:255" json:"name,omitempty"`
	SystemUnits        decimal.NullDecimal   `gorm:"type:decimal(24,6)" json:"system_units"`
	GoldenUnits        decimal.NullDecimal   `gorm:"type:decimal(24,6)" json:"golden_units"`
	SystemValue        decimal.NullDecimal   `gorm:"type:decimal(24,6)" json:"system_value"`
	GoldenValue        decimal.NullDecimal   `gorm:"type:decimal(24,6)" json:"golden_value"`
	Difference         decimal.NullDecimal   `gorm:"type:decimal(24,6)" json:"difference"`
	DifferencePct      decimal.NullDecimal   `gorm:"type:decimal(12,6)" json:"difference_pct"`
	ToleranceUsed      decimal.NullDecimal   `gorm:"type:decimal(24,6)" json:"tolerance_used"`
	Status             reconcile.Status      `gorm:"size:16;not null;index" json:"status"`
	MatchResult        reconcile.MatchResult `gorm:"size:20;not null" json:"match_result"`
	Severity           reconcile.Severity    `gorm:"size:16;not null" json:"severity"`
	Notes              string                `gorm:"type:text" json:"notes,omitempty"`
	ResolvedAt         *time.Time            `json:"resolved_at,omitempty"`
	ResolvedBy         string                `gorm:"size:64" json:"resolved_by,omitempty"`
	ResolutionAction   string                `gorm:"size:32" json:"resolution_action,omitempty"`
	ResolutionNotes    string                `gorm:"type:text" json:"resolution_notes,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	DeletedAt          gorm.DeletedAt        `gorm:"index" json:"-"`
}

// TableName overrides the table name used by gorm.
func (Event) TableName() string {
	return "reconciliation_events"
}

// Validate rejects status and match result combinations an event cannot carry.
func (e *Event) Validate() error {
	if !e.Severity.IsValid() {
		return reconcile.ErrInvalidEnum
	}
	return reconcile.ValidateOutcome(e.MatchResult, e.Status)
}

// BeforeSave validates the event before every insert or save.
func (e *Event) BeforeSave(*gorm.DB) error {
	return e.Validate()
}

// NoteList splits Notes back into individual notes.
func (e Event) NoteList() []string {
	if e.Notes == "" {
		return nil
	}
	return strings.Split(e.Notes, "\n")
}

// Suspense parks an unresolved discrepancy until it is explicitly closed.
type Suspense struct {
	ID                   uint                     `gorm:"primaryKey" json:"id"`
	EventID              uint                     `gorm:"not null;uniqueIndex" json:"event_id"`
	UserID               string                   `gorm:"size:64;not null;index" json:"user_id"`
	AssetClass           reconcile.AssetClass     `gorm:"size:32;not null" json:"asset_class"`
	GoldenRefID          string                   `gorm:"size:36;not null" json:"golden_ref_id"`
	IdentityKey          string                   `gorm:"size:160;not null" json:"identity_key"`
	ISIN                 string                   `gorm:"size:12" json:"isin,omitempty"`
	FolioNumber          string                   `gorm:"size:64" json:"folio_number,omitempty"`
	Symbol               string                   `gorm:"size:32" json:"symbol,omitempty"`
	SuspenseUnits        decimal.Decimal          `gorm:"type:decimal(24,6);not null" json:"suspense_units"`
	SuspenseValue        decimal.NullDecimal      `gorm:"type:decimal(24,6)" json:"suspense_value"`
	SuspenseCurrency     string                   `gorm:"size:3;not null" json:"suspense_currency"`
	Reason               string                   `gorm:"size:512" json:"reason"`
	OpenedDate           time.Time                `gorm:"type:date;not null" json:"opened_date"`
	TargetResolutionDate time.Time                `gorm:"type:date;not null" json:"target_resolution_date"`
	ActualResolutionDate *time.Time               `gorm:"type:date" json:"actual_resolution_date,omitempty"`
	Status               reconcile.SuspenseStatus `gorm:"size:16;not null;index" json:"status"`
	Priority             reconcile.Priority       `gorm:"size:16;not null" json:"priority"`
	AssignedTo           string                   `gorm:"size:64" json:"assigned_to,omitempty"`
	ResolutionNotes      string                   `gorm:"type:text" json:"resolution_notes,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

// TableName overrides the table name used by gorm.
func (Suspense) TableName() string {
	return "reconciliation_suspenses"
}

// IsOpen reports whether the row still needs work.
func (s Suspense) IsOpen() bool {
	return s.Status.IsOpen()
}

// All lists every model of the reconciliation schema, in migration order.
func All() []any {
	return []any{&Event{}, &Suspense{}}
}
