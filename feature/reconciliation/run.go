package reconciliation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finledger/core/reconcile"
	"finledger/feature/reconciliation/models"
)

var (
	// ErrNotFound is returned when an event or run does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotesRequired is returned when a manual resolution has no notes.
	ErrNotesRequired = errors.New("resolution notes are required")
	// ErrAssetClassDisabled is returned when the user's settings exclude the asset class.
	ErrAssetClassDisabled = errors.New("asset class is not enabled for reconciliation")
	// ErrInvalidTransition is returned when an event cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidRunKey is returned when a run key is incomplete.
	ErrInvalidRunKey = errors.New("invalid run key")
)

// RunKey identifies a reconciliation run. Re-running the same key supersedes the previous run.
type RunKey struct {
	UserID      string               `json:"user_id"`
	Date        time.Time            `json:"reconciliation_date"`
	AssetClass  reconcile.AssetClass `json:"asset_class"`
	GoldenRefID string               `json:"golden_ref_id"`
}

// String renders the key for logging and flight grouping.
func (k RunKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.UserID, k.Date.Format("2006-01-02"), k.AssetClass, k.GoldenRefID)
}

// Validate requires every component of the key.
func (k RunKey) Validate() error {
	if k.UserID == "" || k.GoldenRefID == "" || k.Date.IsZero() || !k.AssetClass.IsValid() {
		return fmt.Errorf("%w: user_id, reconciliation_date, asset_class and golden_ref_id are required", ErrInvalidRunKey)
	}
	return nil
}

// RunSummary is the summary of one run and where it came from.
type RunSummary struct {
	RunID            string               `json:"run_id"`
	UserID           string               `json:"user_id"`
	Date             time.Time            `json:"reconciliation_date"`
	AssetClass       reconcile.AssetClass `json:"asset_class"`
	GoldenRefID      string               `json:"golden_ref_id"`
	SourceType       reconcile.SourceType `json:"source_type"`
	Authoritative    bool                 `json:"source_authoritative"`
	Summary          reconcile.Summary    `json:"summary"`
	Superseded       int                  `json:"superseded_events"`
	SuspenseOpened   int                  `json:"suspense_opened"`
	SuspenseRelinked int                  `json:"suspense_relinked"`
}

// runMeta is the context shared by every event of a run.
type runMeta struct {
	RunID  string
	Key    RunKey
	Metric reconcile.MetricType
	Source reconcile.SourceType
}

// buildEvents turns engine results into events plus the suspense drafts at the same index.
func buildEvents(meta runMeta, results []reconcile.Result) ([]models.Event, []*reconcile.SuspenseDraft) {
	events := make([]models.Event, 0, len(results))
	drafts := make([]*reconcile.SuspenseDraft, 0, len(results))

	for _, r := range results {
		events = append(events, models.Event{
			RunID:              meta.RunID,
			UserID:             meta.Key.UserID,
			ReconciliationDate: meta.Key.Date,
			MetricType:         meta.Metric,
			AssetClass:         meta.Key.AssetClass,
			SourceType:         meta.Source,
			GoldenRefID:        meta.Key.GoldenRefID,
			IdentityKey:        r.Key.String(),
			ISIN:               r.ISIN,
			FolioNumber:        r.FolioNumber,
			Symbol:             r.Symbol,
			Name:               r.Name,
			SystemUnits:        r.SystemUnits,
			GoldenUnits:        r.GoldenUnits,
			SystemValue:        r.SystemValue,
			GoldenValue:        r.GoldenValue,
			Difference:         r.Difference,
			DifferencePct:      r.DifferencePct,
			ToleranceUsed:      r.ToleranceUsed,
			Status:             r.Status,
			MatchResult:        r.MatchResult,
			Severity:           r.Severity,
			Notes:              strings.Join(r.Notes, "\n"),
			ResolutionAction:   r.ResolutionAction,
		})
		drafts = append(drafts, r.Suspense)
	}
	return events, drafts
}

// summarizeEvents rebuilds the summary of stored events.
func summarizeEvents(events []models.Event) reconcile.Summary {
	var s reconcile.Summary
	for _, e := range events {
		s.Add(e.MatchResult, e.SystemValue, e.GoldenValue, e.Difference)
	}
	return s
}
