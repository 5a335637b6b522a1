package reconciliation

import (
	"context"
	"fmt"
	"time"

	"finledger/core/reconcile"
	"finledger/feature/reconciliation/models"

	"gorm.io/gorm"
)

// Store persists runs.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStore creates a store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// ReplaceOutcome reports what ReplaceRun changed.
type ReplaceOutcome struct {
	Events     []models.Event
	Superseded int
	Opened     int
	Relinked   int
}

// ReplaceRun atomically supersedes the live events of key with events.
// drafts[i] is the suspense draft of events[i], or nil.
//
// Open suspense rows of the same user, asset class and reference that sit on superseded
// events move to the new event with the same identity key when it still needs suspense.
// Otherwise they stay open on the old event; suspense is only ever closed explicitly.
func (s *Store) ReplaceRun(ctx context.Context, key RunKey, events []models.Event, drafts []*reconcile.SuspenseDraft) (*ReplaceOutcome, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if len(drafts) != len(events) {
		return nil, fmt.Errorf("replace run: %d events but %d suspense drafts", len(events), len(drafts))
	}

	opened := reconcile.DateOnly(s.now().UTC())
	out := &ReplaceOutcome{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Load prior live events of the run key
		var prior []models.Event
		if err := liveRun(tx, key).Select("id").Find(&prior).Error; err != nil {
			return fmt.Errorf("failed to load prior events: %w", err)
		}

		priorIDs := make([]uint, 0, len(prior))
		for _, e := range prior {
			priorIDs = append(priorIDs, e.ID)
		}

		// Collect suspense still open for this scope on events that are, or are about to
		// be, superseded. Rows stranded by older runs are picked up too.
		stale := tx.Session(&gorm.Session{NewDB: true}).Unscoped().Model(&models.Event{}).
			Select("id").Where("deleted_at IS NOT NULL OR id IN ?", priorIDs)
		var open []models.Suspense
		err := tx.Where("user_id = ? AND asset_class = ? AND golden_ref_id = ? AND status IN ?",
			key.UserID, key.AssetClass, key.GoldenRefID, reconcile.OpenSuspenseStatuses()).
			Where("event_id IN (?)", stale).
			Order("id ASC").Find(&open).Error
		if err != nil {
			return fmt.Errorf("failed to load open suspense: %w", err)
		}
		carried := make(map[string]*models.Suspense)
		for i := range open {
			if _, ok := carried[open[i].IdentityKey]; !ok {
				carried[open[i].IdentityKey] = &open[i]
			}
		}

		if len(priorIDs) > 0 {
			if err := tx.Delete(&models.Event{}, priorIDs).Error; err != nil {
				return fmt.Errorf("failed to supersede prior events: %w", err)
			}
			out.Superseded = len(priorIDs)
		}

		if len(events) > 0 {
			if err := tx.Create(&events).Error; err != nil {
				return fmt.Errorf("failed to insert events: %w", err)
			}
		}

		for i, draft := range drafts {
			if draft == nil {
				continue
			}
			event := events[i]

			if row, ok := carried[event.IdentityKey]; ok {
				applyDraft(row, event, draft)
				// Keep the original opened date; the target follows the new priority.
				row.TargetResolutionDate = reconcile.TargetResolutionDate(row.OpenedDate, row.Priority)
				if err := tx.Save(row).Error; err != nil {
					return fmt.Errorf("failed to relink suspense %d: %w", row.ID, err)
				}
				delete(carried, event.IdentityKey)
				out.Relinked++
				continue
			}

			row := &models.Suspense{
				OpenedDate: opened,
				Status:     reconcile.SuspenseOpen,
			}
			applyDraft(row, event, draft)
			row.TargetResolutionDate = reconcile.TargetResolutionDate(opened, row.Priority)
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to open suspense for %s: %w", event.IdentityKey, err)
			}
			out.Opened++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Events = events
	return out, nil
}

func applyDraft(row *models.Suspense, event models.Event, draft *reconcile.SuspenseDraft) {
	row.EventID = event.ID
	row.UserID = event.UserID
	row.AssetClass = event.AssetClass
	row.GoldenRefID = event.GoldenRefID
	row.IdentityKey = event.IdentityKey
	row.ISIN = event.ISIN
	row.FolioNumber = event.FolioNumber
	row.Symbol = event.Symbol
	row.SuspenseUnits = draft.Units
	row.SuspenseValue = draft.Value
	row.SuspenseCurrency = draft.Currency
	row.Reason = draft.Reason
	row.Priority = draft.Priority
}

// liveRun scopes a query to the live events of key.
func liveRun(db *gorm.DB, key RunKey) *gorm.DB {
	return db.Model(&models.Event{}).
		Where("user_id = ? AND reconciliation_date = ? AND asset_class = ? AND golden_ref_id = ?",
			key.UserID, key.Date, key.AssetClass, key.GoldenRefID)
}

// Events returns the live events of key ordered by id.
func (s *Store) Events(ctx context.Context, key RunKey) ([]models.Event, error) {
	var events []models.Event
	if err := liveRun(s.db.WithContext(ctx), key).Order("id ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return events, nil
}
