package suspense

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"finledger/core/reconcile"
	"finledger/feature/reconciliation/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a suspense entry does not exist.
	ErrNotFound = errors.New("suspense entry not found")
	// ErrNotesRequired is returned when a resolution has no notes.
	ErrNotesRequired = errors.New("resolution notes are required")
	// ErrAssigneeRequired is returned when an entry is assigned to nobody.
	ErrAssigneeRequired = errors.New("assignee is required")
	// ErrAlreadyClosed is returned when an entry is already resolved or written off.
	ErrAlreadyClosed = errors.New("suspense entry is already closed")
)

// Service manages suspense entries.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new suspense service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// GetOpenSuspense lists a user's OPEN and IN_PROGRESS entries, highest priority first,
// then oldest first.
func (s *Service) GetOpenSuspense(ctx context.Context, userID string) ([]models.Suspense, error) {
	var rows []models.Suspense
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, reconcile.OpenSuspenseStatuses()).
		Order("opened_date ASC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load open suspense: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Priority.Rank() > rows[j].Priority.Rank()
	})
	return rows, nil
}

// Assign hands an entry to assignee and moves it to IN_PROGRESS.
func (s *Service) Assign(ctx context.Context, id uint, assignee string) (*models.Suspense, error) {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return nil, ErrAssigneeRequired
	}

	var row models.Suspense
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := load(tx, id, &row); err != nil {
			return err
		}
		if !row.IsOpen() {
			return fmt.Errorf("suspense %d: %w", id, ErrAlreadyClosed)
		}

		row.Status = reconcile.SuspenseInProgress
		row.AssignedTo = assignee
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Suspense assigned", zap.Uint("suspense_id", row.ID), zap.String("assigned_to", assignee))
	return &row, nil
}

// Resolve closes an entry as RESOLVED, or WRITTEN_OFF when writeOff is set. The live
// event the entry points at is resolved too unless it already is.
func (s *Service) Resolve(ctx context.Context, id uint, notes string, writeOff bool, resolvedBy string) (*models.Suspense, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, ErrNotesRequired
	}

	status, action := reconcile.SuspenseResolved, reconcile.ActionSuspenseResolved
	if writeOff {
		status, action = reconcile.SuspenseWrittenOff, reconcile.ActionWrittenOff
	}

	now := s.now().UTC()
	resolvedOn := reconcile.DateOnly(now)
	var row models.Suspense
	eventResolved := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := load(tx, id, &row); err != nil {
			return err
		}
		if !row.IsOpen() {
			return fmt.Errorf("suspense %d: %w", id, ErrAlreadyClosed)
		}

		row.Status = status
		row.ActualResolutionDate = &resolvedOn
		row.ResolutionNotes = notes
		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		// Entries left open on a superseded run have no live event.
		var event models.Event
		err := tx.First(&event, row.EventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load event %d: %w", row.EventID, err)
		}
		if event.Status == reconcile.StatusResolved || reconcile.ValidateOutcome(event.MatchResult, reconcile.StatusResolved) != nil {
			return nil
		}

		event.Status = reconcile.StatusResolved
		event.ResolvedAt = &now
		event.ResolvedBy = resolvedBy
		event.ResolutionAction = action
		event.ResolutionNotes = notes
		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		eventResolved = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Suspense closed",
		zap.Uint("suspense_id", row.ID),
		zap.String("status", string(row.Status)),
		zap.String("resolved_by", resolvedBy),
		zap.Bool("event_resolved", eventResolved),
	)
	return &row, nil
}

func load(tx *gorm.DB, id uint, row *models.Suspense) error {
	err := tx.First(row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("suspense %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load suspense %d: %w", id, err)
	}
	return nil
}
