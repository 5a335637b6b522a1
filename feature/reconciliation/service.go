package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finledger/core/reconcile"
	"finledger/feature/golden"
	goldenmodels "finledger/feature/golden/models"
	"finledger/feature/holdings"
	"finledger/feature/reconciliation/models"
	"finledger/feature/truth"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// GoldenSource provides golden references and their holdings.
type GoldenSource interface {
	Reference(ctx context.Context, id string) (*goldenmodels.GoldenReference, error)
	Holdings(ctx context.Context, refID string, asset reconcile.AssetClass) ([]goldenmodels.GoldenHolding, error)
}

// TruthSources binds a truth-source resolver to a user.
type TruthSources interface {
	Resolver(userID string) *truth.Resolver
}

// Service runs reconciliations and manages their events. Concurrent runs of the same
// run key share a single execution.
type Service struct {
	db       *gorm.DB
	store    *Store
	golden   GoldenSource
	system   holdings.Provider
	truth    TruthSources
	settings SettingsLoader
	logger   *zap.Logger
	sf       singleflight.Group
	now      func() time.Time
}

// NewService creates a new reconciliation service.
func NewService(db *gorm.DB, goldenSrc GoldenSource, system holdings.Provider, truthSrc TruthSources, settings SettingsLoader, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		store:    NewStore(db),
		golden:   goldenSrc,
		system:   system,
		truth:    truthSrc,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// ReconcileHoldings reconciles one asset class of a golden reference against the system
// holdings as of asOf (the statement date when nil) and replaces any previous run of
// the same key. Business discrepancies are reported in the summary, never as errors.
func (s *Service) ReconcileHoldings(ctx context.Context, asset reconcile.AssetClass, goldenRefID string, asOf *time.Time) (*RunSummary, error) {
	if !asset.IsValid() {
		return nil, fmt.Errorf("%w: asset class %q", reconcile.ErrInvalidEnum, asset)
	}

	ref, err := s.golden.Reference(ctx, goldenRefID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Load(ctx, ref.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reconciliation settings: %w", err)
	}
	return s.reconcile(ctx, ref, asset, asOf, settings)
}

// ReconcileReference reconciles every enabled asset class of a golden reference.
func (s *Service) ReconcileReference(ctx context.Context, goldenRefID string, asOf *time.Time) ([]RunSummary, error) {
	ref, err := s.golden.Reference(ctx, goldenRefID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Load(ctx, ref.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reconciliation settings: %w", err)
	}

	summaries := make([]RunSummary, 0, len(settings.EnabledAssetClasses))
	for _, asset := range settings.EnabledAssetClasses {
		summary, err := s.reconcile(ctx, ref, asset, asOf, settings)
		if err != nil {
			return summaries, fmt.Errorf("%s: %w", asset, err)
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *Service) reconcile(ctx context.Context, ref *goldenmodels.GoldenReference, asset reconcile.AssetClass, asOf *time.Time, settings Settings) (*RunSummary, error) {
	if !settings.Enabled(asset) {
		return nil, fmt.Errorf("%w: %s", ErrAssetClassDisabled, asset)
	}

	date := reconcile.DateOnly(ref.StatementDate)
	if asOf != nil {
		date = reconcile.DateOnly(*asOf)
	}
	key := RunKey{UserID: ref.UserID, Date: date, AssetClass: asset, GoldenRefID: ref.ID}

	// Identical concurrent runs share one execution. It is detached from the caller's
	// cancellation; a caller that gives up only stops waiting.
	runCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(key.String(), func() (any, error) {
		return s.run(runCtx, ref, key, settings.Config)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		s.logger.Debug("Joined in-flight reconciliation run", zap.String("run_key", key.String()))
	}

	summary := *res.Val.(*RunSummary)
	return &summary, nil
}

func (s *Service) run(ctx context.Context, ref *goldenmodels.GoldenReference, key RunKey, cfg reconcile.Config) (*RunSummary, error) {
	l := s.logger.With(zap.String("run_key", key.String()))

	goldenRows, err := s.golden.Holdings(ctx, ref.ID, key.AssetClass)
	if err != nil {
		return nil, err
	}
	systemRows, err := s.system.SystemHoldings(ctx, key.UserID, key.AssetClass, key.Date)
	if err != nil {
		return nil, err
	}

	authoritative, err := s.truth.Resolver(key.UserID).IsAuthoritative(ctx, ref.SourceType, reconcile.MetricHoldings, key.AssetClass)
	if err != nil {
		return nil, err
	}
	if !authoritative {
		l.Warn("Golden reference source is not the truth source for this asset class",
			zap.String("source_type", string(ref.SourceType)))
	}

	goldenSide := make([]reconcile.Holding, 0, len(goldenRows))
	for _, h := range goldenRows {
		goldenSide = append(goldenSide, h.ToHolding())
	}
	systemSide := make([]reconcile.Holding, 0, len(systemRows))
	for _, h := range systemRows {
		systemSide = append(systemSide, h.ToHolding())
	}

	results, err := reconcile.Correlate(goldenSide, systemSide, cfg)
	if err != nil {
		return nil, err
	}

	meta := runMeta{RunID: uuid.NewString(), Key: key, Metric: reconcile.MetricHoldings, Source: ref.SourceType}
	events, drafts := buildEvents(meta, results)

	outcome, err := s.store.ReplaceRun(ctx, key, events, drafts)
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{
		RunID:            meta.RunID,
		UserID:           key.UserID,
		Date:             key.Date,
		AssetClass:       key.AssetClass,
		GoldenRefID:      key.GoldenRefID,
		SourceType:       ref.SourceType,
		Authoritative:    authoritative,
		Summary:          reconcile.Summarize(results),
		Superseded:       outcome.Superseded,
		SuspenseOpened:   outcome.Opened,
		SuspenseRelinked: outcome.Relinked,
	}

	l.Info("Reconciliation run completed",
		zap.String("run_id", summary.RunID),
		zap.Int("total_items", summary.Summary.TotalItems),
		zap.Int("mismatches", summary.Summary.Mismatches),
		zap.Int("missing_system", summary.Summary.MissingSystem),
		zap.Int("missing_golden", summary.Summary.MissingGolden),
		zap.Int("not_applicable", summary.Summary.NotApplicable),
		zap.Float64("match_rate", summary.Summary.MatchRate()),
		zap.Int("superseded", outcome.Superseded),
	)
	if summary.Summary.NotApplicable > 0 {
		l.Warn("Holdings without identity key", zap.Int("count", summary.Summary.NotApplicable))
	}
	return summary, nil
}

// ResolveMismatch manually resolves an event and closes its open suspense.
func (s *Service) ResolveMismatch(ctx context.Context, eventID uint, notes, resolvedBy string) (*models.Event, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, ErrNotesRequired
	}

	now := s.now().UTC()
	var event models.Event
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("event %d: %w", eventID, ErrNotFound)
			}
			return err
		}
		if event.Status == reconcile.StatusResolved {
			return fmt.Errorf("%w: event %d is already resolved", ErrInvalidTransition, eventID)
		}
		if err := reconcile.ValidateOutcome(event.MatchResult, reconcile.StatusResolved); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		event.Status = reconcile.StatusResolved
		event.ResolvedAt = &now
		event.ResolvedBy = resolvedBy
		event.ResolutionAction = reconcile.ActionManual
		event.ResolutionNotes = notes
		if err := tx.Save(&event).Error; err != nil {
			return err
		}

		resolvedOn := reconcile.DateOnly(now)
		return tx.Model(&models.Suspense{}).
			Where("event_id = ? AND status IN ?", event.ID, reconcile.OpenSuspenseStatuses()).
			Updates(map[string]any{
				"status":                 reconcile.SuspenseResolved,
				"actual_resolution_date": resolvedOn,
				"resolution_notes":       notes,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation event resolved",
		zap.Uint("event_id", event.ID),
		zap.String("resolved_by", resolvedBy),
	)
	return &event, nil
}

// Events returns the live events of a run.
func (s *Service) Events(ctx context.Context, key RunKey) ([]models.Event, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	key.Date = reconcile.DateOnly(key.Date)
	return s.store.Events(ctx, key)
}

// Summary rebuilds the summary of a run from its live events.
func (s *Service) Summary(ctx context.Context, key RunKey) (*RunSummary, error) {
	events, err := s.Events(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("run %s: %w", key, ErrNotFound)
	}

	first := events[0]
	return &RunSummary{
		RunID:       first.RunID,
		UserID:      first.UserID,
		Date:        reconcile.DateOnly(key.Date),
		AssetClass:  first.AssetClass,
		GoldenRefID: first.GoldenRefID,
		SourceType:  first.SourceType,
		Summary:     summarizeEvents(events),
	}, nil
}

// IsNotFound reports whether err means the requested reference, run or event does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, golden.ErrNotFound)
}
