package truth

import (
	"context"
	"errors"
	"fmt"

	"finledger/core/reconcile"
	"finledger/feature/truth/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages truth-source configuration.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new truth-source service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Resolver returns a resolver bound to userID.
func (s *Service) Resolver(userID string) *Resolver {
	return &Resolver{service: s, userID: userID}
}

// SetGlobalDefault stores the priority list used for users without an override.
func (s *Service) SetGlobalDefault(ctx context.Context, metric reconcile.MetricType, asset reconcile.AssetClass, sources models.SourceList, description string) (*models.TruthSourceConfig, error) {
	return s.upsert(ctx, models.GlobalUserID, metric, asset, sources, description)
}

// lookup returns the entry for exactly this scope, or nil when there is none.
func (s *Service) lookup(ctx context.Context, userID string, metric reconcile.MetricType, asset reconcile.AssetClass) (*models.TruthSourceConfig, error) {
	var entry models.TruthSourceConfig
	err := s.db.WithContext(ctx).
		Where("metric_type = ? AND asset_class = ? AND user_id = ?", metric, asset, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load truth source config: %w", err)
	}
	return &entry, nil
}

func (s *Service) upsert(ctx context.Context, userID string, metric reconcile.MetricType, asset reconcile.AssetClass, sources models.SourceList, description string) (*models.TruthSourceConfig, error) {
	if !metric.IsValid() || !asset.IsValid() {
		return nil, fmt.Errorf("%w: %s/%s", reconcile.ErrInvalidEnum, metric, asset)
	}
	if err := sources.Validate(); err != nil {
		return nil, err
	}

	var saved models.TruthSourceConfig
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("metric_type = ? AND asset_class = ? AND user_id = ?", metric, asset, userID).
			First(&saved).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = models.TruthSourceConfig{
				MetricType:  metric,
				AssetClass:  asset,
				UserID:      userID,
				Sources:     sources,
				Description: description,
			}
			return tx.Create(&saved).Error
		case err != nil:
			return err
		}

		saved.Sources = sources
		saved.Description = description
		return tx.Save(&saved).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save truth source config: %w", err)
	}

	s.logger.Info("Truth source configured",
		zap.String("user_id", userID),
		zap.String("metric_type", string(metric)),
		zap.String("asset_class", string(asset)),
		zap.Any("sources", sources),
	)
	return &saved, nil
}
