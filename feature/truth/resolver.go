package truth

import (
	"context"

	"finledger/core/reconcile"
	"finledger/feature/truth/models"

	"go.uber.org/zap"
)

// Resolver answers which source is authoritative for one user.
type Resolver struct {
	service *Service
	userID  string
}

// UserID returns the user the resolver is bound to.
func (r *Resolver) UserID() string {
	return r.userID
}

// GetSourcePriority returns the ordered sources for (metric, asset): the user's override,
// then the global default, then [SYSTEM]. Only datastore failures are returned as errors.
func (r *Resolver) GetSourcePriority(ctx context.Context, metric reconcile.MetricType, asset reconcile.AssetClass) ([]reconcile.SourceType, error) {
	if r.userID != models.GlobalUserID {
		entry, err := r.service.lookup(ctx, r.userID, metric, asset)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return append([]reconcile.SourceType(nil), entry.Sources...), nil
		}
	}

	entry, err := r.service.lookup(ctx, models.GlobalUserID, metric, asset)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return append([]reconcile.SourceType(nil), entry.Sources...), nil
	}

	r.service.logger.Warn("No truth source configured, falling back to SYSTEM",
		zap.String("user_id", r.userID),
		zap.String("metric_type", string(metric)),
		zap.String("asset_class", string(asset)),
	)
	return []reconcile.SourceType{reconcile.SourceSystem}, nil
}

// GetTruthSource returns the first source of the priority list.
func (r *Resolver) GetTruthSource(ctx context.Context, metric reconcile.MetricType, asset reconcile.AssetClass) (reconcile.SourceType, error) {
	sources, err := r.GetSourcePriority(ctx, metric, asset)
	if err != nil {
		return "", err
	}
	return sources[0], nil
}

// IsAuthoritative reports whether source is the truth source for (metric, asset).
func (r *Resolver) IsAuthoritative(ctx context.Context, source reconcile.SourceType, metric reconcile.MetricType, asset reconcile.AssetClass) (bool, error) {
	truth, err := r.GetTruthSource(ctx, metric, asset)
	if err != nil {
		return false, err
	}
	return truth == source, nil
}

// SetUserOverride replaces the user's priority list for (metric, asset).
func (r *Resolver) SetUserOverride(ctx context.Context, metric reconcile.MetricType, asset reconcile.AssetClass, sources models.SourceList, rationale string) (*models.TruthSourceConfig, error) {
	if r.userID == models.GlobalUserID {
		return nil, ErrUserRequired
	}
	return r.service.upsert(ctx, r.userID, metric, asset, sources, rationale)
}
