package golden

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finledger/core/reconcile"
	"finledger/core/storage"
	"finledger/feature/golden/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a golden reference does not exist.
var ErrNotFound = errors.New("golden reference not found")

// Options configures the golden reference service.
type Options struct {
	// Bucket holds the statement documents.
	Bucket string
	// MaxObjectBytes caps the size of a statement read into memory.
	MaxObjectBytes int64
	// CacheTTL is how long holdings lists are reused. Zero disables caching.
	CacheTTL time.Duration
}

// Service ingests golden references and serves their holdings.
type Service struct {
	db     *gorm.DB
	client storage.Client
	opts   Options
	logger *zap.Logger
	cache  *holdingsCache
	now    func() time.Time
}

// NewService creates a new golden reference service.
func NewService(db *gorm.DB, client storage.Client, opts Options, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		opts:   opts,
		logger: logger,
		cache:  newHoldingsCache(opts.CacheTTL),
		now:    time.Now,
	}
}

// IngestResult describes a stored reference.
type IngestResult struct {
	Reference models.GoldenReference `json:"reference"`
	Holdings  int                    `json:"holdings"`
	// Issues are data-quality problems found in the statement. They do not block ingestion.
	Issues []string `json:"issues,omitempty"`
}

// Ingest reads the statement at objectKey and stores it as a new golden reference.
// The reference and all its holdings are written in one transaction.
func (s *Service) Ingest(ctx context.Context, objectKey string) (*IngestResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	data, err := storage.ReadObject(ctx, s.client, s.opts.Bucket, objectKey, s.opts.MaxObjectBytes)
	if err != nil {
		return nil, err
	}

	ref, holdings, err := ParseStatement(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", objectKey, err)
	}

	ref.ID = uuid.NewString()
	ref.ObjectKey = objectKey
	ref.IngestedAt = s.now().UTC()

	var issues []string
	for i := range holdings {
		holdings[i].GoldenRefID = ref.ID
		for _, issue := range holdings[i].Issues() {
			issues = append(issues, fmt.Sprintf("holding %d: %s", i, issue))
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ref).Error; err != nil {
			return err
		}
		if len(holdings) == 0 {
			return nil
		}
		return tx.CreateInBatches(holdings, 200).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store golden reference: %w", err)
	}

	s.logger.Info("Golden reference ingested",
		zap.String("golden_ref_id", ref.ID),
		zap.String("user_id", ref.UserID),
		zap.String("source_type", string(ref.SourceType)),
		zap.Int("holdings", len(holdings)),
		zap.Int("issues", len(issues)),
	)
	for _, issue := range issues {
		s.logger.Warn("Golden statement data issue", zap.String("golden_ref_id", ref.ID), zap.String("issue", issue))
	}

	return &IngestResult{Reference: *ref, Holdings: len(holdings), Issues: issues}, nil
}

// Reference returns a golden reference by id.
func (s *Service) Reference(ctx context.Context, id string) (*models.GoldenReference, error) {
	var ref models.GoldenReference
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load golden reference: %w", err)
	}
	return &ref, nil
}

// References lists a user's golden references, newest statement first.
func (s *Service) References(ctx context.Context, userID string) ([]models.GoldenReference, error) {
	var refs []models.GoldenReference
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("statement_date DESC").Order("ingested_at DESC").
		Find(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list golden references: %w", err)
	}
	return refs, nil
}

// Holdings returns the reference's holdings of one asset class, ordered by id.
func (s *Service) Holdings(ctx context.Context, refID string, asset reconcile.AssetClass) ([]models.GoldenHolding, error) {
	holdings, err := s.cache.get(refID+"/"+string(asset), func() ([]models.GoldenHolding, error) {
		var rows []models.GoldenHolding
		err := s.db.WithContext(ctx).
			Where("golden_ref_id = ? AND asset_type = ?", refID, asset).
			Order("id ASC").
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load golden holdings: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]models.GoldenHolding(nil), holdings...), nil
}
