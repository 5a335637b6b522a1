package cmd

import (
	"fmt"
	"time"

	"finledger/core/config"
	"finledger/core/database"
	"finledger/core/logger"
	"finledger/core/storage"
	"finledger/feature/golden"
	goldenmodels "finledger/feature/golden/models"
	"finledger/feature/holdings"
	"finledger/feature/reconciliation"
	reconmodels "finledger/feature/reconciliation/models"
	"finledger/feature/suspense"
	"finledger/feature/truth"
	truthmodels "finledger/feature/truth/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app carries the dependencies shared by the commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// schemaModels lists every model of the service schema, in migration order.
func schemaModels() []any {
	models := []any{
		&truthmodels.TruthSourceConfig{},
		&goldenmodels.GoldenReference{},
		&goldenmodels.GoldenHolding{},
	}
	return append(models, reconmodels.All()...)
}

// bootstrap loads configuration and connects to the database, and to object storage
// when withStorage is set. The schema is migrated when database.auto_migrate is on.
func bootstrap(withStorage bool) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, schemaModels()...); err != nil {
			return nil, err
		}
	}

	a := &app{cfg: cfg, logger: logg, db: db}
	if withStorage {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		a.store = store
	}
	return a, nil
}

func (a *app) goldenService() *golden.Service {
	return golden.NewService(a.db, a.store, a.goldenOptions(), a.logger)
}

func (a *app) goldenOptions() golden.Options {
	return golden.Options{
		Bucket:         a.cfg.Storage.Bucket,
		MaxObjectBytes: a.cfg.Storage.MaxObjectBytes,
		CacheTTL:       time.Duration(a.cfg.Golden.CacheTTLSeconds) * time.Second,
	}
}

func (a *app) truthService() *truth.Service {
	return truth.NewService(a.db, a.logger)
}

func (a *app) suspenseService() *suspense.Service {
	return suspense.NewService(a.db, a.logger)
}

func (a *app) systemHoldings() holdings.Provider {
	return holdings.NewStorageProvider(a.store, a.cfg.Storage.Bucket, a.cfg.Storage.MaxObjectBytes)
}

func (a *app) reconciliationService(goldenSrc reconciliation.GoldenSource, truthSrc reconciliation.TruthSources) (*reconciliation.Service, error) {
	settings, err := reconciliation.NewStaticSettings(a.cfg.Reconcile)
	if err != nil {
		return nil, fmt.Errorf("invalid reconcile settings: %w", err)
	}
	return reconciliation.NewService(a.db, goldenSrc, a.systemHoldings(), truthSrc, settings, a.logger), nil
}
