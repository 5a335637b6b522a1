package golden

import (
	"finledger/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new golden reference feature.
func NewFeature(db *gorm.DB, client storage.Client, opts Options, logger *zap.Logger) *Feature {
	svc := NewService(db, client, opts, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service exposes the underlying service to other features.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "golden"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
