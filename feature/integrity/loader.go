package integrity

import (
	"requirement-monitor/core/reconcile"
	"requirement-monitor/core/snapshot"
	"requirement-monitor/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Integrity feature.
func NewFeature(cfg reconcile.Config, snaps snapshot.Store, client storage.Client, storageCfg storage.Config, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(cfg, snaps, client, storageCfg, db, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service returns the integrity service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
