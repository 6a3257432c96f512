package requirements

import (
	"context"

	"requirement-monitor/feature/requirements/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes read access to requirement file records.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new requirements service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		store:  NewStore(db),
		logger: logger,
	}
}

// List returns a page of requirement files.
func (s *Service) List(ctx context.Context, q models.ListQuery) (*models.ListResult, error) {
	return s.store.List(ctx, q)
}

// Get returns a requirement file by ID.
func (s *Service) Get(ctx context.Context, id uint) (*models.RequirementFile, error) {
	return s.store.Get(ctx, id)
}
