package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tomascl/horarium/internal/app/models"
	"github.com/tomascl/horarium/internal/app/repositories"
	"github.com/tomascl/horarium/internal/pkg/apperrors"
)

// CatalogService provides read access to the subject catalog
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalogRepo *repositories.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetAllSubjects returns every subject with requirements, groups and slots.
func (s *CatalogService) GetAllSubjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.catalogRepo.GetAllSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get subjects: %w", err)
	}
	return subjects, nil
}

// GetSubjectBySku returns one subject by its sku
func (s *CatalogService) GetSubjectBySku(ctx context.Context, sku string) (*models.Subject, error) {
	subject, err := s.catalogRepo.GetSubjectBySku(ctx, sku)
	if err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("subject not found: %s", sku))
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return subject, nil
}
