package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/catalog"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
)

// HierarchyResult is a corporate hierarchy view with retrieval metadata.
type HierarchyResult struct {
	DUNS        string                     `json:"duns"`
	Hierarchy   *models.CorporateHierarchy `json:"hierarchy"`
	DataSource  string                     `json:"data_source"`
	LastUpdated time.Time                  `json:"last_updated"`
}

// HierarchyService serves corporate hierarchy views for catalog companies.
type HierarchyService interface {
	// GetHierarchy returns the hierarchy for the given DUNS with a fresh
	// retrieval timestamp. Returns apperrors.ErrNotFound both when the DUNS
	// is absent from the catalog and when the company carries no hierarchy
	// data; callers cannot distinguish the two.
	GetHierarchy(ctx context.Context, duns string) (*HierarchyResult, error)
}

// hierarchyService implements HierarchyService.
type hierarchyService struct {
	catalog catalog.Catalog
	logger  *zap.Logger
}

// NewHierarchyService creates a hierarchy service over the given catalog.
func NewHierarchyService(cat catalog.Catalog, logger *zap.Logger) HierarchyService {
	return &hierarchyService{
		catalog: cat,
		logger:  logger,
	}
}

// GetHierarchy returns the hierarchy verbatim; it does not recompute or
// validate hierarchy consistency.
func (s *hierarchyService) GetHierarchy(ctx context.Context, duns string) (*HierarchyResult, error) {
	company, err := s.catalog.Get(ctx, duns)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}

	if company.CorporateHierarchy == nil {
		return nil, apperrors.ErrNotFound
	}

	return &HierarchyResult{
		DUNS:        duns,
		Hierarchy:   company.CorporateHierarchy,
		DataSource:  company.DataSource,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// Ensure hierarchyService implements HierarchyService at compile time.
var _ HierarchyService = (*hierarchyService)(nil)
