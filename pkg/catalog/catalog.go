// Package catalog provides canonical company records keyed by DUNS.
// The reference deployment serves a fixed fixture table; production
// deployments swap in the registry-backed client.
package catalog

import (
	"context"

	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
)

// Catalog is the source of company records the resolution engine searches.
// Implementations return fresh records; callers may attach per-search
// annotations without affecting later lookups.
type Catalog interface {
	// Get returns the company with the given DUNS.
	// Returns apperrors.ErrNotFound when the DUNS is absent.
	Get(ctx context.Context, duns string) (*models.Company, error)
	// All returns every company in the catalog in stable iteration order.
	// Search result ordering follows this order.
	All(ctx context.Context) ([]*models.Company, error)
}
