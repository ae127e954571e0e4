package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/catalog"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
	"github.com/Patoch87/DunsHierarchyV2/pkg/repositories"
)

// SearchService resolves search criteria against the company catalog.
type SearchService interface {
	// Search returns the companies matching the criteria, in catalog order,
	// each annotated with the criteria that produced the match. Matches are
	// written through to the lookup cache; zero-result searches are not
	// cached.
	Search(ctx context.Context, criteria *models.SearchCriteria) ([]*models.Company, error)
}

// matchStrategy is one branch of the resolution policy. applies inspects
// only the criteria; matches decides per candidate company.
type matchStrategy struct {
	name    string
	applies func(c *models.SearchCriteria) bool
	matches func(c *models.SearchCriteria, company *models.Company) bool
}

// matchStrategies is the resolution policy table. Exactly one strategy runs
// per search: the first whose criteria category is populated. Later
// categories are ignored even when populated, so a request carrying both
// company_name and city resolves purely as a name search. This priority
// order is a behavioral contract; do not reorder or make it conjunctive.
var matchStrategies = []matchStrategy{
	{
		name:    "duns_exact",
		applies: func(c *models.SearchCriteria) bool { return c.DUNS != "" },
		matches: func(c *models.SearchCriteria, company *models.Company) bool {
			return c.DUNS == company.DUNS
		},
	},
	{
		name:    "local_identifier",
		applies: func(c *models.SearchCriteria) bool { return c.LocalIdentifier != "" },
		matches: func(c *models.SearchCriteria, company *models.Company) bool {
			// Case-sensitive, unanchored; registration numbers keep their
			// formatting characters.
			for _, reg := range company.RegistrationNumbers {
				if strings.Contains(reg.Number, c.LocalIdentifier) {
					return true
				}
			}
			return false
		},
	},
	{
		name:    "company_name",
		applies: func(c *models.SearchCriteria) bool { return c.CompanyName != "" },
		matches: func(c *models.SearchCriteria, company *models.Company) bool {
			return strings.Contains(
				strings.ToLower(company.CompanyName),
				strings.ToLower(c.CompanyName),
			)
		},
	},
	{
		name: "geographic",
		applies: func(c *models.SearchCriteria) bool {
			return c.Continent != "" || c.Country != "" || c.City != ""
		},
		matches: func(c *models.SearchCriteria, company *models.Company) bool {
			// Supplied sub-criteria are independently sufficient.
			// No address means no match.
			if company.Address == nil {
				return false
			}
			if c.Continent != "" && c.Continent == company.Address.Continent {
				return true
			}
			if c.Country != "" && strings.Contains(
				strings.ToLower(company.Address.Country),
				strings.ToLower(c.Country),
			) {
				return true
			}
			if c.City != "" && strings.Contains(
				strings.ToLower(company.Address.City),
				strings.ToLower(c.City),
			) {
				return true
			}
			return false
		},
	},
	{
		name:    "phone_fax",
		applies: func(c *models.SearchCriteria) bool { return c.PhoneFax != "" },
		matches: func(c *models.SearchCriteria, company *models.Company) bool {
			return company.Phone != "" && strings.Contains(company.Phone, c.PhoneFax)
		},
	},
	{
		name:    "has_phone",
		applies: func(c *models.SearchCriteria) bool { return c.HasPhone },
		matches: func(c *models.SearchCriteria, company *models.Company) bool {
			return company.Phone != ""
		},
	},
}

// selectStrategy returns the first applicable strategy, or nil when no
// criteria category is populated (an empty search matches nothing).
func selectStrategy(c *models.SearchCriteria) *matchStrategy {
	for i := range matchStrategies {
		if matchStrategies[i].applies(c) {
			return &matchStrategies[i]
		}
	}
	return nil
}

// searchService implements SearchService.
type searchService struct {
	catalog catalog.Catalog
	cache   repositories.CompanyCacheRepository
	logger  *zap.Logger
}

// NewSearchService creates a search service over the given catalog that
// writes matches through to the lookup cache.
func NewSearchService(cat catalog.Catalog, cache repositories.CompanyCacheRepository, logger *zap.Logger) SearchService {
	return &searchService{
		catalog: cat,
		cache:   cache,
		logger:  logger,
	}
}

// Search resolves the criteria against the full catalog snapshot.
func (s *searchService) Search(ctx context.Context, criteria *models.SearchCriteria) ([]*models.Company, error) {
	supplied := criteria.Supplied()
	s.logger.Info("Unified search request", zap.Any("criteria", supplied))

	strategy := selectStrategy(criteria)
	if strategy == nil {
		return []*models.Company{}, nil
	}

	companies, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}

	results := make([]*models.Company, 0, len(companies))
	for _, company := range companies {
		if company == nil {
			continue
		}
		if strategy.matches(criteria, company) {
			company.SearchCriteria = supplied
			results = append(results, company)
		}
	}

	s.logger.Info("Search resolved",
		zap.String("strategy", strategy.name),
		zap.Int("count", len(results)))

	for _, company := range results {
		if err := s.cache.Upsert(ctx, company); err != nil {
			return nil, fmt.Errorf("failed to cache result: %w", err)
		}
	}

	return results, nil
}

// Ensure searchService implements SearchService at compile time.
var _ SearchService = (*searchService)(nil)
