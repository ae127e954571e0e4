package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
)

const (
	// companyKeyPrefix namespaces the per-company JSON documents.
	companyKeyPrefix = "company:"
	// recentSetKey is the recency index, scored by last_updated.
	recentSetKey = "companies:recent"
)

// CompanyCacheRepository is the lookup cache downstream of the search engine.
// Documents are keyed by DUNS; an upsert is a full-document replace, so
// concurrent writers to the same key resolve last-write-wins.
type CompanyCacheRepository interface {
	// Upsert stores the company keyed by its DUNS, replacing any previous
	// document, and refreshes its position in the recency index.
	Upsert(ctx context.Context, company *models.Company) error
	// ListRecent returns up to limit cached companies ordered by
	// last_updated descending.
	ListRecent(ctx context.Context, limit int) ([]*models.Company, error)
}

// companyCacheRepository implements CompanyCacheRepository using Redis.
// A nil client degrades to an empty, write-discarding store so the search
// path never depends on cache availability.
type companyCacheRepository struct {
	client *redis.Client
}

// NewCompanyCacheRepository creates a Redis-backed company cache.
func NewCompanyCacheRepository(client *redis.Client) CompanyCacheRepository {
	return &companyCacheRepository{client: client}
}

// Upsert stores the company document and its recency score atomically.
func (r *companyCacheRepository) Upsert(ctx context.Context, company *models.Company) error {
	if r.client == nil {
		return nil
	}

	doc, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("failed to encode company %s: %w", company.DUNS, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, companyKeyPrefix+company.DUNS, doc, 0)
		pipe.ZAdd(ctx, recentSetKey, redis.Z{
			Score:  float64(company.LastUpdated.UnixMilli()),
			Member: company.DUNS,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache company %s: %w", company.DUNS, err)
	}

	return nil
}

// ListRecent returns up to limit cached companies, most recent first.
func (r *companyCacheRepository) ListRecent(ctx context.Context, limit int) ([]*models.Company, error) {
	if r.client == nil || limit <= 0 {
		return nil, nil
	}

	dunsList, err := r.client.ZRevRange(ctx, recentSetKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recency index: %w", err)
	}
	if len(dunsList) == 0 {
		return nil, nil
	}

	keys := make([]string, len(dunsList))
	for i, duns := range dunsList {
		keys[i] = companyKeyPrefix + duns
	}

	docs, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cached companies: %w", err)
	}

	companies := make([]*models.Company, 0, len(docs))
	for _, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			// Index entry without a document; skip rather than fail the listing.
			continue
		}
		var company models.Company
		if err := json.Unmarshal([]byte(raw), &company); err != nil {
			return nil, fmt.Errorf("failed to decode cached company: %w", err)
		}
		companies = append(companies, &company)
	}

	return companies, nil
}

// Ensure companyCacheRepository implements CompanyCacheRepository at compile time.
var _ CompanyCacheRepository = (*companyCacheRepository)(nil)
