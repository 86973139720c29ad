// Package cached decorates the catalog repository with an in-process
// read-through cache for slow-moving reference data (tax levels, document
// templates). Items themselves are never cached: uniqueness checks must
// always observe the latest committed state.
package cached

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
)

const (
	cacheSize = 512
	cacheTTL  = 5 * time.Minute
)

type implRepository struct {
	repo.Repository

	taxLevels *expirable.LRU[string, model.TaxLevel]
	templates *expirable.LRU[string, model.DocumentTemplate]
}

// New wraps inner with reference-data caching.
func New(inner repo.Repository) repo.Repository {
	return &implRepository{
		Repository: inner,
		taxLevels:  expirable.NewLRU[string, model.TaxLevel](cacheSize, nil, cacheTTL),
		templates:  expirable.NewLRU[string, model.DocumentTemplate](cacheSize, nil, cacheTTL),
	}
}

func cacheKey(practiceKey, key string) string {
	return practiceKey + "/" + key
}

func (r *implRepository) GetTaxLevel(ctx context.Context, practiceKey, key string) (model.TaxLevel, error) {
	ck := cacheKey(practiceKey, key)
	if t, ok := r.taxLevels.Get(ck); ok {
		return t, nil
	}
	t, err := r.Repository.GetTaxLevel(ctx, practiceKey, key)
	if err != nil {
		return model.TaxLevel{}, err
	}
	if t.ID != "" {
		r.taxLevels.Add(ck, t)
	}
	return t, nil
}

func (r *implRepository) GetDocumentTemplate(ctx context.Context, practiceKey, key string) (model.DocumentTemplate, error) {
	ck := cacheKey(practiceKey, key)
	if d, ok := r.templates.Get(ck); ok {
		return d, nil
	}
	d, err := r.Repository.GetDocumentTemplate(ctx, practiceKey, key)
	if err != nil {
		return model.DocumentTemplate{}, err
	}
	if d.ID != "" {
		r.templates.Add(ck, d)
	}
	return d, nil
}
