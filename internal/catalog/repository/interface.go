package repository

import (
	"context"

	"practice-catalog/internal/model"
)

// Repository is the composed interface for the catalog data store.
// Reads run on the shared pool; mutations run inside a TxRepository obtained
// from Begin, so the unit of work owns the transaction boundary explicitly.
type Repository interface {
	ItemReader

	// Begin opens a read-committed transaction and returns a handle whose
	// writers all execute inside it.
	Begin(ctx context.Context) (TxRepository, error)
}

// TxRepository is the transaction-scoped mutation surface. Exactly one of
// Commit or Rollback must be called; Rollback after Commit is a no-op.
type TxRepository interface {
	ItemWriter

	Commit() error
	Rollback() error
}

// ItemReader defines lookups. By convention a missing row yields a
// zero-value result and a nil error — not-found is never a read error.
type ItemReader interface {
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.CatalogItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.CatalogItem, int, error)

	GetCategory(ctx context.Context, practiceKey, key string) (model.Category, error)
	GetTaxLevel(ctx context.Context, practiceKey, key string) (model.TaxLevel, error)
	GetCategoryFees(ctx context.Context, categoryID string) ([]model.Fee, error)
	GetDocumentTemplate(ctx context.Context, practiceKey, key string) (model.DocumentTemplate, error)
}

// ItemWriter defines all mutations. The bool results report whether the
// write actually changed state, which drives conditional commit semantics.
type ItemWriter interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.CatalogItem, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.CatalogItem, bool, error)
	UpsertItem(ctx context.Context, opt UpsertItemOptions) (UpsertResult, error)
	DeleteItem(ctx context.Context, practiceKey, key string) (bool, error)
	RestoreItem(ctx context.Context, practiceKey, key string) (bool, error)
	SetItemActive(ctx context.Context, practiceKey, key string, active bool) (bool, error)
}

// UpsertResult reports how an upsert resolved.
type UpsertResult struct {
	Item     model.CatalogItem
	Inserted bool // true when the row was inserted rather than updated
	Modified bool // false when an update changed no observable field
}
