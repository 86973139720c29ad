package repository

import (
	"time"

	"practice-catalog/internal/model"
)

// GetOneItemOptions holds filter parameters for fetching a single item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID          string
	Key         string
	PracticeKey string
	ItemType    model.ItemType
	Code        string

	IncludeDeleted bool
}

// ListItemsOptions holds filter and pagination parameters.
type ListItemsOptions struct {
	PracticeKey string
	ItemType    model.ItemType
	Active      *bool
	Limit       int
	Offset      int
	OrderBy     string
}

// CreateItemOptions carries the fully assembled entity to insert. Child
// records (vaccine, linked items) are inserted in the same transaction.
type CreateItemOptions struct {
	Item model.CatalogItem
}

// UpdateItemOptions holds parameters for a conditional update. Nil pointer
// fields are left unchanged.
type UpdateItemOptions struct {
	PracticeKey string
	Key         string

	Name            string
	Cost            *float64
	BasePrice       *float64
	Markup          *float64
	DiscountPercent *float64

	ModifiedBy string
	ModifiedAt time.Time
}

// UpsertItemOptions carries the assembled entity for insert-or-update
// keyed by the item's explicit catalog key.
type UpsertItemOptions struct {
	Item model.CatalogItem
}
