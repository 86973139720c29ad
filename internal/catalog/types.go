package catalog

import (
	"time"

	"practice-catalog/internal/model"
)

// --- UseCase Inputs ---

// VaccineInput is the item-type-specific payload for service items.
type VaccineInput struct {
	Name          string
	Manufacturer  string
	BatchTracking bool
}

// LinkedItemInput references another catalog item by key.
type LinkedItemInput struct {
	ItemKey string
}

// CreateItemInput is the creation command handled by the orchestrator.
type CreateItemInput struct {
	PracticeKey string
	ItemType    model.ItemType
	Code        string
	Name        string

	Cost            float64
	BasePrice       float64
	Markup          float64
	DiscountPercent float64

	CategoryKey         string   // optional
	TaxLevelKey         string   // optional
	TaxLevelValue       *float64 // optional inline tax-level rate
	Key                 string   // optional explicit catalog item key
	DocumentTemplateKey string   // optional

	TierPrices []model.TierPrice
	Species    []string
	Reminders  []model.ReminderConfig

	Vaccine     *VaccineInput
	LinkedItems []LinkedItemInput

	Timestamp time.Time // supplied created/modified timestamp
}

// UpdateItemInput is a partial update keyed by (practice, item key).
type UpdateItemInput struct {
	PracticeKey string
	Key         string

	Name            string
	Cost            *float64
	BasePrice       *float64
	Markup          *float64
	DiscountPercent *float64

	Timestamp time.Time
}

// UpsertItemInput creates or updates an item under an explicit key.
type UpsertItemInput struct {
	CreateItemInput

	// Active is applied as the activation side effect when the upsert
	// resolves to an update.
	Active bool
}

// ListItemsInput filters and paginates the catalog.
type ListItemsInput struct {
	PracticeKey string
	ItemType    model.ItemType
	Active      *bool
	Limit       int
	Offset      int
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.CatalogItem
}

type UpdateItemOutput struct {
	Item     model.CatalogItem
	Modified bool
}

type UpsertItemOutput struct {
	Item     model.CatalogItem
	Inserted bool
}

type DetailItemOutput struct {
	Item model.CatalogItem
}

type ListItemsOutput struct {
	Items  []model.CatalogItem
	Total  int
	Limit  int
	Offset int
}
