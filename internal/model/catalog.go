package model

import "time"

// ItemType tags the closed set of catalog item variants.
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeLab     ItemType = "lab"
	ItemTypeProduct ItemType = "product"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeService, ItemTypeLab, ItemTypeProduct:
		return true
	}
	return false
}

// Pricing is the pricing block attached to every catalog item.
type Pricing struct {
	Cost            float64
	BasePrice       float64
	Markup          float64
	DiscountPercent float64
}

// TierPrice is a quantity-break price attached during sequential enrichment.
type TierPrice struct {
	MinQuantity int
	Price       float64
}

// ReminderConfig schedules a follow-up reminder for an item (e.g. booster shots).
type ReminderConfig struct {
	Name       string
	OffsetDays int
}

// Vaccine is the 1:1 sub-record owned by a service item. Audit stamps are
// mirrored from the owning item when the entity is assembled.
type Vaccine struct {
	Key           string
	Name          string
	Manufacturer  string
	BatchTracking bool
	CreatedAt     time.Time
	CreatedBy     string
	ModifiedAt    time.Time
	ModifiedBy    string
}

// LinkedItem is a weak reference to another catalog item. The referenced
// item's id, type and code are denormalized at creation time and are not
// kept in sync afterwards.
type LinkedItem struct {
	ItemID   string
	ItemType ItemType
	ItemKey  string
	ItemCode string
}

// Category groups catalog items of a single item type.
type Category struct {
	ID          string
	Key         string
	PracticeKey string
	Name        string
	ItemType    ItemType
}

// TaxLevel is a practice-scoped tax configuration referenced by items.
type TaxLevel struct {
	ID          string
	Key         string
	PracticeKey string
	Name        string
	Rate        float64
}

// Fee is an ancillary charge attached to an item through its category.
type Fee struct {
	ID     string
	Name   string
	Amount float64
}

// DocumentTemplate is a printable document linked to an item.
type DocumentTemplate struct {
	ID          string
	Key         string
	PracticeKey string
	Name        string
}

// CatalogItem is the aggregate persisted by the catalog module. The variant
// is tagged by ItemType; Vaccine is only set for service items.
type CatalogItem struct {
	ID          string
	Key         string
	PracticeKey string
	ItemType    ItemType
	Code        string
	Name        string

	Pricing    Pricing
	TierPrices []TierPrice
	Species    []string
	Reminders  []ReminderConfig

	CategoryID       string
	Category         *Category
	TaxLevelID       string
	TaxLevel         *TaxLevel
	Fees             []Fee
	DocumentTemplate *DocumentTemplate
	Vaccine          *Vaccine
	LinkedItems      []LinkedItem

	Active  bool
	Deleted bool

	CreatedAt  time.Time
	CreatedBy  string
	ModifiedAt time.Time
	ModifiedBy string
}

// User is the acting principal resolved for audit stamping.
type User struct {
	ID          string
	Name        string
	PracticeKey string
}
