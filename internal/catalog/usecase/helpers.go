package usecase

import (
	"time"

	"github.com/google/uuid"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
)

// normalizeInput fills defaults the delivery layer may omit.
func normalizeInput(input catalog.CreateItemInput) catalog.CreateItemInput {
	if input.Timestamp.IsZero() {
		input.Timestamp = time.Now().UTC()
	}
	return input
}

// validateInput covers the business fields shared by every item type.
// Declarative shape validation (required, ranges) already ran at the
// delivery boundary.
func validateInput(input catalog.CreateItemInput) error {
	if input.PracticeKey == "" || input.Code == "" || input.Name == "" {
		return catalog.NewValidationError(catalog.RuleRequiredField, "validation.required_fields")
	}
	if !input.ItemType.Valid() {
		return catalog.NewValidationError(catalog.RuleInvalidItemType, "validation.invalid_item_type", input.ItemType)
	}
	return nil
}

// newTransientItem maps the command onto a transient entity and attaches
// the pricing block. Identity and audit fields are stamped at assembly.
func newTransientItem(input catalog.CreateItemInput) model.CatalogItem {
	return model.CatalogItem{
		PracticeKey: input.PracticeKey,
		ItemType:    input.ItemType,
		Code:        input.Code,
		Name:        input.Name,
		Pricing: model.Pricing{
			Cost:            input.Cost,
			BasePrice:       input.BasePrice,
			Markup:          input.Markup,
			DiscountPercent: input.DiscountPercent,
		},
		Active: true,
	}
}

func newItemKey() string {
	return uuid.NewString()
}

// itemEvents builds the event list emitted by a mutation of item.
func (uc *implUseCase) itemEvents(eventType model.EventType, item model.CatalogItem) []model.DomainEvent {
	return []model.DomainEvent{{
		Key:         uuid.NewString(),
		Type:        eventType,
		PracticeKey: item.PracticeKey,
		ItemKey:     item.Key,
		ItemType:    item.ItemType,
		OccurredAt:  item.ModifiedAt,
		Payload: map[string]interface{}{
			"code":   item.Code,
			"name":   item.Name,
			"active": item.Active,
		},
	}}
}
