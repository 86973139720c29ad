package usecase

import (
	"context"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
)

// resolveLinkedItems enforces the linked-item capacity invariant and
// denormalizes the referenced item's id/type/code snapshot. The snapshot is
// taken at creation time and never kept in sync with the referenced item.
func (uc *implUseCase) resolveLinkedItems(ctx context.Context, input catalog.CreateItemInput, strat strategy) ([]model.LinkedItem, error) {
	if len(input.LinkedItems) == 0 {
		return nil, nil
	}
	limit := strat.maxLinkedItems()
	if len(input.LinkedItems) > limit {
		return nil, catalog.NewValidationError(catalog.RuleMaximumLinkedItems,
			"validation.max_linked_items", limit)
	}

	ref := input.LinkedItems[0]
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{
		PracticeKey: input.PracticeKey,
		Key:         ref.ItemKey,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.resolveLinkedItems GetOneItem: %v", err)
		return nil, err
	}
	if item.ID == "" {
		return nil, catalog.NewValidationError(catalog.RuleLinkedItemNotFound,
			"validation.linked_item_not_found", ref.ItemKey)
	}
	if !strat.acceptsLinkedType(item.ItemType) {
		return nil, catalog.NewValidationError(catalog.RuleLinkedItemType,
			"validation.linked_item_type", item.ItemType)
	}

	return []model.LinkedItem{{
		ItemID:   item.ID,
		ItemType: item.ItemType,
		ItemKey:  item.Key,
		ItemCode: item.Code,
	}}, nil
}
