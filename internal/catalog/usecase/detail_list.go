package usecase

import (
	"context"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
)

// Detail retrieves a single item by key. Returns ErrItemNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, practiceKey, key string) (catalog.DetailItemOutput, error) {
	item, err := uc.requireItem(ctx, practiceKey, key, false)
	if err != nil {
		return catalog.DetailItemOutput{}, err
	}
	return catalog.DetailItemOutput{Item: item}, nil
}

// List returns a paginated page of the practice's catalog.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		PracticeKey: input.PracticeKey,
		ItemType:    input.ItemType,
		Active:      input.Active,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return catalog.ListItemsOutput{}, err
	}
	return catalog.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
