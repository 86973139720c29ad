package usecase

import (
	"context"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
)

// checkCategory resolves the optional category and verifies its item type
// matches the item being created. Categorization is optional: an empty key
// passes with no category attached.
func (uc *implUseCase) checkCategory(ctx context.Context, input catalog.CreateItemInput) (*model.Category, error) {
	if input.CategoryKey == "" {
		return nil, nil
	}

	cat, err := uc.repo.GetCategory(ctx, input.PracticeKey, input.CategoryKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkCategory GetCategory: %v", err)
		return nil, err
	}
	if cat.ID == "" {
		return nil, catalog.NewValidationError(catalog.RuleCategoryNotFound,
			"validation.category_not_found", input.CategoryKey)
	}
	if cat.ItemType != input.ItemType {
		return nil, catalog.NewValidationError(catalog.RuleIncorrectCategoryType,
			"validation.incorrect_category_type", input.CategoryKey, cat.ItemType, input.ItemType)
	}
	return &cat, nil
}
