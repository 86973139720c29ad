package usecase

import (
	"context"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
)

// checkIdentity is the identity guard: it rejects a creation command whose
// code already exists for (practice, item type) or whose explicit key is
// already in use. excludeKey lets upsert skip its own target row when
// checking the code.
func (uc *implUseCase) checkIdentity(ctx context.Context, input catalog.CreateItemInput, excludeKey string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{
		PracticeKey:    input.PracticeKey,
		ItemType:       input.ItemType,
		Code:           input.Code,
		IncludeDeleted: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkIdentity GetOneItem(code): %v", err)
		return err
	}
	if existing.ID != "" && existing.Key != excludeKey {
		return &catalog.ConflictError{Field: "code", Value: input.Code, ItemType: existing.ItemType}
	}

	if input.Key == "" || input.Key == excludeKey {
		return nil
	}
	byKey, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{
		Key:            input.Key,
		IncludeDeleted: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkIdentity GetOneItem(key): %v", err)
		return err
	}
	if byKey.ID != "" {
		return &catalog.ConflictError{Field: "key", Value: input.Key, ItemType: byKey.ItemType}
	}
	return nil
}
