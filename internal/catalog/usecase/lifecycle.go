package usecase

import (
	"context"
	"time"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/catalog/uow"
	"practice-catalog/internal/model"
)

// Delete soft-deletes an item. Conditional: deleting an already-deleted
// item is a successful no-op with no events.
func (uc *implUseCase) Delete(ctx context.Context, practiceKey, key string) error {
	item, err := uc.requireItem(ctx, practiceKey, key, true)
	if err != nil {
		return err
	}

	_, err = uc.uow.RunConditional(ctx, func(ctx context.Context, tx repo.TxRepository) (uow.Result, error) {
		modified, err := tx.DeleteItem(ctx, practiceKey, key)
		if err != nil {
			return uow.Result{}, err
		}
		if !modified {
			return uow.Result{Item: item, Modified: false}, nil
		}
		stamped := item
		stamped.ModifiedAt = time.Now().UTC()
		return uow.Result{
			Item:     stamped,
			Modified: true,
			Events:   uc.itemEvents(model.EventItemDeleted, stamped),
		}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete uow: %v", err)
	}
	return err
}

// Restore reverses a soft delete. Unconditional: the restore event is
// always dispatched and the transaction always commits.
func (uc *implUseCase) Restore(ctx context.Context, practiceKey, key string) error {
	item, err := uc.requireItem(ctx, practiceKey, key, true)
	if err != nil {
		return err
	}

	_, err = uc.uow.Run(ctx, func(ctx context.Context, tx repo.TxRepository) (uow.Result, error) {
		if _, err := tx.RestoreItem(ctx, practiceKey, key); err != nil {
			return uow.Result{}, err
		}
		stamped := item
		stamped.Deleted = false
		stamped.ModifiedAt = time.Now().UTC()
		return uow.Result{
			Item:     stamped,
			Modified: true,
			Events:   uc.itemEvents(model.EventItemRestored, stamped),
		}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Restore uow: %v", err)
	}
	return err
}

// SetActive flips activation. Unconditional operation shape.
func (uc *implUseCase) SetActive(ctx context.Context, practiceKey, key string, active bool) error {
	item, err := uc.requireItem(ctx, practiceKey, key, false)
	if err != nil {
		return err
	}

	eventType := model.EventItemDeactivated
	if active {
		eventType = model.EventItemActivated
	}

	_, err = uc.uow.Run(ctx, func(ctx context.Context, tx repo.TxRepository) (uow.Result, error) {
		if _, err := tx.SetItemActive(ctx, practiceKey, key, active); err != nil {
			return uow.Result{}, err
		}
		stamped := item
		stamped.Active = active
		stamped.ModifiedAt = time.Now().UTC()
		return uow.Result{
			Item:     stamped,
			Modified: true,
			Events:   uc.itemEvents(eventType, stamped),
		}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetActive uow: %v", err)
	}
	return err
}

// requireItem fetches an item or fails with ErrItemNotFound.
func (uc *implUseCase) requireItem(ctx context.Context, practiceKey, key string, includeDeleted bool) (model.CatalogItem, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{
		PracticeKey:    practiceKey,
		Key:            key,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.requireItem GetOneItem: %v", err)
		return model.CatalogItem{}, err
	}
	if item.ID == "" {
		return model.CatalogItem{}, catalog.ErrItemNotFound
	}
	return item, nil
}
