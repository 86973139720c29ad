package usecase

import (
	"context"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/catalog/uow"
	"practice-catalog/internal/model"
)

// Upsert creates or updates an item under an explicit catalog item key.
// The full creation pipeline runs either way; when the write resolves to an
// update, the activation side effect executes inside the same transaction
// before events are dispatched.
func (uc *implUseCase) Upsert(ctx context.Context, input catalog.UpsertItemInput) (catalog.UpsertItemOutput, error) {
	if input.Key == "" {
		return catalog.UpsertItemOutput{}, catalog.NewValidationError(catalog.RuleRequiredField,
			"validation.required_fields")
	}

	item, _, err := uc.buildItem(ctx, input.CreateItemInput, input.Key)
	if err != nil {
		return catalog.UpsertItemOutput{}, err
	}

	res, err := uc.uow.RunUpsert(ctx,
		func(ctx context.Context, tx repo.TxRepository) (uow.Result, error) {
			ur, err := tx.UpsertItem(ctx, repo.UpsertItemOptions{Item: item})
			if err != nil {
				return uow.Result{}, err
			}
			if !ur.Modified {
				return uow.Result{Item: ur.Item, Modified: false}, nil
			}
			eventType := model.EventItemUpdated
			if ur.Inserted {
				eventType = model.EventItemCreated
			}
			return uow.Result{
				Item:     ur.Item,
				Modified: true,
				Inserted: ur.Inserted,
				Events:   uc.itemEvents(eventType, ur.Item),
			}, nil
		},
		func(ctx context.Context, tx repo.TxRepository) error {
			_, err := tx.SetItemActive(ctx, input.PracticeKey, input.Key, input.Active)
			return err
		},
	)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert uow: %v", err)
		return catalog.UpsertItemOutput{}, err
	}

	return catalog.UpsertItemOutput{Item: res.Item, Inserted: res.Inserted}, nil
}
