package usecase

import (
	"context"
	"time"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/catalog/uow"
	"practice-catalog/internal/model"
)

// Update applies a partial update under conditional commit semantics: when
// no observable field changes, the transaction is discarded, no events are
// dispatched, and the call succeeds as a no-op.
func (uc *implUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{
		PracticeKey: input.PracticeKey,
		Key:         input.Key,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return catalog.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return catalog.UpdateItemOutput{}, catalog.ErrItemNotFound
	}

	user, err := uc.users.Current(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update resolve user: %v", err)
		return catalog.UpdateItemOutput{}, err
	}
	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	res, err := uc.uow.RunConditional(ctx, func(ctx context.Context, tx repo.TxRepository) (uow.Result, error) {
		item, modified, err := tx.UpdateItem(ctx, repo.UpdateItemOptions{
			PracticeKey:     input.PracticeKey,
			Key:             input.Key,
			Name:            input.Name,
			Cost:            input.Cost,
			BasePrice:       input.BasePrice,
			Markup:          input.Markup,
			DiscountPercent: input.DiscountPercent,
			ModifiedBy:      user.ID,
			ModifiedAt:      ts,
		})
		if err != nil {
			return uow.Result{}, err
		}
		if !modified {
			return uow.Result{Item: existing, Modified: false}, nil
		}
		return uow.Result{
			Item:     item,
			Modified: true,
			Events:   uc.itemEvents(model.EventItemUpdated, item),
		}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update uow: %v", err)
		return catalog.UpdateItemOutput{}, err
	}

	return catalog.UpdateItemOutput{Item: res.Item, Modified: res.Modified}, nil
}
