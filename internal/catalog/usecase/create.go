package usecase

import (
	"context"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/catalog/uow"
	"practice-catalog/internal/model"
)

// Create drives the end-to-end creation sequence: validation, identity
// guard, category check, entity assembly, enrichment fan-out, then the
// transactional persist-and-dispatch. Any failure before the unit of work
// aborts with nothing persisted.
func (uc *implUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	item, events, err := uc.buildItem(ctx, input, "")
	if err != nil {
		return catalog.CreateItemOutput{}, err
	}

	res, err := uc.uow.Run(ctx, func(ctx context.Context, tx repo.TxRepository) (uow.Result, error) {
		created, err := tx.CreateItem(ctx, repo.CreateItemOptions{Item: item})
		if err != nil {
			return uow.Result{}, err
		}
		return uow.Result{Item: created, Modified: true, Events: events}, nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create uow: %v", err)
		return catalog.CreateItemOutput{}, err
	}

	out := res.Item
	out.Category = item.Category
	out.TaxLevel = item.TaxLevel
	out.Fees = item.Fees
	out.DocumentTemplate = item.DocumentTemplate
	return catalog.CreateItemOutput{Item: out}, nil
}

// buildItem runs steps 1–8 of the creation pipeline and returns the fully
// assembled entity plus the events the insert will emit. excludeKey lets
// upsert suppress conflicts against its own target row.
func (uc *implUseCase) buildItem(ctx context.Context, input catalog.CreateItemInput, excludeKey string) (model.CatalogItem, []model.DomainEvent, error) {
	// 1. Field validation, then item-type-specific validation.
	input = normalizeInput(input)
	if err := validateInput(input); err != nil {
		return model.CatalogItem{}, nil, err
	}
	strat, ok := uc.strategies[input.ItemType]
	if !ok {
		return model.CatalogItem{}, nil, catalog.NewValidationError(catalog.RuleInvalidItemType,
			"validation.item_not_found")
	}
	if err := strat.validate(input); err != nil {
		return model.CatalogItem{}, nil, err
	}

	// 2. Identity guard.
	if err := uc.checkIdentity(ctx, input, excludeKey); err != nil {
		return model.CatalogItem{}, nil, err
	}

	// 3. Category compatibility.
	category, err := uc.checkCategory(ctx, input)
	if err != nil {
		return model.CatalogItem{}, nil, err
	}

	// 4. Transient entity with pricing block.
	item := newTransientItem(input)

	// 5. Sequential enrichment (ordered: later steps read earlier output).
	uc.enrichSequential(&item, input)

	// 6. Acting user, needed for audit stamping below.
	user, err := uc.users.Current(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create resolve user: %v", err)
		return model.CatalogItem{}, nil, err
	}

	// 7. Concurrent enrichment fan-out.
	enr, err := uc.enrichConcurrent(ctx, input, strat, user, category)
	if err != nil {
		return model.CatalogItem{}, nil, err
	}

	// 8. Final assembly: merge partials, stamp identity and audit fields.
	enr.merge(&item)
	item.Key = input.Key
	if item.Key == "" {
		item.Key = newItemKey()
	}
	item.CreatedAt = input.Timestamp
	item.CreatedBy = user.ID
	item.ModifiedAt = input.Timestamp
	item.ModifiedBy = user.ID

	events := uc.itemEvents(model.EventItemCreated, item)
	return item, events, nil
}
