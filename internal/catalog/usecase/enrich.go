package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
)

// enrichment collects the partial updates produced by the concurrent
// fan-out. Each fan-out operation writes exactly one field, so the struct
// is raced-free by construction; the entity itself is only touched after
// the join, during the sequential merge.
type enrichment struct {
	taxLevel *model.TaxLevel
	category *model.Category
	fees     []model.Fee
	vaccine  *model.Vaccine
	linked   []model.LinkedItem
	template *model.DocumentTemplate
}

// enrichSequential runs the ordered enrichment steps. Order matters:
// species assignment must precede reminder scheduling because unnamed
// reminders are expanded per species.
func (uc *implUseCase) enrichSequential(item *model.CatalogItem, input catalog.CreateItemInput) {
	// Tier pricing: normalize to ascending quantity breaks.
	if len(input.TierPrices) > 0 {
		tiers := make([]model.TierPrice, len(input.TierPrices))
		copy(tiers, input.TierPrices)
		sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinQuantity < tiers[j].MinQuantity })
		item.TierPrices = tiers
	}

	// Species assignment: drop duplicates, preserve order.
	seen := make(map[string]bool, len(input.Species))
	for _, s := range input.Species {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		item.Species = append(item.Species, s)
	}

	// Reminder scheduling: a reminder without a name is expanded into one
	// reminder per assigned species.
	for _, rem := range input.Reminders {
		if rem.Name != "" || len(item.Species) == 0 {
			item.Reminders = append(item.Reminders, rem)
			continue
		}
		for _, s := range item.Species {
			item.Reminders = append(item.Reminders, model.ReminderConfig{
				Name:       s,
				OffsetDays: rem.OffsetDays,
			})
		}
	}
}

// enrichConcurrent fans out the independent enrichment operations and joins
// before returning. Every operation produces a partial update into its own
// enrichment field; failures surface only after all operations finished.
func (uc *implUseCase) enrichConcurrent(
	ctx context.Context,
	input catalog.CreateItemInput,
	strat strategy,
	user model.User,
	category *model.Category,
) (enrichment, error) {
	var enr enrichment
	g, gctx := errgroup.WithContext(ctx)

	// Tax-level resolution: lookup by key, or an inline level from the
	// command when no key is supplied.
	g.Go(func() error {
		switch {
		case input.TaxLevelKey != "":
			t, err := uc.repo.GetTaxLevel(gctx, input.PracticeKey, input.TaxLevelKey)
			if err != nil {
				return err
			}
			if t.ID == "" {
				return catalog.NewValidationError(catalog.RuleTaxLevelNotFound,
					"validation.tax_level_not_found", input.TaxLevelKey)
			}
			enr.taxLevel = &t
		case input.TaxLevelValue != nil:
			enr.taxLevel = &model.TaxLevel{
				PracticeKey: input.PracticeKey,
				Name:        "inline",
				Rate:        *input.TaxLevelValue,
			}
		}
		return nil
	})

	// Category attachment: snapshot resolved earlier by the compatibility
	// checker.
	g.Go(func() error {
		enr.category = category
		return nil
	})

	// Fee attachment rides on the category.
	g.Go(func() error {
		if category == nil {
			return nil
		}
		fees, err := uc.repo.GetCategoryFees(gctx, category.ID)
		if err != nil {
			return err
		}
		enr.fees = fees
		return nil
	})

	// Item-type-specific property enrichment (vaccine audit stamping).
	g.Go(func() error {
		v, err := strat.enrichProperties(input, user, input.Timestamp)
		if err != nil {
			return err
		}
		enr.vaccine = v
		return nil
	})

	// Linked-item resolution.
	g.Go(func() error {
		linked, err := uc.resolveLinkedItems(gctx, input, strat)
		if err != nil {
			return err
		}
		enr.linked = linked
		return nil
	})

	// Document-template attachment.
	g.Go(func() error {
		if input.DocumentTemplateKey == "" {
			return nil
		}
		d, err := uc.repo.GetDocumentTemplate(gctx, input.PracticeKey, input.DocumentTemplateKey)
		if err != nil {
			return err
		}
		if d.ID == "" {
			return catalog.NewValidationError(catalog.RuleTemplateNotFound,
				"validation.document_template_not_found", input.DocumentTemplateKey)
		}
		enr.template = &d
		return nil
	})

	if err := g.Wait(); err != nil {
		return enrichment{}, err
	}
	return enr, nil
}

// merge applies the joined partial updates to the entity, sequentially.
func (enr enrichment) merge(item *model.CatalogItem) {
	if enr.taxLevel != nil {
		item.TaxLevel = enr.taxLevel
		item.TaxLevelID = enr.taxLevel.ID
	}
	if enr.category != nil {
		item.Category = enr.category
		item.CategoryID = enr.category.ID
	}
	item.Fees = enr.fees
	item.Vaccine = enr.vaccine
	item.LinkedItems = enr.linked
	item.DocumentTemplate = enr.template
}
