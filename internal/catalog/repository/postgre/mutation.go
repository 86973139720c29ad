package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
)

// All writers live on the transaction handle: mutations never run outside a
// unit of work.

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func marshalChildren(item model.CatalogItem) (tier, species, reminders []byte, err error) {
	if tier, err = json.Marshal(item.TierPrices); err != nil {
		return nil, nil, nil, err
	}
	if species, err = json.Marshal(item.Species); err != nil {
		return nil, nil, nil, err
	}
	if reminders, err = json.Marshal(item.Reminders); err != nil {
		return nil, nil, nil, err
	}
	return tier, species, reminders, nil
}

// CreateItem inserts the assembled entity plus its vaccine sub-record and
// linked-item snapshots in the ambient transaction.
func (r *implTxRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.CatalogItem, error) {
	const query = `
		INSERT INTO catalog_items (
			key, practice_key, item_type, code, name,
			cost, base_price, markup, discount_percent,
			category_id, tax_level_id,
			tier_prices, species, reminders,
			active, deleted, created_at, created_by, modified_at, modified_by
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,TRUE,FALSE,$15,$16,$17,$18)
		RETURNING id`

	item := opt.Item
	tier, species, reminders, err := marshalChildren(item)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateItem"), err)
		return model.CatalogItem{}, repo.ErrFailedToInsert
	}

	err = r.tx.QueryRowContext(ctx, query,
		item.Key, item.PracticeKey, string(item.ItemType), item.Code, item.Name,
		item.Pricing.Cost, item.Pricing.BasePrice, item.Pricing.Markup, item.Pricing.DiscountPercent,
		nullString(item.CategoryID), nullString(item.TaxLevelID),
		tier, species, reminders,
		item.CreatedAt, item.CreatedBy, item.ModifiedAt, item.ModifiedBy,
	).Scan(&item.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.CatalogItem{}, repo.ErrFailedToInsert
	}
	item.Active = true

	if err := r.insertChildren(ctx, item); err != nil {
		return model.CatalogItem{}, err
	}
	return item, nil
}

func (r *implTxRepository) insertChildren(ctx context.Context, item model.CatalogItem) error {
	if v := item.Vaccine; v != nil {
		const query = `
			INSERT INTO vaccines (item_id, key, name, manufacturer, batch_tracking,
				created_at, created_by, modified_at, modified_by)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
		_, err := r.tx.ExecContext(ctx, query,
			item.ID, v.Key, v.Name, v.Manufacturer, v.BatchTracking,
			v.CreatedAt, v.CreatedBy, v.ModifiedAt, v.ModifiedBy,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s vaccine: %v", r.dsn("CreateItem"), err)
			return repo.ErrFailedToInsert
		}
	}

	for _, li := range item.LinkedItems {
		const query = `
			INSERT INTO linked_items (item_id, linked_item_id, linked_item_type, linked_item_key, linked_item_code)
			VALUES ($1,$2,$3,$4,$5)`
		_, err := r.tx.ExecContext(ctx, query,
			item.ID, li.ItemID, string(li.ItemType), li.ItemKey, li.ItemCode,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s linked item: %v", r.dsn("CreateItem"), err)
			return repo.ErrFailedToInsert
		}
	}
	return nil
}

// UpdateItem applies a partial update. The WHERE guard uses IS DISTINCT FROM
// so an update that changes no observable field reports modified == false.
func (r *implTxRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.CatalogItem, bool, error) {
	var sets, guards []string
	var args []any
	idx := 1

	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		guards = append(guards, fmt.Sprintf("%s IS DISTINCT FROM $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.Name != "" {
		set("name", opt.Name)
	}
	if opt.Cost != nil {
		set("cost", *opt.Cost)
	}
	if opt.BasePrice != nil {
		set("base_price", *opt.BasePrice)
	}
	if opt.Markup != nil {
		set("markup", *opt.Markup)
	}
	if opt.DiscountPercent != nil {
		set("discount_percent", *opt.DiscountPercent)
	}
	if len(sets) == 0 {
		return model.CatalogItem{}, false, nil
	}

	// Audit stamps only move when a guarded column actually changes.
	sets = append(sets, fmt.Sprintf("modified_at = $%d", idx))
	args = append(args, opt.ModifiedAt)
	idx++
	sets = append(sets, fmt.Sprintf("modified_by = $%d", idx))
	args = append(args, opt.ModifiedBy)
	idx++

	query := fmt.Sprintf(`
		UPDATE catalog_items SET %s
		WHERE practice_key = $%d AND key = $%d AND deleted = FALSE AND (%s)
		RETURNING %s`,
		strings.Join(sets, ", "), idx, idx+1, strings.Join(guards, " OR "), itemColumns,
	)
	args = append(args, opt.PracticeKey, opt.Key)

	item, err := scanItem(r.tx.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		// Either the row is missing or nothing changed; the caller has
		// already confirmed existence, so this is the no-op path.
		return model.CatalogItem{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.CatalogItem{}, false, repo.ErrFailedToUpdate
	}
	return item, true, nil
}

// UpsertItem inserts or updates under the item's explicit key. xmax = 0
// distinguishes a fresh insert from a conflict update; a conflict update
// whose guard matches nothing reports Modified == false.
func (r *implTxRepository) UpsertItem(ctx context.Context, opt repo.UpsertItemOptions) (repo.UpsertResult, error) {
	const query = `
		INSERT INTO catalog_items (
			key, practice_key, item_type, code, name,
			cost, base_price, markup, discount_percent,
			category_id, tax_level_id,
			tier_prices, species, reminders,
			active, deleted, created_at, created_by, modified_at, modified_by
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,TRUE,FALSE,$15,$16,$17,$18)
		ON CONFLICT (key) DO UPDATE SET
			name = EXCLUDED.name,
			cost = EXCLUDED.cost,
			base_price = EXCLUDED.base_price,
			markup = EXCLUDED.markup,
			discount_percent = EXCLUDED.discount_percent,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by
		WHERE (catalog_items.name, catalog_items.cost, catalog_items.base_price,
		       catalog_items.markup, catalog_items.discount_percent)
		      IS DISTINCT FROM
		      (EXCLUDED.name, EXCLUDED.cost, EXCLUDED.base_price,
		       EXCLUDED.markup, EXCLUDED.discount_percent)
		RETURNING id, (xmax = 0) AS inserted`

	item := opt.Item
	tier, species, reminders, err := marshalChildren(item)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("UpsertItem"), err)
		return repo.UpsertResult{}, repo.ErrFailedToUpsert
	}

	var inserted bool
	err = r.tx.QueryRowContext(ctx, query,
		item.Key, item.PracticeKey, string(item.ItemType), item.Code, item.Name,
		item.Pricing.Cost, item.Pricing.BasePrice, item.Pricing.Markup, item.Pricing.DiscountPercent,
		nullString(item.CategoryID), nullString(item.TaxLevelID),
		tier, species, reminders,
		item.CreatedAt, item.CreatedBy, item.ModifiedAt, item.ModifiedBy,
	).Scan(&item.ID, &inserted)
	if err == sql.ErrNoRows {
		return repo.UpsertResult{Item: item, Inserted: false, Modified: false}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertItem"), err)
		return repo.UpsertResult{}, repo.ErrFailedToUpsert
	}
	item.Active = true

	if inserted {
		if err := r.insertChildren(ctx, item); err != nil {
			return repo.UpsertResult{}, err
		}
	}
	return repo.UpsertResult{Item: item, Inserted: inserted, Modified: true}, nil
}

// DeleteItem soft-deletes; reports false when the item was already deleted
// or does not exist.
func (r *implTxRepository) DeleteItem(ctx context.Context, practiceKey, key string) (bool, error) {
	const query = `
		UPDATE catalog_items SET deleted = TRUE
		WHERE practice_key = $1 AND key = $2 AND deleted = FALSE`

	res, err := r.tx.ExecContext(ctx, query, practiceKey, key)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

// RestoreItem reverses a soft delete.
func (r *implTxRepository) RestoreItem(ctx context.Context, practiceKey, key string) (bool, error) {
	const query = `
		UPDATE catalog_items SET deleted = FALSE
		WHERE practice_key = $1 AND key = $2 AND deleted = TRUE`

	res, err := r.tx.ExecContext(ctx, query, practiceKey, key)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RestoreItem"), err)
		return false, repo.ErrFailedToRestore
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToRestore
	}
	return n > 0, nil
}

// SetItemActive flips activation; reports false when the flag already held.
func (r *implTxRepository) SetItemActive(ctx context.Context, practiceKey, key string, active bool) (bool, error) {
	const query = `
		UPDATE catalog_items SET active = $3
		WHERE practice_key = $1 AND key = $2 AND deleted = FALSE AND active IS DISTINCT FROM $3`

	res, err := r.tx.ExecContext(ctx, query, practiceKey, key, active)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetItemActive"), err)
		return false, repo.ErrFailedToActivate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToActivate
	}
	return n > 0, nil
}
