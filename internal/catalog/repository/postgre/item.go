package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
)

const itemColumns = `id, key, practice_key, item_type, code, name,
	cost, base_price, markup, discount_percent,
	category_id, tax_level_id,
	tier_prices, species, reminders,
	active, deleted, created_at, created_by, modified_at, modified_by`

// scanItem scans one catalog_items row; tier_prices/species/reminders are
// stored as jsonb.
func scanItem(row interface{ Scan(dest ...any) error }) (model.CatalogItem, error) {
	var (
		item       model.CatalogItem
		itemType   string
		categoryID sql.NullString
		taxLevelID sql.NullString
		tierRaw    []byte
		speciesRaw []byte
		remindRaw  []byte
	)
	err := row.Scan(
		&item.ID, &item.Key, &item.PracticeKey, &itemType, &item.Code, &item.Name,
		&item.Pricing.Cost, &item.Pricing.BasePrice, &item.Pricing.Markup, &item.Pricing.DiscountPercent,
		&categoryID, &taxLevelID,
		&tierRaw, &speciesRaw, &remindRaw,
		&item.Active, &item.Deleted, &item.CreatedAt, &item.CreatedBy, &item.ModifiedAt, &item.ModifiedBy,
	)
	if err != nil {
		return model.CatalogItem{}, err
	}

	item.ItemType = model.ItemType(itemType)
	item.CategoryID = categoryID.String
	item.TaxLevelID = taxLevelID.String
	if len(tierRaw) > 0 {
		if err := json.Unmarshal(tierRaw, &item.TierPrices); err != nil {
			return model.CatalogItem{}, err
		}
	}
	if len(speciesRaw) > 0 {
		if err := json.Unmarshal(speciesRaw, &item.Species); err != nil {
			return model.CatalogItem{}, err
		}
	}
	if len(remindRaw) > 0 {
		if err := json.Unmarshal(remindRaw, &item.Reminders); err != nil {
			return model.CatalogItem{}, err
		}
	}
	return item, nil
}

// GetOneItem retrieves a single item by the provided filters (AND condition).
// Returns zero-value item (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.CatalogItem, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM catalog_items WHERE %s LIMIT 1", itemColumns, mods)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.CatalogItem{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.CatalogItem{}, repo.ErrFailedToGet
	}

	if err := r.loadChildren(ctx, &item); err != nil {
		r.l.Errorf(ctx, "%s children: %v", r.dsn("GetOneItem"), err)
		return model.CatalogItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// loadChildren attaches the vaccine sub-record and linked-item snapshots.
func (r *implRepository) loadChildren(ctx context.Context, item *model.CatalogItem) error {
	const vaccineQuery = `
		SELECT key, name, manufacturer, batch_tracking,
		       created_at, created_by, modified_at, modified_by
		FROM vaccines WHERE item_id = $1`

	var v model.Vaccine
	err := r.db.QueryRowContext(ctx, vaccineQuery, item.ID).Scan(
		&v.Key, &v.Name, &v.Manufacturer, &v.BatchTracking,
		&v.CreatedAt, &v.CreatedBy, &v.ModifiedAt, &v.ModifiedBy,
	)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil {
		item.Vaccine = &v
	}

	const linkedQuery = `
		SELECT linked_item_id, linked_item_type, linked_item_key, linked_item_code
		FROM linked_items WHERE item_id = $1`

	rows, err := r.db.QueryContext(ctx, linkedQuery, item.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var li model.LinkedItem
		var liType string
		if err := rows.Scan(&li.ItemID, &liType, &li.ItemKey, &li.ItemCode); err != nil {
			return err
		}
		li.ItemType = model.ItemType(liType)
		item.LinkedItems = append(item.LinkedItems, li)
	}
	return rows.Err()
}

// ListItems returns a paginated list of items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.CatalogItem, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM catalog_items WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM catalog_items %s", itemColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.CatalogItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}
