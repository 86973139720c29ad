package postgre

import (
	"context"
	"database/sql"

	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
)

// Reference-data lookups. Same not-found convention as GetOneItem:
// missing rows yield a zero value with a nil error.

func (r *implRepository) GetCategory(ctx context.Context, practiceKey, key string) (model.Category, error) {
	const query = `
		SELECT id, key, practice_key, name, item_type
		FROM categories WHERE practice_key = $1 AND key = $2`

	var c model.Category
	var itemType string
	err := r.db.QueryRowContext(ctx, query, practiceKey, key).Scan(
		&c.ID, &c.Key, &c.PracticeKey, &c.Name, &itemType,
	)
	if err == sql.ErrNoRows {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	c.ItemType = model.ItemType(itemType)
	return c, nil
}

func (r *implRepository) GetTaxLevel(ctx context.Context, practiceKey, key string) (model.TaxLevel, error) {
	const query = `
		SELECT id, key, practice_key, name, rate
		FROM tax_levels WHERE practice_key = $1 AND key = $2`

	var t model.TaxLevel
	err := r.db.QueryRowContext(ctx, query, practiceKey, key).Scan(
		&t.ID, &t.Key, &t.PracticeKey, &t.Name, &t.Rate,
	)
	if err == sql.ErrNoRows {
		return model.TaxLevel{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTaxLevel"), err)
		return model.TaxLevel{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) GetCategoryFees(ctx context.Context, categoryID string) ([]model.Fee, error) {
	const query = `SELECT id, name, amount FROM category_fees WHERE category_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCategoryFees"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var fees []model.Fee
	for rows.Next() {
		var f model.Fee
		if err := rows.Scan(&f.ID, &f.Name, &f.Amount); err != nil {
			return nil, repo.ErrFailedToList
		}
		fees = append(fees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return fees, nil
}

func (r *implRepository) GetDocumentTemplate(ctx context.Context, practiceKey, key string) (model.DocumentTemplate, error) {
	const query = `
		SELECT id, key, practice_key, name
		FROM document_templates WHERE practice_key = $1 AND key = $2`

	var d model.DocumentTemplate
	err := r.db.QueryRowContext(ctx, query, practiceKey, key).Scan(
		&d.ID, &d.Key, &d.PracticeKey, &d.Name,
	)
	if err == sql.ErrNoRows {
		return model.DocumentTemplate{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetDocumentTemplate"), err)
		return model.DocumentTemplate{}, repo.ErrFailedToGet
	}
	return d, nil
}
