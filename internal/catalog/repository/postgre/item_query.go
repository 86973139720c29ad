package postgre

import (
	"fmt"
	"strings"

	repo "practice-catalog/internal/catalog/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneItem.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Key != "" {
		conditions = append(conditions, fmt.Sprintf("key = $%d", idx))
		args = append(args, opt.Key)
		idx++
	}
	if opt.PracticeKey != "" {
		conditions = append(conditions, fmt.Sprintf("practice_key = $%d", idx))
		args = append(args, opt.PracticeKey)
		idx++
	}
	if opt.ItemType != "" {
		conditions = append(conditions, fmt.Sprintf("item_type = $%d", idx))
		args = append(args, string(opt.ItemType))
		idx++
	}
	if opt.Code != "" {
		conditions = append(conditions, fmt.Sprintf("code = $%d", idx))
		args = append(args, opt.Code)
		idx++
	}
	if !opt.IncludeDeleted {
		conditions = append(conditions, "deleted = FALSE")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting items (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListItemsOptions) (string, []any) {
	conditions, args, _ := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	conditions, args, idx := r.listConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func (r *implRepository) listConditions(opt repo.ListItemsOptions) ([]string, []any, int) {
	var conditions []string
	var args []any
	idx := 1

	if opt.PracticeKey != "" {
		conditions = append(conditions, fmt.Sprintf("practice_key = $%d", idx))
		args = append(args, opt.PracticeKey)
		idx++
	}
	if opt.ItemType != "" {
		conditions = append(conditions, fmt.Sprintf("item_type = $%d", idx))
		args = append(args, string(opt.ItemType))
		idx++
	}
	if opt.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", idx))
		args = append(args, *opt.Active)
		idx++
	}
	conditions = append(conditions, "deleted = FALSE")

	return conditions, args, idx
}
