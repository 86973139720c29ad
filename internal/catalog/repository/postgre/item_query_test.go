package postgre

import (
	"reflect"
	"strings"
	"testing"

	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.GetOneItemOptions
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "code lookup excludes deleted by default",
			opt: repo.GetOneItemOptions{
				PracticeKey: "p1",
				ItemType:    model.ItemTypeService,
				Code:        "RABIES-01",
			},
			wantSQL:  "practice_key = $1 AND item_type = $2 AND code = $3 AND deleted = FALSE",
			wantArgs: []any{"p1", "service", "RABIES-01"},
		},
		{
			name: "identity guard sees deleted rows",
			opt: repo.GetOneItemOptions{
				Key:            "k1",
				IncludeDeleted: true,
			},
			wantSQL:  "key = $1",
			wantArgs: []any{"k1"},
		},
		{
			name:    "no filters",
			opt:     repo.GetOneItemOptions{IncludeDeleted: true},
			wantSQL: "1=1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := r.buildGetOneQuery(tc.opt)
			if sql != tc.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tc.wantSQL)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("args = %v, want %v", args, tc.wantArgs)
			}
		})
	}
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	active := true
	sql, args := r.buildListQuery(repo.ListItemsOptions{
		PracticeKey: "p1",
		ItemType:    model.ItemTypeLab,
		Active:      &active,
		Limit:       20,
		Offset:      40,
	})

	want := "WHERE practice_key = $1 AND item_type = $2 AND active = $3 AND deleted = FALSE ORDER BY created_at DESC LIMIT $4 OFFSET $5"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 5 || args[3] != 20 || args[4] != 40 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildListQueryDefaults(t *testing.T) {
	r := &implRepository{}

	sql, args := r.buildListQuery(repo.ListItemsOptions{PracticeKey: "p1"})
	if !strings.Contains(sql, "deleted = FALSE") {
		t.Errorf("list must always exclude deleted rows: %q", sql)
	}
	if strings.Contains(sql, "LIMIT") || strings.Contains(sql, "OFFSET") {
		t.Errorf("no pagination requested: %q", sql)
	}
	if len(args) != 1 {
		t.Errorf("args = %v", args)
	}
}
