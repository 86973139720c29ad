package usecase_test

import (
	"context"
	"errors"
	"testing"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
)

func upsertInput(key string) catalog.UpsertItemInput {
	input := serviceInput()
	input.Key = key
	return catalog.UpsertItemInput{CreateItemInput: input, Active: false}
}

func TestUpsertRequiresKey(t *testing.T) {
	uc := newUseCase(newMockRepo(), &mockDispatcher{})

	_, err := uc.Upsert(context.Background(), upsertInput(""))

	var invalid *catalog.ValidationError
	if !errors.As(err, &invalid) || invalid.Rule != catalog.RuleRequiredField {
		t.Fatalf("expected %s, got %v", catalog.RuleRequiredField, err)
	}
}

func TestUpsertInsert(t *testing.T) {
	repo := newMockRepo()
	repo.tx.upsertRes = repository.UpsertResult{Inserted: true, Modified: true}
	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	out, err := uc.Upsert(context.Background(), upsertInput("k-new"))
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !out.Inserted {
		t.Error("expected insert resolution")
	}
	if len(d.dispatched) != 1 || d.dispatched[0].Type != model.EventItemCreated {
		t.Fatalf("insert must emit %s, got %+v", model.EventItemCreated, d.dispatched)
	}
	// Side effect only applies to the update path.
	if len(repo.tx.setActiveCalls) != 0 {
		t.Errorf("activation side effect must not run on insert: %v", repo.tx.setActiveCalls)
	}
	if repo.tx.commits != 1 {
		t.Errorf("commits=%d", repo.tx.commits)
	}
}

func TestUpsertUpdateRunsSideEffect(t *testing.T) {
	repo := newMockRepo()
	repo.items = append(repo.items, model.CatalogItem{
		ID: "item-1", Key: "k1", PracticeKey: "practice-1",
		ItemType: model.ItemTypeService, Code: "RABIES-01",
	})
	repo.tx.upsertRes = repository.UpsertResult{
		Item:     model.CatalogItem{ID: "item-1", Key: "k1", PracticeKey: "practice-1", ItemType: model.ItemTypeService, Code: "RABIES-01"},
		Inserted: false,
		Modified: true,
	}
	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	out, err := uc.Upsert(context.Background(), upsertInput("k1"))
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if out.Inserted {
		t.Error("expected update resolution")
	}
	if len(repo.tx.setActiveCalls) != 1 || repo.tx.setActiveCalls[0] != false {
		t.Errorf("activation side effect not applied in-transaction: %v", repo.tx.setActiveCalls)
	}
	if len(d.dispatched) != 1 || d.dispatched[0].Type != model.EventItemUpdated {
		t.Fatalf("update must emit %s, got %+v", model.EventItemUpdated, d.dispatched)
	}
}

func TestUpsertNoOpSkipsSideEffect(t *testing.T) {
	repo := newMockRepo()
	repo.items = append(repo.items, model.CatalogItem{
		ID: "item-1", Key: "k1", PracticeKey: "practice-1",
		ItemType: model.ItemTypeService, Code: "RABIES-01",
	})
	repo.tx.upsertRes = repository.UpsertResult{
		Item:     model.CatalogItem{ID: "item-1", Key: "k1"},
		Inserted: false,
		Modified: false,
	}
	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	_, err := uc.Upsert(context.Background(), upsertInput("k1"))
	if err != nil {
		t.Fatalf("no-op upsert must succeed: %v", err)
	}
	if len(repo.tx.setActiveCalls) != 0 {
		t.Error("no-op upsert must not run the activation side effect")
	}
	if len(d.dispatched) != 0 || repo.tx.commits != 0 {
		t.Errorf("no-op upsert must not dispatch or commit: events=%d commits=%d", len(d.dispatched), repo.tx.commits)
	}
}

func TestUpsertConflictOnForeignCode(t *testing.T) {
	// Another item of the same type already owns the code under a
	// different key: the upsert may not steal it.
	repo := newMockRepo()
	repo.items = append(repo.items, model.CatalogItem{
		ID: "other", Key: "k-other", PracticeKey: "practice-1",
		ItemType: model.ItemTypeService, Code: "RABIES-01",
	})
	uc := newUseCase(repo, &mockDispatcher{})

	_, err := uc.Upsert(context.Background(), upsertInput("k1"))

	var conflict *catalog.ConflictError
	if !errors.As(err, &conflict) || conflict.Field != "code" {
		t.Fatalf("expected code conflict, got %v", err)
	}
}

func TestUpsertOwnRowNoConflict(t *testing.T) {
	// The target row itself holding the code is not a conflict.
	repo := newMockRepo()
	repo.items = append(repo.items, model.CatalogItem{
		ID: "item-1", Key: "k1", PracticeKey: "practice-1",
		ItemType: model.ItemTypeService, Code: "RABIES-01",
	})
	repo.tx.upsertRes = repository.UpsertResult{Inserted: false, Modified: true}
	uc := newUseCase(repo, &mockDispatcher{})

	if _, err := uc.Upsert(context.Background(), upsertInput("k1")); err != nil {
		t.Fatalf("upserting onto own row must not conflict: %v", err)
	}
}
