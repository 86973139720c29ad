package usecase_test

import (
	"context"
	"errors"
	"testing"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
)

func existingServiceItem() model.CatalogItem {
	return model.CatalogItem{
		ID: "item-1", Key: "k1", PracticeKey: "practice-1",
		ItemType: model.ItemTypeService, Code: "RABIES-01", Name: "Rabies Vaccination",
		Active: true,
	}
}

func TestUpdateModified(t *testing.T) {
	repo := newMockRepo()
	repo.items = append(repo.items, existingServiceItem())
	updated := existingServiceItem()
	updated.Name = "Rabies Vaccination (3yr)"
	repo.tx.updItem = updated
	repo.tx.updModified = true

	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	out, err := uc.Update(context.Background(), catalog.UpdateItemInput{
		PracticeKey: "practice-1", Key: "k1", Name: "Rabies Vaccination (3yr)",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !out.Modified || out.Item.Name != "Rabies Vaccination (3yr)" {
		t.Errorf("unexpected output: %+v", out)
	}
	if repo.tx.commits != 1 {
		t.Errorf("commits=%d", repo.tx.commits)
	}
	if len(d.dispatched) != 1 || d.dispatched[0].Type != model.EventItemUpdated {
		t.Fatalf("expected one %s event, got %+v", model.EventItemUpdated, d.dispatched)
	}
}

func TestUpdateNoOp(t *testing.T) {
	repo := newMockRepo()
	repo.items = append(repo.items, existingServiceItem())
	repo.tx.updModified = false

	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	out, err := uc.Update(context.Background(), catalog.UpdateItemInput{
		PracticeKey: "practice-1", Key: "k1", Name: "Rabies Vaccination",
	})
	if err != nil {
		t.Fatalf("no-op update must succeed: %v", err)
	}
	if out.Modified {
		t.Error("no-op update must report Modified=false")
	}
	if out.Item.ID != "item-1" {
		t.Errorf("no-op update must return the existing item: %+v", out.Item)
	}
	// No commit, no dispatch: the transaction is discarded.
	if repo.tx.commits != 0 || repo.tx.rollbacks != 1 {
		t.Errorf("commits=%d rollbacks=%d", repo.tx.commits, repo.tx.rollbacks)
	}
	if len(d.dispatched) != 0 {
		t.Errorf("no events expected, got %+v", d.dispatched)
	}
}

func TestUpdateNotFound(t *testing.T) {
	uc := newUseCase(newMockRepo(), &mockDispatcher{})

	_, err := uc.Update(context.Background(), catalog.UpdateItemInput{
		PracticeKey: "practice-1", Key: "missing",
	})
	if !errors.Is(err, catalog.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
