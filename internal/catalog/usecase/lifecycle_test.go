package usecase_test

import (
	"context"
	"errors"
	"testing"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
)

func TestDeleteModified(t *testing.T) {
	repo := newMockRepo()
	repo.items = append(repo.items, existingServiceItem())
	repo.tx.deleteModified = true
	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	if err := uc.Delete(context.Background(), "practice-1", "k1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.tx.commits != 1 {
		t.Errorf("commits=%d", repo.tx.commits)
	}
	if len(d.dispatched) != 1 || d.dispatched[0].Type != model.EventItemDeleted {
		t.Fatalf("expected one %s event, got %+v", model.EventItemDeleted, d.dispatched)
	}
}

func TestDeleteAlreadyDeletedIsNoOp(t *testing.T) {
	repo := newMockRepo()
	deleted := existingServiceItem()
	deleted.Deleted = true
	repo.items = append(repo.items, deleted)
	repo.tx.deleteModified = false
	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	if err := uc.Delete(context.Background(), "practice-1", "k1"); err != nil {
		t.Fatalf("deleting a deleted item must be a no-op success: %v", err)
	}
	if repo.tx.commits != 0 || len(d.dispatched) != 0 {
		t.Errorf("no-op delete must not commit or dispatch: commits=%d events=%d", repo.tx.commits, len(d.dispatched))
	}
}

func TestDeleteNotFound(t *testing.T) {
	uc := newUseCase(newMockRepo(), &mockDispatcher{})

	err := uc.Delete(context.Background(), "practice-1", "missing")
	if !errors.Is(err, catalog.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRestoreDispatchesEvent(t *testing.T) {
	repo := newMockRepo()
	deleted := existingServiceItem()
	deleted.Deleted = true
	repo.items = append(repo.items, deleted)
	repo.tx.restoreModified = true
	d := &mockDispatcher{}
	uc := newUseCase(repo, d)

	if err := uc.Restore(context.Background(), "practice-1", "k1"); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if len(d.dispatched) != 1 || d.dispatched[0].Type != model.EventItemRestored {
		t.Fatalf("expected one %s event, got %+v", model.EventItemRestored, d.dispatched)
	}
	if repo.tx.commits != 1 {
		t.Errorf("commits=%d", repo.tx.commits)
	}
}

func TestSetActiveEvents(t *testing.T) {
	cases := []struct {
		name   string
		active bool
		event  model.EventType
	}{
		{"activate", true, model.EventItemActivated},
		{"deactivate", false, model.EventItemDeactivated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockRepo()
			repo.items = append(repo.items, existingServiceItem())
			repo.tx.activeModified = true
			d := &mockDispatcher{}
			uc := newUseCase(repo, d)

			if err := uc.SetActive(context.Background(), "practice-1", "k1", tc.active); err != nil {
				t.Fatalf("SetActive: %v", err)
			}
			if len(repo.tx.setActiveCalls) != 1 || repo.tx.setActiveCalls[0] != tc.active {
				t.Errorf("setActiveCalls=%v", repo.tx.setActiveCalls)
			}
			if len(d.dispatched) != 1 || d.dispatched[0].Type != tc.event {
				t.Fatalf("expected %s, got %+v", tc.event, d.dispatched)
			}
		})
	}
}

func TestDetail(t *testing.T) {
	repo := newMockRepo()
	repo.items = append(repo.items, existingServiceItem())
	uc := newUseCase(repo, &mockDispatcher{})

	out, err := uc.Detail(context.Background(), "practice-1", "k1")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Item.ID != "item-1" {
		t.Errorf("unexpected item: %+v", out.Item)
	}

	if _, err := uc.Detail(context.Background(), "practice-1", "missing"); !errors.Is(err, catalog.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo := newMockRepo()
	repo.items = append(repo.items, existingServiceItem())
	uc := newUseCase(repo, &mockDispatcher{})

	out, err := uc.List(context.Background(), catalog.ListItemsInput{
		PracticeKey: "practice-1", Limit: 20,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 1 || len(out.Items) != 1 || out.Limit != 20 {
		t.Errorf("unexpected page: %+v", out)
	}
}
