package catalog

import (
	"context"

	"practice-catalog/internal/model"
)

type UseCase interface {
	// Create runs the full creation orchestration pipeline.
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)

	// Conditional writes: a no-op change is a success, not an error.
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Upsert(ctx context.Context, input UpsertItemInput) (UpsertItemOutput, error)
	Delete(ctx context.Context, practiceKey, key string) error

	// Unconditional writes.
	Restore(ctx context.Context, practiceKey, key string) error
	SetActive(ctx context.Context, practiceKey, key string, active bool) error

	// Reads.
	Detail(ctx context.Context, practiceKey, key string) (DetailItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
}

// Dispatcher publishes domain events. It is invoked inside the unit-of-work
// window, after the write executes and before the transaction commits.
type Dispatcher interface {
	Dispatch(ctx context.Context, events []model.DomainEvent) error
}

// UserResolver returns the acting user for audit stamping.
type UserResolver interface {
	Current(ctx context.Context) (model.User, error)
}
