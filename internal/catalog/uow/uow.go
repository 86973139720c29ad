// Package uow coordinates one persistence write and its domain-event
// dispatch as a single atomic outcome. The transaction handle is explicit:
// the executor begins it, threads it through the mutation, and closes it
// with commit or rollback — nothing is propagated ambiently.
package uow

import (
	"context"

	"practice-catalog/internal/catalog"
	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/internal/model"
	"practice-catalog/pkg/log"
)

// Result is what a mutation reports back to the executor. Events are an
// explicit list, not a queue hidden on the entity.
type Result struct {
	Item     model.CatalogItem
	Modified bool // whether the write changed observable state
	Inserted bool // upsert only: insert vs conflict update
	Events   []model.DomainEvent
}

// Mutation executes the write inside the supplied transaction handle.
type Mutation func(ctx context.Context, tx repo.TxRepository) (Result, error)

// SideEffect runs inside the same transaction (upsert activation).
type SideEffect func(ctx context.Context, tx repo.TxRepository) error

// Executor is the transactional persistence executor.
type Executor struct {
	repo       repo.Repository
	dispatcher catalog.Dispatcher
	l          log.Logger
}

// New creates an Executor.
func New(r repo.Repository, d catalog.Dispatcher, l log.Logger) *Executor {
	return &Executor{repo: r, dispatcher: d, l: l}
}

// Run executes an unconditional mutation (add, activate/deactivate,
// restore): the write always dispatches its events and commits if dispatch
// succeeds. Any failure abandons the transaction and propagates.
func (e *Executor) Run(ctx context.Context, m Mutation) (Result, error) {
	tx, err := e.repo.Begin(ctx)
	if err != nil {
		return Result{}, err
	}

	res, err := m(ctx, tx)
	if err != nil {
		e.abandon(ctx, tx)
		return Result{}, err
	}

	if err := e.dispatch(ctx, tx, res.Events); err != nil {
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		e.l.Errorf(ctx, "uow.Run commit: %v", err)
		return Result{}, err
	}
	return res, nil
}

// RunConditional executes a conditional mutation (update, delete): when the
// write changed nothing the transaction is discarded with no dispatch and
// no commit, and the call succeeds as a no-op.
func (e *Executor) RunConditional(ctx context.Context, m Mutation) (Result, error) {
	tx, err := e.repo.Begin(ctx)
	if err != nil {
		return Result{}, err
	}

	res, err := m(ctx, tx)
	if err != nil {
		e.abandon(ctx, tx)
		return Result{}, err
	}
	if !res.Modified {
		e.abandon(ctx, tx)
		return res, nil
	}

	if err := e.dispatch(ctx, tx, res.Events); err != nil {
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		e.l.Errorf(ctx, "uow.RunConditional commit: %v", err)
		return Result{}, err
	}
	return res, nil
}

// RunUpsert behaves like RunConditional, except that when the write
// resolved to an update (rather than an insert) that changed state, the
// activation side effect runs inside the same transaction before dispatch.
func (e *Executor) RunUpsert(ctx context.Context, m Mutation, onUpdate SideEffect) (Result, error) {
	tx, err := e.repo.Begin(ctx)
	if err != nil {
		return Result{}, err
	}

	res, err := m(ctx, tx)
	if err != nil {
		e.abandon(ctx, tx)
		return Result{}, err
	}
	if !res.Modified {
		e.abandon(ctx, tx)
		return res, nil
	}

	if !res.Inserted && onUpdate != nil {
		if err := onUpdate(ctx, tx); err != nil {
			e.abandon(ctx, tx)
			return Result{}, err
		}
	}

	if err := e.dispatch(ctx, tx, res.Events); err != nil {
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		e.l.Errorf(ctx, "uow.RunUpsert commit: %v", err)
		return Result{}, err
	}
	return res, nil
}

// dispatch publishes pending events; a dispatch failure abandons the
// transaction so the preceding write is never observable.
func (e *Executor) dispatch(ctx context.Context, tx repo.TxRepository, events []model.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := e.dispatcher.Dispatch(ctx, events); err != nil {
		e.l.Errorf(ctx, "uow dispatch: %v", err)
		e.abandon(ctx, tx)
		return err
	}
	return nil
}

func (e *Executor) abandon(ctx context.Context, tx repo.TxRepository) {
	if err := tx.Rollback(); err != nil {
		e.l.Warnf(ctx, "uow rollback: %v", err)
	}
}
