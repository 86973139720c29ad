package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "practice-catalog/internal/catalog/repository"
	"practice-catalog/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the catalog domain.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Begin opens a read-committed transaction and returns the tx-scoped
// mutation surface.
func (r *implRepository) Begin(ctx context.Context) (repo.TxRepository, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Begin"), err)
		return nil, repo.ErrFailedToBegin
	}
	return &implTxRepository{tx: tx, l: r.l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}

type implTxRepository struct {
	tx   *sql.Tx
	l    log.Logger
	done bool
}

func (r *implTxRepository) Commit() error {
	if r.done {
		return nil
	}
	r.done = true
	if err := r.tx.Commit(); err != nil {
		return repo.ErrFailedToCommit
	}
	return nil
}

func (r *implTxRepository) Rollback() error {
	if r.done {
		return nil
	}
	r.done = true
	return r.tx.Rollback()
}

func (r *implTxRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.tx.%s", method)
}
