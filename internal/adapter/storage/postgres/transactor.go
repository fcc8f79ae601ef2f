package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out pgx transactions for the reconciler's multi-statement
// sequences, most importantly the per-user row lock taken during account
// creation. It implements ports.DBTransactor.
type Transactor struct {
	pool Pool
}

// NewTransactor wraps the shared connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction. Callers are expected to defer Rollback and
// commit explicitly before any remote I/O.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
