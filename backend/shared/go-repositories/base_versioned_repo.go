package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
)

const maxVersionRetries = 3

// BaseVersionedRepo is embedded by repositories whose rows are updated
// through WithRetry.
type BaseVersionedRepo[T EntityWithVersion] struct {
	db         DB
	selectByID string
	scan       func(row pgx.Row) (T, error)
}

func NewBaseRepo[T EntityWithVersion](db DB, selectByID string, scan func(pgx.Row) (T, error)) *BaseVersionedRepo[T] {
	return &BaseVersionedRepo[T]{db: db, selectByID: selectByID, scan: scan}
}

func (b *BaseVersionedRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	return b.scan(b.db.QueryRow(ctx, b.selectByID, id))
}

func (b *BaseVersionedRepo[T]) UpdateWithRetry(ctx context.Context, id string, mutate func(T) error, save UpdateIfVersionFunc[T]) error {
	return WithRetry(ctx, maxVersionRetries, id, b.GetByID, save, mutate)
}
