package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// ErrContention is returned when every attempt lost the version race.
var ErrContention = errors.New("row changed concurrently")

// EntityWithVersion is a record carrying a row_version column. T is usually a
// pointer, so the zero value doubles as "not found".
type EntityWithVersion interface {
	comparable
	GetID() string
	GetRowVersion() int64
	SetRowVersion(int64)
}

type UpdateIfVersionFunc[T EntityWithVersion] func(ctx context.Context, entity T, expectedVersion int64) (pgconn.CommandTag, error)

type GetByIDFunc[T EntityWithVersion] func(ctx context.Context, id string) (T, error)

// WithRetry loads the row, applies mutate and writes it back only if
// row_version is unchanged, reloading up to attempts times.
func WithRetry[T EntityWithVersion](
	ctx context.Context,
	attempts int,
	id string,
	load GetByIDFunc[T],
	save UpdateIfVersionFunc[T],
	mutate func(T) error,
) error {
	var missing T
	for i := 0; i < attempts; i++ {
		entity, err := load(ctx, id)
		if err != nil {
			return err
		}
		if entity == missing {
			return pgx.ErrNoRows
		}

		seen := entity.GetRowVersion()
		if err := mutate(entity); err != nil {
			return err
		}

		tag, err := save(ctx, entity, seen)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 1 {
			entity.SetRowVersion(seen + 1)
			return nil
		}
	}
	return fmt.Errorf("update %s after %d attempts: %w", id, attempts, ErrContention)
}
