package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"
)

var errQueryCaptured = errors.New("query captured")

// recordingDB keeps the last statement and fails it so no rows are scanned.
type recordingDB struct {
	sql   string
	args  []any
	calls int
}

func (d *recordingDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.sql, d.args = sql, args
	d.calls++
	return nil, errQueryCaptured
}

func (d *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	d.sql, d.args = sql, args
	d.calls++
	return nil, errQueryCaptured
}

func (d *recordingDB) QueryRow(context.Context, string, ...any) pgx.Row {
	d.calls++
	return nil
}

func TestSearchByProperty_MatchesSizeAndEscapesTerms(t *testing.T) {
	db := &recordingDB{}
	repo := NewAgentRepository(db)

	_, err := repo.SearchByProperty(context.Background(), []string{"1100", " sqft ", "", "100%_off"})
	require.ErrorIs(t, err, errQueryCaptured)
	require.Contains(t, db.sql, "p.size::text")
	require.Contains(t, db.sql, "p.size_unit")
	require.Equal(t, []any{[]string{"%1100%", "%sqft%", `%100\%\_off%`}}, db.args)
}

func TestSearchByProperty_BlankTermsSkipQuery(t *testing.T) {
	db := &recordingDB{}
	repo := NewAgentRepository(db)

	got, err := repo.SearchByProperty(context.Background(), []string{" ", ""})
	require.NoError(t, err)
	require.Empty(t, got)
	require.Zero(t, db.calls)
}
