package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/itinera/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertCity(ctx context.Context, tx db.DBTX, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO cities (name, center_lat, center_lon, created_at, updated_at) VALUES (?, 0, 0, '', '')`, name)
	return err
}

func cityCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM cities`).Scan(&n))
	return n
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertCity(ctx, tx, "Goa"); err != nil {
			return err
		}
		return insertCity(ctx, tx, "Jaipur")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cityCount(t, database))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, uow := newUoW(t)
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		require.NoError(t, insertCity(ctx, tx, "Goa"))
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, cityCount(t, database))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	database, uow := newUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertCity(ctx, tx, "Goa")
			panic("boom")
		})
	})
	assert.Zero(t, cityCount(t, database))
}

func TestInTx(t *testing.T) {
	database, uow := newUoW(t)
	ctx := context.Background()

	n, err := db.InTx(ctx, uow, func(ctx context.Context, tx db.DBTX) (int, error) {
		if err := insertCity(ctx, tx, "Goa"); err != nil {
			return 0, err
		}
		var n int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM cities`).Scan(&n)
		return n, err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = db.InTx(ctx, uow, func(ctx context.Context, tx db.DBTX) (int, error) {
		return 7, insertCity(ctx, tx, "Goa")
	})
	require.Error(t, err, "duplicate primary key")
	assert.Zero(t, n, "a failed transaction yields the zero value")
	assert.Equal(t, 1, cityCount(t, database))
}
