package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/itinera/internal/db"
)

// NewTestDB opens a migrated in-memory database that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// FailingUoW is a unit of work whose FailOn-th write (counting from 1 within
// one transaction) returns Err instead of reaching the database. Reads are
// never intercepted. Writes counts the writes attempted by the last
// transaction.
type FailingUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	Writes int
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	w := &failingTx{DBTX: tx, owner: u}
	u.Writes = 0
	if err := fn(ctx, w); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	owner *FailingUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.owner.Writes++
	if f.owner.Writes == f.owner.FailOn {
		return nil, f.owner.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
