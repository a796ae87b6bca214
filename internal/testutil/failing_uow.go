package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/antigravity/internal/db"
)

// FailingExecUoW runs real transactions on DB but fails the first statement
// whose SQL contains Match, returning Err. Commit and rollback stay with
// db.SQLiteUnitOfWork, so a test sees exactly what production would leave
// behind.
type FailingExecUoW struct {
	DB    *sql.DB
	Match string
	Err   error

	failed atomic.Int32
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &matchingExec{DBTX: tx, uow: u})
	})
}

// Failed reports how many statements were failed; at most one.
func (u *FailingExecUoW) Failed() int {
	return int(u.failed.Load())
}

type matchingExec struct {
	db.DBTX
	uow *FailingExecUoW
}

func (m *matchingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, m.uow.Match) && m.uow.failed.CompareAndSwap(0, 1) {
		return nil, m.uow.Err
	}
	return m.DBTX.ExecContext(ctx, query, args...)
}
