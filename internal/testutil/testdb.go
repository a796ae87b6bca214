package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/antigravity/internal/db"
)

// NewTestDB opens a migrated in-memory database that is closed with the test.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	return openAt(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated database file under a temp dir and returns
// its path, for tests that need WAL or a second connection.
func NewFileTestDB(t testing.TB) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "antigravity.db")
	return openAt(t, path), path
}

func openAt(t testing.TB, path string) *sql.DB {
	conn, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}

// ExecSQL runs raw fixture statements, usually rows the repositories would
// refuse to write.
func ExecSQL(t testing.TB, conn db.DBTX, stmts ...string) {
	t.Helper()
	for _, s := range stmts {
		_, err := conn.ExecContext(t.Context(), s)
		require.NoError(t, err, "fixture: %s", s)
	}
}

// CountRows counts the rows of table.
func CountRows(t testing.TB, conn db.DBTX, table string) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRowContext(t.Context(), `SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
