// Package dbtest opens throwaway in-memory SQLite databases with the service
// schema applied, for tests in other packages.
package dbtest

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/tournament-hub/config"
	"github.com/Dosada05/tournament-hub/db"
)

// New returns a migrated database that lives until the test ends.
func New(tb testing.TB) *sql.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:test_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := db.Connect(config.DriverSQLite, dsn, 5*time.Second)
	if err != nil {
		tb.Fatalf("dbtest: connect: %v", err)
	}
	tb.Cleanup(func() { _ = conn.Close() })

	if err := db.MigrateUp(conn, config.DriverSQLite); err != nil {
		tb.Fatalf("dbtest: migrate: %v", err)
	}
	return conn
}
