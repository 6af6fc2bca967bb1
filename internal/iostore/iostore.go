// Package iostore implements SQL-backed persistence for assessments,
// organization score weights and report snapshots over SQLite, MySQL and
// PostgreSQL, plus a no-op backend for store-less runs.
package iostore

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	// Database drivers registered for database/sql.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/oakline/prism/internal/contract"
	"github.com/oakline/prism/schema"
)

// Table names for the report store.
const (
	assessmentsTable = "prism_assessments"
	responsesTable   = "prism_assessment_responses"
	weightsTable     = "prism_org_score_weights"
	reportsTable     = "prism_report_snapshots"
)

// openDB opens and pings a database connection for the given backend.
func openDB(backend schema.StoreBackend, connStr string) (*sql.DB, string, error) {
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite3"
		if connStr == "" {
			return nil, "", fmt.Errorf("connection string cannot be empty for SQLite backend")
		}
	case schema.MySQLBackend:
		driverName = "mysql"
	case schema.PostgreSQLBackend:
		driverName = "pgx"
	default:
		return nil, "", fmt.Errorf("unsupported store backend: %s", backend)
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s database: %w", backend, err)
	}

	if backend == schema.SQLiteBackend {
		// Single connection avoids "database is locked" errors.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("failed to connect to %s database: %w", backend, err)
	}

	return db, driverName, nil
}

// transientIf wraps connection-level failures as retryable so the
// orchestrator's fetch retry can distinguish them from terminal errors.
func transientIf(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return contract.Transient(err)
	}
	return err
}

// rebind converts ? placeholders to the $n form PostgreSQL expects. SQLite
// and MySQL take the query unchanged.
func rebind(backend schema.StoreBackend, query string) string {
	if backend != schema.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatTime converts a time value to the backend's storage representation.
// SQLite stores RFC3339Nano strings; MySQL and PostgreSQL take native
// datetimes.
func formatTime(t time.Time, backend schema.StoreBackend) any {
	if backend == schema.SQLiteBackend {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t.UTC()
}

// scanTime converts a scanned time column back to time.Time.
func scanTime(raw any, backend schema.StoreBackend) (time.Time, error) {
	if backend == schema.SQLiteBackend {
		s, ok := raw.(string)
		if !ok {
			if b, isBytes := raw.([]byte); isBytes {
				s = string(b)
				ok = true
			}
		}
		if !ok {
			return time.Time{}, fmt.Errorf("unexpected time column type %T", raw)
		}
		return time.Parse(time.RFC3339Nano, s)
	}
	t, ok := raw.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("unexpected time column type %T", raw)
	}
	return t, nil
}
