package repositories

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects placeholder style and RETURNING support for a driver.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDialect maps a config driver name to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	case "mysql", "mariadb":
		return DialectMySQL, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case DialectPostgres:
		return "pgx"
	case DialectMySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

// ConfigurePool sizes the connection pool for the dialect. sqlite allows one
// writer per file, so its pool is a single connection and concurrent
// statements queue in database/sql instead of failing with SQLITE_BUSY.
func (d Dialect) ConfigurePool(db *sql.DB) {
	if d == DialectSQLite {
		db.SetMaxOpenConns(1)
		return
	}
	db.SetMaxIdleConns(35)
}

func (d Dialect) supportsReturning() bool {
	return d != DialectMySQL
}

// rebind rewrites ? placeholders into $1..$n for postgres.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
