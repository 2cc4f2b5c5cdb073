package runstore

import (
	"fmt"
	"strings"
)

// Dialect hides the SQL differences between the supported drivers.
type Dialect interface {
	// DriverName is the name passed to sql.Open.
	DriverName() string
	// Placeholder returns the parameter marker for a 1-indexed position.
	Placeholder(position int) string
	// BlobType is the column type for binary payloads.
	BlobType() string
	// InitStatements run once after the connection is opened.
	InitStatements() []string
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// NewDialect returns the dialect for driver, SQLite when unknown.
func NewDialect(driver string) Dialect {
	switch strings.ToLower(driver) {
	case DriverPostgres, "postgresql":
		return postgresDialect{}
	default:
		return sqliteDialect{}
	}
}

type sqliteDialect struct{}

func (sqliteDialect) DriverName() string     { return DriverSQLite }
func (sqliteDialect) Placeholder(int) string { return "?" }
func (sqliteDialect) BlobType() string       { return "BLOB" }
func (sqliteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

type postgresDialect struct{}

func (postgresDialect) DriverName() string         { return DriverPostgres }
func (postgresDialect) Placeholder(pos int) string { return fmt.Sprintf("$%d", pos) }
func (postgresDialect) BlobType() string           { return "BYTEA" }
func (postgresDialect) InitStatements() []string   { return nil }

// rebind rewrites ? markers into the dialect's placeholders.
func rebind(d Dialect, query string) string {
	if _, ok := d.(sqliteDialect); ok {
		return query
	}
	var b strings.Builder
	pos := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			b.WriteString(d.Placeholder(pos))
			pos++
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
