// Package storage picks the SQL engine behind a DATABASE_URL.
package storage

import (
	"strings"
)

// Driver identifies the engine selected by a database URL.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverMemory   Driver = "memory"
)

// Parse returns the driver for url and the connection string that driver
// expects. postgres:// and postgresql:// URLs go to pgx unchanged; sqlite://
// and sqlite: prefixes are stripped to a file path; memory:// keeps
// everything in process; anything else is taken as a SQLite path.
func Parse(url string) (Driver, string) {
	u := strings.TrimSpace(url)
	lower := strings.ToLower(u)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, u
	case strings.HasPrefix(lower, "memory://"):
		return DriverMemory, ""
	case strings.HasPrefix(lower, "sqlite://"):
		return DriverSQLite, u[len("sqlite://"):]
	case strings.HasPrefix(lower, "sqlite:"):
		return DriverSQLite, u[len("sqlite:"):]
	default:
		return DriverSQLite, u
	}
}
