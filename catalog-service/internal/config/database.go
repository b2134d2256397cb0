package config

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ConnectDB opens and pings the catalog database.
//
// For sqlite the dsn is a file path; its parent directory is created and a
// busy timeout is added unless the dsn already carries query options.
// For mysql the dsn uses the go-sql-driver format, e.g.
// "root:@tcp(127.0.0.1:3306)/catalog-db".
func ConnectDB(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		if !strings.Contains(dsn, "?") {
			dsn += "?_pragma=busy_timeout(5000)"
		}
	case DriverMySQL:
		if _, err := mysql.ParseDSN(dsn); err != nil {
			return nil, fmt.Errorf("invalid mysql dsn: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
