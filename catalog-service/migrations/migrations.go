// Package migrations bootstraps the catalog tables on an empty database.
// Statements are idempotent; existing tables are left untouched.
package migrations

import (
	"database/sql"
	"fmt"
)

var usersTable = map[string]string{
	"sqlite": `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL
		);
	`,
	"mysql": `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL
		);
	`,
}

var productsTable = map[string]string{
	"sqlite": `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			price REAL NOT NULL
		);
	`,
	"mysql": `
		CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DOUBLE NOT NULL
		);
	`,
}

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(driver string, db *sql.DB) error {
	return exec(driver, db, usersTable)
}

// AutoMigrateProducts creates the products table if it does not exist.
func AutoMigrateProducts(driver string, db *sql.DB) error {
	return exec(driver, db, productsTable)
}

func exec(driver string, db *sql.DB, statements map[string]string) error {
	query, ok := statements[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	_, err := db.Exec(query)
	return err
}
