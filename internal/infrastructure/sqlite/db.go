// Package sqlite implements domain.Store on a single SQLite database file
// using the pure-Go ncruces driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/recipebook/internal/log"
)

// schema creates the tables on first write. Re-running it is harmless.
const schema = `
CREATE TABLE IF NOT EXISTS recipes (
	position INTEGER PRIMARY KEY,
	id INTEGER NOT NULL,
	title TEXT NOT NULL,
	cooking_time INTEGER NOT NULL,
	difficulty_level TEXT NOT NULL,
	is_vegan INTEGER NOT NULL DEFAULT 0,
	calories INTEGER NOT NULL,
	creator TEXT NOT NULL,
	next_ingredient_id INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ingredients (
	recipe_position INTEGER NOT NULL REFERENCES recipes(position) ON DELETE CASCADE,
	id INTEGER NOT NULL,
	name TEXT NOT NULL,
	quantity TEXT NOT NULL,
	weight INTEGER NOT NULL,
	is_organic INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (recipe_position, id)
);
`

// dsn builds a file: URI for path. The path is escaped so '?', '#' and '%'
// in file names stay part of the name.
func dsn(path string, readOnly bool) string {
	u := url.URL{Scheme: "file", OmitHost: true, Path: filepath.ToSlash(path)}
	if readOnly {
		u.RawQuery = "mode=ro"
	}
	return u.String()
}

// openDB opens the database at path for writing, creating the parent
// directory and the schema if missing.
func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn(path, false))
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open database", err, "path", path)
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return db, nil
}

// openReadOnly opens an existing database at path without creating anything.
func openReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn(path, true))
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open database", err, "path", path)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
