// Package store opens the on-device SQLite database and manages its schema.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"campuspocket/internal/common"
	"campuspocket/internal/dbx"

	_ "modernc.org/sqlite"
)

const (
	dropUsers = `DROP TABLE IF EXISTS users`

	createUsers = `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE,
  password TEXT,
  firstName TEXT,
  lastName TEXT,
  email TEXT,
  contactNumber TEXT,
  address TEXT,
  profilePicture TEXT
)`

	createMetadata = `
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
)`
)

// Open opens (creating if needed) the SQLite database at path and resets
// the record store. Every process start begins with an empty users table;
// the metadata table is kept so cached session state outlives restarts.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreInit, err)
	}

	// SQLite allows exactly one writer; a single connection serializes all
	// store operations the way the caller expects.
	db.SetMaxOpenConns(1)

	if err := Reset(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Reset drops and recreates the users table and ensures the metadata table
// exists. Calling it twice leaves the store in the same empty state.
func Reset(ctx context.Context, db *sql.DB) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, query := range []string{dropUsers, createUsers, createMetadata} {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("%w: %v", common.ErrorStoreInit, err)
			}
		}
		return nil
	})
}
