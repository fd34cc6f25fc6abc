// Package store keeps the local price history: products, the stores that
// sell them and an append-only series of price points per product-store
// pair. A point is only appended when the price actually changed, so the
// series is a change log, not a sample log.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"

	"edivaldoleitao/tracksave/logger"
	cerr "edivaldoleitao/tracksave/pkg/errors"
)

// Store wraps the sqlite price history database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	identity_hash TEXT    NOT NULL UNIQUE,
	name          TEXT    NOT NULL,
	category      TEXT    NOT NULL,
	brand         TEXT,
	description   TEXT,
	image_url     TEXT,
	created_at    TEXT    NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS product_stores (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id  INTEGER NOT NULL REFERENCES products(id),
	store       TEXT    NOT NULL,
	url_product TEXT    NOT NULL,
	available   INTEGER NOT NULL DEFAULT 1,
	rating      REAL    NOT NULL DEFAULT 0,
	UNIQUE (product_id, url_product)
);

CREATE TABLE IF NOT EXISTS price_points (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	product_store_id INTEGER NOT NULL REFERENCES product_stores(id),
	value            TEXT    NOT NULL,
	collection_date  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_price_points_store
	ON price_points (product_store_id, collection_date DESC, id DESC);
`

// Open opens (and if needed creates) the database at path. ":memory:" gives
// an ephemeral store, used by tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, cerr.NewStore("store", fmt.Sprintf("open %s", path), err)
	}
	// a single writer keeps the upsert transaction simple
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, cerr.NewStore("store", "apply schema", err)
	}

	logger.ForStore().Debug().Str("path", path).Msg("Price history store opened")
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// identityHash derives the stable product identity from name and URL. The
// hash is computed once at the first durable write and never recomputed from
// mutated fields.
func identityHash(name, url string) string {
	sum := sha256.Sum256([]byte(name + url))
	return hex.EncodeToString(sum[:])
}
