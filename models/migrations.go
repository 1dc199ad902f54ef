package models

import (
	"database/sql"

	"github.com/rohanthewiz/serr"
)

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// migrateDB creates the catalog tables. Ordered lists hang off products
// in child tables keyed by (product_slug, position) so display order survives.
func migrateDB(db execer) error {
	tables := []struct {
		name string
		ddl  string
	}{
		{"categories", `
		CREATE TABLE IF NOT EXISTS categories (
			position INTEGER PRIMARY KEY,
			name     VARCHAR NOT NULL,
			slug     VARCHAR UNIQUE NOT NULL
		)`},
		{"products", `
		CREATE TABLE IF NOT EXISTS products (
			slug        VARCHAR PRIMARY KEY,
			position    INTEGER NOT NULL,
			name        VARCHAR NOT NULL,
			price_cents BIGINT NOT NULL,
			rating      DOUBLE NOT NULL,
			reviews     INTEGER NOT NULL,
			stock       INTEGER NOT NULL,
			description VARCHAR
		)`},
		{"product_images", `
		CREATE TABLE IF NOT EXISTS product_images (
			product_slug VARCHAR NOT NULL,
			position     INTEGER NOT NULL,
			ref          VARCHAR NOT NULL,
			PRIMARY KEY (product_slug, position)
		)`},
		{"product_features", `
		CREATE TABLE IF NOT EXISTS product_features (
			product_slug VARCHAR NOT NULL,
			position     INTEGER NOT NULL,
			feature      VARCHAR NOT NULL,
			PRIMARY KEY (product_slug, position)
		)`},
		{"product_specs", `
		CREATE TABLE IF NOT EXISTS product_specs (
			product_slug VARCHAR NOT NULL,
			position     INTEGER NOT NULL,
			name         VARCHAR NOT NULL,
			value        VARCHAR NOT NULL,
			PRIMARY KEY (product_slug, position)
		)`},
	}

	for _, t := range tables {
		if _, err := db.Exec(t.ddl); err != nil {
			return serr.Wrap(err, "failed to create "+t.name+" table")
		}
	}
	return nil
}

// catalogTables lists tables in the order Seed drops them
var catalogTables = []string{"product_specs", "product_features", "product_images", "products", "categories"}
