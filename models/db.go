package models

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// DuckCatalog is a Catalog stored in DuckDB
type DuckCatalog struct {
	db *sql.DB
}

// OpenDuckCatalog opens (creating if needed) the catalog database at path.
// An empty path opens an in-memory database.
func OpenDuckCatalog(path string) (*DuckCatalog, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, serr.Wrap(err, "failed to create database directory")
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to open catalog database")
	}

	if err := migrateDB(db); err != nil {
		db.Close()
		return nil, serr.Wrap(err, "failed to migrate catalog database")
	}

	logger.Debug("Catalog database ready", "path", path)
	return &DuckCatalog{db: db}, nil
}

// Close releases the database handle
func (dc *DuckCatalog) Close() error {
	if dc.db == nil {
		return nil
	}
	return dc.db.Close()
}

// Seed replaces the stored catalog with the contents of src in one transaction
func (dc *DuckCatalog) Seed(src Catalog) error {
	data, err := Export(src)
	if err != nil {
		return err
	}

	// Validate up front so a bad source never half-replaces the store
	if _, err := NewMemCatalog(data); err != nil {
		return err
	}

	tx, err := dc.db.Begin()
	if err != nil {
		return serr.Wrap(err, "failed to begin seed transaction")
	}
	defer tx.Rollback()

	// DuckDB checks keys against rows deleted in the same transaction,
	// so reused positions would collide. Drop and recreate instead.
	for _, table := range catalogTables {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return serr.Wrap(err, "failed to drop "+table)
		}
	}
	if err := migrateDB(tx); err != nil {
		return serr.Wrap(err, "failed to recreate catalog tables")
	}

	for i, name := range data.Categories {
		tile := NewCategoryTile(name)
		if _, err := tx.Exec(`INSERT INTO categories (position, name, slug) VALUES (?, ?, ?)`,
			i, tile.Name, tile.Slug); err != nil {
			return serr.Wrap(err, "failed to insert category")
		}
	}

	for i, p := range data.Products {
		if err := insertProduct(tx, i, p); err != nil {
			return serr.Wrap(err, "failed to insert product "+p.Slug)
		}
	}

	if err := tx.Commit(); err != nil {
		return serr.Wrap(err, "failed to commit seed transaction")
	}

	logger.Info("Catalog seeded", "categories", len(data.Categories), "products", len(data.Products))
	return nil
}

func insertProduct(tx *sql.Tx, position int, p Product) error {
	_, err := tx.Exec(`INSERT INTO products
		(slug, position, name, price_cents, rating, reviews, stock, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, position, p.Name, p.PriceCents, p.Rating, p.Reviews, p.Stock, p.Description)
	if err != nil {
		return err
	}

	for i, ref := range p.Images {
		if _, err := tx.Exec(`INSERT INTO product_images (product_slug, position, ref) VALUES (?, ?, ?)`,
			p.Slug, i, ref); err != nil {
			return err
		}
	}
	for i, f := range p.Features {
		if _, err := tx.Exec(`INSERT INTO product_features (product_slug, position, feature) VALUES (?, ?, ?)`,
			p.Slug, i, f); err != nil {
			return err
		}
	}
	for i, s := range p.Specifications {
		if _, err := tx.Exec(`INSERT INTO product_specs (product_slug, position, name, value) VALUES (?, ?, ?, ?)`,
			p.Slug, i, s.Name, s.Value); err != nil {
			return err
		}
	}
	return nil
}

func (dc *DuckCatalog) Categories() ([]CategoryTile, error) {
	rows, err := dc.db.Query(`SELECT name, slug FROM categories ORDER BY position`)
	if err != nil {
		return nil, serr.Wrap(err, "failed to query categories")
	}
	defer rows.Close()

	var tiles []CategoryTile
	for rows.Next() {
		var t CategoryTile
		if err := rows.Scan(&t.Name, &t.Slug); err != nil {
			return nil, serr.Wrap(err, "failed to scan category")
		}
		tiles = append(tiles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.Wrap(err, "failed to iterate categories")
	}
	return tiles, nil
}

func (dc *DuckCatalog) Products() ([]Product, error) {
	slugs, err := dc.productSlugs()
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(slugs))
	for _, slug := range slugs {
		p, err := dc.Product(slug)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func (dc *DuckCatalog) Product(slug string) (*Product, error) {
	p := &Product{Slug: slug}
	var description sql.NullString

	err := dc.db.QueryRow(`SELECT name, price_cents, rating, reviews, stock, description
		FROM products WHERE slug = ?`, slug).Scan(
		&p.Name, &p.PriceCents, &p.Rating, &p.Reviews, &p.Stock, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to query product")
	}
	p.Description = description.String

	if p.Images, err = dc.stringList(`SELECT ref FROM product_images
		WHERE product_slug = ? ORDER BY position`, slug); err != nil {
		return nil, serr.Wrap(err, "failed to load product images")
	}
	if p.Features, err = dc.stringList(`SELECT feature FROM product_features
		WHERE product_slug = ? ORDER BY position`, slug); err != nil {
		return nil, serr.Wrap(err, "failed to load product features")
	}
	if p.Specifications, err = dc.specs(slug); err != nil {
		return nil, serr.Wrap(err, "failed to load product specifications")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// DefaultProduct is the product with the lowest position
func (dc *DuckCatalog) DefaultProduct() (*Product, error) {
	var slug string
	err := dc.db.QueryRow(`SELECT slug FROM products ORDER BY position LIMIT 1`).Scan(&slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to query default product")
	}
	return dc.Product(slug)
}

func (dc *DuckCatalog) productSlugs() ([]string, error) {
	slugs, err := dc.stringList(`SELECT slug FROM products ORDER BY position`)
	if err != nil {
		return nil, serr.Wrap(err, "failed to list products")
	}
	return slugs, nil
}

func (dc *DuckCatalog) stringList(query string, args ...any) ([]string, error) {
	rows, err := dc.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (dc *DuckCatalog) specs(slug string) ([]Spec, error) {
	rows, err := dc.db.Query(`SELECT name, value FROM product_specs
		WHERE product_slug = ? ORDER BY position`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Spec
	for rows.Next() {
		var s Spec
		if err := rows.Scan(&s.Name, &s.Value); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
