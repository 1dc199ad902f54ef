package models

import (
	"github.com/rohanthewiz/serr"
)

// Catalog is the read-only data source behind the storefront and product pages.
// Implementations validate every product they hand out.
type Catalog interface {
	Categories() ([]CategoryTile, error)
	Products() ([]Product, error)
	Product(slug string) (*Product, error)
	DefaultProduct() (*Product, error)
}

// CatalogData is the serialized form of a catalog (seed files and snapshots)
type CatalogData struct {
	Categories []string  `json:"categories" yaml:"categories" msgpack:"categories"`
	Products   []Product `json:"products" yaml:"products" msgpack:"products"`
}

// MemCatalog is an immutable in-memory catalog
type MemCatalog struct {
	categories []CategoryTile
	products   []Product
	bySlug     map[string]int
}

// NewMemCatalog validates data and builds a catalog from it.
// Category names must be non-empty and product slugs unique.
func NewMemCatalog(data CatalogData) (*MemCatalog, error) {
	mc := &MemCatalog{bySlug: make(map[string]int, len(data.Products))}

	for _, name := range data.Categories {
		tile := NewCategoryTile(name)
		if tile.Slug == "" {
			return nil, &InvalidDataError{Record: name, Field: "category", Reason: "name is required"}
		}
		mc.categories = append(mc.categories, tile)
	}

	for _, p := range data.Products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := mc.bySlug[p.Slug]; dup {
			return nil, &InvalidDataError{Record: p.Slug, Field: "slug", Reason: "is not unique"}
		}
		mc.bySlug[p.Slug] = len(mc.products)
		mc.products = append(mc.products, *p.Clone())
	}

	return mc, nil
}

func (mc *MemCatalog) Categories() ([]CategoryTile, error) {
	return append([]CategoryTile(nil), mc.categories...), nil
}

func (mc *MemCatalog) Products() ([]Product, error) {
	out := make([]Product, 0, len(mc.products))
	for i := range mc.products {
		out = append(out, *mc.products[i].Clone())
	}
	return out, nil
}

func (mc *MemCatalog) Product(slug string) (*Product, error) {
	idx, ok := mc.bySlug[slug]
	if !ok {
		return nil, ErrProductNotFound
	}
	return mc.products[idx].Clone(), nil
}

// DefaultProduct is the first product in catalog order
func (mc *MemCatalog) DefaultProduct() (*Product, error) {
	if len(mc.products) == 0 {
		return nil, ErrProductNotFound
	}
	return mc.products[0].Clone(), nil
}

// Export returns the catalog in its serialized form
func Export(c Catalog) (CatalogData, error) {
	var data CatalogData

	tiles, err := c.Categories()
	if err != nil {
		return data, serr.Wrap(err, "failed to read categories")
	}
	for _, t := range tiles {
		data.Categories = append(data.Categories, t.Name)
	}

	data.Products, err = c.Products()
	if err != nil {
		return data, serr.Wrap(err, "failed to read products")
	}
	return data, nil
}
