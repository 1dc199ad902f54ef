package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxRating is the top of the rating scale; the product page always draws this many stars.
const MaxRating = 5

// ErrProductNotFound is returned by catalog lookups for an unknown slug.
var ErrProductNotFound = errors.New("product not found")

// InvalidDataError reports catalog data that breaks a Product or CategoryTile invariant.
// Views rely on these invariants (the gallery always dereferences the selected image),
// so bad records are rejected when they enter a catalog rather than at render time.
type InvalidDataError struct {
	Record string // slug or name of the offending record
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("invalid catalog data: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid catalog data: %s: %s %s", e.Record, e.Field, e.Reason)
}

// Spec is one row of a product's specification table
type Spec struct {
	Name  string `json:"name" yaml:"name" msgpack:"name"`
	Value string `json:"value" yaml:"value" msgpack:"value"`
}

// Product is a read-only catalog record rendered by the product page.
// Order of Specifications, Images and Features is display order.
type Product struct {
	Slug           string   `json:"slug" yaml:"slug" msgpack:"slug"`
	Name           string   `json:"name" yaml:"name" msgpack:"name"`
	PriceCents     int64    `json:"price_cents" yaml:"price_cents" msgpack:"price_cents"`
	Rating         float64  `json:"rating" yaml:"rating" msgpack:"rating"`
	Reviews        int      `json:"reviews" yaml:"reviews" msgpack:"reviews"`
	Stock          int      `json:"stock" yaml:"stock" msgpack:"stock"`
	Description    string   `json:"description" yaml:"description" msgpack:"description"`
	Specifications []Spec   `json:"specifications" yaml:"specifications" msgpack:"specifications"`
	Images         []string `json:"images" yaml:"images" msgpack:"images"`
	Features       []string `json:"features" yaml:"features" msgpack:"features"`
}

// Validate checks the invariants every catalog implementation enforces
func (p *Product) Validate() error {
	invalid := func(field, reason string) error {
		return &InvalidDataError{Record: p.Slug, Field: field, Reason: reason}
	}

	switch {
	case strings.TrimSpace(p.Slug) == "":
		return invalid("slug", "is required")
	case strings.TrimSpace(p.Name) == "":
		return invalid("name", "is required")
	case p.PriceCents < 0:
		return invalid("price", "must not be negative")
	case math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > MaxRating:
		return invalid("rating", "must be between 0 and 5")
	case p.Reviews < 0:
		return invalid("reviews", "must not be negative")
	case p.Stock < 0:
		return invalid("stock", "must not be negative")
	case len(p.Images) == 0:
		return invalid("images", "must contain at least one entry")
	}

	for i, img := range p.Images {
		if strings.TrimSpace(img) == "" {
			return invalid("images", fmt.Sprintf("entry %d is empty", i))
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate catalog-owned slices
func (p *Product) Clone() *Product {
	out := *p
	out.Specifications = append([]Spec(nil), p.Specifications...)
	out.Images = append([]string(nil), p.Images...)
	out.Features = append([]string(nil), p.Features...)
	return &out
}

// InStock reports whether the product can be shown as available
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// FilledStars is the number of rating glyphs drawn filled: floor(rating), kept within 0..MaxRating
func (p *Product) FilledStars() int {
	n := int(math.Floor(p.Rating))
	if n < 0 {
		return 0
	}
	if n > MaxRating {
		return MaxRating
	}
	return n
}

// RatingText renders the rating the way it was entered (4.8 stays "4.8", 5 stays "5")
func (p *Product) RatingText() string {
	return strconv.FormatFloat(p.Rating, 'f', -1, 64)
}

// FormatPrice renders a USD amount held in cents
func FormatPrice(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100.0)
}

// CategoryTile is one entry of the storefront category grid
type CategoryTile struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewCategoryTile builds a tile whose slug is derived from its name
func NewCategoryTile(name string) CategoryTile {
	return CategoryTile{Name: name, Slug: Slugify(name)}
}

// Href is the tile's navigation target
func (c CategoryTile) Href() string {
	return "/categories/" + c.Slug
}

// Slugify lowercases s and joins its words with dashes
func Slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			dash = false
			sb.WriteRune(r)
		default:
			dash = true
		}
	}
	return sb.String()
}
