// Package storefront renders the store's home page: navigation, hero banner and category grid.
package storefront

import (
	"techstore/icons"
	"techstore/models"
	"techstore/web/pages/shared"
)

// Brand is the store name shown in the navigation bar
const Brand = "TechStore"

// Page is the storefront home page. It has no state of its own.
type Page struct {
	shared.Page
	Categories []models.CategoryTile
	Icons      icons.Renderer
}

// NewPage builds the home page for the given categories
func NewPage(categories []models.CategoryTile, renderer icons.Renderer) Page {
	return Page{
		Page:       shared.Page{Title: Brand + " - Premium Tech Solutions", BodyClass: "min-h-screen bg-gray-50"},
		Categories: categories,
		Icons:      renderer,
	}
}

// Render generates the complete HTML for the home page
func (p Page) Render() string {
	return p.Document(
		NavBar{Brand: Brand, Links: DefaultNavLinks, Icons: p.Icons},
		DefaultHero,
		CategoryGrid{Categories: p.Categories},
	)
}
