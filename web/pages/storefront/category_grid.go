package storefront

import (
	"techstore/models"
	"techstore/web/pages/comps"
	"techstore/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// CategoryGrid renders one tile per category, in catalog order
type CategoryGrid struct {
	Categories []models.CategoryTile
}

func (g CategoryGrid) Render(b *element.Builder) any {
	b.DivClass("bg-gray-50 py-12", "id", "categories").R(
		b.DivClass("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8").R(
			element.RenderComponents(b, comps.Heading{Title: "Shop by Category", Large: true}),
			b.DivClass("mt-6 grid grid-cols-1 gap-y-10 gap-x-6 sm:grid-cols-2 lg:grid-cols-4 xl:gap-x-8", "id", "category-grid").R(
				element.ForEach(g.Categories, func(c models.CategoryTile) {
					element.RenderComponents(b, Tile{Category: c})
				}),
			),
		),
	)
	return nil
}

// Tile is a single category card. The card is `relative` and the link holds an
// absolutely positioned overlay span, so the whole card surface is the link target.
type Tile struct {
	Category models.CategoryTile
}

func (t Tile) Render(b *element.Builder) any {
	name := shared.Esc(t.Category.Name)

	b.Div("class", "category-tile group relative", "data-category", t.Category.Slug).R(
		b.DivClass("w-full min-h-80 bg-gray-200 aspect-w-1 aspect-h-1 rounded-md overflow-hidden group-hover:opacity-75").R(
			b.DivClass("w-full h-full flex items-center justify-center").R(
				b.Span("class", "text-lg font-medium text-gray-900").T(name),
			),
		),
		b.DivClass("mt-4 flex justify-between").R(
			b.Div().R(
				b.H3("class", "text-sm text-gray-700").R(
					b.A("href", t.Category.Href()).R(
						b.Span("aria-hidden", "true", "class", "tile-overlay absolute inset-0").R(),
						b.T(name),
					),
				),
				b.P("class", "mt-1 text-sm text-gray-500").T("Browse "+name),
			),
		),
	)
	return nil
}
