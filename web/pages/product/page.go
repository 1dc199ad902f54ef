// Package product renders the product detail page and the fragments the page
// swaps in place: gallery, quantity stepper and cart status.
package product

import (
	"techstore/icons"
	"techstore/models"
	"techstore/viewstate"
	"techstore/web/pages/shared"
	"techstore/web/pages/storefront"

	"github.com/rohanthewiz/element"
)

// Page is the product detail page for one product and one view state
type Page struct {
	shared.Page
	Product *models.Product
	State   viewstate.Product
	Icons   icons.Renderer
}

// NewPage builds the detail page. The state must have been built for len(p.Images).
func NewPage(p *models.Product, state viewstate.Product, renderer icons.Renderer) Page {
	return Page{
		Page:    shared.Page{Title: p.Name + " - " + storefront.Brand, BodyClass: "min-h-screen bg-white"},
		Product: p,
		State:   state,
		Icons:   renderer,
	}
}

// Render generates the complete HTML for the product page
func (p Page) Render() string {
	return p.Document(
		storefront.NavBar{Brand: storefront.Brand, Links: storefront.NavLinksFor("/products"), Icons: p.Icons},
		Layout{Product: p.Product, State: p.State, Icons: p.Icons},
	)
}

// Layout is the page body: breadcrumb, then gallery beside the product details
type Layout struct {
	Product *models.Product
	State   viewstate.Product
	Icons   icons.Renderer
}

func (l Layout) Render(b *element.Builder) any {
	p := l.Product

	b.DivClass("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8", "id", "product", "data-slug", p.Slug).R(
		element.RenderComponents(b, Breadcrumb{ProductName: p.Name}),
		b.DivClass("lg:grid lg:grid-cols-2 lg:gap-x-8").R(
			element.RenderComponents(b, Gallery{Slug: p.Slug, Name: p.Name, Images: p.Images, State: l.State}),
			b.DivClass("mt-10 px-4 sm:px-0 sm:mt-16 lg:mt-0").R(
				b.H1("class", "text-3xl font-extrabold tracking-tight text-gray-900", "id", "product-name").T(shared.Esc(p.Name)),
				element.RenderComponents(b,
					PriceRating{Product: p, Icons: l.Icons},
					StockStatus{Stock: p.Stock, Icons: l.Icons},
					CartControls{Slug: p.Slug, Quantity: l.State.Quantity, InStock: p.InStock(), Icons: l.Icons},
					Description{Text: p.Description},
					Features{Items: p.Features, Icons: l.Icons},
					SpecTable{Specs: p.Specifications},
				),
			),
		),
	)
	return nil
}
