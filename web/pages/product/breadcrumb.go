package product

import (
	"techstore/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Breadcrumb is the Home / Products / {name} trail
type Breadcrumb struct {
	ProductName string
}

func (bc Breadcrumb) Render(b *element.Builder) any {
	b.Nav("class", "flex mb-8 text-sm text-gray-500", "id", "breadcrumb", "aria-label", "Breadcrumb").R(
		b.A("href", "/", "class", "hover:text-gray-900").T("Home"),
		b.Span("class", "mx-2").T("/"),
		b.A("href", "/products", "class", "hover:text-gray-900").T("Products"),
		b.Span("class", "mx-2").T("/"),
		b.Span("class", "text-gray-900", "aria-current", "page").T(shared.Esc(bc.ProductName)),
	)
	return nil
}
