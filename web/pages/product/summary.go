package product

import (
	"fmt"

	"techstore/icons"
	"techstore/models"

	"github.com/rohanthewiz/element"
)

// PriceRating shows the price, the star row and the review count
type PriceRating struct {
	Product *models.Product
	Icons   icons.Renderer
}

func (pr PriceRating) Render(b *element.Builder) any {
	filled := pr.Product.FilledStars()

	b.DivClass("mt-4").R(
		b.P("class", "text-3xl text-gray-900", "id", "price").T(models.FormatPrice(pr.Product.PriceCents)),
		b.DivClass("mt-4 flex items-center", "id", "rating").R(
			b.Wrap(func() {
				for i := 0; i < models.MaxRating; i++ {
					pr.Icons.Icon(b, icons.Star, starStyle(i < filled))
				}
			}),
			b.Span("class", "ml-2 text-sm text-gray-500").
				F("%s (%d reviews)", pr.Product.RatingText(), pr.Product.Reviews),
		),
	)
	return nil
}

func starStyle(filled bool) icons.Style {
	if filled {
		return icons.Style{Filled: true, Tone: icons.Rating, Class: "h-5 w-5"}
	}
	return icons.Style{Tone: icons.Faint, Class: "h-5 w-5"}
}

// StockStatus is a two-way indicator: in stock with the exact count, or out of stock
type StockStatus struct {
	Stock int
	Icons icons.Renderer
}

func (s StockStatus) Render(b *element.Builder) any {
	if s.Stock > 0 {
		b.Div("class", "stock-status stock-in mt-4 flex items-center", "id", "stock-status").R(
			s.Icons.Icon(b, icons.Check, icons.Style{Tone: icons.Success, Class: "h-5 w-5"}),
			b.Span("class", "ml-2 text-sm text-green-500").T(fmt.Sprintf("In stock (%d available)", s.Stock)),
		)
		return nil
	}

	b.Div("class", "stock-status stock-out mt-4 flex items-center", "id", "stock-status").R(
		s.Icons.Icon(b, icons.Alert, icons.Style{Tone: icons.Danger, Class: "h-5 w-5"}),
		b.Span("class", "ml-2 text-sm text-red-500").T("Out of stock"),
	)
	return nil
}
