package product

import (
	"strconv"

	"techstore/icons"
	"techstore/viewstate"
	"techstore/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Stepper is the quantity control. The hidden qty field carries the current
// quantity; buttons post op=dec|inc and the number input posts op=set on change.
// The server answers with a fresh Stepper.
type Stepper struct {
	Slug     string
	Quantity int
}

// QuantityInputTrigger posts a typed quantity when it changes or Enter is released
const QuantityInputTrigger = "change, keyup[key=='Enter']"

func (s Stepper) Render(b *element.Builder) any {
	qty := strconv.Itoa(s.Quantity)

	b.Form("id", "quantity-stepper", "class", "flex items-center border border-gray-300 rounded-md",
		"hx-post", QuantityURL(s.Slug), "hx-target", "this", "hx-swap", "outerHTML").R(
		b.Input("type", "hidden", "name", "qty", "value", qty),
		b.Button("type", "submit", "name", "op", "value", viewstate.OpDecrement,
			"class", "px-3 py-2 border-r border-gray-300 hover:bg-gray-50", "aria-label", "Decrease quantity").T("-"),
		b.Input("type", "number", "name", "value", "id", "quantity-input", "value", qty,
			"min", strconv.Itoa(viewstate.MinQuantity),
			"class", "w-16 text-center border-0 focus:ring-0",
			"aria-label", "Quantity",
			"hx-post", QuantityURL(s.Slug), "hx-trigger", QuantityInputTrigger,
			// Enter would otherwise submit the form through its first button (dec)
			"hx-on:keydown", "if (event.key === 'Enter') event.preventDefault()",
			"hx-target", "#quantity-stepper", "hx-swap", "outerHTML",
			"hx-vals", `{&quot;op&quot;:&quot;`+viewstate.OpSet+`&quot;}`),
		b.Button("type", "submit", "name", "op", "value", viewstate.OpIncrement,
			"class", "px-3 py-2 border-l border-gray-300 hover:bg-gray-50", "aria-label", "Increase quantity").T("+"),
	)
	return nil
}

// CartControls holds the stepper, the add-to-cart button and the wishlist button
type CartControls struct {
	Slug     string
	Quantity int
	InStock  bool
	Icons    icons.Renderer
}

func (cc CartControls) Render(b *element.Builder) any {
	addAttrs := []string{"type", "button", "id", "add-to-cart",
		"class", "flex-1 bg-blue-600 border border-transparent rounded-md py-3 px-8 flex items-center justify-center text-base font-medium text-white hover:bg-blue-700",
		"hx-post", CartURL(cc.Slug), "hx-include", "#quantity-stepper", "hx-target", "#cart-status"}
	if !cc.InStock {
		addAttrs = append(addAttrs, "disabled", "disabled")
	}

	b.DivClass("mt-8", "id", "cart-controls").R(
		b.DivClass("flex items-center space-x-4").R(
			element.RenderComponents(b, Stepper{Slug: cc.Slug, Quantity: cc.Quantity}),
			b.Button(addAttrs...).R(
				cc.Icons.Icon(b, icons.Cart, icons.Style{Class: "h-5 w-5 mr-2"}),
				b.T("Add to Cart"),
			),
			b.Button("type", "button", "id", "wishlist",
				"class", "p-3 border border-gray-300 rounded-md hover:bg-gray-50", "aria-label", "Add to wishlist").R(
				cc.Icons.Icon(b, icons.Heart, icons.Style{Tone: icons.Muted, Class: "h-5 w-5"}),
			),
		),
		b.Div("id", "cart-status", "class", "mt-3 text-sm", "aria-live", "polite").R(),
	)
	return nil
}

// CartConfirmation is swapped into #cart-status after a successful add
type CartConfirmation struct {
	ProductName string
	Quantity    int
	ReceiptID   string
}

func (c CartConfirmation) Render(b *element.Builder) any {
	b.P("id", "cart-confirmation", "class", "text-green-600", "data-receipt", c.ReceiptID).
		F("Added %d × %s to your cart.", c.Quantity, shared.Esc(c.ProductName))
	return nil
}

// CartError is swapped into #cart-status when the cart rejects a request
type CartError struct {
	Message string
}

func (c CartError) Render(b *element.Builder) any {
	b.P("id", "cart-error", "class", "text-red-600").T(shared.Esc(c.Message))
	return nil
}
