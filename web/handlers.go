package web

import (
	"errors"
	"net/http"
	"strconv"

	"techstore/cart"
	"techstore/icons"
	"techstore/models"
	"techstore/viewstate"
	"techstore/web/pages/product"
	"techstore/web/pages/shared"
	"techstore/web/pages/storefront"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// handlers serve the HTML pages and HTMX fragments.
// They hold only read-only collaborators; view state arrives with each request.
type handlers struct {
	catalog models.Catalog
	icons   icons.Renderer
	cart    cart.Hook
}

// storefront handles GET /
func (h *handlers) storefront(c rweb.Context) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		return serverError(c, serr.Wrap(err, "failed to load categories"))
	}
	return c.WriteHTML(storefront.NewPage(categories, h.icons).Render())
}

// productPage handles GET /products/:slug?image=&qty=
func (h *handlers) productPage(c rweb.Context) error {
	p, err := h.catalog.Product(c.Request().Param("slug"))
	if err != nil {
		return productError(c, err)
	}

	state, err := viewstate.Restore(len(p.Images), c.Request().QueryParam("image"), c.Request().QueryParam("qty"))
	if err != nil {
		return serverError(c, serr.Wrap(err, "failed to build view state"))
	}

	return c.WriteHTML(product.NewPage(p, state, h.icons).Render())
}

// galleryPartial handles GET /partials/products/:slug/gallery?image=i
func (h *handlers) galleryPartial(c rweb.Context) error {
	p, err := h.catalog.Product(c.Request().Param("slug"))
	if err != nil {
		return productError(c, err)
	}

	state, err := viewstate.New(len(p.Images))
	if err != nil {
		return serverError(c, serr.Wrap(err, "failed to build view state"))
	}

	idx, err := strconv.Atoi(c.Request().QueryParam("image"))
	if err != nil {
		c.SetStatus(http.StatusBadRequest)
		return c.WriteHTML("invalid image index")
	}
	if state, err = state.SelectImage(idx); err != nil {
		c.SetStatus(http.StatusBadRequest)
		return c.WriteHTML(err.Error())
	}

	return c.WriteHTML(fragment(product.Gallery{Slug: p.Slug, Name: p.Name, Images: p.Images, State: state}))
}

// quantityPartial handles POST /partials/products/:slug/quantity
func (h *handlers) quantityPartial(c rweb.Context) error {
	p, err := h.catalog.Product(c.Request().Param("slug"))
	if err != nil {
		return productError(c, err)
	}

	state, err := viewstate.Restore(len(p.Images), "", c.Request().FormValue("qty"))
	if err != nil {
		return serverError(c, serr.Wrap(err, "failed to build view state"))
	}
	state = state.Apply(c.Request().FormValue("op"), c.Request().FormValue("value"))

	return c.WriteHTML(fragment(product.Stepper{Slug: p.Slug, Quantity: state.Quantity}))
}

// addToCart handles POST /partials/products/:slug/cart.
// Hook failures are reported in the cart status area rather than as an HTTP error
// so HTMX still swaps the message in.
func (h *handlers) addToCart(c rweb.Context) error {
	p, err := h.catalog.Product(c.Request().Param("slug"))
	if err != nil {
		return productError(c, err)
	}

	sessionID, _ := c.Get("session_id").(string)
	req := cart.Request{
		SessionID:   sessionID,
		ProductSlug: p.Slug,
		Quantity:    viewstate.ParseQuantity(c.Request().FormValue("qty")),
	}

	rcpt, err := h.cart.Add(req)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "cart hook rejected request"), "add to cart failed",
			"product", p.Slug, "quantity", strconv.Itoa(req.Quantity))
		return c.WriteHTML(fragment(product.CartError{Message: "Sorry, we could not add this item to your cart."}))
	}

	return c.WriteHTML(fragment(product.CartConfirmation{ProductName: p.Name, Quantity: rcpt.Quantity, ReceiptID: rcpt.ID}))
}

// health handles GET /health
func (h *handlers) health(c rweb.Context) error {
	status := "ok"
	if _, err := h.catalog.DefaultProduct(); err != nil {
		logger.LogErr(serr.Wrap(err, "catalog health check failed"))
		c.SetStatus(http.StatusServiceUnavailable)
		status = "degraded"
	}
	return c.WriteJSON(map[string]string{"status": status})
}

// productError answers 404 for unknown products and 500 for everything else
func productError(c rweb.Context, err error) error {
	if errors.Is(err, models.ErrProductNotFound) {
		c.SetStatus(http.StatusNotFound)
		return c.WriteHTML(shared.ErrorPage("Product not found", "The product you are looking for does not exist."))
	}
	return serverError(c, serr.Wrap(err, "failed to load product"))
}

func serverError(c rweb.Context, err error) error {
	logger.LogErr(err, "request failed", "path", c.Request().Path())
	c.SetStatus(http.StatusInternalServerError)
	return c.WriteHTML(shared.ErrorPage("Something went wrong", "Please try again in a moment."))
}

// fragment renders a single component without the document shell
func fragment(comp element.Component) string {
	b := element.NewBuilder()
	element.RenderComponents(b, comp)
	return b.String()
}
