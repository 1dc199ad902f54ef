package product

import (
	"net/url"
	"strconv"

	"techstore/viewstate"
)

// PageURL is the product page with state carried in the query string
func PageURL(slug string, s viewstate.Product) string {
	q := url.Values{}
	q.Set("image", strconv.Itoa(s.SelectedImage))
	q.Set("qty", strconv.Itoa(s.Quantity))
	return "/products/" + url.PathEscape(slug) + "?" + q.Encode()
}

// GalleryURL returns the gallery fragment with image i selected
func GalleryURL(slug string, i int) string {
	return partialBase(slug) + "/gallery?image=" + strconv.Itoa(i)
}

// QuantityURL accepts stepper operations
func QuantityURL(slug string) string {
	return partialBase(slug) + "/quantity"
}

// CartURL accepts add-to-cart requests
func CartURL(slug string) string {
	return partialBase(slug) + "/cart"
}

func partialBase(slug string) string {
	return "/partials/products/" + url.PathEscape(slug)
}
