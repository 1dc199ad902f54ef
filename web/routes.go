package web

import (
	"techstore/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, h *handlers) {
	// Page routes - HTML responses
	s.Get("/", h.storefront)
	s.Get("/products/:slug", h.productPage)

	// HTMX fragments - each carries the view state it needs
	s.Get("/partials/products/:slug/gallery", h.galleryPartial)
	s.Post("/partials/products/:slug/quantity", h.quantityPartial)
	s.Post("/partials/products/:slug/cart", h.addToCart)

	s.Get("/health", h.health)

	// API v1 routes - JSON responses
	catalogAPI := api.NewCatalogAPI(h.catalog)
	s.Get("/api/v1/categories", catalogAPI.ListCategories)
	s.Get("/api/v1/products/:slug", catalogAPI.GetProduct)
}
