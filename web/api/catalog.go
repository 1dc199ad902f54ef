package api

import (
	"errors"
	"net/http"

	"techstore/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// CatalogAPI exposes the read-only catalog as JSON
type CatalogAPI struct {
	catalog models.Catalog
}

func NewCatalogAPI(catalog models.Catalog) *CatalogAPI {
	return &CatalogAPI{catalog: catalog}
}

// ProductOutput is a product plus its display price
type ProductOutput struct {
	*models.Product
	Price string `json:"price"`
	URL   string `json:"url"`
}

// ListCategories handles GET /api/v1/categories
// Returns the category tiles in display order.
func (a *CatalogAPI) ListCategories(ctx rweb.Context) error {
	categories, err := a.catalog.Categories()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list categories"), "catalog error")
		return writeError(ctx, http.StatusInternalServerError, "catalog error")
	}
	if categories == nil {
		categories = []models.CategoryTile{}
	}
	return writeSuccess(ctx, http.StatusOK, categories)
}

// GetProduct handles GET /api/v1/products/:slug
func (a *CatalogAPI) GetProduct(ctx rweb.Context) error {
	slug := ctx.Request().Param("slug")

	product, err := a.catalog.Product(slug)
	if errors.Is(err, models.ErrProductNotFound) {
		return writeError(ctx, http.StatusNotFound, "product not found")
	}
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get product"), "catalog error")
		return writeError(ctx, http.StatusInternalServerError, "catalog error")
	}

	return writeSuccess(ctx, http.StatusOK, ProductOutput{
		Product: product,
		Price:   models.FormatPrice(product.PriceCents),
		URL:     "/products/" + product.Slug,
	})
}
