package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"techstore/models"
	"techstore/web"
	"techstore/web/api"

	"github.com/google/go-cmp/cmp"
	"github.com/rohanthewiz/rweb"
)

// setupCatalogTestServer starts a server over the built-in catalog.
// Uses the rweb ReadyChan pattern for reliable server startup detection.
func setupCatalogTestServer(t *testing.T) string {
	t.Helper()

	readyChan := make(chan struct{}, 1)
	srv := web.NewServer(web.Options{
		Server: rweb.ServerOptions{
			Verbose:   true,
			ReadyChan: readyChan,
			Address:   "localhost:", // Dynamic port assignment
		},
		Catalog: models.BuiltinCatalog(),
	})

	go func() {
		_ = srv.Run()
	}()
	<-readyChan

	return fmt.Sprintf("http://localhost:%s", srv.GetListenPort())
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode
}

func TestCatalogAPI(t *testing.T) {
	baseURL := setupCatalogTestServer(t)

	t.Run("list categories", func(t *testing.T) {
		var result struct {
			Success bool                  `json:"success"`
			Data    []models.CategoryTile `json:"data"`
		}
		if status := getJSON(t, baseURL+"/api/v1/categories", &result); status != http.StatusOK {
			t.Errorf("expected status 200, got %d", status)
		}
		if !result.Success {
			t.Error("expected success to be true")
		}

		want := []models.CategoryTile{
			{Name: "Hardware", Slug: "hardware"},
			{Name: "Software", Slug: "software"},
			{Name: "Networking", Slug: "networking"},
			{Name: "Accessories", Slug: "accessories"},
		}
		if diff := cmp.Diff(want, result.Data); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get product", func(t *testing.T) {
		var result struct {
			Success bool `json:"success"`
			Data    struct {
				models.Product
				Price string `json:"price"`
				URL   string `json:"url"`
			} `json:"data"`
		}
		status := getJSON(t, baseURL+"/api/v1/products/"+models.DefaultProductSlug, &result)
		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}

		want, _ := models.BuiltinCatalog().Product(models.DefaultProductSlug)
		if diff := cmp.Diff(*want, result.Data.Product); diff != "" {
			t.Errorf("product mismatch (-want +got):\n%s", diff)
		}
		if result.Data.Price != "$1499.99" {
			t.Errorf("expected display price $1499.99, got %s", result.Data.Price)
		}
		if result.Data.URL != "/products/"+models.DefaultProductSlug {
			t.Errorf("unexpected url %s", result.Data.URL)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		var result api.APIResponse
		if status := getJSON(t, baseURL+"/api/v1/products/missing", &result); status != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", status)
		}
		if result.Success || result.Error != "product not found" {
			t.Errorf("unexpected response %+v", result)
		}
	})
}
