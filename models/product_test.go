package models_test

import (
	"errors"
	"math"
	"testing"

	"techstore/models"
)

func validProduct() models.Product {
	return models.Product{
		Slug:       "usb-c-dock",
		Name:       "USB-C Dock",
		PriceCents: 8999,
		Rating:     4.2,
		Reviews:    12,
		Stock:      3,
		Images:     []string{"/img/dock-1.png", "/img/dock-2.png"},
		Features:   []string{"Dual 4K output"},
		Specifications: []models.Spec{
			{Name: "Ports", Value: "7"},
		},
	}
}

func TestProductValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(p *models.Product)
		field  string
	}{
		{"valid", func(p *models.Product) {}, ""},
		{"missing slug", func(p *models.Product) { p.Slug = " " }, "slug"},
		{"missing name", func(p *models.Product) { p.Name = "" }, "name"},
		{"negative price", func(p *models.Product) { p.PriceCents = -1 }, "price"},
		{"rating above scale", func(p *models.Product) { p.Rating = 5.1 }, "rating"},
		{"negative rating", func(p *models.Product) { p.Rating = -0.5 }, "rating"},
		{"NaN rating", func(p *models.Product) { p.Rating = math.NaN() }, "rating"},
		{"negative reviews", func(p *models.Product) { p.Reviews = -3 }, "reviews"},
		{"negative stock", func(p *models.Product) { p.Stock = -1 }, "stock"},
		{"no images", func(p *models.Product) { p.Images = nil }, "images"},
		{"blank image", func(p *models.Product) { p.Images = []string{"/a.png", ""} }, "images"},
		{"zero stock is fine", func(p *models.Product) { p.Stock = 0 }, ""},
		{"rating of exactly 5", func(p *models.Product) { p.Rating = 5 }, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			err := p.Validate()

			if tc.field == "" {
				if err != nil {
					t.Fatalf("expected valid product, got %v", err)
				}
				return
			}

			var invalid *models.InvalidDataError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidDataError, got %v", err)
			}
			if invalid.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, invalid.Field)
			}
		})
	}
}

func TestFilledStars(t *testing.T) {
	testCases := []struct {
		rating float64
		want   int
	}{
		{4.8, 4},
		{5, 5},
		{0, 0},
		{0.99, 0},
		{3.0, 3},
	}

	for _, tc := range testCases {
		p := models.Product{Rating: tc.rating}
		if got := p.FilledStars(); got != tc.want {
			t.Errorf("FilledStars(%v) = %d; want %d", tc.rating, got, tc.want)
		}
	}
}

func TestRatingText(t *testing.T) {
	for rating, want := range map[float64]string{4.8: "4.8", 5: "5", 3.25: "3.25"} {
		p := models.Product{Rating: rating}
		if got := p.RatingText(); got != want {
			t.Errorf("RatingText(%v) = %q; want %q", rating, got, want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	testCases := map[int64]string{
		149999: "$1499.99",
		0:      "$0.00",
		5:      "$0.05",
		100:    "$1.00",
	}
	for cents, want := range testCases {
		if got := models.FormatPrice(cents); got != want {
			t.Errorf("FormatPrice(%d) = %q; want %q", cents, got, want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := validProduct()
	c := p.Clone()
	c.Images[0] = "/changed.png"
	c.Specifications[0].Value = "99"

	if p.Images[0] != "/img/dock-1.png" {
		t.Error("mutating clone images changed the original")
	}
	if p.Specifications[0].Value != "7" {
		t.Error("mutating clone specifications changed the original")
	}
}

func TestSlugify(t *testing.T) {
	testCases := map[string]string{
		"Hardware":             "hardware",
		"Home & Office":        "home-office",
		"  Networking Gear  ":  "networking-gear",
		"USB-C Accessories":    "usb-c-accessories",
		"!!!":                  "",
	}
	for in, want := range testCases {
		if got := models.Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestCategoryTileHref(t *testing.T) {
	tile := models.NewCategoryTile("Accessories")
	if tile.Href() != "/categories/accessories" {
		t.Errorf("unexpected href %q", tile.Href())
	}
}
