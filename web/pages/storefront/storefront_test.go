package storefront

import (
	"strings"
	"testing"

	"techstore/icons"
	"techstore/models"

	"github.com/rohanthewiz/element"
)

func builtinTiles(t *testing.T) []models.CategoryTile {
	t.Helper()
	tiles, err := models.BuiltinCatalog().Categories()
	if err != nil {
		t.Fatalf("failed to load categories: %v", err)
	}
	return tiles
}

// TestCategoryGridOneTilePerCategory verifies tile count, order and targets
func TestCategoryGridOneTilePerCategory(t *testing.T) {
	b := element.NewBuilder()
	CategoryGrid{Categories: builtinTiles(t)}.Render(b)
	html := b.String()

	if n := strings.Count(html, `class="category-tile group relative"`); n != 4 {
		t.Fatalf("expected 4 tiles, got %d", n)
	}

	// Each tile carries exactly one overlay, which makes the whole tile its link target
	if n := strings.Count(html, "tile-overlay absolute inset-0"); n != 4 {
		t.Errorf("expected 4 tile overlays, got %d", n)
	}

	// Tiles appear in catalog order, each with its own target and caption
	last := -1
	for _, name := range []string{"Hardware", "Software", "Networking", "Accessories"} {
		href := `href="/categories/` + strings.ToLower(name) + `"`
		idx := strings.Index(html, href)
		if idx < 0 {
			t.Fatalf("missing link for %s", name)
		}
		if idx <= last {
			t.Errorf("%s rendered out of order", name)
		}
		last = idx

		if strings.Count(html, href) != 1 {
			t.Errorf("expected a single link target for %s", name)
		}
		if !strings.Contains(html, "Browse "+name) {
			t.Errorf("missing caption for %s", name)
		}
	}
}

func TestCategoryGridTracksCatalog(t *testing.T) {
	b := element.NewBuilder()
	CategoryGrid{Categories: []models.CategoryTile{models.NewCategoryTile("Smart Home")}}.Render(b)
	html := b.String()

	if strings.Count(html, "category-tile") != 1 {
		t.Error("expected a single tile")
	}
	if !strings.Contains(html, `href="/categories/smart-home"`) {
		t.Error("expected slugged link target")
	}
	if !strings.Contains(html, "Shop by Category") {
		t.Error("expected section heading")
	}
}

func TestTileEscapesName(t *testing.T) {
	b := element.NewBuilder()
	Tile{Category: models.NewCategoryTile("Cables <&> Adapters")}.Render(b)
	html := b.String()

	if strings.Contains(html, "<&>") {
		t.Error("category name should be escaped")
	}
	if !strings.Contains(html, "Cables &lt;&amp;&gt; Adapters") {
		t.Error("escaped category name missing")
	}
}

func TestNavBar(t *testing.T) {
	b := element.NewBuilder()
	NavBar{Brand: Brand, Links: DefaultNavLinks, Icons: icons.SVG{}}.Render(b)
	html := b.String()

	if !strings.Contains(html, "TechStore") {
		t.Error("navbar should show the brand")
	}
	for _, link := range DefaultNavLinks {
		if !strings.Contains(html, `href="`+link.Href+`"`) {
			t.Errorf("navbar should link to %s", link.Href)
		}
	}
	if strings.Count(html, "border-b-2 border-blue-500") != 1 {
		t.Error("exactly one nav link should be marked active")
	}
	if !strings.Contains(html, `placeholder="Search products..."`) {
		t.Error("navbar should contain the search box")
	}
	for _, icon := range []icons.Name{icons.Search, icons.User, icons.Cart, icons.Menu} {
		if !strings.Contains(html, `data-icon="`+string(icon)+`"`) {
			t.Errorf("navbar should render the %s icon", icon)
		}
	}
}

func TestHeroCallsToAction(t *testing.T) {
	b := element.NewBuilder()
	DefaultHero.Render(b)
	html := b.String()

	for _, want := range []string{"Premium Tech", "Solutions", "Shop Now", "View Deals", `id="cta-shop"`, `id="cta-deals"`} {
		if !strings.Contains(html, want) {
			t.Errorf("hero should contain %q", want)
		}
	}
}

func TestPageRender(t *testing.T) {
	html := NewPage(builtinTiles(t), icons.SVG{}).Render()

	if !strings.HasPrefix(html, "<!DOCTYPE html>") || strings.Count(html, "<!DOCTYPE") != 1 {
		t.Error("page should start with a single doctype")
	}
	for _, want := range []string{"<title>TechStore - Premium Tech Solutions</title>", "htmx.org", "storefront.css", `id="hero"`, `id="category-grid"`, "Copyright"} {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q", want)
		}
	}
}
