package shared

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/element"
)

type bodyText string

func (bt bodyText) Render(b *element.Builder) any {
	b.P().T(string(bt))
	return nil
}

func TestDocumentHasSingleDoctype(t *testing.T) {
	html := Page{Title: "Test"}.Document(bodyText("hello"))

	if n := strings.Count(html, "<!DOCTYPE"); n != 1 {
		t.Errorf("expected one doctype, got %d", n)
	}
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("document should start with the doctype")
	}
}

func TestDocumentShell(t *testing.T) {
	html := Page{Title: "Cables & More"}.Document(bodyText("hello"))

	for _, want := range []string{"<title>Cables &amp; More</title>", TailwindURL, HTMXURL, StylesheetURL, "<p>hello</p>", "Copyright"} {
		if !strings.Contains(html, want) {
			t.Errorf("document should contain %q", want)
		}
	}
}

func TestErrorPage(t *testing.T) {
	html := ErrorPage("Product not found", "Gone <now>")

	if strings.Count(html, "<!DOCTYPE") != 1 {
		t.Error("error page should have one doctype")
	}
	if !strings.Contains(html, "Gone &lt;now&gt;") {
		t.Error("message text should be escaped")
	}
}
