// Package shared contains the document shell and components used by every page.
package shared

import "github.com/rohanthewiz/element"

// Script and stylesheet locations loaded by every page
const (
	TailwindURL   = "https://cdn.tailwindcss.com"
	HTMXURL       = "https://unpkg.com/htmx.org@1.9.12"
	StylesheetURL = "/static/css/storefront.css?v=1"
)

// Page is the HTML document wrapped around a page's body components.
// Embed it in page types to get Document rendering for free.
type Page struct {
	Title     string
	BodyClass string
}

// Document renders a full HTML document with comps as the body content
func (p Page) Document(comps ...element.Component) string {
	b := element.NewBuilder()

	// Html writes the doctype itself
	b.Html("lang", "en").R(
		p.renderHead(b),
		b.Body("class", p.bodyClass()).R(
			element.RenderComponents(b, comps...),
			element.RenderComponents(b, Footer{}),
		),
	)

	return b.String()
}

func (p Page) bodyClass() string {
	if p.BodyClass == "" {
		return "min-h-screen bg-white"
	}
	return p.BodyClass
}

func (p Page) renderHead(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(Esc(p.Title)),
		b.Link("rel", "stylesheet", "href", StylesheetURL),
		// Tailwind utility classes are compiled in the browser
		b.Script("src", TailwindURL).R(),
		// HTMX swaps gallery and stepper fragments in place
		b.Script("src", HTMXURL).R(),
	)
}
