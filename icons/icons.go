// Package icons renders the glyphs the storefront pages ask for by name.
// Pages only say which icon and in what state; the Renderer decides how it looks.
package icons

import (
	"fmt"

	"github.com/rohanthewiz/element"
)

// Name identifies a semantic icon
type Name string

const (
	Cart   Name = "shopping-cart"
	Search Name = "search"
	Star   Name = "star"
	Heart  Name = "heart"
	Check  Name = "check"
	Alert  Name = "alert-circle"
	User   Name = "user"
	Menu   Name = "menu"
)

// Tone is the colour role of an icon
type Tone string

const (
	Neutral Tone = "neutral" // inherits the surrounding text colour
	Muted   Tone = "muted"
	Faint   Tone = "faint"
	Rating  Tone = "rating"
	Success Tone = "success"
	Danger  Tone = "danger"
)

// Style is the visual state requested at a call site
type Style struct {
	Filled bool
	Tone   Tone
	Class  string // extra sizing/spacing classes, e.g. "h-5 w-5 mr-2"
}

// Renderer draws an icon into the builder
type Renderer interface {
	Icon(b *element.Builder, name Name, style Style) any
}

// SVG renders icons as inline SVG using the Lucide outline set
type SVG struct{}

var toneClasses = map[Tone]string{
	Neutral: "",
	Muted:   "text-gray-400",
	Faint:   "text-gray-300",
	Rating:  "text-yellow-400",
	Success: "text-green-500",
	Danger:  "text-red-500",
}

var svgBodies = map[Name]string{
	Cart:   `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/><path d="M2.05 2.05h2l2.66 12.42a2 2 0 0 0 2 1.58h9.78a2 2 0 0 0 1.95-1.57l1.65-7.43H5.12"/>`,
	Search: `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	Star:   `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"/>`,
	Heart:  `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	Check:  `<path d="M20 6 9 17l-5-5"/>`,
	Alert:  `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`,
	User:   `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
	Menu:   `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
}

// Icon implements Renderer. Unknown names render nothing.
func (SVG) Icon(b *element.Builder, name Name, style Style) any {
	body, ok := svgBodies[name]
	if !ok {
		return nil
	}

	state, fill := "empty", "none"
	if style.Filled {
		state, fill = "filled", "currentColor"
	}

	b.T(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" class="%s" data-icon="%s" data-state="%s" viewBox="0 0 24 24" fill="%s" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		ClassFor(name, style), name, state, fill, body))
	return nil
}

// ClassFor builds the class attribute shared by renderers
func ClassFor(name Name, style Style) string {
	class := "icon icon-" + string(name)
	if tc := toneClasses[style.Tone]; tc != "" {
		class += " " + tc
	}
	if style.Filled {
		class += " fill-current"
	}
	if style.Class != "" {
		class += " " + style.Class
	}
	return class
}

// Text renders icons as bare Unicode glyphs. Handy for plain-text previews and tests.
type Text struct{}

var textGlyphs = map[Name][2]string{ // [empty, filled]
	Cart:   {"🛒", "🛒"},
	Search: {"🔍", "🔍"},
	Star:   {"☆", "★"},
	Heart:  {"♡", "♥"},
	Check:  {"✓", "✓"},
	Alert:  {"⚠", "⚠"},
	User:   {"👤", "👤"},
	Menu:   {"☰", "☰"},
}

// Icon implements Renderer
func (Text) Icon(b *element.Builder, name Name, style Style) any {
	glyphs, ok := textGlyphs[name]
	if !ok {
		return nil
	}

	state, glyph := "empty", glyphs[0]
	if style.Filled {
		state, glyph = "filled", glyphs[1]
	}
	b.Span("class", ClassFor(name, style), "data-icon", string(name), "data-state", state).T(glyph)
	return nil
}
