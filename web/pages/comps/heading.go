package comps

import "github.com/rohanthewiz/element"

// Heading is a section title; Large is used for top-level sections
type Heading struct {
	Title string
	Large bool
}

func (h Heading) Render(b *element.Builder) (x any) {
	if h.Large {
		b.H2("class", "text-2xl font-extrabold tracking-tight text-gray-900").T(h.Title)
		return
	}
	b.H2("class", "text-lg font-medium text-gray-900").T(h.Title)
	return
}
