package product

import (
	"strconv"

	"techstore/viewstate"
	"techstore/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Gallery is the large preview plus the thumbnail strip.
// Only existing indices are offered as thumbnails, and each thumbnail asks the
// server for a fresh gallery fragment with itself selected.
type Gallery struct {
	Slug   string
	Name   string
	Images []string
	State  viewstate.Product
}

func (g Gallery) Render(b *element.Builder) any {
	b.Div("class", "flex flex-col", "id", "gallery").R(
		b.DivClass("mb-4 aspect-w-3 aspect-h-2").R(
			b.Img("id", "gallery-preview",
				"src", shared.Esc(g.Images[g.State.SelectedImage]),
				"alt", shared.Esc(g.Name),
				"class", "w-full h-full object-center object-cover rounded-lg"),
		),
		b.DivClass("grid grid-cols-3 gap-4", "id", "gallery-thumbs").R(
			b.Wrap(func() {
				for i, img := range g.Images {
					g.renderThumb(b, i, img)
				}
			}),
		),
	)
	return nil
}

func (g Gallery) renderThumb(b *element.Builder, i int, img string) {
	selected := g.State.IsSelected(i)

	b.Button("type", "button",
		"class", ThumbClass(i, selected),
		"aria-label", "Show image "+strconv.Itoa(i+1),
		"aria-pressed", strconv.FormatBool(selected),
		"hx-get", GalleryURL(g.Slug, i),
		"hx-target", "#gallery",
		"hx-swap", "outerHTML").R(
		b.Img("src", shared.Esc(img),
			"alt", "Product "+strconv.Itoa(i+1),
			"class", "w-full h-full object-center object-cover"),
	)
}

// ThumbClass is the class list of thumbnail i; the selected one carries thumb-active and the ring
func ThumbClass(i int, selected bool) string {
	class := "thumb thumb-" + strconv.Itoa(i) + " aspect-w-1 aspect-h-1 rounded-lg overflow-hidden"
	if selected {
		class += " thumb-active ring-2 ring-blue-500"
	}
	return class
}
