package product

import (
	"techstore/icons"
	"techstore/models"
	"techstore/web/pages/shared"

	"github.com/rohanthewiz/element"
)

type Description struct {
	Text string
}

func (d Description) Render(b *element.Builder) any {
	b.DivClass("mt-8", "id", "description").R(
		b.H3("class", "text-sm font-medium text-gray-900").T("Description"),
		b.P("class", "mt-4 text-base text-gray-500").T(shared.Esc(d.Text)),
	)
	return nil
}

// Features is the key-features list, one check-marked item per feature
type Features struct {
	Items []string
	Icons icons.Renderer
}

func (f Features) Render(b *element.Builder) any {
	b.DivClass("mt-8", "id", "features").R(
		b.H3("class", "text-sm font-medium text-gray-900").T("Key Features"),
		b.Ul("class", "mt-4 space-y-2").R(
			element.ForEach(f.Items, func(item string) {
				b.Li("class", "feature flex items-center text-gray-500").R(
					f.Icons.Icon(b, icons.Check, icons.Style{Tone: icons.Success, Class: "h-5 w-5 mr-2"}),
					b.T(shared.Esc(item)),
				)
			}),
		),
	)
	return nil
}

// SpecRowClass is the base class of a specification row
const SpecRowClass = "spec-row flex py-3"

// SpecSeparatorClass is added to every row after the first
const SpecSeparatorClass = "border-t border-gray-200"

// SpecTable lists name/value pairs in catalog order
type SpecTable struct {
	Specs []models.Spec
}

func (st SpecTable) Render(b *element.Builder) any {
	b.DivClass("mt-8", "id", "specifications").R(
		b.H3("class", "text-sm font-medium text-gray-900").T("Specifications"),
		b.DivClass("mt-4").R(
			b.Wrap(func() {
				for i, spec := range st.Specs {
					class := SpecRowClass
					if i > 0 {
						class += " " + SpecSeparatorClass
					}
					b.DivClass(class).R(
						b.Span("class", "w-1/3 text-sm font-medium text-gray-500").T(shared.Esc(spec.Name)),
						b.Span("class", "w-2/3 text-sm text-gray-900").T(shared.Esc(spec.Value)),
					)
				}
			}),
		),
	)
	return nil
}
