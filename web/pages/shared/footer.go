package shared

import "github.com/rohanthewiz/element"

// Footer is the copyright strip at the bottom of every page
type Footer struct{}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "border-t border-gray-200 py-6").R(
		b.P("class", "text-center text-sm text-gray-500").T("Copyright &copy; 2026 TechStore"),
	)
	return nil
}
