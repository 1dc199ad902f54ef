package storefront

import "github.com/rohanthewiz/element"

// Hero is the banner under the navigation with the two call-to-action links
type Hero struct {
	Title     string
	Highlight string
	Tagline   string
}

// DefaultHero is the storefront's standing banner copy
var DefaultHero = Hero{
	Title:     "Premium Tech",
	Highlight: "Solutions",
	Tagline:   "Discover the latest in technology. From cutting-edge hardware to professional software solutions, find everything you need for your tech journey.",
}

func (h Hero) Render(b *element.Builder) any {
	b.DivClass("relative bg-white overflow-hidden", "id", "hero").R(
		b.DivClass("max-w-7xl mx-auto").R(
			b.DivClass("relative z-10 pb-8 bg-white sm:pb-16 md:pb-20 lg:max-w-2xl lg:w-full lg:pb-28 xl:pb-32").R(
				b.Main("class", "mt-10 mx-auto max-w-7xl px-4 sm:mt-12 sm:px-6 md:mt-16 lg:mt-20 lg:px-8 xl:mt-28").R(
					b.DivClass("sm:text-center lg:text-left").R(
						b.H1("class", "text-4xl tracking-tight font-extrabold text-gray-900 sm:text-5xl md:text-6xl").R(
							b.Span("class", "block xl:inline").T(h.Title),
							b.Span("class", "block text-blue-600 xl:inline").T(" "+h.Highlight),
						),
						b.P("class", "mt-3 text-base text-gray-500 sm:mt-5 sm:text-lg sm:max-w-xl sm:mx-auto md:mt-5 md:text-xl lg:mx-0").T(h.Tagline),
						b.DivClass("mt-5 sm:mt-8 sm:flex sm:justify-center lg:justify-start").R(
							b.DivClass("rounded-md shadow").R(
								b.A("href", "/products", "id", "cta-shop",
									"class", "w-full flex items-center justify-center px-8 py-3 border border-transparent text-base font-medium rounded-md text-white bg-blue-600 hover:bg-blue-700 md:py-4 md:text-lg md:px-10").T("Shop Now"),
							),
							b.DivClass("mt-3 sm:mt-0 sm:ml-3").R(
								b.A("href", "/deals", "id", "cta-deals",
									"class", "w-full flex items-center justify-center px-8 py-3 border border-transparent text-base font-medium rounded-md text-blue-700 bg-blue-100 hover:bg-blue-200 md:py-4 md:text-lg md:px-10").T("View Deals"),
							),
						),
					),
				),
			),
		),
	)
	return nil
}
