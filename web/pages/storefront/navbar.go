package storefront

import (
	"techstore/icons"

	"github.com/rohanthewiz/element"
)

// NavLink is one entry of the top navigation
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// DefaultNavLinks are the storefront's primary sections
var DefaultNavLinks = []NavLink{
	{Label: "Home", Href: "/", Active: true},
	{Label: "Products", Href: "/products"},
	{Label: "Categories", Href: "/categories"},
	{Label: "Deals", Href: "/deals"},
}

// NavLinksFor returns the primary sections with href marked active
func NavLinksFor(href string) []NavLink {
	links := make([]NavLink, len(DefaultNavLinks))
	for i, link := range DefaultNavLinks {
		link.Active = link.Href == href
		links[i] = link
	}
	return links
}

const (
	navLinkActive  = "text-gray-900 inline-flex items-center px-1 pt-1 border-b-2 border-blue-500 text-sm font-medium"
	navLinkInactive = "text-gray-500 hover:text-gray-900 inline-flex items-center px-1 pt-1 border-b-2 border-transparent hover:border-gray-300 text-sm font-medium"
)

// NavBar is the top bar: brand, section links, product search and account/cart buttons
type NavBar struct {
	Brand string
	Links []NavLink
	Icons icons.Renderer
}

func (n NavBar) Render(b *element.Builder) any {
	b.Nav("class", "bg-white shadow-sm").R(
		b.DivClass("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8").R(
			b.DivClass("flex justify-between h-16").R(
				// Brand and section links
				b.DivClass("flex items-center").R(
					b.DivClass("flex-shrink-0 flex items-center").R(
						b.A("href", "/", "class", "text-2xl font-bold text-blue-600").T(n.Brand),
					),
					b.DivClass("hidden sm:ml-6 sm:flex sm:space-x-8", "id", "nav-links").R(
						element.ForEach(n.Links, func(link NavLink) {
							b.A("href", link.Href, "class", linkClass(link.Active)).T(link.Label)
						}),
					),
				),

				// Search and account actions
				b.DivClass("flex items-center").R(
					b.DivClass("flex-1 flex items-center justify-center px-2 lg:ml-6 lg:justify-end").R(
						b.DivClass("max-w-lg w-full lg:max-w-xs").R(
							b.Form("action", "/search", "method", "get", "class", "relative", "role", "search").R(
								b.Input("type", "text", "name", "q", "id", "search-input",
									"class", "block w-full pl-10 pr-3 py-2 border border-gray-300 rounded-md leading-5 bg-white placeholder-gray-500 focus:outline-none focus:ring-1 focus:ring-blue-500 focus:border-blue-500 sm:text-sm",
									"placeholder", "Search products..."),
								b.DivClass("absolute inset-y-0 left-0 flex items-center pl-3 pointer-events-none").R(
									n.Icons.Icon(b, icons.Search, icons.Style{Tone: icons.Muted, Class: "h-5 w-5"}),
								),
							),
						),
					),
					b.DivClass("flex items-center space-x-4 ml-4").R(
						b.Button("type", "button", "class", "text-gray-400 hover:text-gray-500", "aria-label", "Account").R(
							n.Icons.Icon(b, icons.User, icons.Style{Class: "h-6 w-6"}),
						),
						b.Button("type", "button", "class", "text-gray-400 hover:text-gray-500", "aria-label", "Cart").R(
							n.Icons.Icon(b, icons.Cart, icons.Style{Class: "h-6 w-6"}),
						),
						b.Button("type", "button", "class", "sm:hidden text-gray-400 hover:text-gray-500", "aria-label", "Menu").R(
							n.Icons.Icon(b, icons.Menu, icons.Style{Class: "h-6 w-6"}),
						),
					),
				),
			),
		),
	)
	return nil
}

func linkClass(active bool) string {
	if active {
		return navLinkActive
	}
	return navLinkInactive
}
