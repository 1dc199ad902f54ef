package shared

import "github.com/rohanthewiz/element"

// Message is a centered notice used for error pages
type Message struct {
	Title string
	Text  string
}

func (m Message) Render(b *element.Builder) any {
	b.DivClass("max-w-xl mx-auto px-4 py-24 text-center", "id", "message").R(
		b.H1("class", "text-3xl font-extrabold text-gray-900").T(Esc(m.Title)),
		b.P("class", "mt-4 text-gray-500").T(Esc(m.Text)),
		b.A("href", "/", "class", "mt-8 inline-block text-blue-600 hover:text-blue-700").T("Back to the store"),
	)
	return nil
}

// ErrorPage renders a full document holding a single Message
func ErrorPage(title, text string) string {
	return Page{Title: title}.Document(Message{Title: title, Text: text})
}
