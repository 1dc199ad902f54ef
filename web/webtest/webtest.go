// Package webtest parses rendered pages so tests can assert on elements and
// attributes. element keeps attributes in a map, so their order in the output
// is not stable and raw substring checks across attributes cannot be trusted.
package webtest

import (
	"sort"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Doc is a parsed page or fragment
type Doc struct {
	root *html.Node
}

// Parse parses markup, failing the test on error. Fragments are wrapped
// in html/body by the parser, which does not affect lookups.
func Parse(t testing.TB, markup string) *Doc {
	t.Helper()
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return &Doc{root: root}
}

// All returns elements named tag whose attributes equal the given key/value pairs.
// An empty tag matches any element.
func (d *Doc) All(tag string, attrs ...string) []*html.Node {
	var found []*html.Node
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode || (tag != "" && n.Data != tag) {
			return
		}
		for i := 0; i+1 < len(attrs); i += 2 {
			if v, ok := Attr(n, attrs[i]); !ok || v != attrs[i+1] {
				return
			}
		}
		found = append(found, n)
	})
	return found
}

// One is All that requires exactly one match
func (d *Doc) One(t testing.TB, tag string, attrs ...string) *html.Node {
	t.Helper()
	found := d.All(tag, attrs...)
	if len(found) != 1 {
		t.Fatalf("expected one <%s> with %v, found %d", tag, attrs, len(found))
	}
	return found[0]
}

// ByID returns the element with the given id, or nil
func (d *Doc) ByID(id string) *html.Node {
	if found := d.All("", "id", id); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Attr returns the value of attribute key on n
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether class appears in n's class list
func HasClass(n *html.Node, class string) bool {
	v, _ := Attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Text is the concatenated text content of n
func Text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

// Canonical serializes n with attributes sorted by key, one element per line,
// so two renderings of the same tree compare equal.
func Canonical(n *html.Node) string {
	var sb strings.Builder
	writeCanonical(&sb, n, 0)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case html.ElementNode:
		attrs := make([]string, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, a.Key+"="+a.Val)
		}
		sort.Strings(attrs)
		sb.WriteString(indent + "<" + n.Data)
		for _, a := range attrs {
			sb.WriteString(" " + a)
		}
		sb.WriteString(">\n")
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(indent + text + "\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeCanonical(sb, c, depth+1)
	}
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
