// Package components builds the dashboard's reusable visual units as
// golang.org/x/net/html node trees.
package components

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// El creates an element node with the given attributes and children.
// attrs is a flat key, value list.
func El(a atom.Atom, attrs []string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	Append(n, children...)
	return n
}

// A is shorthand for building an attribute list.
func A(kv ...string) []string { return kv }

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append adds children to parent, skipping nils.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Render serializes n as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString serializes n and returns the markup.
func RenderString(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Label turns a route path into a display name: "/" is Home, other routes
// are title-cased from their slug ("/cost-of-food" -> "Cost Of Food").
func Label(route string) string {
	slug := strings.Trim(route, "/")
	if slug == "" {
		return "Home"
	}
	slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	// Casers are stateful; one per call.
	return cases.Title(language.English).String(slug)
}
