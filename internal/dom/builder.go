package dom

import (
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attrs enumerates the attributes the builders know how to set. Empty
// fields are omitted.
type Attrs struct {
	ID           string
	Class        string
	Href         string
	Target       string
	Rel          string
	Role         string
	AriaLabel    string
	AriaSelected string
	TabIndex     string
	Style        string
	Data         map[string]string
}

func (a Attrs) list() []html.Attribute {
	pairs := []html.Attribute{
		{Key: "id", Val: a.ID},
		{Key: "class", Val: a.Class},
		{Key: "href", Val: a.Href},
		{Key: "target", Val: a.Target},
		{Key: "rel", Val: a.Rel},
		{Key: "role", Val: a.Role},
		{Key: "aria-label", Val: a.AriaLabel},
		{Key: "aria-selected", Val: a.AriaSelected},
		{Key: "tabindex", Val: a.TabIndex},
		{Key: "style", Val: a.Style},
	}

	var out []html.Attribute
	for _, p := range pairs {
		if p.Val != "" {
			out = append(out, p)
		}
	}

	keys := make([]string, 0, len(a.Data))
	for k := range a.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, html.Attribute{Key: "data-" + k, Val: a.Data[k]})
	}
	return out
}

// Element builds an element node. Nil children are skipped.
func Element(tag atom.Atom, attrs Attrs, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs.list(),
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Text builds a text node
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Div builds a div
func Div(attrs Attrs, children ...*html.Node) *html.Node {
	return Element(atom.Div, attrs, children...)
}

// P builds a paragraph
func P(attrs Attrs, children ...*html.Node) *html.Node {
	return Element(atom.P, attrs, children...)
}

// Span builds a span
func Span(attrs Attrs, children ...*html.Node) *html.Node {
	return Element(atom.Span, attrs, children...)
}

// A builds an anchor
func A(attrs Attrs, children ...*html.Node) *html.Node {
	return Element(atom.A, attrs, children...)
}
