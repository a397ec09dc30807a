// Package dom hosts an HTML page as a mutable node tree and provides the
// small subset of browser behavior the portfolio renderer relies on:
// lookup by id and attribute, text replacement, class toggling, typed
// element construction, and event dispatch with bubbling.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed page plus the event handlers registered on its nodes
type Document struct {
	root     *html.Node
	handlers map[*html.Node]map[EventType][]Handler
}

// Parse reads an HTML page into a Document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{
		root:     root,
		handlers: make(map[*html.Node]map[EventType][]Handler),
	}, nil
}

// GetElementByID returns the first element whose id attribute equals id
func (d *Document) GetElementByID(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if v, ok := Attr(n, "id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ElementsWithAttr returns every element carrying key, in document order
func (d *Document) ElementsWithAttr(key string) []*html.Node {
	var nodes []*html.Node
	walk(d.root, func(n *html.Node) bool {
		if _, ok := Attr(n, key); ok {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// Render serializes the document
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String serializes the document, returning "" on failure
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// walk visits elements depth-first until visit returns false
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
