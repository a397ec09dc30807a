package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of an attribute
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present
func RemoveAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

// Data returns a data-* attribute, keyed without the prefix
func Data(n *html.Node, key string) (string, bool) {
	return Attr(n, "data-"+key)
}

// HasClass reports whether the class list contains class
func HasClass(n *html.Node, class string) bool {
	v, _ := Attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// ToggleClass adds class when on is true and removes it otherwise
func ToggleClass(n *html.Node, class string, on bool) {
	v, _ := Attr(n, "class")
	var kept []string
	for _, c := range strings.Fields(v) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if on {
		kept = append(kept, class)
	}
	if len(kept) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// ClearChildren detaches every child of n
func ClearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// SetText replaces the children of n with a single text node
func SetText(n *html.Node, text string) {
	ClearChildren(n)
	n.AppendChild(Text(text))
}

// TextContent concatenates all descendant text
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(TextContent(c))
	}
	return b.String()
}

// Children returns the element children of n
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// FindByClass returns descendants of n (n included) carrying class
func FindByClass(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	walk(n, func(e *html.Node) bool {
		if HasClass(e, class) {
			out = append(out, e)
		}
		return true
	})
	return out
}
