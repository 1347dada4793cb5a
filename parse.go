package html2tei

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParsePage parses one HTML page into a node tree.
func ParsePage(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	return doc, nil
}

// parsePageBytes is ParsePage for in-memory pages.
func parsePageBytes(page []byte) (*html.Node, error) {
	return ParsePage(bytes.NewReader(page))
}

// findByID returns the first element in document order whose id attribute
// equals id, or nil.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// attr returns the value of the attribute key on n.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// firstClass returns the first token of the class attribute. The second
// result is false when the element has no class attribute at all; an empty
// attribute yields ("", true).
func firstClass(n *html.Node) (string, bool) {
	v, ok := attr(n, "class")
	if !ok {
		return "", false
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}

// textContent concatenates all text below n in document order.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// isHeading reports whether n is one of h1..h6.
func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// isElement reports whether n is an element with the given tag.
func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// stripNewlines removes line feeds, which the source pages use for source
// wrapping only.
func stripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}
