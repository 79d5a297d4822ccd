// Implements a svgdoc.Renderer on top of
// an HTML tree, as parsed by golang.org/x/net/html.
// Mount points are found with CSS selectors.
package svgdom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/benoitkugler/svgbuilder/svgdoc"
	"github.com/ericchiang/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

var _ svgdoc.Renderer = (*Document)(nil) // assert interface conformance

var errForeignNode = errors.New("node not created by a svgdom.Document")

// Document is an HTML tree, used as rendering target.
type Document struct {
	root      *html.Node
	selectors map[string]*css.Selector // compiled selectors
}

// New returns an empty HTML document.
func New() *Document {
	doc, err := ParseString("<html><head></head><body></body></html>")
	if err != nil { // static input
		panic(err)
	}
	return doc
}

// Parse reads an HTML document from `r`. The encoding is
// detected from the content, defaulting to UTF-8.
func Parse(r io.Reader) (*Document, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, err
	}
	root, err := html.Parse(decoded)
	if err != nil {
		return nil, err
	}
	return &Document{root: root, selectors: make(map[string]*css.Selector)}, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

func (d *Document) compile(selector string) (*css.Selector, error) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, nil
	}
	sel, err := css.Parse(selector)
	if err != nil {
		return nil, err
	}
	d.selectors[selector] = sel
	return sel, nil
}

// QuerySelector returns the first element matching `selector`, in
// document order. An invalid selector is reported as an error.
func (d *Document) QuerySelector(selector string) (svgdoc.Node, error) {
	nodes, err := d.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// QuerySelectorAll returns the elements matching `selector`.
func (d *Document) QuerySelectorAll(selector string) ([]*html.Node, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	return sel.Select(d.root), nil
}

// CreateElement returns an element in the SVG namespace.
func (d *Document) CreateElement(tag string) svgdoc.Node {
	return &html.Node{
		Type:      html.ElementNode,
		DataAtom:  atom.Lookup([]byte(tag)),
		Data:      tag,
		Namespace: "svg",
	}
}

func asNode(n svgdoc.Node) *html.Node {
	hn, ok := n.(*html.Node)
	if !ok || hn == nil {
		panic(errForeignNode)
	}
	return hn
}

// SetAttribute replaces the attribute `name` of `n`, or adds it.
func (d *Document) SetAttribute(n svgdoc.Node, name, value string) {
	hn := asNode(n)
	for i, attr := range hn.Attr {
		if attr.Namespace == "" && attr.Key == name {
			hn.Attr[i].Val = value
			return
		}
	}
	hn.Attr = append(hn.Attr, html.Attribute{Key: name, Val: value})
}

// SetTextContent removes the children of `n` and adds a text node.
func (d *Document) SetTextContent(n svgdoc.Node, text string) {
	hn := asNode(n)
	for c := hn.FirstChild; c != nil; c = hn.FirstChild {
		hn.RemoveChild(c)
	}
	if text != "" {
		hn.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// AppendChild adds `child` as last child of `parent`.
// `child` is first detached from its current parent, if any.
func (d *Document) AppendChild(parent, child svgdoc.Node) {
	p, c := asNode(parent), asNode(child)
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	p.AppendChild(c)
}

// Render writes the HTML serialization of the document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the HTML serialization of the document.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "<invalid document: " + err.Error() + ">"
	}
	return buf.String()
}

// OuterHTML returns the serialization of `n` and its descendants.
func OuterHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	err := html.Render(&buf, n)
	return buf.String(), err
}
