package svgdoc

import (
	"encoding/xml"
	"io"

	"github.com/benoitkugler/svgbuilder/svgpath"
)

// Node is an element handle, owned by a Renderer.
type Node interface{}

// Renderer is the host document a Document is mounted into.
// It doesn't need any knowledge of paths or texts.
type Renderer interface {
	// QuerySelector returns the first node matching `selector`,
	// or a nil Node (not a typed nil) if there is none.
	QuerySelector(selector string) (Node, error)

	// CreateElement returns a new, detached element
	// in the SVG namespace.
	CreateElement(tag string) Node

	SetAttribute(n Node, name, value string)

	// SetTextContent replaces the content of `n` by `text`.
	SetTextContent(n Node, text string)

	// AppendChild adds `child` as last child of `parent`.
	AppendChild(parent, child Node)
}

// Document holds drawables to be mounted in the element
// selected by a CSS selector.
// Drawables are stored by reference: changes made after Add
// are visible when rendering.
type Document struct {
	selector  string
	drawables []Drawable
}

// NewDocument returns an empty document, targeting `selector`.
func NewDocument(selector string) *Document {
	return &Document{selector: selector}
}

func (d *Document) Selector() string { return d.selector }

// Add appends `dr` to the document. The insertion order is the
// painting order. Nil drawables are ignored.
func (d *Document) Add(dr Drawable) *Document {
	switch dr := dr.(type) {
	case nil:
		return d
	case *Path:
		if dr == nil {
			return d
		}
	case *Text:
		if dr == nil {
			return d
		}
	}
	d.drawables = append(d.drawables, dr)
	return d
}

// Drawables returns the drawables, in insertion order.
func (d *Document) Drawables() []Drawable {
	return append([]Drawable(nil), d.drawables...)
}

// Render materializes each drawable and appends it to the node matching
// the selector. A missing mount point is reported with a *LookupError,
// and the host document is left untouched.
func (d *Document) Render(r Renderer) error {
	sink, err := r.QuerySelector(d.selector)
	if err != nil {
		return &LookupError{Selector: d.selector, Err: err}
	}
	if sink == nil {
		return &LookupError{Selector: d.selector}
	}
	for _, dr := range d.drawables {
		el := Materialize(dr)
		node := r.CreateElement(el.Tag)
		for _, attr := range el.Attrs {
			r.SetAttribute(node, attr.Name, attr.Value)
		}
		if el.Tag == "text" {
			r.SetTextContent(node, el.Text)
		}
		r.AppendChild(sink, node)
	}
	return nil
}

// WriteSVG writes a standalone SVG image containing the drawables.
func (d *Document) WriteSVG(w io.Writer, width, height float64) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: Namespace},
			{Name: xml.Name{Local: "width"}, Value: svgpath.FormatNumber(width)},
			{Name: xml.Name{Local: "height"}, Value: svgpath.FormatNumber(height)},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, dr := range d.drawables {
		if err := enc.Encode(Materialize(dr)); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}
