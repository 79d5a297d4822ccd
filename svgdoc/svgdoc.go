// Provides builders for SVG paths and texts, and
// mounts them into a host document.
// Builders only accumulate state: the markup is produced
// when a Document is rendered through a Renderer, such as
// the HTML tree of svgbuilder/svgdom.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Namespace is the SVG namespace URI.
const Namespace = "http://www.w3.org/2000/svg"

// Default presentation values. Colors are expected to be valid
// SVG color tokens and widths to be non negative; this is not checked.
var (
	DefaultFill        = "black"
	DefaultStroke      = "none"
	DefaultStrokeWidth = 1.0

	DefaultTextColor  = "black"
	DefaultFontSize   = "16px"
	DefaultFontWeight = "normal"
	DefaultTextAnchor = "start"
)

// ErrNoSink is returned (wrapped in a *LookupError) when no
// element of the host document matches the selector.
var ErrNoSink = errors.New("no element matches selector")

// LookupError is returned by Render when the mount point can't be found.
type LookupError struct {
	Selector string
	Err      error // renderer failure, nil when the selector simply matches nothing
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("svgdoc: selector %q: %s", e.Selector, e.Err)
	}
	return fmt.Sprintf("svgdoc: %s %q", ErrNoSink, e.Selector)
}

func (e *LookupError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNoSink
}

// Attr is a markup attribute.
type Attr struct {
	Name, Value string
}

// Element is the markup produced by a Drawable,
// independent of any host document.
type Element struct {
	Tag   string
	Attrs []Attr
	Text  string // text content, only used by "text" elements
}

// Attr returns the value of the attribute `name`, and
// whether it is set.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// MarshalXML implements xml.Marshaler, ignoring `start`.
// The element is written in the SVG namespace.
func (e Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Space: Namespace, Local: e.Tag}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Drawable is implemented by *Path and *Text only.
type Drawable interface {
	isDrawable()
}

func (*Path) isDrawable() {}
func (*Text) isDrawable() {}

// Materialize returns the element describing the current state of `d`.
// It may be called any number of times.
func Materialize(d Drawable) Element {
	switch d := d.(type) {
	case *Path:
		return d.ToXML()
	case *Text:
		return d.ToXML()
	default: // Drawable is sealed
		panic(fmt.Sprintf("svgdoc: invalid drawable %T", d))
	}
}
