package svgdoc

import (
	"strings"

	"github.com/benoitkugler/svgbuilder/svgpath"
)

// FontValue is a font size or weight, given either
// as a Number or as a Keyword.
type FontValue interface {
	fontValue() string
}

// Number is a numeric font value, such as 12 or 700.
type Number float64

// Keyword is a textual font value, such as "1.2em" or "bold".
type Keyword string

func (n Number) fontValue() string  { return svgpath.FormatNumber(float64(n)) }
func (k Keyword) fontValue() string { return string(k) }

// Font groups the font properties of a Text.
type Font struct {
	Family []string // in order of preference, empty for the default font
	Color  string
	Size   string
	Weight string
}

// Text is a builder for SVG text nodes.
// Like Path, its setters return the receiver.
// Use NewText to create a Text with the default font properties.
type Text struct {
	body   string
	x, y   float64
	anchor string
	font   Font
}

// NewText returns a text at the origin, with default font properties.
func NewText(body string) *Text {
	return &Text{
		body:   body,
		anchor: DefaultTextAnchor,
		font: Font{
			Color:  DefaultTextColor,
			Size:   DefaultFontSize,
			Weight: DefaultFontWeight,
		},
	}
}

func (t *Text) SetBody(body string) *Text {
	t.body = body
	return t
}

// SetPosition sets the anchor point of the text.
func (t *Text) SetPosition(x, y float64) *Text {
	t.x, t.y = x, y
	return t
}

// SetFonts sets the font families. Calling it without
// arguments removes the "font-family" attribute.
func (t *Text) SetFonts(families ...string) *Text {
	t.font.Family = append([]string(nil), families...)
	return t
}

func (t *Text) SetColor(color string) *Text {
	t.font.Color = color
	return t
}

// SetSize sets the font size: Number(12) is stored as "12".
// A nil `size` restores DefaultFontSize.
func (t *Text) SetSize(size FontValue) *Text {
	if size == nil {
		t.font.Size = DefaultFontSize
		return t
	}
	t.font.Size = size.fontValue()
	return t
}

// SetWeight sets the font weight: Number(700) is stored as "700".
// A nil `weight` restores DefaultFontWeight.
func (t *Text) SetWeight(weight FontValue) *Text {
	if weight == nil {
		t.font.Weight = DefaultFontWeight
		return t
	}
	t.font.Weight = weight.fontValue()
	return t
}

// SetAnchor sets the "text-anchor" attribute (start, middle or end).
func (t *Text) SetAnchor(anchor string) *Text {
	t.anchor = anchor
	return t
}

func (t *Text) Body() string             { return t.body }
func (t *Text) Position() (x, y float64) { return t.x, t.y }
func (t *Text) Anchor() string           { return t.anchor }

// Font returns a copy of the font properties.
func (t *Text) Font() Font {
	f := t.font
	f.Family = append([]string(nil), f.Family...)
	return f
}

// ToXML returns a "text" element, with the body as content.
func (t *Text) ToXML() Element {
	attrs := make([]Attr, 0, 7)
	attrs = append(attrs,
		Attr{"x", svgpath.FormatNumber(t.x)},
		Attr{"y", svgpath.FormatNumber(t.y)},
	)
	if len(t.font.Family) != 0 {
		attrs = append(attrs, Attr{"font-family", strings.Join(t.font.Family, ",")})
	}
	attrs = append(attrs,
		Attr{"font-size", t.font.Size},
		Attr{"fill", t.font.Color},
		Attr{"font-weight", t.font.Weight},
		Attr{"text-anchor", t.anchor},
	)
	return Element{Tag: "text", Attrs: attrs, Text: t.body}
}
