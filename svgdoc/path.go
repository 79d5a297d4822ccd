package svgdoc

import (
	"github.com/benoitkugler/svgbuilder/svgpath"
)

// Path accumulates drawing commands and presentation attributes.
// Every method returns the receiver so that calls may be chained:
//
//	p := NewPath().MoveTo(10, 10).LineToRel(20, 0).LineToRel(0, 20).Close()
//
// Commands without an explicit mode use the default mode of the path,
// as it is at the time of the call.
// The zero value is an empty path in absolute mode, using the package defaults.
type Path struct {
	data *svgpath.Data

	fill, stroke string
	strokeWidth  float64
}

// NewPath returns an empty path, in absolute mode.
func NewPath() *Path {
	return NewPathData("", svgpath.Absolute)
}

// NewPathData returns a path starting with the literal path data `seed`,
// which is not checked, and using `mode` as default.
func NewPathData(seed string, mode svgpath.Mode) *Path {
	return &Path{
		data:        svgpath.NewData(seed, mode),
		fill:        DefaultFill,
		stroke:      DefaultStroke,
		strokeWidth: DefaultStrokeWidth,
	}
}

// init makes the zero Path usable.
func (p *Path) init() {
	if p.data == nil {
		p.data = new(svgpath.Data)
		p.fill, p.stroke, p.strokeWidth = DefaultFill, DefaultStroke, DefaultStrokeWidth
	}
}

func modeOf(mode []svgpath.Mode) svgpath.Mode {
	if len(mode) == 0 {
		return svgpath.Inherit
	}
	return mode[0]
}

func (p *Path) add(op svgpath.Operation, mode []svgpath.Mode) *Path {
	p.init()
	p.data.Append(op, modeOf(mode))
	return p
}

// SetDefaultMode changes the mode used by the following commands
// called without explicit mode.
func (p *Path) SetDefaultMode(mode svgpath.Mode) *Path {
	p.init()
	p.data.SetDefault(mode)
	return p
}

// DefaultMode returns the current default mode.
func (p *Path) DefaultMode() svgpath.Mode {
	p.init()
	return p.data.Default()
}

// MoveTo starts a new sub-path at (x, y). Only the first `mode` is used.
func (p *Path) MoveTo(x, y float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.MoveTo{X: x, Y: y}, mode)
}

func (p *Path) MoveToRel(x, y float64) *Path { return p.MoveTo(x, y, svgpath.Relative) }
func (p *Path) MoveToAbs(x, y float64) *Path { return p.MoveTo(x, y, svgpath.Absolute) }

// LineTo draws a straight line to (x, y).
func (p *Path) LineTo(x, y float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.LineTo{X: x, Y: y}, mode)
}

func (p *Path) LineToRel(x, y float64) *Path { return p.LineTo(x, y, svgpath.Relative) }
func (p *Path) LineToAbs(x, y float64) *Path { return p.LineTo(x, y, svgpath.Absolute) }

// HLineTo draws an horizontal line.
func (p *Path) HLineTo(x float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.HLineTo{X: x}, mode)
}

func (p *Path) HLineToRel(x float64) *Path { return p.HLineTo(x, svgpath.Relative) }
func (p *Path) HLineToAbs(x float64) *Path { return p.HLineTo(x, svgpath.Absolute) }

// VLineTo draws a vertical line.
func (p *Path) VLineTo(y float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.VLineTo{Y: y}, mode)
}

func (p *Path) VLineToRel(y float64) *Path { return p.VLineTo(y, svgpath.Relative) }
func (p *Path) VLineToAbs(y float64) *Path { return p.VLineTo(y, svgpath.Absolute) }

// CurveTo draws a cubic Bezier curve to (x, y), with control points (x1, y1) and (x2, y2).
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.CubicTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y}, mode)
}

func (p *Path) CurveToRel(x1, y1, x2, y2, x, y float64) *Path {
	return p.CurveTo(x1, y1, x2, y2, x, y, svgpath.Relative)
}

func (p *Path) CurveToAbs(x1, y1, x2, y2, x, y float64) *Path {
	return p.CurveTo(x1, y1, x2, y2, x, y, svgpath.Absolute)
}

// SmoothCurveTo draws a cubic Bezier curve whose first control point
// is the reflection of the previous one.
func (p *Path) SmoothCurveTo(x2, y2, x, y float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.SmoothCubicTo{X2: x2, Y2: y2, X: x, Y: y}, mode)
}

func (p *Path) SmoothCurveToRel(x2, y2, x, y float64) *Path {
	return p.SmoothCurveTo(x2, y2, x, y, svgpath.Relative)
}

func (p *Path) SmoothCurveToAbs(x2, y2, x, y float64) *Path {
	return p.SmoothCurveTo(x2, y2, x, y, svgpath.Absolute)
}

// QuadTo draws a quadratic Bezier curve to (x, y) with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x, y float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.QuadTo{X1: x1, Y1: y1, X: x, Y: y}, mode)
}

func (p *Path) QuadToRel(x1, y1, x, y float64) *Path { return p.QuadTo(x1, y1, x, y, svgpath.Relative) }
func (p *Path) QuadToAbs(x1, y1, x, y float64) *Path { return p.QuadTo(x1, y1, x, y, svgpath.Absolute) }

// SmoothQuadTo draws a quadratic Bezier curve to (x, y) whose control point
// is the reflection of the previous one.
func (p *Path) SmoothQuadTo(x, y float64, mode ...svgpath.Mode) *Path {
	return p.add(svgpath.SmoothQuadTo{X: x, Y: y}, mode)
}

func (p *Path) SmoothQuadToRel(x, y float64) *Path { return p.SmoothQuadTo(x, y, svgpath.Relative) }
func (p *Path) SmoothQuadToAbs(x, y float64) *Path { return p.SmoothQuadTo(x, y, svgpath.Absolute) }

// Close closes the current sub-path. It is always written "Z".
func (p *Path) Close() *Path {
	return p.add(svgpath.Close{}, nil)
}

// Z is an alias for Close.
func (p *Path) Z() *Path { return p.Close() }

// SetFill sets the fill color.
func (p *Path) SetFill(color string) *Path {
	p.init()
	p.fill = color
	return p
}

// SetStroke sets the stroke color and, if given, the stroke width.
// Without `width`, the current width is kept.
func (p *Path) SetStroke(color string, width ...float64) *Path {
	p.init()
	p.stroke = color
	if len(width) != 0 {
		p.strokeWidth = width[0]
	}
	return p
}

// SetStrokeWidth sets the stroke width.
func (p *Path) SetStrokeWidth(width float64) *Path {
	p.init()
	p.strokeWidth = width
	return p
}

func (p *Path) Fill() string {
	p.init()
	return p.fill
}

func (p *Path) Stroke() string {
	p.init()
	return p.stroke
}

func (p *Path) StrokeWidth() float64 {
	p.init()
	return p.strokeWidth
}

// Data returns the accumulated path data (the "d" attribute).
func (p *Path) Data() string {
	p.init()
	return p.data.String()
}

// Commands returns the commands added so far, see svgpath.Data.Commands.
func (p *Path) Commands() []svgpath.Command {
	p.init()
	return p.data.Commands()
}

// Raw returns true if the path was created with literal path data.
func (p *Path) Raw() bool {
	p.init()
	return p.data.Raw()
}

// ToXML returns a "path" element. The path data is not validated.
func (p *Path) ToXML() Element {
	p.init()
	return Element{
		Tag: "path",
		Attrs: []Attr{
			{"d", p.data.String()},
			{"fill", p.fill},
			{"stroke", p.stroke},
			{"stroke-width", svgpath.FormatNumber(p.strokeWidth)},
		},
	}
}
