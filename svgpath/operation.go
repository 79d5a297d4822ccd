package svgpath

// Operation groups the different SVG path commands.
type Operation interface {
	letter() byte
	// nil for commands without arguments
	args() []float64
}

type MoveTo struct{ X, Y float64 }

type LineTo struct{ X, Y float64 }

// HLineTo is an horizontal line
type HLineTo struct{ X float64 }

// VLineTo is a vertical line
type VLineTo struct{ Y float64 }

// CubicTo is a cubic Bezier curve with control points 1 and 2.
type CubicTo struct{ X1, Y1, X2, Y2, X, Y float64 }

// SmoothCubicTo reflects the second control point of the previous cubic curve.
type SmoothCubicTo struct{ X2, Y2, X, Y float64 }

type QuadTo struct{ X1, Y1, X, Y float64 }

// SmoothQuadTo reflects the control point of the previous quadratic curve.
type SmoothQuadTo struct{ X, Y float64 }

type Close struct{}

func (MoveTo) letter() byte        { return 'm' }
func (LineTo) letter() byte        { return 'l' }
func (HLineTo) letter() byte       { return 'h' }
func (VLineTo) letter() byte       { return 'v' }
func (CubicTo) letter() byte       { return 'c' }
func (SmoothCubicTo) letter() byte { return 's' }
func (QuadTo) letter() byte        { return 'q' }
func (SmoothQuadTo) letter() byte  { return 't' }
func (Close) letter() byte         { return 'z' }

func (op MoveTo) args() []float64  { return []float64{op.X, op.Y} }
func (op LineTo) args() []float64  { return []float64{op.X, op.Y} }
func (op HLineTo) args() []float64 { return []float64{op.X} }
func (op VLineTo) args() []float64 { return []float64{op.Y} }
func (op CubicTo) args() []float64 {
	return []float64{op.X1, op.Y1, op.X2, op.Y2, op.X, op.Y}
}
func (op SmoothCubicTo) args() []float64 { return []float64{op.X2, op.Y2, op.X, op.Y} }
func (op QuadTo) args() []float64        { return []float64{op.X1, op.Y1, op.X, op.Y} }
func (op SmoothQuadTo) args() []float64  { return []float64{op.X, op.Y} }
func (Close) args() []float64            { return nil }

// Fragment returns the text of `op`, as it would be appended to a path.
func Fragment(op Operation, relative bool) string {
	if _, ok := op.(Close); ok {
		relative = false
	}
	return Format(op.letter(), op.args(), relative)
}
