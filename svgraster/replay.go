package svgraster

import (
	"github.com/benoitkugler/svgbuilder/svgpath"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual path operations,
// with absolute coordinates only.
// It is implemented by the rasterx Filler and Dasher.
type Drawer interface {
	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

type point struct{ x, y float64 }

func (p point) fixed() fixed.Point26_6 { return toFixedP(p.x, p.y) }

// reflect returns the reflection of `c` around `p`
func (p point) reflect(c point) point { return point{2*p.x - c.x, 2*p.y - c.y} }

// pen tracks the state needed to resolve relative and smooth commands
type pen struct {
	d       Drawer
	current point
	start   point // of the current sub-path
	open    bool  // a sub-path has been started on the drawer

	lastCubic, lastQuad   point // last control points
	afterCubic, afterQuad bool
}

func (p *pen) abs(x, y float64, relative bool) point {
	if relative {
		return point{p.current.x + x, p.current.y + y}
	}
	return point{x, y}
}

// ensure implicitly starts a sub-path at the current point
func (p *pen) ensure() {
	if !p.open {
		p.d.Start(p.current.fixed())
		p.start = p.current
		p.open = true
	}
}

func (p *pen) apply(cmd svgpath.Command) {
	rel := cmd.Relative
	wasCubic, wasQuad := p.afterCubic, p.afterQuad
	p.afterCubic, p.afterQuad = false, false
	switch op := cmd.Op.(type) {
	case svgpath.MoveTo:
		if p.open {
			p.d.Stop(false)
		}
		p.current = p.abs(op.X, op.Y, rel)
		p.start = p.current
		p.d.Start(p.current.fixed())
		p.open = true
	case svgpath.LineTo:
		p.lineTo(p.abs(op.X, op.Y, rel))
	case svgpath.HLineTo:
		x := op.X
		if rel {
			x += p.current.x
		}
		p.lineTo(point{x, p.current.y})
	case svgpath.VLineTo:
		y := op.Y
		if rel {
			y += p.current.y
		}
		p.lineTo(point{p.current.x, y})
	case svgpath.CubicTo:
		p.cubicTo(p.abs(op.X1, op.Y1, rel), p.abs(op.X2, op.Y2, rel), p.abs(op.X, op.Y, rel))
	case svgpath.SmoothCubicTo:
		c1 := p.current
		if wasCubic {
			c1 = p.current.reflect(p.lastCubic)
		}
		p.cubicTo(c1, p.abs(op.X2, op.Y2, rel), p.abs(op.X, op.Y, rel))
	case svgpath.QuadTo:
		p.quadTo(p.abs(op.X1, op.Y1, rel), p.abs(op.X, op.Y, rel))
	case svgpath.SmoothQuadTo:
		c := p.current
		if wasQuad {
			c = p.current.reflect(p.lastQuad)
		}
		p.quadTo(c, p.abs(op.X, op.Y, rel))
	case svgpath.Close:
		if p.open {
			p.d.Stop(true)
			p.open = false
		}
		p.current = p.start
	}
}

func (p *pen) lineTo(b point) {
	p.ensure()
	p.d.Line(b.fixed())
	p.current = b
}

func (p *pen) cubicTo(c1, c2, end point) {
	p.ensure()
	p.d.CubeBezier(c1.fixed(), c2.fixed(), end.fixed())
	p.current, p.lastCubic, p.afterCubic = end, c2, true
}

func (p *pen) quadTo(c, end point) {
	p.ensure()
	p.d.QuadBezier(c.fixed(), end.fixed())
	p.current, p.lastQuad, p.afterQuad = end, c, true
}

// Replay sends the commands to `d`, resolving relative coordinates
// and smooth curves. Sub-paths not explicitly closed are stopped
// with Stop(false).
func Replay(cmds []svgpath.Command, d Drawer) {
	p := pen{d: d}
	for _, cmd := range cmds {
		p.apply(cmd)
	}
	if p.open {
		d.Stop(false)
	}
}
