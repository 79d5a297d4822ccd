package svgpdf

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// BoundingBox accumulates the extent of the curves it receives.
// It implements svgraster.Drawer, so that a path can be measured
// with svgraster.Replay.
type BoundingBox struct {
	BBox fixed.Rectangle26_6

	current fixed.Point26_6
	set     bool
}

// Empty returns true if nothing has been added since the last Clear.
func (b *BoundingBox) Empty() bool { return !b.set }

func (b *BoundingBox) Clear() { *b = BoundingBox{} }

// union handles degenerated rectangles (such as horizontal lines),
// which fixed.Rectangle26_6.Union would ignore
func (b *BoundingBox) union(r fixed.Rectangle26_6) {
	if !b.set {
		b.BBox, b.set = r, true
		return
	}
	b.BBox.Min.X = min(b.BBox.Min.X, r.Min.X)
	b.BBox.Min.Y = min(b.BBox.Min.Y, r.Min.Y)
	b.BBox.Max.X = max(b.BBox.Max.X, r.Max.X)
	b.BBox.Max.Y = max(b.BBox.Max.Y, r.Max.Y)
}

func (b *BoundingBox) Start(a fixed.Point26_6) {
	b.union(fixed.Rectangle26_6{Min: a, Max: a})
	b.current = a
}

func (b *BoundingBox) Line(c fixed.Point26_6) {
	b.union(computeBoundingBox(line{b.current, c}))
	b.current = c
}

func (b *BoundingBox) QuadBezier(c, d fixed.Point26_6) {
	b.union(computeBoundingBox(quadBezier{b.current, c, d}))
	b.current = d
}

func (b *BoundingBox) CubeBezier(c, d, e fixed.Point26_6) {
	b.union(computeBoundingBox(cubicBezier{b.current, c, d, e}))
	b.current = e
}

func (b *BoundingBox) Stop(closeLoop bool) {}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(l[0])
	p1x, p1y := fixedTof(l[1])
	return (p1x-p0x)*t + p0x, (p1y-p0y)*t + p0y
}

type quadBezier [3]fixed.Point26_6

// x = (p0 + p2 - 2p1)t^2 + 2(p1 - p0)t + p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	// the derivative is 2(p2 - 2p1 + p0)t + 2(p1 - p0)
	return linearRoots(2*(p2x-2*p1x+p0x), 2*(p1x-p0x)),
		linearRoots(2*(p2y-2*p1y+p0y), 2*(p1y-p0y))
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
}

type cubicBezier [4]fixed.Point26_6

// x = (p3 - 3p2 + 3p1 - p0)t^3 + (3p2 - 6p1 + 3p0)t^2 + (3p1 - 3p0)t + p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// coefficients of the derivative of bezierSpline, as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])
	return quadraticRoots(cubicDerivative(p0x, p1x, p2x, p3x)),
		quadraticRoots(cubicDerivative(p0y, p1y, p2y, p3y))
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// roots of at + b
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

// roots of at^2 + bt + c
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		return linearRoots(b, c)
	}
	delta := b*b - 4*a*c
	switch {
	case delta < 0:
		return nil
	case delta == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(delta)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// computeBoundingBox evaluates the curve at its ends and
// at the zeros of its derivative lying in [0, 1]
func computeBoundingBox(curve bezier) fixed.Rectangle26_6 {
	resX, resY := curve.criticalPoints()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range append(append(resX, 0, 1), resY...) {
		if !(0 <= t && t <= 1) { // filter invalid value
			continue
		}
		x, y := curve.evaluateCurve(t)
		minX, minY = math.Min(x, minX), math.Min(y, minY)
		maxX, maxY = math.Max(x, maxX), math.Max(y, maxY)
	}
	return fixed.Rectangle26_6{Min: fToFixed(minX, minY), Max: fToFixed(maxX, maxY)}
}
