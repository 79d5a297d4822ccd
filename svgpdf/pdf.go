// Implements a PDF backend for svgdoc documents,
// writing content streams with benoitkugler/pdf.
package svgpdf

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/benoitkugler/svgbuilder/svgdoc"
	"github.com/benoitkugler/svgbuilder/svgraster"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgraster.Drawer = (*pather)(nil)
	_ svgraster.Drawer = (*BoundingBox)(nil)
)

// PDF line cap styles
const (
	ButtCap uint8 = iota
	RoundCap
	SquareCap
)

// PDF line join styles
const (
	MiterJoin uint8 = iota
	RoundJoin
	BevelJoin
)

// Renderer writes the paths of a document
// as PDF content stream operations.
type Renderer struct {
	pdf                 *contentstream.Appearance
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
	extent              BoundingBox

	// Stroke parameters not expressed by a svgdoc.Path,
	// defaulting to the values of svgraster.DefaultStrokeStyle.
	LineCap, LineJoin uint8
	MiterLimit        float64

	ErrorMode svgraster.ErrorMode
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(cs *contentstream.Appearance) *Renderer {
	return &Renderer{
		pdf:                 cs,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
		LineCap:             ButtCap,
		LineJoin:            BevelJoin,
		MiterLimit:          svgraster.DefaultStrokeStyle.MiterLimit,
	}
}

// RenderDocumentToPDF draws `doc` on a page of size `width` x `height`
// (in PDF units) and writes it into the file `pdfName`.
// The SVG coordinates (y axis downward) are mapped to the page.
func RenderDocumentToPDF(doc *svgdoc.Document, width, height float64, errMode svgraster.ErrorMode, pdfName string) error {
	pdf := contentstream.NewAppearance(width, height)
	renderer := NewRenderer(&pdf)
	renderer.ErrorMode = errMode
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, height}},
	)
	if err := renderer.Draw(doc); err != nil {
		return err
	}
	pdf.Ops(contentstream.OpRestore{})

	var out model.Document
	page := new(model.PageObject)
	pdf.ApplyToPageObject(page, true)
	out.Catalog.Pages.Kids = append(out.Catalog.Pages.Kids, page)
	return out.WriteFile(pdfName, nil)
}

// Extent returns the bounding box of the paths drawn so far,
// in document coordinates, or false if nothing has been drawn.
func (r *Renderer) Extent() (fixed.Rectangle26_6, bool) {
	return r.extent.BBox, !r.extent.Empty()
}

func (r *Renderer) handleError(err error) error {
	switch r.ErrorMode {
	case svgraster.StrictErrorMode:
		return err
	case svgraster.WarnErrorMode:
		log.Println(err)
	}
	return nil
}

// Draw writes the drawables of `doc`, in order.
// Texts are not supported.
func (r *Renderer) Draw(doc *svgdoc.Document) error {
	for i, dr := range doc.Drawables() {
		var err error
		switch dr := dr.(type) {
		case *svgdoc.Path:
			err = r.DrawPath(dr)
		case *svgdoc.Text:
			err = r.handleError(errors.New("text elements are not written to PDF"))
		}
		if err != nil {
			return fmt.Errorf("svgpdf: drawable %d: %w", i, err)
		}
	}
	return nil
}

// DrawPath fills, then strokes `p`.
// Since the painting operators consume the current path, the path
// is written once for each of them.
func (r *Renderer) DrawPath(p *svgdoc.Path) error {
	if p.Raw() {
		return r.handleError(errors.New("path created from literal data can't be written"))
	}
	fill, err := svgraster.ParseColor(p.Fill())
	if err != nil {
		if err = r.handleError(err); err != nil {
			return err
		}
	}
	stroke, err := svgraster.ParseColor(p.Stroke())
	if err != nil {
		if err = r.handleError(err); err != nil {
			return err
		}
	}
	cmds := p.Commands()
	pa := pather{pdf: r.pdf, boundingBox: &r.extent}

	if fill != nil { // nil color disable filling
		r.setFill(fill)
		svgraster.Replay(cmds, &pa)
		r.pdf.Ops(contentstream.OpFill{})
	}

	if stroke != nil && p.StrokeWidth() > 0 { // nil color disable lining
		r.setStroke(stroke)
		r.pdf.Ops(
			contentstream.OpSetLineWidth{W: p.StrokeWidth()},
			contentstream.OpSetLineCap{Style: r.LineCap},
			contentstream.OpSetLineJoin{Style: r.LineJoin},
			contentstream.OpSetMiterLimit{Limit: r.MiterLimit},
		)
		svgraster.Replay(cmds, &pa)
		r.pdf.Ops(contentstream.OpStroke{})
	}
	return nil
}

// setFill selects the fill color, with its alpha
// as constant opacity
func (r *Renderer) setFill(c color.Color) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	r.pdf.SetColorFill(nc)
	opacity := float64(nc.A) / 255
	// cache the opacity states
	gs, ok := r.fillOpacityStates[opacity]
	if !ok {
		gs = &model.GraphicState{Ca: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		r.fillOpacityStates[opacity] = gs
	}
	name := r.pdf.AddExtGState(gs)
	r.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (r *Renderer) setStroke(c color.Color) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	r.pdf.SetColorStroke(nc)
	opacity := float64(nc.A) / 255
	gs, ok := r.strokeOpacityStates[opacity]
	if !ok {
		gs = &model.GraphicState{CA: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		r.strokeOpacityStates[opacity] = gs
	}
	name := r.pdf.AddExtGState(gs)
	r.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

// pather writes the path construction operators,
// and records the extent of the path
type pather struct {
	pdf         *contentstream.Appearance
	boundingBox *BoundingBox
	current     fixed.Point26_6
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (p *pather) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
	p.boundingBox.Start(a)
	p.current = a
}

func (p *pather) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
	p.boundingBox.Line(b)
	p.current = b
}

// PDF has no quadratic curves: the curve is elevated to a cubic one,
// with control points at 2/3 of the segments to the quadratic control point
func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	x0, y0 := fixedTof(p.current)
	bx, by := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.Ops(contentstream.OpCubicTo{
		X1: x0 + 2*(bx-x0)/3, Y1: y0 + 2*(by-y0)/3,
		X2: x + 2*(bx-x)/3, Y2: y + 2*(by-y)/3,
		X3: x, Y3: y,
	})
	p.boundingBox.QuadBezier(b, c)
	p.current = c
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
	p.boundingBox.CubeBezier(b, c, d)
	p.current = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}
