// Implements a raster backend to preview SVG documents,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/benoitkugler/svgbuilder/svgdoc"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// ErrorMode sets how the rasterizer reacts
// to content it can't draw.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported content silently
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning and skips the content
	WarnErrorMode
	// StrictErrorMode returns an error
	StrictErrorMode
)

// StrokeStyle holds the stroking parameters not expressed by a svgdoc.Path.
type StrokeStyle struct {
	MiterLimit float64
	Join       rasterx.JoinMode
	LeadCap    rasterx.CapFunc
	TrailCap   rasterx.CapFunc
	Gap        rasterx.GapFunc
}

// DefaultStrokeStyle uses ButtCap line ends and Bevel line connect.
var DefaultStrokeStyle = StrokeStyle{
	MiterLimit: 4,
	Join:       rasterx.Bevel,
	LeadCap:    rasterx.ButtCap,
	TrailCap:   rasterx.ButtCap,
	Gap:        rasterx.FlatGap,
}

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	Style     StrokeStyle
	ErrorMode ErrorMode
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
		Style:  DefaultStrokeStyle,
	}
}

// RasterDocumentToImage uses a ScannerGV instance to render the
// document into a new image of size `width` x `height`.
func RasterDocumentToImage(doc *svgdoc.Document, width, height int, errMode ErrorMode) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	renderer.ErrorMode = errMode
	err := renderer.Draw(doc)
	return img, err
}

func (rd *Renderer) handleError(err error) error {
	switch rd.ErrorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		log.Println(err)
	}
	return nil
}

// Draw paints the drawables of `doc`, in order.
// Texts are not supported.
func (rd *Renderer) Draw(doc *svgdoc.Document) error {
	for i, dr := range doc.Drawables() {
		var err error
		switch dr := dr.(type) {
		case *svgdoc.Path:
			err = rd.DrawPath(dr)
		case *svgdoc.Text:
			err = rd.handleError(errors.New("text elements are not rasterized"))
		}
		if err != nil {
			return fmt.Errorf("svgraster: drawable %d: %w", i, err)
		}
	}
	return nil
}

// DrawPath fills, then strokes `p`.
func (rd *Renderer) DrawPath(p *svgdoc.Path) error {
	if p.Raw() {
		return rd.handleError(errors.New("path created from literal data can't be rasterized"))
	}
	fill, err := ParseColor(p.Fill())
	if err != nil {
		if err = rd.handleError(err); err != nil {
			return err
		}
	}
	stroke, err := ParseColor(p.Stroke())
	if err != nil {
		if err = rd.handleError(err); err != nil {
			return err
		}
	}
	cmds := p.Commands()

	if fill != nil { // nil color disable filling
		rd.filler.Clear()
		rd.filler.SetWinding(true)
		Replay(cmds, rd.filler)
		rd.filler.SetColor(rasterx.ApplyOpacity(fill, 1))
		rd.filler.Draw()
	}

	if stroke != nil && p.StrokeWidth() > 0 { // nil color disable lining
		rd.dasher.Clear()
		rd.dasher.SetStroke(
			fixed.Int26_6(p.StrokeWidth()*64), fixed.Int26_6(rd.Style.MiterLimit*64),
			rd.Style.LeadCap, rd.Style.TrailCap, rd.Style.Gap, rd.Style.Join, nil, 0,
		)
		Replay(cmds, rd.dasher)
		rd.dasher.SetColor(rasterx.ApplyOpacity(stroke, 1))
		rd.dasher.Draw()
	}
	return nil
}
