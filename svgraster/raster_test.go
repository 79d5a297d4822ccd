package svgraster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/benoitkugler/svgbuilder/svgdoc"
	"github.com/benoitkugler/svgbuilder/svgpath"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"
)

// recorder is a Drawer logging its calls, in pixel units
type recorder []string

func pt(p fixed.Point26_6) string { return fmt.Sprintf("%g,%g", float64(p.X)/64, float64(p.Y)/64) }

func (r *recorder) Start(a fixed.Point26_6)         { *r = append(*r, "start "+pt(a)) }
func (r *recorder) Line(b fixed.Point26_6)          { *r = append(*r, "line "+pt(b)) }
func (r *recorder) QuadBezier(b, c fixed.Point26_6) { *r = append(*r, "quad "+pt(b)+" "+pt(c)) }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) {
	*r = append(*r, "cubic "+pt(b)+" "+pt(c)+" "+pt(d))
}
func (r *recorder) Stop(closeLoop bool) { *r = append(*r, fmt.Sprintf("stop %v", closeLoop)) }

func replay(p *svgdoc.Path) []string {
	var r recorder
	Replay(p.Commands(), &r)
	return r
}

func TestReplayRelative(t *testing.T) {
	p := svgdoc.NewPath().MoveTo(10, 10).LineToRel(5, 0).HLineToRel(5).VLineToAbs(20).Close().LineToRel(1, 1)
	want := []string{
		"start 10,10",
		"line 15,10",
		"line 20,10",
		"line 20,20",
		"stop true",
		"start 10,10", // implicit start after close
		"line 11,11",
		"stop false",
	}
	if diff := cmp.Diff(want, replay(p)); diff != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestReplaySmoothCurves(t *testing.T) {
	p := svgdoc.NewPath().MoveTo(0, 0).
		CurveTo(0, 10, 10, 10, 10, 0).
		SmoothCurveToRel(10, -10, 10, 0).
		QuadTo(25, 10, 30, 0).
		SmoothQuadTo(40, 0).
		SmoothQuadToRel(5, 0).      // reflects the previous T control point
		SmoothCurveTo(50, 5, 50, 0) // previous is not cubic: first control is the current point
	want := []string{
		"start 0,0",
		"cubic 0,10 10,10 10,0",
		"cubic 10,-10 20,-10 20,0",
		"quad 25,10 30,0",
		"quad 35,-10 40,0",
		"quad 45,10 45,0",
		"cubic 45,0 50,5 50,0",
		"stop false",
	}
	if diff := cmp.Diff(want, replay(p)); diff != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestReplayMoveStopsSubpath(t *testing.T) {
	p := svgdoc.NewPath().MoveTo(1, 1).LineTo(2, 2).MoveToRel(1, 0).LineTo(0, 0)
	want := []string{"start 1,1", "line 2,2", "stop false", "start 3,2", "line 0,0", "stop false"}
	if diff := cmp.Diff(want, replay(p)); diff != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", diff)
	}

	var r recorder
	Replay([]svgpath.Command{{Op: svgpath.LineTo{X: 4, Y: 4}}}, &r)
	if diff := cmp.Diff([]string{"start 0,0", "line 4,4", "stop false"}, []string(r)); diff != "" {
		t.Errorf("a path without move should start at the origin:\n%s", diff)
	}
}

func TestParseColor(t *testing.T) {
	for input, want := range map[string]color.Color{
		"none":             nil,
		"transparent":      nil,
		"#f00":             color.NRGBA{255, 0, 0, 255},
		"#00ff0080":        color.NRGBA{0, 255, 0, 128},
		"#123456":          color.NRGBA{0x12, 0x34, 0x56, 255},
		"rgb(0, 128, 255)": color.NRGBA{0, 128, 255, 255},
		"rgba(0,0,0,0.5)":  color.NRGBA{0, 0, 0, 128},
		"rgb(100%,0%,0%)":  color.NRGBA{255, 0, 0, 255},
		" Black ":          color.RGBA{0, 0, 0, 255},
		"steelblue":        color.RGBA{0x46, 0x82, 0xb4, 0xff},
	} {
		got, err := ParseColor(input)
		if err != nil {
			t.Errorf("%q: %s", input, err)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %v, got %v", input, want, got)
		}
	}

	for _, input := range []string{"#12", "#ggg", "rgb(1,2)", "rgb(1,2,3", "currentColor", ""} {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("%q: expected an error", input)
		}
	}
}

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	return b.Bytes(), err
}

func TestRasterSquare(t *testing.T) {
	square := svgdoc.NewPath().MoveTo(2, 2).HLineTo(18).VLineTo(18).HLineTo(2).Close().SetFill("red")
	doc := svgdoc.NewDocument("svg").Add(square)
	img, err := RasterDocumentToImage(doc, 20, 20, StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(10, 10); c.R < 250 || c.G > 5 || c.B > 5 || c.A < 250 {
		t.Errorf("expected red inside the square, got %v", c)
	}
	if c := img.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("expected transparent outside the square, got %v", c)
	}
	if _, err := toPngBytes(img); err != nil {
		t.Fatal(err)
	}
}

func TestRasterStroke(t *testing.T) {
	line := svgdoc.NewPath().MoveTo(0, 10).LineToRel(20, 0).SetFill("none").SetStroke("blue", 4)
	doc := svgdoc.NewDocument("svg").Add(line)
	img, err := RasterDocumentToImage(doc, 20, 20, StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(10, 10); c.B < 250 || c.A < 250 {
		t.Errorf("expected blue on the line, got %v", c)
	}
	if c := img.RGBAAt(10, 2); c.A != 0 {
		t.Errorf("expected transparent away from the line, got %v", c)
	}
}

func TestRasterErrorModes(t *testing.T) {
	doc := svgdoc.NewDocument("svg").
		Add(svgdoc.NewText("not drawn")).
		Add(svgdoc.NewPathData("M 0,0 L 5,5", svgpath.Absolute)).
		Add(svgdoc.NewPath().MoveTo(0, 0).SetFill("currentColor"))

	if _, err := RasterDocumentToImage(doc, 10, 10, IgnoreErrorMode); err != nil {
		t.Errorf("ignore mode: unexpected error %v", err)
	}
	if _, err := RasterDocumentToImage(doc, 10, 10, WarnErrorMode); err != nil {
		t.Errorf("warn mode: unexpected error %v", err)
	}
	_, err := RasterDocumentToImage(doc, 10, 10, StrictErrorMode)
	if err == nil || !strings.Contains(err.Error(), "drawable 0") {
		t.Errorf("strict mode: expected an error on the text, got %v", err)
	}

	single := func(p *svgdoc.Path) error {
		_, err := RasterDocumentToImage(svgdoc.NewDocument("svg").Add(p), 10, 10, StrictErrorMode)
		return err
	}
	if err := single(svgdoc.NewPath().SetFill("currentColor")); err == nil {
		t.Error("expected an error for an unsupported color")
	}
	if err := single(svgdoc.NewPathData("M 0,0", svgpath.Absolute)); err == nil || !strings.Contains(err.Error(), "literal") {
		t.Errorf("expected an error for a raw path, got %v", err)
	}
}
