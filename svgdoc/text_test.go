package svgdoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextDefaults(t *testing.T) {
	got := NewText("hello").ToXML()
	want := Element{
		Tag: "text",
		Attrs: []Attr{
			{"x", "0"},
			{"y", "0"},
			{"font-size", "16px"},
			{"fill", "black"},
			{"font-weight", "normal"},
			{"text-anchor", "start"},
		},
		Text: "hello",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected element (-want +got):\n%s", diff)
	}
	if _, ok := got.Attr("font-family"); ok {
		t.Error("font-family should be omitted by default")
	}
}

func TestTextSetters(t *testing.T) {
	text := NewText("").
		SetBody("Total").
		SetPosition(10, 20.5).
		SetFonts("Arial", "sans-serif").
		SetColor("#333").
		SetSize(Number(12)).
		SetWeight(Keyword("bold")).
		SetAnchor("middle")
	got := text.ToXML()
	want := Element{
		Tag: "text",
		Attrs: []Attr{
			{"x", "10"},
			{"y", "20.5"},
			{"font-family", "Arial,sans-serif"},
			{"font-size", "12"},
			{"fill", "#333"},
			{"font-weight", "bold"},
			{"text-anchor", "middle"},
		},
		Text: "Total",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected element (-want +got):\n%s", diff)
	}
}

func TestFontValues(t *testing.T) {
	text := NewText("a").SetSize(Keyword("1.5em")).SetWeight(Number(700))
	f := text.Font()
	if f.Size != "1.5em" || f.Weight != "700" {
		t.Errorf("unexpected font %+v", f)
	}
	text.SetSize(Number(10.25))
	if text.Font().Size != "10.25" {
		t.Errorf("unexpected size %s", text.Font().Size)
	}
}

func TestFontsAreCopied(t *testing.T) {
	families := []string{"Arial"}
	text := NewText("a").SetFonts(families...)
	families[0] = "Courier"
	if v, _ := text.ToXML().Attr("font-family"); v != "Arial" {
		t.Errorf("expected Arial, got %s", v)
	}
	f := text.Font()
	f.Family[0] = "Times"
	if text.Font().Family[0] != "Arial" {
		t.Error("Font should return a copy")
	}

	text.SetFonts()
	if _, ok := text.ToXML().Attr("font-family"); ok {
		t.Error("empty family list should omit font-family")
	}
}

func TestNilFontValues(t *testing.T) {
	font := NewText("a").SetSize(Number(9)).SetWeight(Keyword("bold")).
		SetSize(nil).SetWeight(nil).Font()
	if font.Size != DefaultFontSize || font.Weight != DefaultFontWeight {
		t.Errorf("expected defaults, got %q %q", font.Size, font.Weight)
	}
}
