package svgdoc_test

import (
	"fmt"
	"log"

	"github.com/benoitkugler/svgbuilder/svgdoc"
	"github.com/benoitkugler/svgbuilder/svgdom"
)

func Example() {
	page, err := svgdom.ParseString(`<html><body><svg id="chart"></svg></body></html>`)
	if err != nil {
		log.Fatal(err)
	}

	arrow := svgdoc.NewPath().
		MoveTo(10, 10).LineToRel(30, 0).LineToRel(-5, -5).
		SetFill("none").SetStroke("black", 2)
	label := svgdoc.NewText("x").SetPosition(45, 12).SetSize(svgdoc.Number(10))

	err = svgdoc.NewDocument("#chart").Add(arrow).Add(label).Render(page)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(page)
	// Output: <html><head></head><body><svg id="chart"><path d="M 10,10 l 30,0 l -5,-5 " fill="none" stroke="black" stroke-width="2"></path><text x="45" y="12" font-size="10" fill="black" font-weight="normal" text-anchor="start">x</text></svg></body></html>
}
