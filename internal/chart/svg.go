package chart

import (
	"fmt"
	"html"
	"io"
	"strings"

	"PriceCompare/internal/model"
)

const (
	gridColor   = "#e0e0e0"
	labelFont   = `font-family="Arial" font-size="12" fill="#000"`
	circleR     = 4
	circleWidth = 2
)

// RenderSVG writes the chart as a standalone SVG element. When cur is nil
// the hover layer is emitted hidden so a script can position it; otherwise
// it is drawn at cur.
func RenderSVG(w io.Writer, g *Graph, cur *model.Cursor) error {
	var b strings.Builder
	l := g.layout
	xMax, yMax := l.XMax(), l.YMax()
	m := l.Margin

	fmt.Fprintf(&b, `<svg id="chart" xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(l.Width), num(l.Height), num(l.Width), num(l.Height))
	fmt.Fprintf(&b, `<rect width="%s" height="%s" fill="#fff"/>`+"\n", num(l.Width), num(l.Height))

	yTicks := g.y.Ticks(NumTicksForHeight(l.Height))
	yFmt := g.y.TickFormat(NumTicksForHeight(l.Height))

	fmt.Fprintf(&b, `<g class="grid-rows" transform="translate(%s,%s)">`+"\n", num(m.Left), num(m.Top))
	for _, v := range yTicks {
		y := num(g.y.Map(v))
		fmt.Fprintf(&b, `<line x1="0" x2="%s" y1="%s" y2="%s" stroke="%s"/>`+"\n", num(xMax), y, y, gridColor)
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<g class="plot" transform="translate(%s,%s)">`+"\n", num(m.Left), num(m.Top))
	for _, s := range g.series {
		if len(s.Points) == 0 {
			continue
		}
		pts := make([]xy, len(s.Points))
		for i, p := range s.Points {
			pts[i] = xy{g.x.Map(p.Date), g.y.Map(p.Close)}
		}
		fmt.Fprintf(&b, `<path class="series" data-name="%s" d="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			html.EscapeString(s.Name), basisPath(pts), html.EscapeString(seriesColor(s)))
	}
	writeHover(&b, g, cur)
	fmt.Fprintf(&b, `<rect id="overlay" x="%s" y="%s" width="%s" height="%s" fill="transparent"/>`+"\n",
		num(-m.Left), num(-m.Top), num(l.Width), num(m.Top+yMax))
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<g class="axis-right" transform="translate(%s,%s)">`+"\n", num(m.Left+xMax), num(m.Top))
	for _, v := range yTicks {
		if v == 0 {
			continue
		}
		fmt.Fprintf(&b, `<text x="8" y="%s" dy="0.25em" text-anchor="start" %s>$%s</text>`+"\n",
			num(g.y.Map(v)), labelFont, yFmt(v))
	}
	b.WriteString("</g>\n")

	xCount := NumTicksForWidth(l.Width)
	xFmt := g.x.TickFormat(xCount)
	fmt.Fprintf(&b, `<g class="axis-bottom" transform="translate(%s,%s)">`+"\n", num(m.Left), num(m.Top+yMax))
	fmt.Fprintf(&b, `<line x1="0" x2="%s" y1="0" y2="0" stroke="%s"/>`+"\n", num(xMax), gridColor)
	if len(g.series) > 0 {
		for _, t := range g.x.Ticks(xCount) {
			fmt.Fprintf(&b, `<text x="%s" y="20" text-anchor="middle" %s>%s</text>`+"\n",
				num(g.x.Map(t)), labelFont, html.EscapeString(xFmt(t)))
		}
	}
	b.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHover(b *strings.Builder, g *Graph, cur *model.Cursor) {
	display := ` style="display:none"`
	left := 0.0
	if cur != nil {
		display = ""
		left = cur.Left
	}
	fmt.Fprintf(b, `<g id="hover"%s>`+"\n", display)
	fmt.Fprintf(b, `<line id="crosshair" x1="%s" x2="%s" y1="0" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
		num(left), num(left), num(g.layout.YMax()), gridColor)
	for i, s := range g.series {
		cy, style := 0.0, ""
		if cur != nil && i < len(cur.Points) {
			cy = cur.Points[i].Y
			if !cur.Points[i].Found {
				style = ` style="display:none"`
			}
		}
		fmt.Fprintf(b, `<circle class="dot" cx="%s" cy="%s" r="%d" fill="%s" stroke="white" stroke-width="%d"%s/>`+"\n",
			num(left), num(cy), circleR, html.EscapeString(seriesColor(s)), circleWidth, style)
	}
	b.WriteString("</g>\n")
}
