package chart

import (
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// RenderPNG writes a static snapshot of the chart. Series with fewer than
// two points are left out; go-chart cannot range a single value.
func RenderPNG(w io.Writer, g *Graph) error {
	var series []gochart.Series
	for _, s := range g.series {
		if len(s.Points) < 2 {
			continue
		}
		xs := make([]time.Time, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = p.Date
			ys[i] = p.Close
		}
		series = append(series, gochart.TimeSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: drawingColor(seriesColor(s)),
				StrokeWidth: 1,
			},
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("png: no series with at least two points")
	}

	l := g.layout
	count := NumTicksForHeight(l.Height)
	yFmt := g.y.TickFormat(count)
	var yTicks []gochart.Tick
	for _, v := range g.y.Ticks(count) {
		label := ""
		if v != 0 {
			label = "$" + yFmt(v)
		}
		yTicks = append(yTicks, gochart.Tick{Value: v, Label: label})
	}

	ch := gochart.Chart{
		Title:  g.Title,
		Width:  int(l.Width),
		Height: int(l.Height),
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    int(l.Margin.Top) + 20,
				Left:   20,
				Right:  int(l.Margin.Right),
				Bottom: 20,
			},
		},
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat(g.x.TickFormatLayout(NumTicksForWidth(l.Width))),
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: g.y.D0, Max: g.y.D1},
			Ticks: yTicks,
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
