package chart

import (
	"fmt"
	"time"

	"PriceCompare/internal/model"
	"PriceCompare/internal/scale"
)

// DefaultColor is used for series configured without a color.
const DefaultColor = "magenta"

// Graph is the comparison chart: a layout, the series drawn on it and the
// shared scales derived from them.
type Graph struct {
	Title  string
	layout Layout
	series []model.Series
	x      *scale.Time
	y      *scale.Linear
}

// NewGraph builds a graph and its scales. Series names must be unique.
func NewGraph(title string, layout Layout, series []model.Series) (*Graph, error) {
	if layout.XMax() <= 0 || layout.YMax() <= 0 {
		return nil, fmt.Errorf("layout %vx%v leaves no room for the plot", layout.Width, layout.Height)
	}
	g := &Graph{Title: title, layout: layout}
	for _, s := range series {
		if g.index(s.Name) >= 0 {
			return nil, fmt.Errorf("duplicate series %q", s.Name)
		}
		g.series = append(g.series, s)
	}
	g.rescale()
	return g, nil
}

// rescale rebuilds both scales from the current series: x spans the union of
// all dates, y runs from zero to the niced highest close.
func (g *Graph) rescale() {
	lo, hi, err := scale.DateExtent(g.series)
	if err != nil {
		lo, hi = time.Time{}, time.Time{}
	}
	g.x = scale.NewTime(lo, hi, 0, g.layout.XMax())
	g.y = scale.NewLinear(0, scale.MaxClose(g.series), g.layout.YMax(), 0).Nice(10)
}

func (g *Graph) index(name string) int {
	for i, s := range g.series {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Layout returns the drawing area.
func (g *Graph) Layout() Layout { return g.layout }

// Series returns the series in drawing order.
func (g *Graph) Series() []model.Series {
	return append([]model.Series(nil), g.series...)
}

// XScale returns the shared time scale (plot space).
func (g *Graph) XScale() *scale.Time { return g.x }

// YScale returns the shared price scale (plot space).
func (g *Graph) YScale() *scale.Linear { return g.y }

// AddSeries appends a series and rescales.
func (g *Graph) AddSeries(s model.Series) error {
	if g.index(s.Name) >= 0 {
		return fmt.Errorf("duplicate series %q", s.Name)
	}
	g.series = append(g.series, s)
	g.rescale()
	return nil
}

// RemoveSeries drops the named series and rescales. It reports whether the
// series was present.
func (g *Graph) RemoveSeries(name string) bool {
	i := g.index(name)
	if i < 0 {
		return false
	}
	g.series = append(g.series[:i:i], g.series[i+1:]...)
	g.rescale()
	return true
}

// Legend returns one item per series, in drawing order.
func (g *Graph) Legend() []model.LegendItem {
	items := make([]model.LegendItem, len(g.series))
	for i, s := range g.series {
		items[i] = model.LegendItem{Label: s.Name, Color: seriesColor(s)}
	}
	return items
}

func seriesColor(s model.Series) string {
	if s.Color == "" {
		return DefaultColor
	}
	return s.Color
}
