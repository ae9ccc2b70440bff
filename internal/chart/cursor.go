package chart

import (
	"math"
	"sort"
	"time"

	"PriceCompare/internal/model"
)

// bisectLeft returns the first index i in [lo, len(points)] with
// points[i].Date >= t.
func bisectLeft(points []model.Point, t time.Time, lo int) int {
	if lo > len(points) {
		return len(points)
	}
	return lo + sort.Search(len(points)-lo, func(k int) bool {
		return !points[lo+k].Date.Before(t)
	})
}

// Nearest returns the point of s closest in time to t. The search starts at
// index 1, so the candidates are the points on either side of the insertion
// index; equal distances resolve to the later point.
func (g *Graph) Nearest(s model.Series, t time.Time) (model.Point, bool) {
	return nearest(s, t)
}

func nearest(s model.Series, t time.Time) (model.Point, bool) {
	pts := s.Points
	if len(pts) == 0 {
		return model.Point{}, false
	}
	i := bisectLeft(pts, t, 1)
	d0 := pts[i-1]
	if i >= len(pts) {
		return d0, true
	}
	d1 := pts[i]
	if t.Sub(d0.Date) >= d1.Date.Sub(t) {
		return d1, true
	}
	return d0, true
}

// Cursor computes the hover snapshot for a pointer at canvas x.
func (g *Graph) Cursor(pointerX float64) model.Cursor {
	return g.CursorAt(pointerX - g.layout.Margin.Left)
}

// CursorAt computes the hover snapshot for plot-space x. Positions outside
// the plot clamp to the ends of the time domain.
func (g *Graph) CursorAt(plotX float64) model.Cursor {
	t := g.x.Invert(plotX)
	cur := model.Cursor{Points: make([]model.CursorPoint, len(g.series))}
	anchored := false
	for i, s := range g.series {
		cp := model.CursorPoint{Series: s.Name, Color: seriesColor(s)}
		if p, ok := nearest(s, t); ok {
			cp.Point = p
			cp.Y = g.y.Map(p.Close)
			cp.Found = true
			if !anchored {
				cur.Left = g.x.Map(p.Date)
				anchored = true
			}
		}
		cur.Points[i] = cp
	}
	if !anchored {
		cur.Left = math.Max(0, math.Min(plotX, g.layout.XMax()))
	}
	return cur
}

// CursorFrames returns the cursor for every integer plot column from 0 to
// XMax inclusive.
func (g *Graph) CursorFrames() []model.Cursor {
	n := int(math.Floor(g.layout.XMax())) + 1
	frames := make([]model.Cursor, n)
	for col := 0; col < n; col++ {
		frames[col] = g.CursorAt(float64(col))
	}
	return frames
}
