package model

// CursorPoint is the hover result for one series.
type CursorPoint struct {
	Series string
	Color  string
	Point  Point
	Y      float64 // plot-space y of Point.Close
	Found  bool    // false when the series has no points
}

// Cursor is the per-render hover snapshot: one CursorPoint per series, in
// series order, plus the crosshair x.
type Cursor struct {
	Left   float64 // plot-space x of the first series' matched date
	Points []CursorPoint
}

// LegendItem pairs a series label with its color.
type LegendItem struct {
	Label string
	Color string
}
