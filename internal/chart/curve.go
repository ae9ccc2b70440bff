package chart

import "strings"

type xy struct{ X, Y float64 }

// basisPath returns SVG path data for a uniform cubic B-spline through pts.
// The curve starts at the first point and ends at the last; interior points
// act as control points. One point yields a bare move.
func basisPath(pts []xy) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	var x0, y0, x1, y1 float64
	state := 0
	bezier := func(x, y float64) {
		b.WriteString("C")
		b.WriteString(num((2*x0 + x1) / 3))
		b.WriteString(",")
		b.WriteString(num((2*y0 + y1) / 3))
		b.WriteString(",")
		b.WriteString(num((x0 + 2*x1) / 3))
		b.WriteString(",")
		b.WriteString(num((y0 + 2*y1) / 3))
		b.WriteString(",")
		b.WriteString(num((x0 + 4*x1 + x) / 6))
		b.WriteString(",")
		b.WriteString(num((y0 + 4*y1 + y) / 6))
	}
	lineTo := func(x, y float64) {
		b.WriteString("L")
		b.WriteString(num(x))
		b.WriteString(",")
		b.WriteString(num(y))
	}
	point := func(x, y float64) {
		switch state {
		case 0:
			state = 1
			b.WriteString("M")
			b.WriteString(num(x))
			b.WriteString(",")
			b.WriteString(num(y))
		case 1:
			state = 2
		case 2:
			state = 3
			lineTo((5*x0+x1)/6, (5*y0+y1)/6)
			bezier(x, y)
		default:
			bezier(x, y)
		}
		x0, x1 = x1, x
		y0, y1 = y1, y
	}
	for _, p := range pts {
		point(p.X, p.Y)
	}
	switch state {
	case 3:
		point(x1, y1)
		lineTo(x1, y1)
	case 2:
		lineTo(x1, y1)
	}
	return b.String()
}
