package scale

import (
	"math"
	"strconv"
)

// Linear maps a continuous numeric domain onto a pixel range.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a linear scale from [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map converts a domain value to range space. A degenerate domain maps
// everything to the middle of the range.
func (l *Linear) Map(v float64) float64 {
	if l.D1 == l.D0 {
		return (l.R0 + l.R1) / 2
	}
	t := (v - l.D0) / (l.D1 - l.D0)
	return l.R0 + t*(l.R1-l.R0)
}

// Invert converts a range value back to the domain.
func (l *Linear) Invert(px float64) float64 {
	if l.R1 == l.R0 {
		return l.D0
	}
	t := (px - l.R0) / (l.R1 - l.R0)
	return l.D0 + t*(l.D1-l.D0)
}

// Nice extends the domain outward to round tick values for about count
// ticks. It iterates until the tick step settles.
func (l *Linear) Nice(count int) *Linear {
	start, stop := l.D0, l.D1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	prestep := math.NaN()
	for iter := 0; iter < 10; iter++ {
		step := TickIncrement(start, stop, count)
		if step == prestep || step == 0 {
			break
		}
		if step > 0 {
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		} else {
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		}
		prestep = step
	}
	if reverse {
		start, stop = stop, start
	}
	l.D0, l.D1 = start, stop
	return l
}

// Ticks returns round domain values for about count ticks.
func (l *Linear) Ticks(count int) []float64 {
	return Ticks(l.D0, l.D1, count)
}

// TickFormat returns a formatter printing just enough decimals for the tick
// step chosen for count ticks.
func (l *Linear) TickFormat(count int) func(float64) string {
	lo, hi := l.D0, l.D1
	if hi < lo {
		lo, hi = hi, lo
	}
	inc := TickIncrement(lo, hi, count)
	step := inc
	if inc < 0 {
		step = -1 / inc
	}
	prec := stepDecimals(step)
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
}
