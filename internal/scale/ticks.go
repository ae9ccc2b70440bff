package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// TickIncrement returns the tick step for about count ticks over
// [start, stop]. A negative result -k means a step of 1/k, which keeps
// sub-unit steps exact.
func TickIncrement(start, stop float64, count int) float64 {
	if count <= 0 || stop <= start {
		return 0
	}
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// Ticks returns round values spaced by TickIncrement inside [start, stop].
func Ticks(start, stop float64, count int) []float64 {
	if start == stop && count > 0 {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	inc := TickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) || math.IsNaN(inc) {
		return nil
	}
	var out []float64
	if inc > 0 {
		r0 := math.Ceil(start / inc)
		r1 := math.Floor(stop / inc)
		for i := r0; i <= r1; i++ {
			out = append(out, i*inc)
		}
	} else {
		inv := -inc
		r0 := math.Ceil(start * inv)
		r1 := math.Floor(stop * inv)
		for i := r0; i <= r1; i++ {
			out = append(out, i/inv)
		}
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// stepDecimals is the number of fraction digits needed to print values on a
// grid with the given step.
func stepDecimals(step float64) int {
	if step <= 0 {
		return 0
	}
	d := int(-math.Floor(math.Log10(step)))
	if d < 0 {
		return 0
	}
	return d
}
