package scale

import (
	"math"
	"sort"
	"time"
)

const day = 24 * time.Hour

// interval is a calendar tick interval: floor truncates a time to the
// interval boundary and next advances by one step.
type interval struct {
	approx time.Duration
	floor  func(time.Time) time.Time
	next   func(time.Time) time.Time
	format string
}

func dayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func everyNDays(n int) interval {
	return interval{
		approx: time.Duration(n) * day,
		floor: func(t time.Time) time.Time {
			f := dayFloor(t)
			if n > 1 {
				// align to day-of-month so ticks land on 1, 3, 5, ...
				off := (f.Day() - 1) % n
				f = f.AddDate(0, 0, -off)
			}
			return f
		},
		next:   func(t time.Time) time.Time { return t.AddDate(0, 0, n) },
		format: "Jan 02",
	}
}

var weekInterval = interval{
	approx: 7 * day,
	floor: func(t time.Time) time.Time {
		f := dayFloor(t)
		return f.AddDate(0, 0, -int(f.Weekday()))
	},
	next:   func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
	format: "Jan 02",
}

func everyNMonths(n int) interval {
	return interval{
		approx: time.Duration(n) * 30 * day,
		floor: func(t time.Time) time.Time {
			y, m, _ := t.Date()
			m0 := ((int(m) - 1) / n) * n
			return time.Date(y, time.Month(m0+1), 1, 0, 0, 0, 0, t.Location())
		},
		next:   func(t time.Time) time.Time { return t.AddDate(0, n, 0) },
		format: "January",
	}
}

func everyNYears(n int) interval {
	return interval{
		approx: time.Duration(n) * 365 * day,
		floor: func(t time.Time) time.Time {
			y := t.Year()
			y -= ((y % n) + n) % n
			return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
		},
		next:   func(t time.Time) time.Time { return t.AddDate(n, 0, 0) },
		format: "2006",
	}
}

var tickIntervals = []interval{
	everyNDays(1),
	everyNDays(2),
	weekInterval,
	everyNMonths(1),
	everyNMonths(3),
	everyNYears(1),
}

// Time maps a date domain onto a pixel range.
type Time struct {
	D0, D1 time.Time
	R0, R1 float64
}

// NewTime returns a time scale from [d0, d1] onto [r0, r1].
func NewTime(d0, d1 time.Time, r0, r1 float64) *Time {
	return &Time{D0: d0, D1: d1, R0: r0, R1: r1}
}

func (s *Time) span() float64 { return float64(s.D1.Sub(s.D0)) }

// Map converts a date to range space.
func (s *Time) Map(t time.Time) float64 {
	span := s.span()
	if span == 0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + float64(t.Sub(s.D0))/span*(s.R1-s.R0)
}

// Invert converts a range value back to a date, clamped to the domain.
func (s *Time) Invert(px float64) time.Time {
	if s.R1 == s.R0 {
		return s.D0
	}
	frac := (px - s.R0) / (s.R1 - s.R0)
	if frac <= 0 {
		return s.D0
	}
	if frac >= 1 {
		return s.D1
	}
	return s.D0.Add(time.Duration(math.Round(frac * s.span())))
}

// pick chooses the interval whose tick count is closest to count.
func (s *Time) pick(count int) interval {
	if count <= 0 {
		count = 1
	}
	target := time.Duration(s.span() / float64(count))
	i := sort.Search(len(tickIntervals), func(i int) bool { return tickIntervals[i].approx > target })
	if i == len(tickIntervals) {
		years := target.Hours() / 24 / 365
		return everyNYears(int(math.Max(1, TickIncrement(0, years, 1))))
	}
	if i == 0 {
		return tickIntervals[0]
	}
	lo, hi := tickIntervals[i-1], tickIntervals[i]
	if float64(target)/float64(lo.approx) < float64(hi.approx)/float64(target) {
		return lo
	}
	return hi
}

// Ticks returns calendar-aligned dates inside the domain, about count of them.
func (s *Time) Ticks(count int) []time.Time {
	if !s.D1.After(s.D0) {
		return []time.Time{s.D0}
	}
	iv := s.pick(count)
	var out []time.Time
	t := iv.floor(s.D0)
	if t.Before(s.D0) {
		t = iv.next(t)
	}
	for !t.After(s.D1) {
		out = append(out, t)
		t = iv.next(t)
	}
	return out
}

// TickFormat returns the label formatter matching the interval Ticks(count)
// uses: years, month names, or short day labels.
func (s *Time) TickFormat(count int) func(time.Time) string {
	layout := s.TickFormatLayout(count)
	return func(t time.Time) string { return t.Format(layout) }
}

// TickFormatLayout is the time layout string TickFormat(count) formats with.
func (s *Time) TickFormatLayout(count int) string {
	if !s.D1.After(s.D0) {
		return "Jan 02"
	}
	return s.pick(count).format
}
