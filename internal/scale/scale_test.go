package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceCompare/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLinear_NiceMatchesD3(t *testing.T) {
	l := NewLinear(0, 214, 370, 0).Nice(10)
	assert.Equal(t, 0.0, l.D0)
	assert.Equal(t, 220.0, l.D1)

	l = NewLinear(0, 0.93, 100, 0).Nice(10)
	assert.InDelta(t, 1.0, l.D1, 1e-12)
}

func TestLinear_MapInvert(t *testing.T) {
	l := NewLinear(0, 200, 370, 0)
	assert.InDelta(t, 370, l.Map(0), 1e-9)
	assert.InDelta(t, 0, l.Map(200), 1e-9)
	assert.InDelta(t, 185, l.Map(100), 1e-9)
	assert.InDelta(t, 50, l.Invert(l.Map(50)), 1e-9)

	flat := NewLinear(5, 5, 100, 0)
	assert.Equal(t, 50.0, flat.Map(5))
}

func TestLinear_TicksAndFormat(t *testing.T) {
	l := NewLinear(0, 220, 370, 0)
	assert.Equal(t, []float64{0, 50, 100, 150, 200}, l.Ticks(5))
	assert.Equal(t, "150", l.TickFormat(5)(150))

	frac := NewLinear(0, 1, 100, 0)
	ticks := frac.Ticks(5)
	require.Len(t, ticks, 6)
	assert.InDelta(t, 0.2, ticks[1], 1e-12)
	assert.Equal(t, "0.2", frac.TickFormat(5)(ticks[1]))
}

func TestTicks_Reversed(t *testing.T) {
	assert.Equal(t, []float64{10, 5, 0}, Ticks(10, 0, 2))
	assert.Equal(t, []float64{3}, Ticks(3, 3, 4))
	assert.Nil(t, Ticks(0, 10, 0))
}

func TestTime_MapInvertClamp(t *testing.T) {
	s := NewTime(date(2020, 1, 1), date(2020, 1, 11), 0, 100)
	assert.InDelta(t, 50, s.Map(date(2020, 1, 6)), 1e-9)
	assert.Equal(t, date(2020, 1, 6), s.Invert(50))
	assert.Equal(t, date(2020, 1, 1), s.Invert(-40))
	assert.Equal(t, date(2020, 1, 11), s.Invert(400))
}

func TestTime_YearTicks(t *testing.T) {
	s := NewTime(date(2007, 4, 24), date(2012, 5, 1), 0, 710)
	ticks := s.Ticks(10)
	require.Len(t, ticks, 5)
	format := s.TickFormat(10)
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, format(tk))
	}
	assert.Equal(t, []string{"2008", "2009", "2010", "2011", "2012"}, labels)
	assert.Equal(t, "2006", s.TickFormatLayout(10))
	assert.Equal(t, "Jan 02", NewTime(date(2020, 1, 1), date(2020, 1, 1), 0, 10).TickFormatLayout(10))
}

func TestTime_MonthAndDayTicks(t *testing.T) {
	s := NewTime(date(2021, 1, 15), date(2021, 12, 20), 0, 700)
	ticks := s.Ticks(10)
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.Equal(t, 1, tk.Day(), "month ticks land on the first")
	}
	assert.Equal(t, "February", s.TickFormat(10)(ticks[0]))

	short := NewTime(date(2021, 3, 1), date(2021, 3, 10), 0, 700)
	dayTicks := short.Ticks(10)
	assert.Len(t, dayTicks, 10)
	assert.Equal(t, "Mar 01", short.TickFormat(10)(dayTicks[0]))
}

func TestExtents(t *testing.T) {
	series := []model.Series{
		{Name: "a", Points: []model.Point{{Date: date(2020, 2, 1), Close: 3}, {Date: date(2020, 3, 1), Close: 9}}},
		{Name: "empty"},
		{Name: "b", Points: []model.Point{{Date: date(2019, 12, 1), Close: 12}}},
	}
	lo, hi, err := DateExtent(series)
	require.NoError(t, err)
	assert.Equal(t, date(2019, 12, 1), lo)
	assert.Equal(t, date(2020, 3, 1), hi)
	assert.Equal(t, 12.0, MaxClose(series))

	_, _, err = DateExtent([]model.Series{{Name: "empty"}})
	assert.Error(t, err)
	assert.Equal(t, 0.0, MaxClose(nil))
}
