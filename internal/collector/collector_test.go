package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceCompare/internal/config"
	"PriceCompare/internal/model"
)

type stubFetcher struct {
	points []model.Point
	err    error
}

func (s *stubFetcher) Name() string { return "stub" }

func (s *stubFetcher) FetchDailyCloses(_ context.Context, _ string, days int) ([]model.Point, error) {
	if s.err != nil {
		return nil, s.err
	}
	return lastN(s.points, days), nil
}

func TestFixture_DefaultSymbol(t *testing.T) {
	pts, err := NewFixtureFetcher().FetchDailyCloses(context.Background(), "", 0)
	require.NoError(t, err)
	require.NotEmpty(t, pts)

	first, last := pts[0], pts[len(pts)-1]
	assert.Equal(t, time.Date(2007, 4, 24, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 93.24, first.Close)
	assert.Equal(t, time.Date(2012, 5, 1, 0, 0, 0, 0, time.UTC), last.Date)
	for i := 1; i < len(pts); i++ {
		assert.True(t, pts[i].Date.After(pts[i-1].Date), "dates must ascend")
		wd := pts[i].Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
		assert.Greater(t, pts[i].Close, 0.0)
	}

	again, _ := NewFixtureFetcher().FetchDailyCloses(context.Background(), "AAPL", 0)
	assert.Equal(t, pts, again, "fixture must be deterministic")
}

func TestFixture_OtherSymbolAndDays(t *testing.T) {
	f := NewFixtureFetcher()
	apple, _ := f.FetchDailyCloses(context.Background(), "", 0)
	other, _ := f.FetchDailyCloses(context.Background(), "TSLA", 30)
	require.Len(t, other, 30)
	assert.Equal(t, apple[len(apple)-1].Date, other[len(other)-1].Date)
	assert.NotEqual(t, apple[len(apple)-30:], other)
}

func TestCollect_DerivedSeries(t *testing.T) {
	c := NewCollector(&config.Config{Series: config.DefaultSeries()})
	series, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, []string{"Apple", "Bitcoin", "Tesla"}, []string{series[0].Name, series[1].Name, series[2].Name})
	assert.Equal(t, "magenta", series[1].Color)
	require.Equal(t, series[0].Len(), series[2].Len())
	for i, p := range series[0].Points {
		assert.Equal(t, p.Date, series[1].Points[i].Date)
		assert.InDelta(t, p.Close+100, series[1].Points[i].Close, 1e-9)
		assert.InDelta(t, p.Close+200, series[2].Points[i].Close, 1e-9)
	}
}

func TestCollect_SkipsFailedSource(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	c := &Collector{
		Specs: []config.SeriesSpec{
			{Name: "Broken", Source: "bad"},
			{Name: "Shifted", Derive: &config.Derive{From: "Broken", Offset: 1}},
			{Name: "Good", Source: "good"},
		},
		Sources: map[string]Fetcher{
			"bad":  &stubFetcher{err: errors.New("boom")},
			"good": &stubFetcher{points: []model.Point{{Date: day, Close: 1}}},
		},
	}
	series, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "Good", series[0].Name)
}

func TestCollect_AllFailed(t *testing.T) {
	c := &Collector{
		Specs:   []config.SeriesSpec{{Name: "Broken", Source: "bad"}},
		Sources: map[string]Fetcher{"bad": &stubFetcher{err: errors.New("boom")}},
	}
	_, err := c.Collect(context.Background())
	assert.Error(t, err)
}

func TestCollect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCollector(&config.Config{Series: config.DefaultSeries()}).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_WeeklyInterval(t *testing.T) {
	mon := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var daily []model.Point
	for i := 0; i < 12; i++ {
		daily = append(daily, model.Point{Date: mon.AddDate(0, 0, i), Close: float64(i + 1)})
	}
	c := &Collector{
		Specs:   []config.SeriesSpec{{Name: "W", Source: "good", Interval: config.IntervalWeekly}},
		Sources: map[string]Fetcher{"good": &stubFetcher{points: daily}},
	}
	series, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, series[0].Points, 2)
	assert.Equal(t, model.Point{Date: mon, Close: 7}, series[0].Points[0])
	assert.Equal(t, model.Point{Date: mon.AddDate(0, 0, 7), Close: 12}, series[0].Points[1])
}

func TestCollect_MovingAverageDerive(t *testing.T) {
	c := &Collector{
		Specs: []config.SeriesSpec{
			{Name: "Apple", Source: config.SourceFixture},
			{Name: "Apple MA50", Color: "gray", Derive: &config.Derive{From: "Apple", MA: 50}},
			{Name: "Too long", Derive: &config.Derive{From: "Apple", MA: 1000000}},
		},
		Sources: map[string]Fetcher{config.SourceFixture: NewFixtureFetcher()},
	}
	series, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 2)

	apple, ma := series[0], series[1]
	assert.Equal(t, apple.Len()-49, ma.Len())
	assert.Equal(t, apple.Points[49].Date, ma.Points[0].Date)
	assert.Equal(t, apple.Points[apple.Len()-1].Date, ma.Points[ma.Len()-1].Date)

	sum := 0.0
	for _, p := range apple.Points[:50] {
		sum += p.Close
	}
	assert.InDelta(t, sum/50, ma.Points[0].Close, 1e-9)
}
