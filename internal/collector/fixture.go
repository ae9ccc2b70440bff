package collector

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"

	"PriceCompare/internal/model"
)

// FixtureFetcher serves static, deterministic daily closes. The default
// symbol reproduces a stock history of business days from 2007-04-24 to
// 2012-05-01 starting at 93.24; any other symbol gets its own stable walk
// over the same calendar.
type FixtureFetcher struct{}

func NewFixtureFetcher() *FixtureFetcher { return &FixtureFetcher{} }

func (f *FixtureFetcher) Name() string { return "fixture" }

const defaultFixtureSymbol = "AAPL"

var (
	fixtureStart = time.Date(2007, time.April, 24, 0, 0, 0, 0, time.UTC)
	fixtureEnd   = time.Date(2012, time.May, 1, 0, 0, 0, 0, time.UTC)
)

func (f *FixtureFetcher) FetchDailyCloses(_ context.Context, symbol string, days int) ([]model.Point, error) {
	return lastN(fixturePoints(symbol), days), nil
}

func fixturePoints(symbol string) []model.Point {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	seed := int64(20070424)
	price := 93.24
	if symbol != "" && symbol != defaultFixtureSymbol {
		h := fnv.New64a()
		h.Write([]byte(symbol))
		seed = int64(h.Sum64() >> 1)
		price = 50 + float64(h.Sum64()%100)
	}
	rng := rand.New(rand.NewSource(seed))

	points := make([]model.Point, 0, 1300)
	for d := fixtureStart; !d.After(fixtureEnd); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if len(points) > 0 {
			price *= 1 + 0.0014 + rng.NormFloat64()*0.021
			if price < 1 {
				price = 1
			}
		}
		points = append(points, model.Point{Date: d, Close: math.Round(price*100) / 100})
	}
	return points
}
