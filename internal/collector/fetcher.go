package collector

import (
	"context"

	"PriceCompare/internal/model"
)

// Fetcher defines the interface for fetching daily closing prices.
type Fetcher interface {
	// FetchDailyCloses returns up to days daily closes ordered by date.
	// days <= 0 means everything the source has.
	FetchDailyCloses(ctx context.Context, symbol string, days int) ([]model.Point, error)
	Name() string
}

func lastN(points []model.Point, n int) []model.Point {
	if n > 0 && len(points) > n {
		return points[len(points)-n:]
	}
	return points
}
