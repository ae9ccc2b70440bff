package scale

import (
	"errors"
	"math"
	"time"

	"PriceCompare/internal/model"
)

// DateExtent scans every point of every series and returns the earliest and
// latest dates.
func DateExtent(series []model.Series) (lo, hi time.Time, err error) {
	found := false
	for _, s := range series {
		for _, p := range s.Points {
			if !found {
				lo, hi = p.Date, p.Date
				found = true
				continue
			}
			if p.Date.Before(lo) {
				lo = p.Date
			}
			if p.Date.After(hi) {
				hi = p.Date
			}
		}
	}
	if !found {
		return time.Time{}, time.Time{}, errors.New("no points in any series")
	}
	return lo, hi, nil
}

// MaxClose returns the highest close across all series, or 0 when there are
// no points.
func MaxClose(series []model.Series) float64 {
	hi := math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			if p.Close > hi {
				hi = p.Close
			}
		}
	}
	if math.IsInf(hi, -1) {
		return 0
	}
	return hi
}
