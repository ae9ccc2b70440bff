package calculator

import (
	"errors"

	"PriceCompare/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// MovingAverage returns the rolling simple moving average of points. The
// first output point is dated on the period-th input point.
func MovingAverage(points []model.Point, period int) ([]model.Point, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(points) < period {
		return nil, errors.New("not enough data for SMA calculation")
	}
	out := make([]model.Point, 0, len(points)-period+1)
	sum := 0.0
	for i, p := range points {
		sum += p.Close
		if i >= period {
			sum -= points[i-period].Close
		}
		if i >= period-1 {
			out = append(out, model.Point{Date: p.Date, Close: sum / float64(period)})
		}
	}
	return out, nil
}
