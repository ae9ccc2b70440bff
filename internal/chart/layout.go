package chart

import "PriceCompare/internal/model"

// Layout is the fixed drawing area: canvas size plus the margin around the
// plot.
type Layout struct {
	Width  float64
	Height float64
	Margin model.Margin
}

// XMax is the plot width.
func (l Layout) XMax() float64 { return l.Width - l.Margin.Left - l.Margin.Right }

// YMax is the plot height.
func (l Layout) YMax() float64 { return l.Height - l.Margin.Top - l.Margin.Bottom }

// NumTicksForHeight picks the y tick count for a canvas height.
func NumTicksForHeight(height float64) int {
	switch {
	case height <= 300:
		return 3
	case height <= 600:
		return 5
	}
	return 10
}

// NumTicksForWidth picks the x tick count for a canvas width.
func NumTicksForWidth(width float64) int {
	switch {
	case width <= 300:
		return 2
	case width <= 400:
		return 5
	}
	return 10
}
