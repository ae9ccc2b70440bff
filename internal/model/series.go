package model

import "time"

// Point is a single dated closing price.
type Point struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// Series is one named, colored line of points ordered by date.
type Series struct {
	Name   string
	Color  string
	Points []Point
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Points) }

// First returns the earliest point; ok is false for an empty series.
func (s Series) First() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[0], true
}

// Last returns the latest point; ok is false for an empty series.
func (s Series) Last() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Shifted returns a copy of s under a new name and color with every close
// moved by offset.
func (s Series) Shifted(name, color string, offset float64) Series {
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Point{Date: p.Date, Close: p.Close + offset}
	}
	return Series{Name: name, Color: color, Points: pts}
}

// Margin is the space between the canvas edge and the plot area, in pixels.
type Margin struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}
