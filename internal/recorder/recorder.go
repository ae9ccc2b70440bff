package recorder

import "time"

// Artifacts holds one rendering of the chart.
type Artifacts struct {
	RunID       string
	HTML        []byte
	PNG         []byte // nil when no snapshot was rendered
	GeneratedAt time.Time
}

// Recorder persists rendered artifacts.
type Recorder interface {
	Save(a *Artifacts) error
	Close() error
}
