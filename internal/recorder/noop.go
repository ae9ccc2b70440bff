package recorder

// NoopRecorder discards artifacts; used for probes and dry runs.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Save(_ *Artifacts) error { return nil }
func (n *NoopRecorder) Close() error            { return nil }
