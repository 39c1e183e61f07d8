package recorder

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRanking(_ *RankingSnapshot) error { return nil }
func (n *NoopRecorder) History(_ int) ([]RunSummary, error)    { return nil, nil }
func (n *NoopRecorder) Close() error                           { return nil }
