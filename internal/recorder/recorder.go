package recorder

import (
	"time"

	"StockAdvisor/internal/analyzer"
)

// RunRecord holds the complete output of one analysis pass.
type RunRecord struct {
	RunID     string
	StartedAt time.Time
	Results   []*analyzer.GroupResult
}

// Recorder persists analysis runs for later review.
type Recorder interface {
	RecordRun(run *RunRecord) error
	Close() error
}
