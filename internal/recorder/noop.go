package recorder

import (
	"time"

	"github.com/rp1014/launchtrack/internal/model"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ time.Time, _ bool, _ []model.Record) error { return nil }
func (n *NoopRecorder) Close() error                                          { return nil }
