package recorder

import (
	"time"

	"github.com/rp1014/launchtrack/internal/model"
)

// Recorder persists the record set of each aggregation run for later
// analysis. The aggregation core itself stays persistence-free; a
// Recorder is a downstream consumer wired in by the caller.
type Recorder interface {
	RecordRun(runAt time.Time, degraded bool, records []model.Record) error
	Close() error
}
