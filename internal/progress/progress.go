// Package progress maintains the append-only run journal.
package progress

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// stampLayout renders year–abbreviated month–day–hour:minute:second.
const stampLayout = "2006-Jan-02-15:04:05"

// Journal appends timestamped milestone lines to a fixed-path file. Journal
// writes never fail the pipeline: I/O errors are logged and dropped.
type Journal struct {
	path string
	now  func() time.Time
}

// New creates a Journal writing to path.
func New(path string) *Journal {
	return &Journal{path: path, now: time.Now}
}

// Log appends one "<timestamp> : <message>" line to the journal.
func (j *Journal) Log(message string) {
	line := j.now().Format(stampLayout) + " : " + message + "\n"

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		zap.L().Warn("journal open failed", zap.String("path", j.path), zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		zap.L().Warn("journal write failed", zap.String("path", j.path), zap.Error(err))
	}
}
