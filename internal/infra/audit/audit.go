// Package audit appends human-readable entries to the agency's audit log.
// The log is an external collaborator: the core only ever writes to it.
package audit

import (
	"fmt"
	"sync"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"os"
)

const timestampLayout = "2006-01-02 15:04:05"

type Logger struct {
	mu    sync.Mutex
	path  string
	clock clock.Clock
}

func NewLogger(cfg config.StoreConfig, clk clock.Clock) *Logger {
	return &Logger{
		path:  cfg.Path(cfg.AuditFile),
		clock: clk,
	}
}

// Append writes one line in the agreed format:
//
//	[yyyy-MM-dd HH:mm:ss] <EVENT TYPE> - <free text>
func (l *Logger) Append(eventType, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] %s - %s\n", l.clock.Now().Format(timestampLayout), eventType, message)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.Wrap(err, "failed to open audit log")
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return errs.Wrap(err, "failed to append audit entry")
	}
	return nil
}
