package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time, e.g.
// "Added event (3ms)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// LogHooks reports command execution to a logger.
// It implements observability.CommandHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnCommandStart(_ context.Context, name string) {
	h.Logger.Debug("running command", "command", name)
}

func (h *LogHooks) OnCommandComplete(_ context.Context, name string, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("command failed", "command", name, "duration", duration, "err", err)
		return
	}
	h.Logger.Debug("command finished", "command", name, "duration", duration.Round(time.Microsecond))
}
