package logsetup

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog/diode"
	"go.uber.org/atomic"
)

// Guard owns the background writer started by Init. Records are queued until
// the writer goroutine drains them; Close flushes the queue, closes the log
// file and puts back the loggers that were global before Init.
type Guard struct {
	once    sync.Once
	writer  diode.Writer
	file    *rollingFile
	dropped *atomic.Int64
	filter  Filter
	expr    string
	prev    globals
	err     error
}

// Close is safe to call more than once; later calls return the first result.
func (g *Guard) Close() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		const op errors.Op = "logsetup.Guard.Close"

		current.Store(nil)
		g.prev.restore()

		if err := g.writer.Close(); err != nil {
			g.err = errors.New(op).Err(err).Msg(errMsgFlushFailed)
		}
		if err := g.file.Close(); err != nil && g.err == nil {
			g.err = errors.New(op).Err(err).Msg(errMsgFlushFailed)
		}
		active.Store(false)
	})
	return g.err
}

// Filename is the path of the log file currently written to.
func (g *Guard) Filename() string {
	return g.file.Filename()
}

// Dropped counts records discarded because the queue was full.
func (g *Guard) Dropped() int64 {
	return g.dropped.Load()
}

// Filter is the filter in effect.
func (g *Guard) Filter() Filter {
	return g.filter
}

// FilterExpression is the expression the filter was parsed from, either
// LOG_FILTER or Config.FilterLevel.
func (g *Guard) FilterExpression() string {
	return g.expr
}
