package logger

import (
	"io"
	"sync"
)

// Router is the output Strategy: it receives a fully formatted line and
// delivers it to the sink bound to the line's severity.
// Implementations must be safe for concurrent use and must not retain line.
type Router interface {
	Route(sev Severity, line []byte)
}

// WriterRouter sends normal-sink lines to one writer and error-sink lines to
// another. Writes are synchronous and unbuffered; write errors are dropped.
type WriterRouter struct {
	normal   io.Writer
	err      io.Writer
	normalMu sync.Mutex
	errMu    sync.Mutex
}

// NewWriterRouter returns a router over the two sinks. A nil writer discards.
func NewWriterRouter(normal, err io.Writer) *WriterRouter {
	if normal == nil {
		normal = io.Discard
	}
	if err == nil {
		err = io.Discard
	}
	return &WriterRouter{normal: normal, err: err}
}

func (r *WriterRouter) Route(sev Severity, line []byte) {
	if sev.Sink == SinkError {
		r.errMu.Lock()
		_, _ = r.err.Write(line)
		r.errMu.Unlock()
		return
	}
	r.normalMu.Lock()
	_, _ = r.normal.Write(line)
	r.normalMu.Unlock()
}
