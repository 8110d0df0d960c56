package logger

import (
	"sync"
	"time"
)

// TimeLayout is ISO-8601 with milliseconds and the numeric local offset.
const TimeLayout = "2006-01-02T15:04:05.000-07:00"

// buffer is a growing byte slice reused across lines.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

var bufPool = sync.Pool{
	New: func() any { return &buffer{b: make([]byte, 0, 512)} },
}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	// drop oversized buffers so one huge line does not pin memory
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}

// line holds everything needed to render one log line.
type line struct {
	at       time.Time
	label    string
	txid     string
	severity Severity
	values   []any
}

// appendLine renders
//
//	{timestamp} [{label}][{txid}] {SEVERITY}: {v1} {v2} ...\n
//
// and returns the offset at which the joined values start.
func appendLine(buf *buffer, ln line) int {
	buf.b = ln.at.Local().AppendFormat(buf.b, TimeLayout)
	buf.writeString(" [")
	buf.writeString(ln.label)
	buf.writeString("][")
	buf.writeString(ln.txid)
	buf.writeString("] ")
	buf.writeString(ln.severity.String())
	buf.writeString(": ")
	start := len(buf.b)
	for i, v := range ln.values {
		if i > 0 {
			buf.writeByte(' ')
		}
		buf.writeString(stringify(v))
	}
	buf.writeByte('\n')
	return start
}

// Format renders a single line the way loggers emit it. Useful for custom
// routers and tests.
//
// Values are joined with single spaces. Strings and byte slices pass through,
// errors render their stack trace when one was recorded, and anything with a
// String method uses it, even maps and structs. Other maps, slices, arrays and
// structs render as JSON; those JSON rejects (cycles, channels) render as
// <unprintable T>. Everything else uses fmt.
func Format(at time.Time, label, txid string, sev Severity, values ...any) string {
	buf := getBuf()
	defer putBuf(buf)
	appendLine(buf, line{at: at, label: label, txid: txid, severity: sev, values: values})
	return string(buf.b)
}
