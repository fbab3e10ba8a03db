package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TraceLogger records every rendered artifact with optional file output.
type TraceLogger interface {
	Log(template string, source []byte)
}

// traceLogger implements TraceLogger with thread-safe log.
type traceLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewTrace creates a new TraceLogger. If writer is nil, returns a no-op logger.
func NewTrace(w io.Writer) TraceLogger {
	return &traceLogger{w: w}
}

// Log emits one header line per rendered artifact followed by its full text,
// so a generation run can be replayed from the trace alone.
func (t *traceLogger) Log(template string, source []byte) {
	if len(source) == 0 {
		return
	}
	if t.w == nil {
		return
	}

	header := fmt.Sprintf("%s template: %s, %d bytes\n",
		time.Now().Format("2006/01/02 15:04:05"),
		template,
		len(source))

	t.mu.Lock()
	_, _ = t.w.Write([]byte(header))
	_, _ = t.w.Write(source)
	if source[len(source)-1] != '\n' {
		_, _ = t.w.Write([]byte("\n"))
	}
	t.mu.Unlock()
}
