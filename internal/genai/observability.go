package genai

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Task      TaskType
	LatencyMs int64
	Success   bool
	Empty     bool // HTTP success but no usable answer text
	ErrorCode string
}

// Observer receives events about generation calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes generation-call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	switch {
	case !event.Success:
		status = "err:" + event.ErrorCode
	case event.Empty:
		status = "empty"
	}
	fmt.Fprintf(o.w, "[%s] gen_call task=%s latency_ms=%d status=%s\n",
		ts, event.Task, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
