package activity

import (
	"fmt"
	"time"

	"github.com/sadopc/edgepanel/internal/protocol"
)

// DefaultCapacity is the number of log entries kept.
const DefaultCapacity = 50

// TimestampLayout formats Entry.Timestamp.
const TimestampLayout = "15:04:05"

// Recorder owns the status indicator, the bounded activity log and the
// most recent response. It is driven from a single goroutine and is not
// safe for concurrent use.
type Recorder struct {
	status   Status
	entries  []Entry
	response *protocol.Outcome
	nextID   int64
	capacity int
	now      func() time.Time
	onChange []func()
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithCapacity overrides DefaultCapacity. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder creates a recorder in the ready state with an empty log.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		status:   ReadyStatus,
		capacity: DefaultCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnChange registers fn to be called after every mutation.
func (r *Recorder) OnChange(fn func()) {
	if fn != nil {
		r.onChange = append(r.onChange, fn)
	}
}

func (r *Recorder) notify() {
	for _, fn := range r.onChange {
		fn()
	}
}

// Status returns the current status indicator.
func (r *Recorder) Status() Status {
	return r.status
}

// Entries returns a copy of the log, newest first.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries currently held.
func (r *Recorder) Len() int {
	return len(r.entries)
}

// Capacity returns the log bound.
func (r *Recorder) Capacity() int {
	return r.capacity
}

// Response returns the most recently recorded outcome, or nil.
func (r *Recorder) Response() *protocol.Outcome {
	return r.response
}

// SetStatus overwrites the status indicator.
func (r *Recorder) SetStatus(kind StatusKind, message string) {
	r.status = Status{Kind: kind, Message: message}
	r.notify()
}

// SetResponse replaces the current response without touching status or log.
func (r *Recorder) SetResponse(out *protocol.Outcome) {
	r.response = out
	r.notify()
}

// AppendLog assigns the next id, stamps the entry, prepends it and drops
// the oldest entries beyond capacity.
func (r *Recorder) AppendLog(message string, kind EntryKind) Entry {
	r.nextID++
	at := r.now()
	e := Entry{
		ID:        r.nextID,
		Message:   message,
		Kind:      kind,
		Timestamp: at.Format(TimestampLayout),
		At:        at,
	}

	entries := make([]Entry, 0, min(len(r.entries)+1, r.capacity))
	entries = append(entries, e)
	for _, old := range r.entries {
		if len(entries) == r.capacity {
			break
		}
		entries = append(entries, old)
	}
	r.entries = entries

	r.notify()
	return e
}

// ClearLog empties the log. Ids keep increasing afterwards.
func (r *Recorder) ClearLog() {
	r.entries = nil
	r.notify()
}

// ClearResponse drops the current response.
func (r *Recorder) ClearResponse() {
	r.response = nil
	r.notify()
}

// RecordOutcome sets the terminal status for method+path, stores the
// outcome as the current response, and appends exactly one log entry.
func (r *Recorder) RecordOutcome(out *protocol.Outcome, method, path string) {
	endpoint := method + " " + path
	r.response = out

	if out.Success {
		r.status = Status{Kind: StatusSuccess, Message: endpoint + " successful"}
		r.AppendLog(fmt.Sprintf("✓ %s - %d %s", endpoint, out.StatusCode, out.StatusText), KindSuccess)
		return
	}

	r.status = Status{Kind: StatusError, Message: endpoint + " failed"}
	r.AppendLog("✗ "+endpoint+" - "+describeFailure(out), KindError)
}

func describeFailure(out *protocol.Outcome) string {
	// A 2xx failure broke after the status line, so the status says nothing.
	if out.StatusCode >= 200 && out.StatusCode < 300 && out.ErrorMessage != "" {
		return out.ErrorMessage
	}
	if out.StatusCode > 0 {
		return fmt.Sprintf("%d %s", out.StatusCode, out.StatusText)
	}
	if out.ErrorMessage != "" {
		return out.ErrorMessage
	}
	return out.StatusText
}
