package activity

import "time"

// EntryKind classifies a log entry.
type EntryKind int

const (
	KindInfo EntryKind = iota
	KindSuccess
	KindError
)

func (k EntryKind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is a single activity log line. Entries are never modified after
// they are appended.
type Entry struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      EntryKind `json:"type"`
	Timestamp string    `json:"timestamp"`
	At        time.Time `json:"-"`
}
