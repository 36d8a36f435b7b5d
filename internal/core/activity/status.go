package activity

// StatusKind is the traffic-light state shown to the user.
type StatusKind int

const (
	StatusReady StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusReady:
		return "ready"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k StatusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Status is the single current status indicator value.
type Status struct {
	Kind    StatusKind `json:"type"`
	Message string     `json:"message"`
}

// ReadyStatus is the value at start-up.
var ReadyStatus = Status{Kind: StatusReady, Message: "Ready"}
