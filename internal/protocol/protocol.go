package protocol

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Transport executes a single request against a backend.
//
// Implementations report network failures, timeouts and non-2xx responses
// as errors, preferably *TransportError so a response status can be carried.
type Transport interface {
	Execute(ctx context.Context, req *Request) (*Outcome, error)
}

// Request describes one outbound call: method and path appended to a base URL.
type Request struct {
	Method  string
	Path    string
	BaseURL string
	Body    any
}

// URL returns the literal concatenation of base URL and path.
// No slash normalization is performed.
func (r *Request) URL() string {
	return r.BaseURL + r.Path
}

// CarriesBody reports whether the method semantically carries a payload.
func (r *Request) CarriesBody() bool {
	return r.Method == http.MethodPost || r.Method == http.MethodPut
}

// Endpoint returns "METHOD /path".
func (r *Request) Endpoint() string {
	return r.Method + " " + r.Path
}

// Outcome is the normalized result of one dispatch.
//
// When Success is true, Data holds the decoded response payload and
// ErrorMessage is empty. When Success is false, ErrorMessage describes the
// failure and Data is nil. StatusCode is 0 if no response was received.
type Outcome struct {
	Success      bool            `json:"success"`
	StatusCode   int             `json:"status"`
	StatusText   string          `json:"statusText"`
	Data         json.RawMessage `json:"data,omitempty"`
	ErrorMessage string          `json:"error,omitempty"`

	Duration time.Duration `json:"-"`
	Size     int64         `json:"-"`
}

// Succeeded builds the success variant.
func Succeeded(code int, text string, data json.RawMessage) *Outcome {
	return &Outcome{
		Success:    true,
		StatusCode: code,
		StatusText: text,
		Data:       data,
	}
}

// Failed builds the failure variant.
func Failed(code int, text, errMsg string) *Outcome {
	return &Outcome{
		StatusCode:   code,
		StatusText:   text,
		ErrorMessage: errMsg,
	}
}

// TransportError is a failed call. StatusCode is non-zero only when a
// response was received (an HTTP-level failure).
type TransportError struct {
	StatusCode int
	StatusText string
	Err        error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline expiry.
func (e *TransportError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}
