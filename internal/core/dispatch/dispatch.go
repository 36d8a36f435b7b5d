package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/edgepanel/internal/core/activity"
	"github.com/sadopc/edgepanel/internal/protocol"
)

// Action is a discrete user command.
type Action int

const (
	ActionStart Action = iota
	ActionStop
	ActionSendText
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	case ActionSendText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseAction maps a command name to an Action.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start":
		return ActionStart, nil
	case "stop":
		return ActionStop, nil
	case "text", "send-text", "sendtext":
		return ActionSendText, nil
	}
	return 0, fmt.Errorf("unknown action %q (must be start, stop, or text)", name)
}

// ClientErrorText is the status text of locally rejected dispatches.
const ClientErrorText = "Client Error"

// NetworkErrorText is used when a transport failure carries no status text.
const NetworkErrorText = "Network Error"

// Validation messages.
const (
	MsgBaseURLRequired = "Please enter a base URL"
	MsgTextRequired    = "Please enter some text first"
)

// ValidationError is a local precondition failure; the transport is never
// reached.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Outcome converts the error into the failure variant.
func (e *ValidationError) Outcome() *protocol.Outcome {
	return protocol.Failed(0, ClientErrorText, e.Message)
}

// Build validates inputs and maps an action to its request.
func Build(action Action, baseURL, text string) (*protocol.Request, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, &ValidationError{Message: MsgBaseURLRequired}
	}

	req := &protocol.Request{BaseURL: baseURL}
	switch action {
	case ActionStart:
		req.Method, req.Path = http.MethodGet, "/start"
	case ActionStop:
		req.Method, req.Path = http.MethodGet, "/stop"
	case ActionSendText:
		if strings.TrimSpace(text) == "" {
			return nil, &ValidationError{Message: MsgTextRequired}
		}
		req.Method, req.Path = http.MethodPost, "/text"
		req.Body = map[string]string{"text": text}
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported action %d", action)}
	}
	return req, nil
}

// Wrap normalizes a transport result into an Outcome. Errors become the
// failure variant; the status code is kept only when the error carries one.
func Wrap(out *protocol.Outcome, err error) *protocol.Outcome {
	if err == nil {
		if out == nil {
			return protocol.Failed(0, NetworkErrorText, "empty response from transport")
		}
		return out
	}

	var te *protocol.TransportError
	if errors.As(err, &te) && te.StatusCode > 0 {
		text := te.StatusText
		if text == "" {
			text = http.StatusText(te.StatusCode)
		}
		return protocol.Failed(te.StatusCode, text, err.Error())
	}
	return protocol.Failed(0, NetworkErrorText, err.Error())
}

// Pending is a validated dispatch waiting for its transport call.
type Pending struct {
	ID      string
	Action  Action
	Request *protocol.Request
}

// Dispatcher turns actions into transport calls and feeds the results to a
// Recorder.
type Dispatcher struct {
	transport protocol.Transport
	recorder  *activity.Recorder
	logger    *slog.Logger
}

// New creates a dispatcher.
func New(t protocol.Transport, r *activity.Recorder, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{transport: t, recorder: r, logger: logger}
}

// Recorder returns the recorder this dispatcher reports to.
func (d *Dispatcher) Recorder() *activity.Recorder {
	return d.recorder
}

// Prepare validates the action and records the loading transition. On a
// validation failure it records the failure and returns its outcome with a
// nil Pending.
func (d *Dispatcher) Prepare(action Action, baseURL, text string) (*Pending, *protocol.Outcome) {
	req, err := Build(action, baseURL, text)
	if err != nil {
		var ve *ValidationError
		if !errors.As(err, &ve) {
			ve = &ValidationError{Message: err.Error()}
		}
		out := ve.Outcome()
		d.logger.Info("dispatch rejected", "action", action.String(), "reason", ve.Message)
		d.recorder.SetResponse(out)
		d.recorder.SetStatus(activity.StatusError, ve.Message)
		d.recorder.AppendLog("✗ "+ve.Message, activity.KindError)
		return nil, out
	}

	p := &Pending{ID: uuid.NewString(), Action: action, Request: req}
	d.recorder.SetStatus(activity.StatusLoading, req.Endpoint()+"...")
	d.recorder.AppendLog(fmt.Sprintf("Making %s request to %s", req.Method, req.Path), activity.KindInfo)
	d.logger.Info("dispatch started",
		"dispatch_id", p.ID,
		"action", action.String(),
		"method", req.Method,
		"url", req.URL(),
	)
	return p, nil
}

// Execute runs the transport call. It touches no recorder state and may run
// off the owning goroutine.
func (d *Dispatcher) Execute(ctx context.Context, p *Pending) *protocol.Outcome {
	start := time.Now()
	out := Wrap(d.transport.Execute(ctx, p.Request))
	if out.Duration == 0 {
		out.Duration = time.Since(start)
	}
	d.logger.Info("dispatch finished",
		"dispatch_id", p.ID,
		"success", out.Success,
		"status", out.StatusCode,
		"duration", out.Duration,
	)
	return out
}

// Complete records the outcome of a pending dispatch.
func (d *Dispatcher) Complete(p *Pending, out *protocol.Outcome) {
	d.recorder.RecordOutcome(out, p.Request.Method, p.Request.Path)
}

// Dispatch performs a full dispatch synchronously.
func (d *Dispatcher) Dispatch(ctx context.Context, action Action, baseURL, text string) *protocol.Outcome {
	p, rejected := d.Prepare(action, baseURL, text)
	if p == nil {
		return rejected
	}
	out := d.Execute(ctx, p)
	d.Complete(p, out)
	return out
}
