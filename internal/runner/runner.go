package runner

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/sadopc/edgepanel/internal/bridge"
	"github.com/sadopc/edgepanel/internal/core/activity"
	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/logging"
	"github.com/sadopc/edgepanel/internal/protocol"
	httpclient "github.com/sadopc/edgepanel/internal/protocol/http"
)

// Runner executes commands headlessly (no TUI).
type Runner struct {
	dispatcher *dispatch.Dispatcher
	recorder   *activity.Recorder
	cfg        Config
}

// Config holds runner configuration.
type Config struct {
	BaseURL      string
	Text         string
	Actions      []dispatch.Action
	OutputFormat string // "text", "json", "junit"
	Verbose      bool
	Timeout      time.Duration
	LogCapacity  int

	// TLS applies to the default HTTP client only.
	TLS *tls.Config

	// Transport defaults to the HTTP client when nil.
	Transport protocol.Transport
	Logger    *slog.Logger
}

// Result holds the outcome of a single command.
type Result struct {
	Name        string          `json:"name"`
	Method      string          `json:"method,omitempty"`
	URL         string          `json:"url,omitempty"`
	Success     bool            `json:"success"`
	StatusCode  int             `json:"status_code"`
	Status      string          `json:"status"`
	Duration    time.Duration   `json:"duration"`
	Size        int64           `json:"size"`
	ErrorString string          `json:"error,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// Report is everything a run produced: one result per command plus the
// final status and activity log.
type Report struct {
	Results []Result         `json:"results"`
	Status  activity.Status  `json:"status"`
	Log     []activity.Entry `json:"log"`
}

// New creates a runner from config.
func New(cfg Config) (*Runner, error) {
	if len(cfg.Actions) == 0 {
		return nil, fmt.Errorf("at least one command is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = httpclient.DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Transport == nil {
		client := httpclient.New()
		client.SetTimeout(cfg.Timeout)
		client.SetLogger(cfg.Logger)
		client.SetTLSConfig(cfg.TLS)
		cfg.Transport = client
	}

	opts := []activity.Option{}
	if cfg.LogCapacity > 0 {
		opts = append(opts, activity.WithCapacity(cfg.LogCapacity))
	}
	rec := activity.NewRecorder(opts...)

	br := bridge.New(cfg.Transport, cfg.Logger)
	return &Runner{
		dispatcher: dispatch.New(br, rec, cfg.Logger),
		recorder:   rec,
		cfg:        cfg,
	}, nil
}

// Run executes the configured commands in order. Commands that fail do not
// stop the run.
func (r *Runner) Run(ctx context.Context) Report {
	results := make([]Result, 0, len(r.cfg.Actions))
	for _, action := range r.cfg.Actions {
		if ctx.Err() != nil {
			break
		}
		results = append(results, r.runAction(ctx, action))
	}

	return Report{
		Results: results,
		Status:  r.recorder.Status(),
		Log:     r.recorder.Entries(),
	}
}

func (r *Runner) runAction(ctx context.Context, action dispatch.Action) Result {
	result := Result{Name: action.String()}

	p, rejected := r.dispatcher.Prepare(action, r.cfg.BaseURL, r.cfg.Text)
	if p == nil {
		return fill(result, rejected)
	}
	result.Method = p.Request.Method
	result.URL = p.Request.URL()

	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	out := r.dispatcher.Execute(callCtx, p)
	r.dispatcher.Complete(p, out)
	return fill(result, out)
}

func fill(r Result, out *protocol.Outcome) Result {
	r.Success = out.Success
	r.StatusCode = out.StatusCode
	r.Status = out.StatusText
	r.Duration = out.Duration
	r.Size = out.Size
	if out.Success {
		r.Data = out.Data
	} else {
		r.ErrorString = out.ErrorMessage
	}
	return r
}

// ExitCode returns 0 when every command succeeded and 2 otherwise.
func ExitCode(results []Result) int {
	for _, r := range results {
		if !r.Success {
			return 2
		}
	}
	return 0
}
