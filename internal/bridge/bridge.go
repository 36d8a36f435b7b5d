// Package bridge stands in for the isolation boundary between the UI and
// the process that performs network I/O. In a single process it forwards
// request fields to the transport unchanged.
package bridge

import (
	"context"
	"log/slog"

	"github.com/sadopc/edgepanel/internal/core/dispatch"
	"github.com/sadopc/edgepanel/internal/logging"
	"github.com/sadopc/edgepanel/internal/protocol"
)

// Bridge forwards calls to a transport and persists snapshots.
type Bridge struct {
	transport protocol.Transport
	logger    *slog.Logger
}

// New creates a bridge in front of t.
func New(t protocol.Transport, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Bridge{transport: t, logger: logger}
}

// Execute implements protocol.Transport. A body is only forwarded for
// methods that carry one.
func (b *Bridge) Execute(ctx context.Context, req *protocol.Request) (*protocol.Outcome, error) {
	fwd := *req
	if !fwd.CarriesBody() {
		fwd.Body = nil
	}
	b.logger.Debug("bridge call", "method", fwd.Method, "url", fwd.URL())
	return b.transport.Execute(ctx, &fwd)
}

// Call delivers method, path, baseURL and body to the transport and always
// returns an outcome; errors are folded in the same way the dispatcher
// folds them.
func (b *Bridge) Call(ctx context.Context, method, path, baseURL string, body any) *protocol.Outcome {
	out, err := b.Execute(ctx, &protocol.Request{
		Method:  method,
		Path:    path,
		BaseURL: baseURL,
		Body:    body,
	})
	return dispatch.Wrap(out, err)
}
