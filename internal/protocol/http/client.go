package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sadopc/edgepanel/internal/protocol"
)

// DefaultTimeout bounds every request unless SetTimeout is called.
const DefaultTimeout = 10 * time.Second

const acceptHeader = "application/json, text/plain, */*"

// Client implements protocol.Transport over HTTP with JSON payloads.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// New creates a new HTTP client.
func New() *Client {
	return &Client{
		httpClient: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// SetTimeout sets the per-request upper bound.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// Timeout returns the per-request upper bound.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// SetTLSConfig sets the TLS configuration used for https base URLs. A nil
// config restores the default transport.
func (c *Client) SetTLSConfig(cfg *tls.Config) {
	if cfg == nil {
		c.httpClient.Transport = nil
		return
	}
	c.httpClient.Transport = &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig:     cfg,
	}
}

// SetLogger sets the structured logger used for request diagnostics.
func (c *Client) SetLogger(l *slog.Logger) {
	if l != nil {
		c.logger = l
	}
}

// Validate checks that the request can be turned into an HTTP call.
func (c *Client) Validate(req *protocol.Request) error {
	if req.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if req.Method == "" {
		return fmt.Errorf("method is required")
	}
	if _, err := url.Parse(req.URL()); err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	return nil
}

// Execute sends the request and normalizes the response.
func (c *Client) Execute(ctx context.Context, req *protocol.Request) (*protocol.Outcome, error) {
	if err := c.Validate(req); err != nil {
		return nil, &protocol.TransportError{Err: err}
	}

	var body io.Reader
	if req.CarriesBody() && req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &protocol.TransportError{Err: fmt.Errorf("encoding body: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL(), body)
	if err != nil {
		return nil, &protocol.TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", acceptHeader)

	client := *c.httpClient
	client.Timeout = c.timeout

	c.logger.Debug("sending request", "method", req.Method, "url", req.URL())

	start := time.Now()
	resp, err := client.Do(httpReq)
	if err != nil {
		c.logger.Warn("request failed", "method", req.Method, "url", req.URL(), "err", err)
		return nil, &protocol.TransportError{Err: c.describe(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn("reading response failed", "method", req.Method, "url", req.URL(), "err", err)
		described := c.describe(fmt.Errorf("reading response: %w", err))
		var te *timeoutError
		if errors.As(described, &te) {
			return nil, &protocol.TransportError{Err: described}
		}
		return nil, &protocol.TransportError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
			Err:        described,
		}
	}

	c.logger.Debug("response received",
		"method", req.Method,
		"url", req.URL(),
		"status", resp.StatusCode,
		"duration", duration,
		"size", len(raw),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &protocol.TransportError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
			Err:        fmt.Errorf("request failed with status code %d", resp.StatusCode),
		}
	}

	out := protocol.Succeeded(resp.StatusCode, statusText(resp), decodeData(raw))
	out.Duration = duration
	out.Size = int64(len(raw))
	return out, nil
}

// describe turns deadline expiry into a readable timeout error and keeps
// everything else as is.
func (c *Client) describe(err error) error {
	var te interface{ Timeout() bool }
	if (errors.As(err, &te) && te.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return &timeoutError{after: c.timeout, err: err}
	}
	return err
}

type timeoutError struct {
	after time.Duration
	err   error
}

func (e *timeoutError) Error() string {
	return fmt.Sprintf("timeout of %s exceeded", e.after)
}

func (e *timeoutError) Unwrap() error { return e.err }

func (e *timeoutError) Timeout() bool { return true }

// statusText returns the reason phrase without the numeric prefix.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// decodeData keeps JSON bodies as-is and wraps anything else as a JSON string.
func decodeData(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return nil
	}
	return json.RawMessage(quoted)
}
