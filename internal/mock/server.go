// Package mock serves a stand-in edge backend answering /start, /stop and
// /text so the panel can be exercised without the real service.
package mock

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/edgepanel/internal/logging"
)

// Route is one served method+path pair.
type Route struct {
	Method string
	Path   string
}

func (r Route) String() string {
	return r.Method + " " + r.Path
}

// Server is the demo backend.
type Server struct {
	port       int
	latency    time.Duration
	errorRate  float64
	corsOrigin string
	logger     *slog.Logger

	mu        sync.Mutex
	running   bool
	startedAt time.Time
	texts     int

	routes map[Route]http.HandlerFunc
}

// Option configures a Server.
type Option func(*Server)

// WithPort sets the listen port.
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithLatency delays every response.
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

// WithErrorRate makes a fraction of requests fail with 500. Clamped to [0,1].
func WithErrorRate(rate float64) Option {
	return func(s *Server) { s.errorRate = min(max(rate, 0), 1) }
}

// WithCORSOrigin sets Access-Control-Allow-Origin.
func WithCORSOrigin(origin string) Option {
	return func(s *Server) { s.corsOrigin = origin }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a demo backend.
func New(opts ...Option) *Server {
	s := &Server{
		port:       3000,
		corsOrigin: "*",
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes = map[Route]http.HandlerFunc{
		{Method: http.MethodGet, Path: "/start"}:  s.handleStart,
		{Method: http.MethodGet, Path: "/stop"}:   s.handleStop,
		{Method: http.MethodPost, Path: "/text"}:  s.handleText,
		{Method: http.MethodGet, Path: "/status"}: s.handleStatus,
	}
	return s
}

// Port returns the configured port.
func (s *Server) Port() int {
	return s.port
}

// Routes returns the served routes sorted by path.
func (s *Server) Routes() []Route {
	routes := make([]Route, 0, len(s.routes))
	for r := range s.routes {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	return routes
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.serve)
}

// Start listens until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("demo backend listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	s.logger.Info("request", "method", r.Method, "path", r.URL.Path)

	handler, ok := s.routes[Route{Method: r.Method, Path: r.URL.Path}]
	if !ok {
		s.notFound(w, r)
		return
	}

	if s.errorRate > 0 && rand.Float64() < s.errorRate {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Simulated server error"})
		return
	}

	handler(w, r)
}

func (s *Server) setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	routes := s.Routes()
	available := make([]string, len(routes))
	for i, rt := range routes {
		available[i] = rt.String()
	}
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":     fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path),
		"available": available,
	})
}

func (s *Server) handleStart(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	already := s.running
	if !already {
		s.running = true
		s.startedAt = time.Now()
	}
	startedAt := s.startedAt
	s.mu.Unlock()

	msg := "detector started"
	if already {
		msg = "detector already running"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"running":   true,
		"message":   msg,
		"startedAt": startedAt.UTC().Format(time.RFC3339),
		"frame":     frameDataURL(),
	})
}

func (s *Server) handleStop(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	was := s.running
	s.running = false
	s.mu.Unlock()

	msg := "detector stopped"
	if !was {
		msg = "detector was not running"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"running": false,
		"message": msg,
	})
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	s.mu.Lock()
	s.texts++
	count := s.texts
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"id":       uuid.NewString(),
		"received": body.Text,
		"length":   len([]rune(body.Text)),
		"count":    count,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"running": s.running,
		"texts":   s.texts,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// frameDataURL renders a small gradient PNG standing in for a captured frame.
func frameDataURL() string {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
