package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/edgepanel/internal/protocol"
)

func TestClient_GET(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/start" {
			t.Errorf("expected /start, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json content type, got %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		json.NewEncoder(w).Encode(map[string]bool{"ready": true})
	}))
	defer server.Close()

	client := New()
	out, err := client.Execute(context.Background(), &protocol.Request{
		Method:  "GET",
		Path:    "/start",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success outcome")
	}
	if out.StatusCode != 200 || out.StatusText != "OK" {
		t.Errorf("expected 200 OK, got %d %s", out.StatusCode, out.StatusText)
	}
	if out.Duration == 0 {
		t.Error("duration should be > 0")
	}

	var data map[string]bool
	if err := json.Unmarshal(out.Data, &data); err != nil {
		t.Fatalf("data unmarshal failed: %v", err)
	}
	if !data["ready"] {
		t.Errorf("expected ready=true, got %v", data)
	}
}

func TestClient_POSTSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		var data map[string]string
		json.Unmarshal(body, &data)
		if data["text"] != "hello" {
			t.Errorf("expected text=hello, got %q", data["text"])
		}
		w.WriteHeader(201)
		w.Write([]byte(`{"received":true}`))
	}))
	defer server.Close()

	client := New()
	out, err := client.Execute(context.Background(), &protocol.Request{
		Method:  "POST",
		Path:    "/text",
		BaseURL: server.URL,
		Body:    map[string]string{"text": "hello"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.StatusCode != 201 {
		t.Errorf("expected 201, got %d", out.StatusCode)
	}
}

func TestClient_GETDropsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("expected no body for GET, got %q", body)
		}
		w.WriteHeader(204)
	}))
	defer server.Close()

	out, err := New().Execute(context.Background(), &protocol.Request{
		Method:  "GET",
		Path:    "/stop",
		BaseURL: server.URL,
		Body:    map[string]string{"ignored": "yes"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Data != nil {
		t.Errorf("expected nil data for empty body, got %s", out.Data)
	}
}

func TestClient_NonJSONBodyWrappedAsString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("started"))
	}))
	defer server.Close()

	out, err := New().Execute(context.Background(), &protocol.Request{
		Method: "GET", Path: "/start", BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(out.Data) != `"started"` {
		t.Errorf("expected quoted string data, got %s", out.Data)
	}
}

func TestClient_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := New().Execute(context.Background(), &protocol.Request{
		Method: "GET", Path: "/start", BaseURL: server.URL,
	})
	var te *protocol.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.StatusCode != 503 {
		t.Errorf("expected 503, got %d", te.StatusCode)
	}
	if te.StatusText != "Service Unavailable" {
		t.Errorf("expected Service Unavailable, got %q", te.StatusText)
	}
	if !strings.Contains(te.Error(), "503") {
		t.Errorf("error should mention status code: %q", te.Error())
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New()
	client.SetTimeout(50 * time.Millisecond)

	_, err := client.Execute(context.Background(), &protocol.Request{
		Method: "GET", Path: "/start", BaseURL: server.URL,
	})
	var te *protocol.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !te.Timeout() {
		t.Errorf("expected timeout error, got %v", err)
	}
	if te.StatusCode != 0 {
		t.Errorf("expected status 0 on timeout, got %d", te.StatusCode)
	}
	if !strings.Contains(te.Error(), "timeout") {
		t.Errorf("error should describe the timeout: %q", te.Error())
	}
}

func TestClient_TimeoutWhileReadingBody(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"partial":`))
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := New()
	client.SetTimeout(100 * time.Millisecond)

	_, err := client.Execute(context.Background(), &protocol.Request{
		Method: "GET", Path: "/start", BaseURL: server.URL,
	})
	var te *protocol.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !te.Timeout() {
		t.Errorf("expected timeout error, got %v", err)
	}
	if te.StatusCode != 0 || te.StatusText != "" {
		t.Errorf("expected no status on timeout, got %d %q", te.StatusCode, te.StatusText)
	}
	if !strings.Contains(te.Error(), "timeout of 100ms exceeded") {
		t.Errorf("error should describe the timeout: %q", te.Error())
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New().Execute(context.Background(), &protocol.Request{
		Method: "GET", Path: "/start", BaseURL: url,
	})
	var te *protocol.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.StatusCode != 0 {
		t.Errorf("expected status 0, got %d", te.StatusCode)
	}
}

func TestClient_Validate(t *testing.T) {
	client := New()

	if err := client.Validate(&protocol.Request{BaseURL: "", Method: "GET", Path: "/start"}); err == nil {
		t.Error("should fail with empty base URL")
	}
	if err := client.Validate(&protocol.Request{BaseURL: "http://example.com", Method: ""}); err == nil {
		t.Error("should fail with empty method")
	}
	if err := client.Validate(&protocol.Request{BaseURL: "http://example.com", Method: "GET", Path: "/start"}); err != nil {
		t.Errorf("should pass: %v", err)
	}
}

func TestClient_DefaultTimeout(t *testing.T) {
	client := New()
	if client.Timeout() != DefaultTimeout {
		t.Errorf("expected %s, got %s", DefaultTimeout, client.Timeout())
	}
	client.SetTimeout(0)
	if client.Timeout() != DefaultTimeout {
		t.Error("non-positive timeout should be ignored")
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		status string
		code   int
		want   string
	}{
		{"200 OK", 200, "OK"},
		{"404 Not Found", 404, "Not Found"},
		{"418", 418, "I'm a teapot"},
		{"299 Custom Thing", 299, "Custom Thing"},
	}
	for _, tt := range tests {
		got := statusText(&http.Response{Status: tt.status, StatusCode: tt.code})
		if got != tt.want {
			t.Errorf("statusText(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestClient_SetTLSConfig(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"running":true}`))
	}))
	defer server.Close()

	client := New()
	req := &protocol.Request{Method: "GET", Path: "/start", BaseURL: server.URL}
	if _, err := client.Execute(context.Background(), req); err == nil {
		t.Fatal("expected certificate error with the default transport")
	}

	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())
	client.SetTLSConfig(&tls.Config{RootCAs: pool})

	out, err := client.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute with trusted device cert: %v", err)
	}
	if !out.Success || out.StatusCode != 200 {
		t.Errorf("outcome = %+v", out)
	}

	client.SetTLSConfig(nil)
	if _, err := client.Execute(context.Background(), req); err == nil {
		t.Error("expected certificate error after clearing TLS config")
	}
}
