package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/sadopc/edgepanel/internal/config"
	"github.com/sadopc/edgepanel/internal/mock"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.BaseURLEnv, "")
}

func TestParseInterleaved(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPos  []string
		wantText string
	}{
		{"flags first", []string{"--text", "hi", "start", "stop"}, []string{"start", "stop"}, "hi"},
		{"flags last", []string{"start", "text", "--text", "hi"}, []string{"start", "text"}, "hi"},
		{"mixed", []string{"start", "--text=hi", "stop"}, []string{"start", "stop"}, "hi"},
		{"none", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			text := fs.String("text", "", "")

			got, err := parseInterleaved(fs, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.wantPos) {
				t.Errorf("positional = %v, want %v", got, tt.wantPos)
			}
			if *text != tt.wantText {
				t.Errorf("text = %q, want %q", *text, tt.wantText)
			}
		})
	}
}

func TestCallCmd_AgainstDemoBackend(t *testing.T) {
	isolateConfig(t)
	srv := httptest.NewServer(mock.New().Handler())
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	code := callCmd([]string{"start", "text", "--text", "hello", "--base-url", srv.URL}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"✓ start", "✓ text", "Making POST request to /text", "Status: POST /text successful", "Commands: 2 total, 0 errors"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestCallCmd_JSONOutput(t *testing.T) {
	isolateConfig(t)
	srv := httptest.NewServer(mock.New().Handler())
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	code := callCmd([]string{"stop", "--output", "json", "--base-url", srv.URL}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	var report struct {
		Results []struct {
			Name       string `json:"name"`
			StatusCode int    `json:"status_code"`
		} `json:"results"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(report.Results) != 1 || report.Results[0].Name != "stop" || report.Results[0].StatusCode != 200 {
		t.Errorf("report = %+v", report)
	}
}

func TestCallCmd_Failures(t *testing.T) {
	isolateConfig(t)
	failing := httptest.NewServer(mock.New(mock.WithErrorRate(1)).Handler())
	defer failing.Close()

	tests := []struct {
		name    string
		args    []string
		wantErr string
		wantOut string
	}{
		{"no commands", nil, "at least one command is required", ""},
		{"unknown command", []string{"reboot"}, `unknown action "reboot"`, ""},
		{"bad output", []string{"start", "--output", "xml"}, "invalid output format", ""},
		{"blank text", []string{"text", "--base-url", failing.URL}, "", "Please enter some text first"},
		{"server error", []string{"start", "--base-url", failing.URL}, "", "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := callCmd(tt.args, &stdout, &stderr); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if tt.wantErr != "" && !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantErr)
			}
			if tt.wantOut != "" && !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
		})
	}
}

func TestServeCmd_RejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"error rate", []string{"--error-rate", "2"}, "error-rate must be between"},
		{"port", []string{"--port", "70000"}, "port must be between"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := serveCmd(tt.args, &stderr); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}

func TestThemesCmd(t *testing.T) {
	var out bytes.Buffer
	themesCmd(&out)
	if !strings.Contains(out.String(), "Catppuccin Mocha\n") {
		t.Errorf("themes output = %q", out.String())
	}
}
