package export

import (
	"strings"
	"testing"

	"github.com/sadopc/edgepanel/internal/protocol"
)

func TestAsCurl_GET(t *testing.T) {
	req := &protocol.Request{
		Method:  "GET",
		Path:    "/start",
		BaseURL: "http://localhost:3000",
	}

	result := AsCurl(req)
	if !strings.HasPrefix(result, "curl") {
		t.Error("should start with 'curl'")
	}
	if strings.Contains(result, "-X") {
		t.Error("GET should not have -X flag")
	}
	if !strings.Contains(result, "Content-Type: application/json") {
		t.Error("should contain Content-Type header")
	}
	if !strings.HasSuffix(result, "'http://localhost:3000/start'") {
		t.Errorf("should end with URL, got: %s", result)
	}
}

func TestAsCurl_POST(t *testing.T) {
	req := &protocol.Request{
		Method:  "POST",
		Path:    "/text",
		BaseURL: "http://localhost:3000",
		Body:    map[string]string{"text": "hello"},
	}

	result := AsCurl(req)
	if !strings.Contains(result, "-X POST") {
		t.Error("should have -X POST")
	}
	if !strings.Contains(result, `-d '{"text":"hello"}'`) {
		t.Errorf("should contain body data, got: %s", result)
	}
}

func TestAsCurl_GETIgnoresBody(t *testing.T) {
	req := &protocol.Request{
		Method:  "GET",
		Path:    "/stop",
		BaseURL: "http://localhost:3000",
		Body:    map[string]string{"x": "y"},
	}
	if strings.Contains(AsCurl(req), "-d") {
		t.Error("GET should not carry a body")
	}
}

func TestAsCurl_EscapesSingleQuotes(t *testing.T) {
	req := &protocol.Request{
		Method:  "POST",
		Path:    "/text",
		BaseURL: "http://localhost:3000",
		Body:    map[string]string{"text": "it's"},
	}

	result := AsCurl(req)
	if !strings.Contains(result, `'\''`) {
		t.Errorf("single quote should be escaped, got: %s", result)
	}
}
