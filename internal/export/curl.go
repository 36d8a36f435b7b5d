package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sadopc/edgepanel/internal/protocol"
)

// AsCurl converts a request to a curl command string equivalent to what the
// HTTP transport sends.
func AsCurl(req *protocol.Request) string {
	var parts []string
	parts = append(parts, "curl")

	if req.Method != "GET" {
		parts = append(parts, "-X", req.Method)
	}

	parts = append(parts, "-H", quote("Content-Type: application/json"))

	if req.CarriesBody() && req.Body != nil {
		body, err := json.Marshal(req.Body)
		if err == nil {
			parts = append(parts, "-d", quote(string(body)))
		}
	}

	parts = append(parts, quote(req.URL()))

	return strings.Join(parts, " ")
}

func quote(s string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(s, "'", `'\''`))
}
