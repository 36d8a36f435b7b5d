package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vincent-petithory/dataurl"
)

var errNotDataURL = errors.New("not a data URL")

// SaveSnapshot decodes dataURL and writes it to path. It returns false when
// path is empty (the save prompt was cancelled), the URL is malformed, or
// the write fails.
func (b *Bridge) SaveSnapshot(dataURL, path string) bool {
	if strings.TrimSpace(path) == "" {
		b.logger.Info("snapshot save cancelled")
		return false
	}

	_, data, err := ParseDataURL(dataURL)
	if err != nil {
		b.logger.Warn("snapshot rejected", "err", err)
		return false
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			b.logger.Warn("snapshot save failed", "path", path, "err", err)
			return false
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		b.logger.Warn("snapshot save failed", "path", path, "err", err)
		return false
	}

	b.logger.Info("snapshot saved", "path", path, "bytes", len(data))
	return true
}

// ParseDataURL splits a "data:" URL into its media type and decoded payload.
// Percent-encoded base64 payloads are unescaped before decoding.
func ParseDataURL(s string) (string, []byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return "", nil, errNotDataURL
	}
	if meta, payload, ok := strings.Cut(s, ","); ok && strings.HasSuffix(meta, ";base64") && strings.Contains(payload, "%") {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return "", nil, fmt.Errorf("decoding payload: %w", err)
		}
		s = meta + "," + unescaped
	}

	du, err := dataurl.DecodeString(s)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URL: %w", err)
	}
	return du.MediaType.ContentType(), du.Data, nil
}

// SuggestFilename builds a default file name whose extension follows the
// sniffed content type.
func SuggestFilename(data []byte, now time.Time) string {
	ext := mimetype.Detect(data).Extension()
	if ext == "" {
		ext = ".bin"
	}
	return "snapshot-" + now.Format("20060102-150405") + ext
}

// snapshotKeys are checked first when searching response data.
var snapshotKeys = []string{"snapshot", "image", "frame"}

// FindDataURL returns the first "data:" URL string in a JSON document,
// preferring well-known snapshot keys at the top level.
func FindDataURL(raw json.RawMessage) (string, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", false
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", false
	}

	if obj, ok := doc.(map[string]any); ok {
		for _, k := range snapshotKeys {
			if s, ok := obj[k].(string); ok && strings.HasPrefix(s, "data:") {
				return s, true
			}
		}
	}
	return findDataURL(doc)
}

func findDataURL(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "data:") {
			return t, true
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if s, ok := findDataURL(t[k]); ok {
				return s, true
			}
		}
	case []any:
		for _, child := range t {
			if s, ok := findDataURL(child); ok {
				return s, true
			}
		}
	}
	return "", false
}
