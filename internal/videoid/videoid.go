package videoid

import (
	"net/url"
	"strings"
)

// Extract derives a canonical video id from a raw reference. Strings
// that are not URL-shaped are treated as already-canonical ids and
// returned trimmed. For URLs the id is taken from the short-link path,
// the "v" query parameter, or the last path segment, in that order.
// Extract never fails; unparsable input comes back unchanged.
func Extract(raw string) string {
	if !strings.Contains(raw, "http") {
		return strings.TrimSpace(raw)
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}

	if strings.Contains(parsed.Hostname(), "youtu.be") {
		return strings.TrimPrefix(parsed.Path, "/")
	}

	if v := parsed.Query().Get("v"); v != "" {
		return v
	}

	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return raw
	}
	return segments[len(segments)-1]
}
