package profile

import (
	"net/url"
	"strings"
)

// NormalizeIdentifier reduces a free-form identifier to the canonical
// username used for cache keys. It accepts a bare handle, an "@handle" or a
// full profile URL with tracking parameters; all variants of the same
// profile must land on the same cache entry.
func NormalizeIdentifier(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	if strings.Contains(s, "instagram.com/") {
		if !strings.Contains(s, "://") {
			s = "https://" + s
		}
		parsed, err := url.Parse(s)
		if err != nil {
			return ""
		}
		// first path segment is the handle, the rest is page noise
		s = strings.Trim(parsed.Path, "/")
		if i := strings.IndexByte(s, '/'); i >= 0 {
			s = s[:i]
		}
	}

	s = strings.TrimPrefix(s, "@")
	return strings.TrimSpace(s)
}
