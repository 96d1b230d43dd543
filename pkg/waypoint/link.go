package waypoint

import (
	"net/url"
	"strings"
)

// Parameters holds the query items of a link. Each key maps to the last
// value it was given.
type Parameters map[string]string

// Get returns the value for key, or "" when absent.
func (p Parameters) Get(key string) string {
	return p[key]
}

// Has reports whether key was present with a value.
func (p Parameters) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Link is a URL decomposed into navigable parts.
type Link struct {
	Scheme   string
	Segments []string // host first, then path tokens
	Params   Parameters
}

// Parse decomposes rawURL into a Link. It fails with KindUnparseable on URL
// syntax errors and KindNoSegments when there is nothing to navigate to.
func Parse(rawURL string) (Link, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Link{}, newResolveError(KindUnparseable, rawURL, err)
	}

	path := u.Path
	if u.Opaque != "" {
		// scheme:detail/list has no authority; the whole rest is the path
		path, err = url.PathUnescape(u.Opaque)
		if err != nil {
			return Link{}, newResolveError(KindUnparseable, rawURL, err)
		}
	}

	segments := splitSegments(u.Hostname(), path)
	if len(segments) == 0 {
		return Link{}, newResolveError(KindNoSegments, rawURL, nil)
	}

	return Link{
		Scheme:   u.Scheme,
		Segments: segments,
		Params:   parseParameters(u.RawQuery),
	}, nil
}

// splitSegments puts host first and then every non-empty path token.
func splitSegments(host, path string) []string {
	// Estimate capacity
	maxSegments := 1
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			maxSegments++
		}
	}

	segments := make([]string, 0, maxSegments+1)
	if host != "" {
		segments = append(segments, host)
	}

	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}

	return segments
}

// parseParameters walks the raw query in order so that later items
// overwrite earlier ones. Items without '=' carry no value and are dropped;
// items with bad escapes are skipped. Only percent escapes are decoded, a '+'
// stays a '+'.
func parseParameters(rawQuery string) Parameters {
	params := make(Parameters)

	for rawQuery != "" {
		var item string
		item, rawQuery, _ = strings.Cut(rawQuery, "&")
		if item == "" {
			continue
		}

		rawKey, rawValue, hasValue := strings.Cut(item, "=")
		if !hasValue {
			continue
		}

		key, err := url.PathUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			continue
		}

		params[key] = value
	}

	return params
}
