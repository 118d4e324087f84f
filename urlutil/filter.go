package urlutil

import (
	"net/url"
	"strings"
)

// SameHost reports whether rawURL points at exactly the given host
// (including any port). Subdomains are treated as different hosts: the
// crawler never leaves the start URL's host.
func SameHost(rawURL string, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return strings.EqualFold(parsed.Host, host)
}

// HasHTTPPrefix reports whether the raw attribute value begins with the
// literal "http://" or "https://". Only absolute http(s) references are
// verified; relative, anchor, and mailto values are out of scope.
func HasHTTPPrefix(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// Host extracts the host (including any port) from a URL string.
// Returns an empty string if the URL cannot be parsed.
func Host(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
