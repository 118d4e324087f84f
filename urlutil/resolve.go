// Package urlutil provides URL helpers shared by the discovery and
// verification stages.
package urlutil

import (
	"fmt"
	"net/url"
)

// Resolve resolves a possibly-relative ref URL against a base URL.
// If ref is absolute, it is returned as-is. Otherwise it is resolved
// relative to base using net/url.URL.ResolveReference.
func Resolve(base string, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", base, err)
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse ref URL %q: %w", ref, err)
	}

	return baseURL.ResolveReference(refURL).String(), nil
}
