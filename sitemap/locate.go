// Package sitemap locates a site's sitemap and flattens it, including
// recursively nested sitemap indexes, into a list of page URLs.
package sitemap

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/lukemcguire/sitecheck/urlutil"
)

// Config holds discovery fetch settings.
type Config struct {
	Timeout   time.Duration // per-request bound (default 30s)
	UserAgent string
}

func (cfg Config) withDefaults() Config {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg
}

// wellKnownPaths are probed in order; the first 200 response with a
// non-empty body wins.
var wellKnownPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap/sitemap.xml",
}

// Locate attempts to find a sitemap for the site at siteRoot. It probes the
// well-known sitemap paths first and falls back to the robots.txt Sitemap
// directive. Probe failures are non-fatal; the next candidate is tried.
// Returns false when no sitemap could be found.
func Locate(ctx context.Context, client *http.Client, siteRoot string, cfg Config) (string, bool) {
	cfg = cfg.withDefaults()

	for _, path := range wellKnownPaths {
		candidate, err := urlutil.Resolve(siteRoot, path)
		if err != nil {
			continue
		}
		status, body, err := fetch(ctx, client, candidate, cfg)
		if err != nil {
			continue
		}
		if status == http.StatusOK && len(body) > 0 {
			return candidate, true
		}
	}

	robotsURL, err := urlutil.Resolve(siteRoot, "/robots.txt")
	if err != nil {
		return "", false
	}
	status, body, err := fetch(ctx, client, robotsURL, cfg)
	if err != nil || status != http.StatusOK {
		return "", false
	}

	robots, err := robotstxt.FromBytes(body)
	if err != nil {
		return "", false
	}
	if len(robots.Sitemaps) > 0 {
		return robots.Sitemaps[0], true
	}
	return "", false
}

// fetch issues a GET with the configured timeout and reads the whole body.
func fetch(ctx context.Context, client *http.Client, rawURL string, cfg Config) (int, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
