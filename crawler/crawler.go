// Package crawler provides the fallback breadth-first same-host crawler used
// to build the page list when a site has no sitemap.
package crawler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lukemcguire/sitecheck/urlutil"
)

// Config holds crawl settings.
type Config struct {
	MaxPages  int           // ceiling on found pages; 0 means crawl nothing
	Timeout   time.Duration // per-request bound (default 30s)
	UserAgent string
}

// DefaultMaxPages bounds the fallback crawl when no limit is given.
const DefaultMaxPages = 100

// Crawl performs a single-threaded breadth-first traversal starting at
// startURL, returning the HTML pages found on the start URL's host, in
// deterministic FIFO discovery order. Fetch failures, non-200 statuses, and
// non-HTML content types are silent skips. Links to other hosts are never
// enqueued. The traversal stops once cfg.MaxPages pages have been found or
// the queue is exhausted.
func Crawl(ctx context.Context, client *http.Client, startURL string, cfg Config) []string {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	host := urlutil.Host(startURL)
	if host == "" {
		return nil
	}

	states := newStateTracker()
	states.markQueued(startURL)
	queue := []string{startURL}
	var found []string

	for len(queue) > 0 && len(found) < cfg.MaxPages {
		if ctx.Err() != nil {
			break
		}

		current := queue[0]
		queue = queue[1:]
		if states.state(current) == stateVisited {
			continue
		}
		states.markVisited(current)

		body, base, ok := fetchHTMLPage(ctx, client, current, cfg)
		if !ok {
			continue
		}
		found = append(found, current)

		for _, link := range extractAnchors(bytes.NewReader(body), base) {
			if !urlutil.SameHost(link, host) {
				continue
			}
			if states.markQueued(link) {
				queue = append(queue, link)
			}
		}
	}

	return found
}

// fetchHTMLPage fetches a page and returns its body and base URL for link
// resolution. ok is false for network errors, non-200 statuses, and
// non-HTML content types.
func fetchHTMLPage(ctx context.Context, client *http.Client, pageURL string, cfg Config) (body []byte, base *url.URL, ok bool) {
	reqCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, nil, false
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, false
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "html") {
		return nil, nil, false
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, false
	}

	// Resolve relative links against the final URL after redirects.
	return body, resp.Request.URL, true
}
