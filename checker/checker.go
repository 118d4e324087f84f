// Package checker verifies every hyperlink, image, stylesheet, and script
// reference on a set of pages, dispatching per-page checks across a bounded
// worker pool with a shared politeness pacer.
package checker

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/lukemcguire/sitecheck/result"
	"github.com/lukemcguire/sitecheck/urlutil"
)

// Config holds verification settings.
type Config struct {
	Workers       int           // worker pool size (default 5)
	Timeout       time.Duration // per-request bound (default 30s)
	Delay         time.Duration // politeness delay before each request (default 1s, negative disables)
	SlowThreshold time.Duration // responses slower than this become findings (default 10s)
	UserAgent     string
}

func (cfg Config) withDefaults() Config {
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Delay == 0 {
		cfg.Delay = time.Second
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = 10 * time.Second
	}
	return cfg
}

// Checker verifies the resource references of a single page. Invocations
// are independent; a Checker is safe for concurrent use by the pool.
type Checker struct {
	client *http.Client
	pacer  *Pacer
	cfg    Config
	events chan<- Event
}

// NewChecker creates a Checker. The events channel is optional; pass nil to
// disable diagnostics and finding notifications.
func NewChecker(client *http.Client, cfg Config, events chan<- Event) *Checker {
	cfg = cfg.withDefaults()
	return &Checker{
		client: client,
		pacer:  NewPacer(cfg.Delay),
		cfg:    cfg,
		events: events,
	}
}

// CheckPage fetches a page, extracts its candidate resource references, and
// verifies each with a HEAD request. It returns the findings in extraction
// order. An unreachable page contributes zero findings; nothing here is
// fatal to the run.
func (c *Checker) CheckPage(ctx context.Context, pageURL string) []result.Finding {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil
	}
	base := resp.Request.URL.String()

	var findings []result.Finding
	doc.Find("a, img, link, script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		raw, ok := candidateRef(sel)
		if !ok {
			return true
		}
		target, err := urlutil.Resolve(base, raw)
		if err != nil {
			return true
		}
		if finding, ok := c.checkLink(ctx, pageURL, target); ok {
			findings = append(findings, finding)
		}
		return true
	})

	return findings
}

// candidateRef extracts the checkable reference from a tag, applying the
// extraction filters: preconnect/dns-prefetch link hints, empty values,
// non-absolute values, and the xmlrpc.php endpoint are all skipped.
func candidateRef(sel *goquery.Selection) (string, bool) {
	tag := goquery.NodeName(sel)

	attrKey := "href"
	if tag == "img" || tag == "script" {
		attrKey = "src"
	}

	if tag == "link" {
		rel := strings.ToLower(sel.AttrOr("rel", ""))
		if strings.Contains(rel, "preconnect") || strings.Contains(rel, "dns-prefetch") {
			return "", false
		}
	}

	raw := sel.AttrOr(attrKey, "")
	if raw == "" {
		return "", false
	}
	if !urlutil.HasHTTPPrefix(raw) {
		return "", false
	}
	if strings.Contains(raw, "xmlrpc.php") {
		return "", false
	}
	return raw, true
}

// checkLink issues a paced HEAD request for one link and decides whether it
// yields a finding. TLS failures are silent skips; other network failures
// become request-failed findings with a diagnostic.
func (c *Checker) checkLink(ctx context.Context, page, link string) (result.Finding, bool) {
	if err := c.pacer.Wait(ctx); err != nil {
		return result.Finding{}, false
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, link, nil)
	if err != nil {
		return c.fail(page, link, err), true
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		if isTLSError(err) {
			return result.Finding{}, false
		}
		return c.fail(page, link, err), true
	}
	_ = resp.Body.Close()

	if resp.StatusCode == http.StatusOK && elapsed <= c.cfg.SlowThreshold {
		return result.Finding{}, false
	}

	finding := result.Finding{
		Status:  result.HTTPStatus(resp.StatusCode),
		Page:    page,
		Link:    link,
		Elapsed: elapsed,
		Timed:   true,
	}
	c.emit(Event{Kind: EventFinding, Finding: finding, Page: page})
	return finding, true
}

// fail builds a request-failed finding and emits its diagnostic.
func (c *Checker) fail(page, link string, err error) result.Finding {
	c.emit(Event{
		Kind:    EventDiagnostic,
		Message: fmt.Sprintf("Error checking link %s on page %s: %v", link, page, err),
		Page:    page,
	})
	finding := result.Finding{Status: result.RequestFailed(), Page: page, Link: link}
	c.emit(Event{Kind: EventFinding, Finding: finding, Page: page})
	return finding
}

func (c *Checker) emit(evt Event) {
	if c.events != nil {
		c.events <- evt
	}
}
