package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// document is a decoded sitemap or sitemap index. Field tags match local
// element names, so documents with or without a namespace declaration
// decode identically.
type document struct {
	Sitemaps []locEntry `xml:"sitemap"`
	URLs     []locEntry `xml:"url"`
}

type locEntry struct {
	Loc string `xml:"loc"`
}

// Resolver flattens a sitemap, expanding nested sitemap indexes to arbitrary
// depth. A location set guards against cyclic or self-referential indexes:
// an already-expanded location is refused with a diagnostic instead of
// recursing again.
type Resolver struct {
	client *http.Client
	cfg    Config
	seen   mapset.Set[string]
	diag   io.Writer
}

// NewResolver creates a Resolver. Diagnostics for failed or refused branches
// are written to diag; pass nil for stderr.
func NewResolver(client *http.Client, cfg Config, diag io.Writer) *Resolver {
	if diag == nil {
		diag = os.Stderr
	}
	return &Resolver{
		client: client,
		cfg:    cfg.withDefaults(),
		seen:   mapset.NewSet[string](),
		diag:   diag,
	}
}

// Resolve fetches the sitemap at sitemapURL and returns its page URLs in
// document order, with each <sitemap> entry's expansion preceding the
// document's direct <url> entries. A fetch or parse failure is local to its
// branch: a diagnostic is emitted and the branch contributes zero pages.
func (r *Resolver) Resolve(ctx context.Context, sitemapURL string) []string {
	if !r.seen.Add(sitemapURL) {
		fmt.Fprintf(r.diag, "Skipping already-expanded sitemap %s\n", sitemapURL)
		return nil
	}

	status, body, err := fetch(ctx, r.client, sitemapURL, r.cfg)
	if err != nil {
		fmt.Fprintf(r.diag, "Error parsing sitemap %s: %v\n", sitemapURL, err)
		return nil
	}
	if status < 200 || status >= 300 {
		fmt.Fprintf(r.diag, "Error parsing sitemap %s: status %d\n", sitemapURL, status)
		return nil
	}

	var doc document
	if err := xml.Unmarshal(body, &doc); err != nil {
		fmt.Fprintf(r.diag, "Error parsing sitemap %s: %v\n", sitemapURL, err)
		return nil
	}

	var pages []string
	for _, entry := range doc.Sitemaps {
		loc := strings.TrimSpace(entry.Loc)
		if loc == "" {
			continue
		}
		pages = append(pages, r.Resolve(ctx, loc)...)
	}
	for _, entry := range doc.URLs {
		loc := strings.TrimSpace(entry.Loc)
		if loc == "" {
			continue
		}
		pages = append(pages, loc)
	}
	return pages
}
