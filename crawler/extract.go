package crawler

import (
	"io"
	"net/url"

	"golang.org/x/net/html"
)

// extractAnchors parses HTML from the reader and returns the href target of
// every anchor tag, resolved to an absolute URL against baseURL, in document
// order. Empty and unparseable hrefs are skipped. Parse errors end the walk
// silently; whatever was extracted up to that point is returned.
func extractAnchors(body io.Reader, baseURL *url.URL) []string {
	tokenizer := html.NewTokenizer(body)
	var links []string

	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			// End of document or malformed input.
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key != "href" || attr.Val == "" {
					continue
				}
				hrefURL, err := url.Parse(attr.Val)
				if err != nil {
					continue
				}
				links = append(links, baseURL.ResolveReference(hrefURL).String())
			}
		}
	}
}
