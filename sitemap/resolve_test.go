package sitemap_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/lukemcguire/sitecheck/sitemap"
)

// newSitemapServer serves the given path -> XML body fixtures.
func newSitemapServer(fixtures map[string]string) *httptest.Server {
	mux := http.NewServeMux()
	for path, body := range fixtures {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		})
	}
	return httptest.NewServer(mux)
}

func TestResolve_FlatURLSet(t *testing.T) {
	ts := newSitemapServer(map[string]string{
		"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
			<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
				<url><loc>https://example.com/</loc></url>
				<url><loc>https://example.com/about</loc></url>
			</urlset>`,
	})
	defer ts.Close()

	r := sitemap.NewResolver(ts.Client(), sitemap.Config{}, &bytes.Buffer{})
	got := r.Resolve(context.Background(), ts.URL+"/sitemap.xml")

	want := []string{"https://example.com/", "https://example.com/about"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

// TestResolve_IndexWithoutNamespace covers the scenario of a sitemap index
// referencing two child sitemaps, each listing 3 URLs, none declaring a
// namespace: 6 pages, child-1's three before child-2's three.
func TestResolve_IndexWithoutNamespace(t *testing.T) {
	var ts *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/sitemap_index.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<sitemapindex>
			<sitemap><loc>%s/child1.xml</loc></sitemap>
			<sitemap><loc>%s/child2.xml</loc></sitemap>
		</sitemapindex>`, ts.URL, ts.URL)
	})
	mux.HandleFunc("/child1.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<urlset>
			<url><loc>https://site.test/a</loc></url>
			<url><loc>https://site.test/b</loc></url>
			<url><loc>https://site.test/c</loc></url>
		</urlset>`)
	})
	mux.HandleFunc("/child2.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<urlset>
			<url><loc>https://site.test/d</loc></url>
			<url><loc>https://site.test/e</loc></url>
			<url><loc>https://site.test/f</loc></url>
		</urlset>`)
	})
	ts = httptest.NewServer(mux)
	defer ts.Close()

	r := sitemap.NewResolver(ts.Client(), sitemap.Config{}, &bytes.Buffer{})
	got := r.Resolve(context.Background(), ts.URL+"/sitemap_index.xml")

	want := []string{
		"https://site.test/a", "https://site.test/b", "https://site.test/c",
		"https://site.test/d", "https://site.test/e", "https://site.test/f",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolve_NestedNamespacedIndex(t *testing.T) {
	var ts *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/root.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
			<sitemap><loc>%s/mid.xml</loc></sitemap>
		</sitemapindex>`, ts.URL)
	})
	mux.HandleFunc("/mid.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
			<sitemap><loc>%s/leaf.xml</loc></sitemap>
		</sitemapindex>`, ts.URL)
	})
	mux.HandleFunc("/leaf.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
			<url><loc>https://site.test/deep</loc></url>
		</urlset>`)
	})
	ts = httptest.NewServer(mux)
	defer ts.Close()

	r := sitemap.NewResolver(ts.Client(), sitemap.Config{}, &bytes.Buffer{})
	got := r.Resolve(context.Background(), ts.URL+"/root.xml")

	want := []string{"https://site.test/deep"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

// TestResolve_CyclicIndex verifies that a self-referential index terminates
// with a diagnostic instead of recursing forever.
func TestResolve_CyclicIndex(t *testing.T) {
	var ts *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/loop.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<sitemapindex>
			<sitemap><loc>%s/loop.xml</loc></sitemap>
			<sitemap><loc>%s/pages.xml</loc></sitemap>
		</sitemapindex>`, ts.URL, ts.URL)
	})
	mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<urlset><url><loc>https://site.test/only</loc></url></urlset>`)
	})
	ts = httptest.NewServer(mux)
	defer ts.Close()

	var diag bytes.Buffer
	r := sitemap.NewResolver(ts.Client(), sitemap.Config{}, &diag)
	got := r.Resolve(context.Background(), ts.URL+"/loop.xml")

	want := []string{"https://site.test/only"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
	if !strings.Contains(diag.String(), "already-expanded") {
		t.Errorf("expected cycle diagnostic, got %q", diag.String())
	}
}

// TestResolve_FailedBranchIsLocal verifies a broken child contributes zero
// pages while its siblings still resolve.
func TestResolve_FailedBranchIsLocal(t *testing.T) {
	var ts *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/index.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<sitemapindex>
			<sitemap><loc>%s/broken.xml</loc></sitemap>
			<sitemap><loc>%s/good.xml</loc></sitemap>
		</sitemapindex>`, ts.URL, ts.URL)
	})
	mux.HandleFunc("/broken.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `this is not xml <<<`)
	})
	mux.HandleFunc("/good.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<urlset><url><loc>https://site.test/ok</loc></url></urlset>`)
	})
	ts = httptest.NewServer(mux)
	defer ts.Close()

	var diag bytes.Buffer
	r := sitemap.NewResolver(ts.Client(), sitemap.Config{}, &diag)
	got := r.Resolve(context.Background(), ts.URL+"/index.xml")

	want := []string{"https://site.test/ok"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
	if !strings.Contains(diag.String(), "Error parsing sitemap") {
		t.Errorf("expected parse diagnostic, got %q", diag.String())
	}
}

func TestResolve_FetchFailure(t *testing.T) {
	ts := newSitemapServer(map[string]string{})
	url := ts.URL + "/gone.xml"
	ts.Close() // connection refused from here on

	var diag bytes.Buffer
	r := sitemap.NewResolver(http.DefaultClient, sitemap.Config{}, &diag)
	if got := r.Resolve(context.Background(), url); got != nil {
		t.Errorf("Resolve() = %v, want nil", got)
	}
	if diag.Len() == 0 {
		t.Error("expected a diagnostic for the failed fetch")
	}
}

func TestResolve_HTTPErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	var diag bytes.Buffer
	r := sitemap.NewResolver(ts.Client(), sitemap.Config{}, &diag)
	if got := r.Resolve(context.Background(), ts.URL+"/missing.xml"); got != nil {
		t.Errorf("Resolve() = %v, want nil", got)
	}
	if !strings.Contains(diag.String(), "status 404") {
		t.Errorf("expected status diagnostic, got %q", diag.String())
	}
}

// TestResolve_EmptyLocSkipped verifies entries without a location are ignored.
func TestResolve_EmptyLocSkipped(t *testing.T) {
	ts := newSitemapServer(map[string]string{
		"/sitemap.xml": `<urlset>
			<url><loc></loc></url>
			<url><loc>  </loc></url>
			<url><loc>https://site.test/kept</loc></url>
		</urlset>`,
	})
	defer ts.Close()

	r := sitemap.NewResolver(ts.Client(), sitemap.Config{}, &bytes.Buffer{})
	got := r.Resolve(context.Background(), ts.URL+"/sitemap.xml")

	want := []string{"https://site.test/kept"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}
