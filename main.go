// Package main provides the sitecheck CLI entrypoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukemcguire/sitecheck/checker"
	"github.com/lukemcguire/sitecheck/crawler"
	"github.com/lukemcguire/sitecheck/result"
	"github.com/lukemcguire/sitecheck/sitemap"
	"github.com/lukemcguire/sitecheck/tui"
)

func main() {
	workers := flag.Int("workers", 5, "number of concurrent page workers")
	delay := flag.Duration("delay", time.Second, "pause before each outbound request")
	timeout := flag.Duration("timeout", 30*time.Second, "per-request timeout")
	slow := flag.Duration("slow", 10*time.Second, "response time above which a link is reported as slow")
	maxPages := flag.Int("max-pages", crawler.DefaultMaxPages, "page cap for the fallback crawl")
	userAgent := flag.String("user-agent", "sitecheck/1.0 (+https://github.com/lukemcguire/sitecheck)", "user agent string")
	format := flag.String("format", "text", "output format: text, json, or csv")
	useTUI := flag.Bool("tui", false, "show an interactive progress display")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: sitecheck [flags] <url>")
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	rawURL := flag.Arg(0)
	parsedURL, err := url.Parse(rawURL)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		fmt.Fprintf(os.Stderr, "Invalid URL: %s\nURL must start with http:// or https://\n", rawURL)
		os.Exit(1)
	}

	switch *format {
	case "text", "json", "csv":
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s (want text, json, or csv)\n", *format)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := &http.Client{}

	pages := discoverPages(ctx, client, rawURL, *timeout, *userAgent, *maxPages)
	fmt.Printf("Found %d pages to check.\n", len(pages))

	checkCfg := checker.Config{
		Workers:       *workers,
		Timeout:       *timeout,
		Delay:         *delay,
		SlowThreshold: *slow,
		UserAgent:     *userAgent,
	}

	events := make(chan checker.Event, 100)
	runner := checker.NewRunner(client, checkCfg, events)

	if *useTUI {
		runTUI(ctx, cancel, runner, pages, events, *format)
		return
	}

	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		for evt := range events {
			switch evt.Kind {
			case checker.EventFinding:
				fmt.Println(evt.Finding.Line())
			case checker.EventDiagnostic:
				fmt.Fprintln(os.Stderr, evt.Message)
			}
		}
	}()

	findings, runErr := runner.Run(ctx, pages)
	close(events)
	<-printerDone

	if errors.Is(runErr, context.Canceled) || ctx.Err() != nil {
		fmt.Println("\nInterrupted by user. Exiting gracefully.")
		os.Exit(0)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	if err := writeReport(os.Stdout, *format, findings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// discoverPages locates the site's sitemap and expands it, falling back to a
// same-host crawl when no sitemap is available.
func discoverPages(ctx context.Context, client *http.Client, siteURL string, timeout time.Duration, userAgent string, maxPages int) []string {
	mapCfg := sitemap.Config{Timeout: timeout, UserAgent: userAgent}

	if sitemapURL, ok := sitemap.Locate(ctx, client, siteURL, mapCfg); ok {
		fmt.Printf("Using sitemap: %s\n", sitemapURL)
		resolver := sitemap.NewResolver(client, mapCfg, os.Stderr)
		return resolver.Resolve(ctx, sitemapURL)
	}

	fmt.Println("Sitemap not found. Crawling site for links...")
	return crawler.Crawl(ctx, client, siteURL, crawler.Config{
		MaxPages:  maxPages,
		Timeout:   timeout,
		UserAgent: userAgent,
	})
}

// writeReport renders the findings in the selected output format.
func writeReport(w *os.File, format string, findings []result.Finding) error {
	switch format {
	case "json":
		return result.WriteJSON(w, findings)
	case "csv":
		return result.WriteCSV(w, findings)
	default:
		result.PrintReport(w, findings)
		return nil
	}
}

// runTUI drives the verification through the Bubble Tea display.
func runTUI(ctx context.Context, cancel context.CancelFunc, runner *checker.Runner, pages []string, events chan checker.Event, format string) {
	program := tea.NewProgram(tui.NewModel(ctx, cancel, runner, pages, events))

	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	final := finalModel.(tui.Model)
	if final.Interrupted() {
		fmt.Println("\nInterrupted by user. Exiting gracefully.")
		os.Exit(0)
	}
	if runErr := final.Err(); runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			fmt.Println("\nInterrupted by user. Exiting gracefully.")
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	if format != "text" {
		if err := writeReport(os.Stdout, format, final.Findings()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
