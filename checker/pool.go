package checker

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lukemcguire/sitecheck/result"
)

// Runner dispatches CheckPage across a page list using a bounded worker
// pool and aggregates the findings.
type Runner struct {
	cfg     Config
	checker *Checker
	events  chan<- Event
}

// NewRunner creates a Runner with the given configuration. The events
// channel is optional; pass nil to disable progress notifications. The
// client's redirect policy is used as-is (link checks follow redirects).
func NewRunner(client *http.Client, cfg Config, events chan<- Event) *Runner {
	cfg = cfg.withDefaults()
	return &Runner{
		cfg:     cfg,
		checker: NewChecker(client, cfg, events),
		events:  events,
	}
}

// pageResult carries one page's findings from a worker to the collector.
type pageResult struct {
	page     string
	findings []result.Finding
}

// Run verifies every page and returns the flattened findings. Findings keep
// their within-page emission order; no ordering is guaranteed across pages.
// Run returns only after all dispatched work has completed. When the context
// is cancelled, in-flight work is abandoned and ctx.Err() is returned
// alongside whatever findings were already collected.
func (r *Runner) Run(ctx context.Context, pages []string) ([]result.Finding, error) {
	jobs := make(chan string)
	results := make(chan pageResult)

	group, groupCtx := errgroup.WithContext(ctx)

	var workers sync.WaitGroup
	for range r.cfg.Workers {
		workers.Add(1)
		group.Go(func() error {
			defer workers.Done()
			for {
				select {
				case page, ok := <-jobs:
					if !ok {
						return nil
					}
					findings := r.checker.CheckPage(groupCtx, page)
					select {
					case results <- pageResult{page: page, findings: findings}:
					case <-groupCtx.Done():
						return groupCtx.Err()
					}
				case <-groupCtx.Done():
					return groupCtx.Err()
				}
			}
		})
	}

	group.Go(func() error {
		defer close(jobs)
		for _, page := range pages {
			select {
			case jobs <- page:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})

	// Close the results channel once every worker has exited so the
	// collector loop below terminates.
	go func() {
		workers.Wait()
		close(results)
	}()

	// Collector: the sole writer of the aggregation buffer.
	var all []result.Finding
	checked := 0
	for res := range results {
		checked++
		all = append(all, res.findings...)
		if r.events != nil {
			r.events <- Event{
				Kind:     EventPageChecked,
				Page:     res.page,
				Checked:  checked,
				Total:    len(pages),
				Findings: len(all),
			}
		}
	}

	if err := group.Wait(); err != nil {
		return all, err
	}
	return all, nil
}
