package paginate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/multierr"
)

// Collection is a host collection of items (posts, pages, docs).
type Collection interface {
	Label() string
	Items() []Item
	// NewItem creates an empty derived item that belongs to this collection.
	NewItem(original Item) Item
	// Replace removes originals and appends derived, in order.
	Replace(originals, derived []Item)
}

// Site resolves collections by name.
type Site interface {
	Collection(name string) (Collection, bool)
}

// CollectionReport summarizes one processed collection.
type CollectionReport struct {
	Name   string
	Parts  int // derived page parts
	Copies int // paginated originals, one single page each
	Failed int
}

// Report summarizes a Generate run.
type Report struct {
	Collections []CollectionReport
}

// Totals sums the collection reports.
func (r Report) Totals() (parts, copies, failed int) {
	for _, c := range r.Collections {
		parts += c.Parts
		copies += c.Copies
		failed += c.Failed
	}
	return parts, copies, failed
}

// Generator paginates every eligible item of the configured collections.
type Generator struct {
	paginator *Paginator
	opts      options
}

// NewGenerator creates a Generator for cfg.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	p := NewPaginator(cfg, opts...)
	return &Generator{paginator: p, opts: p.opts}
}

// Generate splits eligible items and swaps them for their derived items in
// each collection. A failing item is logged, counted and returned in the
// combined error; it never stops other items. Cancelling ctx skips the
// items not yet started.
func (g *Generator) Generate(ctx context.Context, site Site) (Report, error) {
	if site == nil {
		return Report{}, ErrNilSite
	}

	cfg := &g.paginator.cfg
	if !cfg.Enabled {
		return Report{}, nil
	}

	var (
		report Report
		errs   error
	)
	for _, name := range ParseCollections("", cfg.Collections) {
		coll, ok := site.Collection(name)
		if !ok {
			g.debug(fmt.Sprintf("[%s] collection not found, skipping", name))
			continue
		}

		cr, err := g.generateCollection(ctx, coll)
		report.Collections = append(report.Collections, cr)
		errs = multierr.Append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}
	return report, errs
}

// generateCollection processes one collection.
func (g *Generator) generateCollection(ctx context.Context, coll Collection) (CollectionReport, error) {
	label := coll.Label()
	report := CollectionReport{Name: label}

	items := g.Select(coll.Items())
	results := g.splitBatch(ctx, coll, items)

	var (
		originals []Item
		derived   []Item
		errs      error
	)
	for i, res := range results {
		item := items[i]
		if res.err != nil {
			report.Failed++
			err := fmt.Errorf("[%s] %s: %w", label, item.URL(), res.err)
			g.opts.observer.Warn(err.Error())
			errs = multierr.Append(errs, err)
			continue
		}
		if len(res.items) == 0 {
			continue
		}

		g.debug(fmt.Sprintf("[%s] %q, %d+1 pages", label, title(item), len(res.items)-1))
		report.Parts += len(res.items) - 1
		report.Copies++
		originals = append(originals, item)
		for _, d := range res.items {
			derived = append(derived, d.Item)
		}
	}

	if len(originals) > 0 {
		coll.Replace(originals, derived)
		g.opts.observer.Info(fmt.Sprintf("[%s] Generated %d+%d pages", label, report.Parts, report.Copies))
	}
	return report, errs
}

// Select returns the items eligible for pagination: with Config.Auto,
// items whose content contains the separator; otherwise items whose
// "paginate" front matter is set to anything but false.
func (g *Generator) Select(items []Item) []Item {
	cfg := &g.paginator.cfg
	selected := make([]Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if cfg.Auto {
			if strings.Contains(item.Content(), cfg.Separator) {
				selected = append(selected, item)
			}
			continue
		}
		if truthy(item.Data()[KeyPaginate]) {
			selected = append(selected, item)
		}
	}
	return selected
}

// truthy treats every value except nil and false as true.
func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	default:
		return true
	}
}

// splitResult holds the outcome of a single item split.
type splitResult struct {
	items []*DerivedItem
	err   error
}

// splitBatch splits items concurrently with the configured worker count.
// Results are indexed like items.
func (g *Generator) splitBatch(ctx context.Context, coll Collection, items []Item) []splitResult {
	if len(items) == 0 {
		return nil
	}

	concurrency := min(g.opts.workers, len(items))

	results := make([]splitResult, len(items))
	var wg sync.WaitGroup
	jobs := make(chan int, len(items))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = splitResult{err: fmt.Errorf("%w: %w", ErrItemCancelled, err)}
					continue
				}
				results[idx] = g.splitOne(coll, items[idx])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// splitOne splits a single item, turning a panic into an error so one bad
// item cannot abort the batch.
func (g *Generator) splitOne(coll Collection, item Item) (res splitResult) {
	defer func() {
		if r := recover(); r != nil {
			res = splitResult{err: fmt.Errorf("%w: %v", ErrItemPanic, r)}
		}
	}()

	items, err := g.paginator.split(item, coll.NewItem)
	return splitResult{items: items, err: err}
}

func (g *Generator) debug(msg string) {
	if g.paginator.cfg.Debug {
		g.opts.observer.Debug(msg)
	}
}
