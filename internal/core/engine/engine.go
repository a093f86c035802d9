// Package engine runs the shared invocation pipeline pieces: the paired
// window fetch for comparisons and the bounded per row enrichment fan out
//
// Every invocation is a pure function of its explicit arguments; nothing in
// this package holds state across calls
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	perr "trendlens/internal/platform/errors"
)

// Fetch loads one window's rows
type Fetch[T any] func(ctx context.Context) ([]T, error)

// RunPair issues the current and previous window fetches concurrently and
// joins them. Either failure is fatal since the missing side is a primary
// result set, not an enrichment
func RunPair[T any](ctx context.Context, current, previous Fetch[T]) ([]T, []T, error) {
	var cur, prev []T
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := current(gctx)
		if err != nil {
			return err
		}
		cur = rows
		return nil
	})
	g.Go(func() error {
		rows, err := previous(gctx)
		if err != nil {
			return err
		}
		prev = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return cur, prev, nil
}

// Enrich applies fn to every item with at most limit tasks in flight
//
// A failing task degrades its own row to the fallback applied by fn's
// caller and never fails the batch; the failure count is reported so the
// response can mark the enrichment as partial
func Enrich[T any](ctx context.Context, items []T, limit int, fn func(ctx context.Context, item *T) error) int {
	if len(items) == 0 {
		return 0
	}
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	failures := make([]bool, len(items))
	for i := range items {
		i := i
		g.Go(func() error {
			if err := fn(gctx, &items[i]); err != nil {
				failures[i] = true
			}
			return nil
		})
	}
	// tasks never return errors, Wait only joins
	_ = g.Wait()

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	return failed
}

// PartialErr renders the enrichment failure count as a soft error, nil when
// nothing failed
func PartialErr(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return perr.Enrichmentf("%d of %d rows degraded to a narrower field set", failed, total)
}
