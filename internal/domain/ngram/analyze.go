package ngram

import (
	"context"

	"github.com/corey/ngram/internal/ports"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many words a worker adds between context checks.
const cancelCheckInterval = 1024

// Options controls Analyze.
type Options struct {
	// Workers is the number of goroutines accumulating partial tables.
	// Values below 1 mean 1.
	Workers int

	// OnWord, if set, is called once per word after it has been added.
	// With more than one worker it is called from several goroutines at once.
	OnWord func()
}

// Result is the read-only outcome of one analysis run.
type Result struct {
	Table          *Table
	Classification *Classification
}

// Analyze accumulates every entry into a Table and classifies it.
//
// With Workers > 1 the entries are split into contiguous chunks, each worker
// fills a private Table, and the partial tables are merged after all workers
// return. Totals do not depend on the split. Analyze returns ctx.Err() if the
// context is cancelled before the last word is added.
func Analyze(ctx context.Context, entries []ports.Entry, opts Options) (*Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(entries) {
		workers = len(entries)
	}
	if workers <= 1 {
		t := NewTable()
		if err := accumulate(ctx, t, entries, opts.OnWord); err != nil {
			return nil, err
		}
		return &Result{Table: t, Classification: Classify(t)}, nil
	}

	partials := make([]*Table, workers)
	chunk := (len(entries) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := min(w*chunk, len(entries))
		hi := min(lo+chunk, len(entries))
		partials[w] = NewTable()
		t := partials[w]
		g.Go(func() error {
			return accumulate(gctx, t, entries[lo:hi], opts.OnWord)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := NewTable()
	for _, p := range partials {
		total.Merge(p)
	}
	return &Result{Table: total, Classification: Classify(total)}, nil
}

func accumulate(ctx context.Context, t *Table, entries []ports.Entry, onWord func()) error {
	for i, e := range entries {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		t.Add(e.Word, e.Weight)
		if onWord != nil {
			onWord()
		}
	}
	return nil
}
