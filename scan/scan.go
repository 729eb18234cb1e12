package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/remap/interval"
)

var (
	// ErrNoBounds indicates an empty set of bounds.
	ErrNoBounds = errors.New("scan: no bounds to scan")
	// ErrTooLarge indicates the bounds cover more values than Options.MaxValues.
	ErrTooLarge = errors.New("scan: bounds exceed value limit")
)

// ctxCheckEvery is how many lookups a worker performs between context checks.
const ctxCheckEvery = 4096

// Lookuper maps a single value; pipeline.Pipeline satisfies it.
type Lookuper interface {
	Lookup(v int) int
}

// Options tunes a scan.
type Options struct {
	// Workers bounds concurrent batches. ≤ 0 means GOMAXPROCS.
	Workers int
	// BatchSize is the number of values per batch. ≤ 0 means DefaultBatchSize.
	BatchSize int
	// MaxValues caps the total number of values scanned. ≤ 0 disables the cap.
	MaxValues int
	// Logger, if non-nil, receives a debug record per finished batch.
	Logger *slog.Logger
}

// DefaultBatchSize is used when Options.BatchSize is not positive.
const DefaultBatchSize = 1_000_000

// DefaultOptions returns GOMAXPROCS workers, DefaultBatchSize batches and a
// cap of one hundred million values.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		BatchSize: DefaultBatchSize,
		MaxValues: 100_000_000,
	}
}

// Lowest returns min(m.Lookup(v)) over every v in bounds.
// Returns ErrNoBounds for empty bounds, a *interval.ValidationError for an
// inverted bound, ErrTooLarge when the bounds exceed
// opts.MaxValues, or ctx.Err() if the context ends first.
// Complexity: O(total values × lookup cost) / Workers.
func Lowest(ctx context.Context, m Lookuper, bounds []interval.Interval, opts Options) (int, error) {
	if len(bounds) == 0 {
		return 0, ErrNoBounds
	}
	for _, b := range bounds {
		if err := b.Check(); err != nil {
			return 0, err
		}
	}
	if opts.MaxValues > 0 {
		if _, ok := interval.Count(bounds, opts.MaxValues); !ok {
			return 0, fmt.Errorf("%w: limit %d", ErrTooLarge, opts.MaxValues)
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu     sync.Mutex
		lowest int
		found  bool
	)
	record := func(v int) {
		mu.Lock()
		if !found || v < lowest {
			lowest, found = v, true
		}
		mu.Unlock()
	}

dispatch:
	for _, b := range bounds {
		for lo := b.Start; ; {
			hi := lo + batch - 1
			if hi > b.End || hi < lo {
				hi = b.End
			}
			if gctx.Err() != nil {
				break dispatch
			}
			start, end := lo, hi
			g.Go(func() error {
				began := time.Now()
				v, err := lowestIn(gctx, m, start, end)
				if err != nil {
					return err
				}
				record(v)
				if opts.Logger != nil {
					opts.Logger.Debug("batch scanned",
						"from", start,
						"to", end,
						"lowest", v,
						"elapsed", time.Since(began),
					)
				}
				return nil
			})
			if hi == b.End {
				break
			}
			lo = hi + 1
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	// dispatch may stop on a parent cancellation before any worker sees it
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return lowest, nil
}

// lowestIn scans [lo, hi] sequentially.
func lowestIn(ctx context.Context, m Lookuper, lo, hi int) (int, error) {
	lowest := m.Lookup(lo)
	for v := lo; ; v++ {
		if (v-lo)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if got := m.Lookup(v); got < lowest {
			lowest = got
		}
		if v == hi {
			break
		}
	}

	return lowest, nil
}
