package codec

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/hangulnum/internal/debug"
	hnerrors "github.com/standardbeagle/hangulnum/internal/errors"
)

// BatchResult is the outcome for one item of a batch.
// Err is per item; a failing item never stops the rest of the batch.
type BatchResult struct {
	Value   uint64
	Encoded string
	Err     error
}

// DecodeBatch decodes inputs using up to workers goroutines (NumCPU when
// workers <= 0). Results are in input order. The returned error is non-nil
// only when ctx ends before every item was processed.
func (c *Codec) DecodeBatch(ctx context.Context, inputs []string, workers int) ([]BatchResult, error) {
	results := make([]BatchResult, len(inputs))
	err := c.fanOut(ctx, len(inputs), workers, func(i int) {
		value, err := c.Decode(inputs[i])
		results[i] = BatchResult{Value: value, Encoded: inputs[i], Err: err}
	})
	return results, err
}

// EncodeBatch encodes values with random seeds, in input order.
func (c *Codec) EncodeBatch(ctx context.Context, values []uint64, workers int) ([]BatchResult, error) {
	results := make([]BatchResult, len(values))
	err := c.fanOut(ctx, len(values), workers, func(i int) {
		encoded, err := c.Encode(values[i])
		results[i] = BatchResult{Value: values[i], Encoded: encoded, Err: err}
	})
	return results, err
}

func (c *Codec) fanOut(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	debug.LogCodec("batch of %d items on %d workers\n", n, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Errors collects the per-item errors of a batch, or nil when all succeeded.
func Errors(results []BatchResult) error {
	errs := make([]error, 0)
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return hnerrors.NewMultiError(errs).ErrorOrNil()
}
