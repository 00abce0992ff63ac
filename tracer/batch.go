package tracer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fieldlines/field"
	"fieldlines/raster"
)

// batchPerWorker is how many lines each worker traces before the recorded
// pixels are flushed to the target.
const batchPerWorker = 8

// TraceLines traces one line per seed and returns the outcomes in seed order.
//
// With workers <= 1 lines are drawn directly onto dst. Otherwise lines are
// traced concurrently, each onto its own recorder, and replayed onto dst in
// seed order from the calling goroutine. Both paths write the same pixels in
// the same order.
func (t *Tracer) TraceLines(ctx context.Context, dst raster.Target, seeds []field.Vec2, workers int) ([]Line, error) {
	lines := make([]Line, len(seeds))
	if workers <= 1 {
		for i, s := range seeds {
			if err := ctx.Err(); err != nil {
				return lines[:i], err
			}
			lines[i] = t.Trace(dst, s)
		}
		return lines, nil
	}

	batch := workers * batchPerWorker
	recs := make([]raster.Recorder, batch)
	for start := 0; start < len(seeds); start += batch {
		end := min(start+batch, len(seeds))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := start; i < end; i++ {
			rec := &recs[i-start]
			rec.Reset()
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				lines[i] = t.Trace(rec, seeds[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return lines[:start], err
		}
		if err := ctx.Err(); err != nil {
			return lines[:start], err
		}
		for i := start; i < end; i++ {
			recs[i-start].Replay(dst)
		}
	}
	return lines, nil
}
