package beamsim

import (
	"golang.org/x/sync/errgroup"
)

// checkEvery bounds how many paths a worker expands between cancellation checks.
const checkEvery = 1024

// shard collects one worker's share of a generation: its emitted
// successors, the paths it saw exit the grid, and its dead-end count.
// Exits are recorded, not retired — the signature set is touched only
// during the serial merge.
type shard struct {
	next     *Frontier
	exits    []Path
	deadEnds int
}

// expandSharded splits the current frontier into contiguous shards, expands
// them concurrently, then merges the shards serially in frontier order.
// Because the merge preserves frontier order and performs every
// SignatureSet.Add and hook call from the calling goroutine, the Result —
// and the order of OnRetire invocations — is identical to the serial loop.
func (w *walker) expandSharded() (*Frontier, error) {
	paths := w.cur.Paths()
	workers := w.opts.Workers
	if workers > len(paths) {
		workers = len(paths)
	}
	chunk := (len(paths) + workers - 1) / workers

	shards := make([]shard, workers)
	eg, ctx := errgroup.WithContext(w.ctx)
	for i := 0; i < workers; i++ {
		lo := min(i*chunk, len(paths))
		hi := min(lo+chunk, len(paths))
		sh := &shards[i]
		eg.Go(func() error {
			sh.next = NewFrontier(2 * (hi - lo))
			for j, p := range paths[lo:hi] {
				if j%checkEvery == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				if p.Row+1 >= w.grid.Height {
					sh.exits = append(sh.exits, p)
					continue
				}
				if w.branch(p, sh.next) {
					sh.deadEnds++
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Serial merge, shard by shard in frontier order.
	total := 0
	for i := range shards {
		total += shards[i].next.Len()
	}
	next := NewFrontier(total)
	for i := range shards {
		for _, p := range shards[i].exits {
			w.retire(p)
		}
		next.paths = append(next.paths, shards[i].next.paths...)
		w.res.DeadEnds += shards[i].deadEnds
	}

	return next, nil
}
