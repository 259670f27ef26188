package cli

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// loadAll calls load for every path on up to GOMAXPROCS goroutines and
// returns the results in path order. The first error cancels the remaining
// loads and is returned.
func loadAll[T any](ctx context.Context, paths []string, load func(path string) (T, error)) ([]T, error) {
	out := make([]T, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := load(path)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
