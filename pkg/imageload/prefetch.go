package imageload

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/imageref"
)

// DefaultPrefetchConcurrency bounds parallel fetches during warm-up.
const DefaultPrefetchConcurrency = 4

// PrefetchResult summarizes a cache warm-up pass.
type PrefetchResult struct {
	// Fetched counts remote references warmed into the cache.
	Fetched int

	// Skipped counts items whose references resolved to bundled assets or
	// symbols and need no network fetch.
	Skipped int
}

// Prefetch warms the cache with every remote image reference in the
// collection. Non-remote references are skipped; the first fetch error
// cancels the remaining work. Concurrency <= 0 uses the default.
func (l *Loader) Prefetch(ctx context.Context, items carousel.Collection, assets imageref.AssetChecker, concurrency int) (PrefetchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultPrefetchConcurrency
	}

	var result PrefetchResult
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	fetched := make(chan struct{}, len(items))
	for _, item := range items {
		ref := imageref.Reference{Source: item.Image, Placeholder: item.Placeholder}
		if ref.Resolve(assets).Kind != imageref.KindRemote {
			result.Skipped++
			continue
		}

		url := item.Image
		g.Go(func() error {
			if _, err := l.Fetch(ctx, url); err != nil {
				return err
			}
			fetched <- struct{}{}
			return nil
		})
	}

	err := g.Wait()
	close(fetched)
	result.Fetched = len(fetched)
	return result, err
}
