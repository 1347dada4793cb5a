package fetch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxPageSize is the largest page body accepted, in bytes.
const MaxPageSize = 10 << 20

// Fetcher retrieves one page by URL (or path, for FileFetcher).
// Implementations must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ Fetcher = (*HTTPFetcher)(nil)
	_ Fetcher = (*BrowserFetcher)(nil)
	_ Fetcher = (*FileFetcher)(nil)
)

// FetchAll fetches urls with at most concurrency requests in flight and
// returns the pages in the order of urls. The first error cancels the
// remaining fetches and is returned with the failing page number.
func FetchAll(ctx context.Context, f Fetcher, urls []string, concurrency int) ([][]byte, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	pages := make([][]byte, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			data, err := f.Fetch(ctx, u)
			if err != nil {
				return fmt.Errorf("page %d (%s): %w", i+1, u, err)
			}
			pages[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
