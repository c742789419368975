package mock

import (
	"context"

	"github.com/pwalczyk/frontpage"
)

var _ frontpage.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of frontpage.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
