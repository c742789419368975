package main_test

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/pwalczyk/frontpage"
	main "github.com/pwalczyk/frontpage/cmd/frontpage"
	"github.com/pwalczyk/frontpage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(fetcher frontpage.Fetcher, extractor frontpage.Extractor) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Fetcher:   fetcher,
		Extractor: extractor,
	}, &stdout, &stderr
}

func staticListing(titles, scores []string) *frontpage.Listing {
	return &frontpage.Listing{
		Titles:     slices.Values(titles),
		Scores:     slices.Values(scores),
		TitleCount: len(titles),
		MetaCount:  len(scores),
	}
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per pair", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*frontpage.Listing, error) {
				return staticListing(
					[]string{"Post A", "Post B"},
					[]string{"42 points", frontpage.DefaultScore},
				), nil
			},
		}

		deps, stdout, _ := newDeps(fetcher, extractor)
		cmd := &main.ListCmd{URL: frontpage.FrontPageURL}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "(\"Post A\", \"42 points\")\n(\"Post B\", \"0 points\")\n", stdout.String())
	})

	t.Run("truncates pairing to the shorter sequence", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*frontpage.Listing, error) {
				return staticListing(
					[]string{"Post A", "Post B", "Post C"},
					[]string{"1 point"},
				), nil
			},
		}

		deps, stdout, _ := newDeps(fetcher, extractor)
		cmd := &main.ListCmd{URL: frontpage.FrontPageURL}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "(\"Post A\", \"1 point\")\n", stdout.String())
	})

	t.Run("limit caps the number of printed pairs", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*frontpage.Listing, error) {
				return staticListing(
					[]string{"Post A", "Post B", "Post C"},
					[]string{"3 points", "2 points", "1 point"},
				), nil
			},
		}

		deps, stdout, _ := newDeps(fetcher, extractor)
		cmd := &main.ListCmd{URL: frontpage.FrontPageURL, Limit: 2}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "(\"Post A\", \"3 points\")\n(\"Post B\", \"2 points\")\n", stdout.String())
	})

	t.Run("zero metadata blocks produce no output", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*frontpage.Listing, error) {
				return staticListing([]string{"Post A", "Post B"}, nil), nil
			},
		}

		deps, stdout, _ := newDeps(fetcher, extractor)
		cmd := &main.ListCmd{URL: frontpage.FrontPageURL}

		require.NoError(t, cmd.Run(deps))
		assert.Empty(t, stdout.String())
	})

	t.Run("fetch failure aborts before any output", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", frontpage.Errorf(frontpage.EUNAVAILABLE, "connection refused")
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*frontpage.Listing, error) {
				t.Fatal("extractor must not run after a fetch failure")
				return nil, nil
			},
		}

		deps, stdout, stderr := newDeps(fetcher, extractor)
		cmd := &main.ListCmd{URL: frontpage.FrontPageURL}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "connection refused")
	})

	t.Run("extract failure aborts before any output", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "<html>", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*frontpage.Listing, error) {
				return nil, frontpage.Errorf(frontpage.EINVALID, "failed to parse HTML")
			},
		}

		deps, stdout, stderr := newDeps(fetcher, extractor)
		cmd := &main.ListCmd{URL: frontpage.FrontPageURL}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "failed to parse HTML")
	})
}
