package crawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/clinicscrape/crawl"
	"github.com/fwojciec/clinicscrape/goquery"
	"github.com/fwojciec/clinicscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Directory Discovery
// Clinic URLs are gathered from directory listing pages.

func TestDirectory_Discover(t *testing.T) {
	t.Parallel()

	t.Run("merges links in directory order without duplicates", func(t *testing.T) {
		t.Parallel()

		// Given two directory pages sharing one clinic
		pages := map[string]string{
			"https://dir.example.kr/page1": `<a href="https://a-clinic.example.kr/">A</a><a href="/hospital/7">H7</a>`,
			"https://dir.example.kr/page2": `<div class="clinic-item"><a href="https://b.example.kr/">B</a></div><a href="https://a-clinic.example.kr/">A</a>`,
		}
		d := &crawl.Directory{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return pages[url], nil
				},
			},
			Selector: goquery.NewDirectorySelector(),
		}

		// When I discover clinics
		urls, err := d.Discover(context.Background(), []string{"https://dir.example.kr/page1", "https://dir.example.kr/page2"})

		// Then links come back in page order, each once
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://a-clinic.example.kr/",
			"https://dir.example.kr/hospital/7",
			"https://b.example.kr/",
		}, urls)
	})

	t.Run("skips directory pages that fail", func(t *testing.T) {
		t.Parallel()

		d := &crawl.Directory{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://dir.example.kr/broken" {
						return "", errors.New("HTTP 500")
					}
					return `<a href="/clinic/1">One</a>`, nil
				},
			},
			Selector:    goquery.NewDirectorySelector(),
			Concurrency: 1,
		}

		urls, err := d.Discover(context.Background(), []string{"https://dir.example.kr/broken", "https://dir.example.kr/ok"})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://dir.example.kr/clinic/1"}, urls)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := &crawl.Directory{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, _ string) (string, error) {
					return "", ctx.Err()
				},
			},
			Selector: goquery.NewDirectorySelector(),
		}

		_, err := d.Discover(ctx, []string{"https://dir.example.kr/page1"})

		require.ErrorIs(t, err, context.Canceled)
	})
}
