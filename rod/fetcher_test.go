//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// Story: Rendered Clinic Pages
// Some clinic sites inject the address with JavaScript after load.

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns address injected by script", func(t *testing.T) {
		t.Parallel()

		// Given a page that writes its address at load time
		srv := serveHTML(t, `<!DOCTYPE html>
<html><head><title>서울피부과</title></head>
<body>
<p id="address">로딩 중</p>
<script>
document.getElementById('address').textContent = '서울특별시 강남구 테헤란로 123, 4층';
</script>
</body></html>`)

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		// When the page is fetched through the browser
		html, err := fetcher.Fetch(context.Background(), srv.URL)

		// Then the rendered address is in the HTML
		require.NoError(t, err)
		assert.Contains(t, html, "서울특별시 강남구 테헤란로 123, 4층")
		assert.NotContains(t, html, "로딩 중")
	})

	t.Run("returns canceled for canceled context", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = fetcher.Fetch(ctx, "https://clinic.example.kr/")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns deadline exceeded for slow page", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte(`<html><body>late</body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.Fetch(context.Background(), srv.URL)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		agents := make(chan string, 4)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				agents <- r.Header.Get("User-Agent")
			}
			_, _ = w.Write([]byte(`<html><body>ok</body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithUserAgent("clinicscrape-test"))
		require.NoError(t, err)
		defer fetcher.Close()

		_, err = fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "clinicscrape-test", <-agents)
	})

	t.Run("keeps working across browser replacement", func(t *testing.T) {
		t.Parallel()

		srv := serveHTML(t, `<html><body>page</body></html>`)

		fetcher, err := rod.NewFetcher(rod.WithManagerOptions(rod.WithMaxPages(1)))
		require.NoError(t, err)
		defer fetcher.Close()

		for i := 0; i < 3; i++ {
			html, err := fetcher.Fetch(context.Background(), srv.URL)
			require.NoError(t, err)
			assert.Contains(t, html, "page")
		}
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)

		require.NoError(t, fetcher.Close())
		require.NoError(t, fetcher.Close())
	})

	t.Run("makes later fetches fail", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher()
		require.NoError(t, err)
		require.NoError(t, fetcher.Close())

		_, err = fetcher.Fetch(context.Background(), "https://clinic.example.kr/")

		require.Error(t, err)
		assert.Equal(t, clinicscrape.EINVALID, clinicscrape.ErrorCode(err))
		assert.Contains(t, clinicscrape.ErrorMessage(err), "closed")
	})
}
