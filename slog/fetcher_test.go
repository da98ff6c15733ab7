package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/clinicscrape/mock"
	clinicslog "github.com/fwojciec/clinicscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Following A Scrape In The Log
// Each page fetch leaves one line with its size and latency, so a slow
// or empty clinic site stands out without rerunning with --debug.

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs page size and duration", func(t *testing.T) {
		t.Parallel()

		// Given a fetcher that returns a short contact page
		var buf bytes.Buffer
		page := "<p>서울특별시 서초구 서초대로 77</p>"
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return page, nil
			},
		}

		// When the page is fetched through the logger
		got, err := clinicslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Fetch(context.Background(), "https://clinic.example.kr/contact")

		// Then the page passes through and the log records its byte length
		require.NoError(t, err)
		assert.Equal(t, page, got)
		out := buf.String()
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://clinic.example.kr/contact")
		assert.Contains(t, out, "bytes=")
		assert.Contains(t, out, "duration=")
		assert.NotContains(t, out, "err=")
	})

	t.Run("logs the error of a failed fetch", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection reset")
			},
		}

		_, err := clinicslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Fetch(context.Background(), "https://clinic.example.kr/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="connection reset"`)
		assert.Contains(t, buf.String(), "bytes=0")
	})

	t.Run("stays quiet above info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "ok", nil },
		}

		_, err := clinicslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://clinic.example.kr/")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := 0
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed++
			return nil
		},
	}

	require.NoError(t, clinicslog.NewLoggingFetcher(inner, slog.Default()).Close())
	assert.Equal(t, 1, closed)
}
