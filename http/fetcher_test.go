package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/fwojciec/policyprism"
	prismhttp "github.com/fwojciec/policyprism/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchPayload(t *testing.T) {
	t.Parallel()

	t.Run("returns the payload bytes", func(t *testing.T) {
		t.Parallel()

		payload := []byte("%PDF-1.4 content")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(payload)
		}))
		defer srv.Close()

		fetcher := prismhttp.NewFetcher()
		got, err := fetcher.FetchPayload(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		fetcher := prismhttp.NewFetcher(prismhttp.WithUserAgent("policyprism/1.0"))
		_, err := fetcher.FetchPayload(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "policyprism/1.0", gotUA)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		fetcher := prismhttp.NewFetcher()
		_, err := fetcher.FetchPayload(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("rejects by content length before reading body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", strconv.Itoa(200))
			_, _ = w.Write(make([]byte, 200))
		}))
		defer srv.Close()

		fetcher := prismhttp.NewFetcher(prismhttp.WithMaxBytes(100))
		_, err := fetcher.FetchPayload(context.Background(), srv.URL)

		assert.Equal(t, policyprism.ETOOLARGE, policyprism.ErrorCode(err))
	})

	t.Run("rejects oversized chunked body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Flush first so no Content-Length header is set.
			w.WriteHeader(http.StatusOK)
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			}
			_, _ = w.Write(make([]byte, 200))
		}))
		defer srv.Close()

		fetcher := prismhttp.NewFetcher(prismhttp.WithMaxBytes(100))
		_, err := fetcher.FetchPayload(context.Background(), srv.URL)

		assert.Equal(t, policyprism.ETOOLARGE, policyprism.ErrorCode(err))
	})

	t.Run("accepts body at the limit", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(make([]byte, 100))
		}))
		defer srv.Close()

		fetcher := prismhttp.NewFetcher(prismhttp.WithMaxBytes(100))
		got, err := fetcher.FetchPayload(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, got, 100)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		fetcher := prismhttp.NewFetcher()
		_, err := fetcher.FetchPayload(ctx, srv.URL)

		assert.Error(t, err)
	})

	t.Run("invalid URL", func(t *testing.T) {
		t.Parallel()

		fetcher := prismhttp.NewFetcher()
		_, err := fetcher.FetchPayload(context.Background(), "://bad")

		assert.Error(t, err)
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher := prismhttp.NewFetcher()
	assert.NoError(t, fetcher.Close())
}
