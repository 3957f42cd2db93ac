package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/xhsimport"
	xhshttp "github.com/fwojciec/xhsimport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><title>测试笔记 - 小红书</title></html>"))
		}))
		defer server.Close()

		fetcher := xhshttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><title>测试笔记 - 小红书</title></html>", html)
	})

	t.Run("follows short link redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/a/abc123", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/discovery/item/65f0", http.StatusFound)
		})
		mux.HandleFunc("/discovery/item/65f0", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("note page"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := xhshttp.NewFetcher()

		html, err := fetcher.Fetch(context.Background(), server.URL+"/a/abc123")
		require.NoError(t, err)
		assert.Equal(t, "note page", html)
	})

	t.Run("sends no cookies or custom headers", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
		}))
		defer server.Close()

		_, err := xhshttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		got := <-headers
		assert.Empty(t, got.Get("Cookie"))
		assert.Empty(t, got.Get("Authorization"))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := xhshttp.NewFetcher(xhshttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := xhshttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := xhshttp.NewFetcher(xhshttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("returns error for non-OK status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := xhshttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestFetcher_Download(t *testing.T) {
	t.Parallel()

	t.Run("returns binary body", func(t *testing.T) {
		t.Parallel()

		data := []byte{0xFF, 0xD8, 0xFF, 0x00, 0x01}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write(data)
		}))
		defer server.Close()

		got, err := xhshttp.NewFetcher().Download(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("returns error for server errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := xhshttp.NewFetcher().Download(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})
}

// Compile-time verification that Fetcher implements the xhsimport interfaces.
var (
	_ xhsimport.Fetcher    = (*xhshttp.Fetcher)(nil)
	_ xhsimport.Downloader = (*xhshttp.Fetcher)(nil)
)
