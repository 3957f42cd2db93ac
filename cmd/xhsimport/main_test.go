package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/xhsimport"
	main "github.com/fwojciec/xhsimport/cmd/xhsimport"
	"github.com/fwojciec/xhsimport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notePage = `<html><head><title>海边日落 - 小红书</title></head><body>
<div id="detail-desc">好美<br>#旅行</div>
<script>window.__INITIAL_STATE__={"note":{"noteDetailMap":{"1":{"note":{"type":"normal","imageList":[{"urlDefault":"https://cdn/sunset.jpg"}]}}}}}</script>
</body></html>`

func newTestMain(t *testing.T, page string) (*main.Main, *bool) {
	t.Helper()

	closed := false
	settings, _ := memSettings(xhsimport.DefaultSettings())
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.Stdin = strings.NewReader("")
	m.Settings = settings
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return page, nil
		},
		CloseFn: func() error {
			closed = true
			return nil
		},
	}
	m.Downloader = &mock.Downloader{
		DownloadFn: func(ctx context.Context, url string) ([]byte, error) {
			return []byte("jpeg"), nil
		},
	}
	return m, &closed
}

func TestMain_Run_Import(t *testing.T) {
	t.Parallel()

	t.Run("imports note into vault", func(t *testing.T) {
		t.Parallel()

		vault := t.TempDir()
		m, closed := newTestMain(t, notePage)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"--vault", vault, "import", "-c", "旅行", "看看 http://xhslink.com/a/sun 好看",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.True(t, *closed)

		notePath := filepath.Join(vault, "XHS Notes", "旅行", "海边日落.md")
		data, err := os.ReadFile(notePath)
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "category: 旅行\n")
		assert.Contains(t, content, "![Cover Image](https://cdn/sunset.jpg)")
		assert.Contains(t, content, "```\n#旅行\n```\n")

		assert.Equal(t, notePath+"\n", stdout.String())
		assert.Contains(t, stderr.String(), "Imported Xiaohongshu note as XHS Notes/旅行/海边日落.md")
	})

	t.Run("downloads media when asked", func(t *testing.T) {
		t.Parallel()

		vault := t.TempDir()
		m, _ := newTestMain(t, notePage)

		err := m.Run(context.Background(), []string{
			"--vault", vault, "import", "--download", "http://xhslink.com/a/sun",
		}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		entries, err := os.ReadDir(filepath.Join(vault, "XHS Notes", "media"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, strings.HasPrefix(entries[0].Name(), "海边日落-0-"))
	})

	t.Run("reads share text from stdin", func(t *testing.T) {
		t.Parallel()

		vault := t.TempDir()
		m, _ := newTestMain(t, notePage)
		m.Stdin = strings.NewReader("分享 https://www.xiaohongshu.com/discovery/item/abc123\n")

		err := m.Run(context.Background(), []string{"--vault", vault, "import"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(vault, "XHS Notes", "美食", "海边日落.md"))
		require.NoError(t, err)
	})

	t.Run("fails without note URL", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestMain(t, notePage)
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--vault", t.TempDir(), "import", "no link here"}, &bytes.Buffer{}, stderr)

		assert.Equal(t, xhsimport.EINVALID, xhsimport.ErrorCode(err))
		assert.Contains(t, stderr.String(), "No valid Xiaohongshu URL found in the text.")
	})

	t.Run("reports fetch errors", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestMain(t, notePage)
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("HTTP 500 for " + url)
			},
			CloseFn: func() error { return nil },
		}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--vault", t.TempDir(), "import", "http://xhslink.com/a/x"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Failed to import note: fetch note page: HTTP 500 for http://xhslink.com/a/x")
	})
}

func TestMain_Run_OpensDatabase(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	m := main.NewMain()
	m.DBPath = dbPath
	require.NoError(t, m.Run(ctx, []string{"categories", "add", "读书"}, &bytes.Buffer{}, &bytes.Buffer{}))

	m = main.NewMain()
	m.DBPath = dbPath
	stdout := &bytes.Buffer{}
	require.NoError(t, m.Run(ctx, []string{"categories", "list"}, stdout, &bytes.Buffer{}))

	assert.Contains(t, stdout.String(), "  读书\n")
}
