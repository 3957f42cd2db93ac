package importer

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"time"

	"github.com/fwojciec/xhsimport"
)

// NoticeDownloadFailed prefixes the notice shown when a media asset
// cannot be downloaded.
const NoticeDownloadFailed = "Failed to download media: "

// Materializer resolves the assets of a media plan, downloading them into
// the vault when asked to.
type Materializer struct {
	Downloader xhsimport.Downloader
	Files      xhsimport.FileStore

	// RateLimiter paces downloads per host. Nil disables pacing.
	RateLimiter xhsimport.DomainLimiter

	Logger *slog.Logger
	Now    func() time.Time
}

// Materialize sets Ref on every item of plan. Without download every item
// links to its source URL. With download each asset is fetched in order
// and written to folder, and the item links to the local copy.
//
// A failed download leaves the item linking to its source URL and adds one
// notice. Materialize never fails as a whole.
func (m *Materializer) Materialize(ctx context.Context, plan *xhsimport.MediaPlan, title, folder string, download bool) []string {
	items := plan.Items()
	if !download {
		for _, item := range items {
			item.Ref = item.SourceURL
		}
		return nil
	}

	safe := xhsimport.SanitizeMediaName(title)
	var notices []string
	for _, item := range items {
		ref, err := m.download(ctx, item, safe, folder)
		if err != nil {
			m.logger().Warn("media download failed",
				"kind", item.Kind,
				"url", item.SourceURL,
				"err", err,
			)
			notices = append(notices, NoticeDownloadFailed+err.Error())
			item.Ref = item.SourceURL
			continue
		}
		item.Ref = ref
	}
	return notices
}

func (m *Materializer) download(ctx context.Context, item *xhsimport.MediaItem, safe, folder string) (string, error) {
	if m.RateLimiter != nil {
		if err := m.RateLimiter.Wait(ctx, hostOf(item.SourceURL)); err != nil {
			return "", err
		}
	}

	data, err := m.Downloader.Download(ctx, item.SourceURL)
	if err != nil {
		return "", err
	}

	name := xhsimport.MediaFileName(safe, item, m.now())
	if err := m.Files.WriteBinary(ctx, path.Join(folder, name), data); err != nil {
		return "", err
	}
	return xhsimport.MediaRef(name), nil
}

func (m *Materializer) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Materializer) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// hostOf returns the host of rawURL, or rawURL itself when it does not parse.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
