// Package importer orchestrates importing Xiaohongshu notes into a vault.
// It coordinates fetching, extraction, media materialization, composition
// and storage of a single note.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/xhsimport"
	"github.com/google/uuid"
)

// Notices shown to the user.
const (
	NoticeNoURL        = "No valid Xiaohongshu URL found in the text."
	NoticeImported     = "Imported Xiaohongshu note as "
	NoticeImportFailed = "Failed to import note: "
)

// Importer imports one note at a time. Steps run strictly in sequence.
type Importer struct {
	Fetcher   xhsimport.Fetcher
	Extractor xhsimport.Extractor
	Media     *Materializer
	Files     xhsimport.FileStore
	Settings  xhsimport.SettingsService
	Opener    xhsimport.Opener
	Notifier  xhsimport.Notifier
	Logger    *slog.Logger
	Now       func() time.Time
}

// Run asks the prompter for share text and imports the note it links to.
// Returns a nil document and nil error when the prompt was dismissed.
func (i *Importer) Run(ctx context.Context, prompter xhsimport.Prompter) (*xhsimport.Document, error) {
	settings, err := i.Settings.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	input, err := prompter.Prompt(ctx, settings)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, nil
	}
	return i.ImportText(ctx, input)
}

// ImportText finds the note URL in the share text and imports it.
// Returns EINVALID without doing any I/O when the text holds no note URL.
func (i *Importer) ImportText(ctx context.Context, input *xhsimport.ShareInput) (*xhsimport.Document, error) {
	u := xhsimport.ExtractURL(input.Text)
	if u == "" {
		i.notify(NoticeNoURL)
		return nil, xhsimport.Errorf(xhsimport.EINVALID, "no note URL in share text")
	}
	return i.Import(ctx, u, input.Category, input.DownloadMedia)
}

// Import imports the note at url into the folder of category.
// Any failure is logged, reported to the user and returned.
func (i *Importer) Import(ctx context.Context, url, category string, download bool) (doc *xhsimport.Document, err error) {
	logger := i.logger().With("import", uuid.NewString(), "url", url)

	defer func(begin time.Time) {
		if err != nil {
			logger.Error("import failed", "duration", time.Since(begin), "err", err)
			i.notify(NoticeImportFailed + errorText(err))
			return
		}
		logger.Info("import", "path", doc.Path, "duration", time.Since(begin))
	}(time.Now())

	return i.importNote(ctx, logger, url, category, download)
}

func (i *Importer) importNote(ctx context.Context, logger *slog.Logger, url, category string, download bool) (*xhsimport.Document, error) {
	settings, err := i.Settings.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	folder := settings.FolderPath(category)
	mediaFolder := settings.MediaFolderPath()

	if err := i.ensureFolder(ctx, folder); err != nil {
		return nil, err
	}
	if download {
		if err := i.ensureFolder(ctx, mediaFolder); err != nil {
			return nil, err
		}
	}

	html, err := i.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch note page: %w", err)
	}

	note := i.Extractor.Extract(html)
	logger.Debug("extracted note", "title", note.Title, "video", note.IsVideo, "images", len(note.Images))

	plan := xhsimport.PlanMedia(note)
	for _, notice := range i.media().Materialize(ctx, plan, note.Title, mediaFolder, download) {
		i.notify(notice)
	}

	doc := xhsimport.Compose(xhsimport.ComposeParams{
		Note:     note,
		Media:    plan,
		URL:      url,
		Category: category,
		Folder:   folder,
		Now:      i.now(),
	})
	for _, notice := range doc.Notices {
		i.notify(notice)
	}

	if err := i.Files.CreateFile(ctx, doc.Path, doc.Content); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	if err := i.Opener.Open(ctx, doc.Path); err != nil {
		logger.Warn("open note failed", "path", doc.Path, "err", err)
	}

	settings.LastCategory = category
	if err := i.Settings.SaveSettings(ctx, settings); err != nil {
		logger.Warn("save last category failed", "err", err)
	}

	i.notify(NoticeImported + doc.Path)
	return doc, nil
}

// ensureFolder creates folder unless it already exists.
func (i *Importer) ensureFolder(ctx context.Context, folder string) error {
	ok, err := i.Files.Exists(ctx, folder)
	if err != nil {
		return fmt.Errorf("check folder %q: %w", folder, err)
	}
	if ok {
		return nil
	}
	if err := i.Files.CreateFolder(ctx, folder); err != nil {
		return fmt.Errorf("create folder %q: %w", folder, err)
	}
	return nil
}

func (i *Importer) notify(msg string) {
	if i.Notifier != nil {
		i.Notifier.Notify(msg)
	}
}

func (i *Importer) media() *Materializer {
	if i.Media != nil {
		return i.Media
	}
	return &Materializer{Logger: i.Logger}
}

func (i *Importer) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

func (i *Importer) logger() *slog.Logger {
	if i.Logger != nil {
		return i.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// errorText returns the message of an application error, or the full
// error text for anything else.
func errorText(err error) string {
	var e *xhsimport.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
