// Package goquery implements xhsimport.Extractor on top of goquery.
package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/xhsimport"
)

// Ensure Extractor implements xhsimport.Extractor at compile time.
var _ xhsimport.Extractor = (*Extractor)(nil)

// Extractor derives note content from the page markup and the state
// embedded in it. Markup wins for title and description; the state supplies
// the note type, video and images.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a new Extractor. A nil logger discards diagnostics.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{logger: logger}
}

// Extract implements xhsimport.Extractor.
func (e *Extractor) Extract(html string) *xhsimport.Note {
	note := &xhsimport.Note{
		Title: xhsimport.UntitledNoteTitle,
		Body:  xhsimport.ContentNotFound,
	}

	state, err := xhsimport.ParseState(html)
	switch xhsimport.ErrorCode(err) {
	case "":
	case xhsimport.ENOTFOUND:
		e.logger.Debug("page state not found, using markup only")
	default:
		e.logger.Warn("page state unreadable, using markup only", "err", err)
	}
	record := state.Record()
	if state != nil && record == nil {
		e.logger.Debug("page state has no note record")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Warn("failed to parse page markup", "err", err)
	}

	descFound := false
	if doc != nil {
		if title := strings.TrimSpace(xhsimport.CleanTitle(doc.Find("title").First().Text())); title != "" {
			note.Title = title
		}

		if desc := doc.Find("#detail-desc").First(); desc.Length() > 0 {
			desc.Find("br").ReplaceWithHtml("\n")
			if body := xhsimport.StripAnnotations(desc.Text()); body != "" {
				note.Body = body
			}
			descFound = true
		}
	}

	if !descFound {
		if body := xhsimport.StripAnnotations(record.Description()); body != "" {
			note.Body = body
		}
	}

	note.Tags = xhsimport.ExtractTags(note.Body)

	note.IsVideo = record.IsVideo()
	if note.IsVideo {
		note.VideoURL = record.VideoURL()
	}
	note.Images = record.ImageURLs()

	return note
}
