package slog

import (
	"log/slog"

	"github.com/fwojciec/xhsimport"
)

// Ensure LoggingExtractor implements xhsimport.Extractor.
var _ xhsimport.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of the extracted note.
type LoggingExtractor struct {
	next   xhsimport.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next xhsimport.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs a summary of the note.
func (e *LoggingExtractor) Extract(html string) *xhsimport.Note {
	note := e.next.Extract(html)
	e.logger.Debug("extract",
		"title", note.Title,
		"video", note.IsVideo,
		"images", len(note.Images),
		"tags", len(note.Tags),
	)
	return note
}
