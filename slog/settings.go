package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/xhsimport"
)

// Ensure LoggingSettingsService implements xhsimport.SettingsService.
var _ xhsimport.SettingsService = (*LoggingSettingsService)(nil)

// LoggingSettingsService wraps a SettingsService with debug logging.
type LoggingSettingsService struct {
	next   xhsimport.SettingsService
	logger *slog.Logger
}

// NewLoggingSettingsService creates a new LoggingSettingsService.
func NewLoggingSettingsService(next xhsimport.SettingsService, logger *slog.Logger) *LoggingSettingsService {
	return &LoggingSettingsService{next: next, logger: logger}
}

// LoadSettings delegates to the wrapped service.
func (s *LoggingSettingsService) LoadSettings(ctx context.Context) (settings *xhsimport.Settings, err error) {
	defer func() {
		if err != nil {
			s.logger.Error("load settings", "err", err)
			return
		}
		s.logger.Debug("load settings",
			"folder", settings.DefaultFolder,
			"categories", len(settings.Categories),
			"download", settings.DownloadMedia,
		)
	}()
	return s.next.LoadSettings(ctx)
}

// SaveSettings delegates to the wrapped service.
func (s *LoggingSettingsService) SaveSettings(ctx context.Context, settings *xhsimport.Settings) (err error) {
	defer func() {
		s.logger.Debug("save settings", "last_category", settings.LastCategory, "err", err)
	}()
	return s.next.SaveSettings(ctx, settings)
}
