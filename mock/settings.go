package mock

import (
	"context"

	"github.com/fwojciec/xhsimport"
)

var _ xhsimport.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of xhsimport.SettingsService.
type SettingsService struct {
	LoadSettingsFn func(ctx context.Context) (*xhsimport.Settings, error)
	SaveSettingsFn func(ctx context.Context, settings *xhsimport.Settings) error
}

func (s *SettingsService) LoadSettings(ctx context.Context) (*xhsimport.Settings, error) {
	return s.LoadSettingsFn(ctx)
}

func (s *SettingsService) SaveSettings(ctx context.Context, settings *xhsimport.Settings) error {
	return s.SaveSettingsFn(ctx, settings)
}
