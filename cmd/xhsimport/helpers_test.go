package main_test

import (
	"context"

	"github.com/fwojciec/xhsimport"
	"github.com/fwojciec/xhsimport/mock"
)

// memSettings returns a SettingsService holding settings in memory.
func memSettings(initial *xhsimport.Settings) (*mock.SettingsService, func() *xhsimport.Settings) {
	current := initial
	svc := &mock.SettingsService{
		LoadSettingsFn: func(ctx context.Context) (*xhsimport.Settings, error) {
			s := *current
			s.Categories = append([]string(nil), current.Categories...)
			return &s, nil
		},
		SaveSettingsFn: func(ctx context.Context, settings *xhsimport.Settings) error {
			current = settings
			return nil
		},
	}
	return svc, func() *xhsimport.Settings { return current }
}
