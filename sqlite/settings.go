package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fwojciec/xhsimport"
)

// Compile-time interface verification.
var _ xhsimport.SettingsService = (*SettingsService)(nil)

// Settings keys.
const (
	keyDefaultFolder = "defaultFolder"
	keyCategories    = "categories"
	keyLastCategory  = "lastCategory"
	keyDownloadMedia = "downloadMedia"
)

// SettingsService implements xhsimport.SettingsService using SQLite.
// Each setting is stored as a separate key so partially saved data
// still loads on top of the defaults.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// LoadSettings returns the stored settings merged over xhsimport.DefaultSettings.
func (s *SettingsService) LoadSettings(ctx context.Context) (*xhsimport.Settings, error) {
	settings := xhsimport.DefaultSettings()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		if err := applySetting(settings, key, value); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// SaveSettings stores all settings in a single transaction.
func (s *SettingsService) SaveSettings(ctx context.Context, settings *xhsimport.Settings) error {
	categories, err := json.Marshal(settings.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if settings.Categories == nil {
		categories = []byte("[]")
	}

	values := []struct{ key, value string }{
		{keyDefaultFolder, settings.DefaultFolder},
		{keyCategories, string(categories)},
		{keyLastCategory, settings.LastCategory},
		{keyDownloadMedia, strconv.FormatBool(settings.DownloadMedia)},
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, v := range values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, v.key, v.value, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// applySetting decodes a stored value into settings. Unknown keys are ignored.
func applySetting(settings *xhsimport.Settings, key, value string) error {
	switch key {
	case keyDefaultFolder:
		settings.DefaultFolder = value
	case keyCategories:
		var categories []string
		if err := json.Unmarshal([]byte(value), &categories); err != nil {
			return xhsimport.Errorf(xhsimport.EINTERNAL, "failed to parse %s: %v", key, err)
		}
		settings.Categories = categories
	case keyLastCategory:
		settings.LastCategory = value
	case keyDownloadMedia:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return xhsimport.Errorf(xhsimport.EINTERNAL, "failed to parse %s: %v", key, err)
		}
		settings.DownloadMedia = b
	}
	return nil
}
