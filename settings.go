package xhsimport

import (
	"context"
	"path"
	"slices"
	"strings"
)

// OtherCategory is the catch-all category. It is always available and never stored.
const OtherCategory = "其他"

// UncategorizedFolder is used when an import has no category.
const UncategorizedFolder = "Uncategorized"

// Settings is the persisted importer configuration.
type Settings struct {
	// DefaultFolder is the vault folder holding category folders.
	// Empty means the vault root.
	DefaultFolder string `json:"defaultFolder"`

	// Categories are user-defined categories in display order,
	// excluding OtherCategory.
	Categories []string `json:"categories"`

	LastCategory  string `json:"lastCategory"`
	DownloadMedia bool   `json:"downloadMedia"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultFolder: "XHS Notes",
		Categories:    []string{"美食", "旅行", "娱乐", "知识", "工作", "情感", "个人成长", "优惠", "搞笑", "育儿"},
	}
}

// AllCategories returns the user-defined categories followed by OtherCategory.
func (s *Settings) AllCategories() []string {
	return append(slices.Clone(s.Categories), OtherCategory)
}

// DefaultCategory returns the category preselected for a new import:
// the last used one if it still exists, else the first, else OtherCategory.
func (s *Settings) DefaultCategory() string {
	if s.LastCategory != "" && slices.Contains(s.Categories, s.LastCategory) {
		return s.LastCategory
	}
	if len(s.Categories) > 0 {
		return s.Categories[0]
	}
	return OtherCategory
}

// FolderPath returns the vault folder for notes in category.
func (s *Settings) FolderPath(category string) string {
	if category == "" {
		category = UncategorizedFolder
	}
	return path.Join(s.DefaultFolder, category)
}

// MediaFolderPath returns the vault folder for downloaded media.
func (s *Settings) MediaFolderPath() string {
	return path.Join(s.DefaultFolder, MediaFolderName)
}

// AddCategory appends a category.
func (s *Settings) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Errorf(EINVALID, "category name required")
	}
	if name == OtherCategory || slices.Contains(s.Categories, name) {
		return Errorf(ECONFLICT, "category %q already exists", name)
	}
	s.Categories = append(s.Categories, name)
	return nil
}

// RemoveCategory removes a category.
func (s *Settings) RemoveCategory(name string) error {
	i := slices.Index(s.Categories, name)
	if i < 0 {
		return Errorf(ENOTFOUND, "category %q not found", name)
	}
	s.Categories = slices.Delete(s.Categories, i, i+1)
	return nil
}

// RenameCategory renames a category in place, keeping its position.
func (s *Settings) RenameCategory(oldName, newName string) error {
	i := slices.Index(s.Categories, oldName)
	if i < 0 {
		return Errorf(ENOTFOUND, "category %q not found", oldName)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return Errorf(EINVALID, "category name required")
	}
	if newName == OtherCategory || (newName != oldName && slices.Contains(s.Categories, newName)) {
		return Errorf(ECONFLICT, "category %q already exists", newName)
	}
	s.Categories[i] = newName
	return nil
}

// MoveCategory swaps a category with its neighbour. A negative delta moves
// it towards the front of the list.
func (s *Settings) MoveCategory(name string, delta int) error {
	i := slices.Index(s.Categories, name)
	if i < 0 {
		return Errorf(ENOTFOUND, "category %q not found", name)
	}
	j := i + 1
	if delta < 0 {
		j = i - 1
	}
	if j < 0 || j >= len(s.Categories) {
		return Errorf(EINVALID, "category %q cannot move further", name)
	}
	s.Categories[i], s.Categories[j] = s.Categories[j], s.Categories[i]
	return nil
}

// SettingsService loads and saves importer settings.
type SettingsService interface {
	// LoadSettings returns the saved settings, or DefaultSettings
	// if nothing has been saved yet.
	LoadSettings(ctx context.Context) (*Settings, error)

	// SaveSettings replaces the saved settings.
	SaveSettings(ctx context.Context, settings *Settings) error
}
