package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/xhsimport"
	"github.com/fwojciec/xhsimport/fs"
	"github.com/fwojciec/xhsimport/importer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Settings xhsimport.SettingsService
	Vault    *fs.Vault
	Importer *importer.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Vault   string `env:"XHSIMPORT_VAULT" default:"." help:"Vault root directory"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Import     ImportCmd     `cmd:"" help:"Import a Xiaohongshu note from share text"`
	Categories CategoriesCmd `cmd:"" help:"Manage note categories"`
	Config     ConfigCmd     `cmd:"" help:"Show or change import settings"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Text       string        `arg:"" optional:"" help:"Share text containing the note link (read from stdin when omitted)"`
	Category   string        `short:"c" help:"Category folder (defaults to the last used category)"`
	Download   bool          `xor:"download" help:"Download media into the vault"`
	NoDownload bool          `xor:"download" help:"Link media at its remote URL"`
	Browser    bool          `help:"Render the page in headless Chrome"`
	Timeout    time.Duration `default:"30s" help:"Page and media request timeout (0 disables)"`
	MediaRate  float64       `help:"Maximum media downloads per second per host (0 disables)"`
}

// CategoriesCmd is the "categories" subcommand group.
type CategoriesCmd struct {
	List   CategoriesListCmd   `cmd:"" default:"1" help:"List categories"`
	Add    CategoriesAddCmd    `cmd:"" help:"Add a category"`
	Remove CategoriesRemoveCmd `cmd:"" help:"Remove a category"`
	Rename CategoriesRenameCmd `cmd:"" help:"Rename a category"`
	Move   CategoriesMoveCmd   `cmd:"" help:"Move a category up or down the list"`
}

// CategoriesListCmd is the "categories list" subcommand.
type CategoriesListCmd struct{}

// CategoriesAddCmd is the "categories add" subcommand.
type CategoriesAddCmd struct {
	Name string `arg:"" help:"Category name"`
}

// CategoriesRemoveCmd is the "categories remove" subcommand.
type CategoriesRemoveCmd struct {
	Name string `arg:"" help:"Category name"`
}

// CategoriesRenameCmd is the "categories rename" subcommand.
type CategoriesRenameCmd struct {
	Old string `arg:"" help:"Current category name"`
	New string `arg:"" help:"New category name"`
}

// CategoriesMoveCmd is the "categories move" subcommand.
type CategoriesMoveCmd struct {
	Name      string `arg:"" help:"Category name"`
	Direction string `arg:"" enum:"up,down" help:"Direction to move (up or down)"`
}

// ConfigCmd is the "config" subcommand group.
type ConfigCmd struct {
	Show        ConfigShowCmd        `cmd:"" default:"1" help:"Show current settings"`
	SetFolder   ConfigSetFolderCmd   `cmd:"" help:"Set the folder holding imported notes"`
	SetDownload ConfigSetDownloadCmd `cmd:"" help:"Set whether media is downloaded by default"`
}

// ConfigShowCmd is the "config show" subcommand.
type ConfigShowCmd struct{}

// ConfigSetFolderCmd is the "config set-folder" subcommand.
type ConfigSetFolderCmd struct {
	Folder string `arg:"" help:"Vault-relative folder (empty for the vault root)"`
}

// ConfigSetDownloadCmd is the "config set-download" subcommand.
type ConfigSetDownloadCmd struct {
	Value string `arg:"" enum:"true,false" help:"true or false"`
}
