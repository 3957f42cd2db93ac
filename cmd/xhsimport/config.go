package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/xhsimport"
)

// Run executes the config show command.
func (c *ConfigShowCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.LoadSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsimport.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "vault:          %s\n", deps.Vault.Root())
	fmt.Fprintf(deps.Stdout, "folder:         %s\n", settings.DefaultFolder)
	fmt.Fprintf(deps.Stdout, "media folder:   %s\n", settings.MediaFolderPath())
	fmt.Fprintf(deps.Stdout, "download media: %t\n", settings.DownloadMedia)
	fmt.Fprintf(deps.Stdout, "categories:     %s\n", strings.Join(settings.AllCategories(), ", "))
	fmt.Fprintf(deps.Stdout, "last category:  %s\n", settings.LastCategory)
	return nil
}

// Run executes the config set-folder command.
func (c *ConfigSetFolderCmd) Run(deps *Dependencies) error {
	folder := strings.Trim(strings.TrimSpace(c.Folder), "/")
	return updateConfig(deps, func(s *xhsimport.Settings) {
		s.DefaultFolder = folder
	})
}

// Run executes the config set-download command.
func (c *ConfigSetDownloadCmd) Run(deps *Dependencies) error {
	return updateConfig(deps, func(s *xhsimport.Settings) {
		s.DownloadMedia = c.Value == "true"
	})
}

func updateConfig(deps *Dependencies, fn func(*xhsimport.Settings)) error {
	settings, err := deps.Settings.LoadSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsimport.ErrorMessage(err))
		return err
	}

	fn(settings)

	if err := deps.Settings.SaveSettings(deps.Ctx, settings); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsimport.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Settings saved.")
	return nil
}
