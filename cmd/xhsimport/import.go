package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	prompter := &ArgPrompter{
		Text:       c.Text,
		Category:   c.Category,
		Download:   c.Download,
		NoDownload: c.NoDownload,
		Stdin:      deps.Stdin,
	}
	if isTerminal(deps.Stdin) {
		prompter.Hint = deps.Stderr
	}

	doc, err := deps.Importer.Run(deps.Ctx, prompter)
	if err != nil {
		return err
	}
	if doc == nil {
		fmt.Fprintln(deps.Stderr, "Nothing to import.")
	}
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
