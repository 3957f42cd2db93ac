package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/xhsimport"
	"github.com/fwojciec/xhsimport/fs"
)

var (
	_ xhsimport.Prompter = (*ArgPrompter)(nil)
	_ xhsimport.Opener   = (*PathOpener)(nil)
	_ xhsimport.Notifier = (*WriterNotifier)(nil)
)

// ArgPrompter answers the import prompt from command-line flags,
// reading the share text from Stdin when Text is empty.
type ArgPrompter struct {
	Text       string
	Category   string
	Download   bool
	NoDownload bool
	Stdin      io.Reader

	// Hint, when set, receives instructions before reading Stdin.
	Hint io.Writer
}

// Prompt returns nil when no share text was given.
func (p *ArgPrompter) Prompt(ctx context.Context, settings *xhsimport.Settings) (*xhsimport.ShareInput, error) {
	text := p.Text
	if text == "" && p.Stdin != nil {
		if p.Hint != nil {
			fmt.Fprintln(p.Hint, "Paste the share text, then press Ctrl-D:")
		}
		data, err := io.ReadAll(p.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read share text: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	category := p.Category
	if category == "" {
		category = settings.DefaultCategory()
	} else if !slices.Contains(settings.AllCategories(), category) {
		return nil, xhsimport.Errorf(xhsimport.EINVALID, "unknown category %q", category)
	}

	download := settings.DownloadMedia
	switch {
	case p.Download:
		download = true
	case p.NoDownload:
		download = false
	}

	return &xhsimport.ShareInput{
		Text:          text,
		Category:      category,
		DownloadMedia: download,
	}, nil
}

// PathOpener shows an imported note by printing its location.
type PathOpener struct {
	W     io.Writer
	Vault *fs.Vault
}

// Open prints the file path of the note.
func (o *PathOpener) Open(ctx context.Context, path string) error {
	abs, err := o.Vault.Abs(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(o.W, filepath.Clean(abs))
	return err
}

// WriterNotifier writes notices as lines to W.
type WriterNotifier struct {
	W io.Writer
}

// Notify writes msg followed by a newline.
func (n *WriterNotifier) Notify(msg string) {
	fmt.Fprintln(n.W, msg)
}
