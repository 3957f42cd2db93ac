package xhsimport

import "context"

// ShareInput is what the user submits to start an import.
type ShareInput struct {
	Text          string
	Category      string
	DownloadMedia bool
}

// Prompter collects share text, category and the download choice from the user.
type Prompter interface {
	// Prompt blocks until the user submits or dismisses the prompt.
	// The settings provide the preselected category and download choice.
	// Returns nil if the prompt was dismissed.
	Prompt(ctx context.Context, settings *Settings) (*ShareInput, error)
}

// FileStore is the vault the importer writes notes and media into.
// Paths are slash-separated and relative to the vault root.
type FileStore interface {
	Exists(ctx context.Context, path string) (bool, error)

	// CreateFolder creates a folder and any missing parents.
	CreateFolder(ctx context.Context, path string) error

	// CreateFile creates a text file. Returns ECONFLICT if path exists.
	CreateFile(ctx context.Context, path string, content string) error

	// WriteBinary writes a binary file, replacing any existing content.
	WriteBinary(ctx context.Context, path string, data []byte) error
}

// Opener shows an imported note to the user.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Notifier shows short non-fatal messages to the user.
type Notifier interface {
	Notify(msg string)
}
