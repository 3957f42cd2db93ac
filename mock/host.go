package mock

import (
	"context"

	"github.com/fwojciec/xhsimport"
)

var (
	_ xhsimport.Prompter      = (*Prompter)(nil)
	_ xhsimport.FileStore     = (*FileStore)(nil)
	_ xhsimport.Opener        = (*Opener)(nil)
	_ xhsimport.Notifier      = (*Notifier)(nil)
	_ xhsimport.DomainLimiter = (*DomainLimiter)(nil)
)

// Prompter is a mock implementation of xhsimport.Prompter.
type Prompter struct {
	PromptFn func(ctx context.Context, settings *xhsimport.Settings) (*xhsimport.ShareInput, error)
}

func (p *Prompter) Prompt(ctx context.Context, settings *xhsimport.Settings) (*xhsimport.ShareInput, error) {
	return p.PromptFn(ctx, settings)
}

// FileStore is a mock implementation of xhsimport.FileStore.
type FileStore struct {
	ExistsFn       func(ctx context.Context, path string) (bool, error)
	CreateFolderFn func(ctx context.Context, path string) error
	CreateFileFn   func(ctx context.Context, path string, content string) error
	WriteBinaryFn  func(ctx context.Context, path string, data []byte) error
}

func (s *FileStore) Exists(ctx context.Context, path string) (bool, error) {
	return s.ExistsFn(ctx, path)
}

func (s *FileStore) CreateFolder(ctx context.Context, path string) error {
	return s.CreateFolderFn(ctx, path)
}

func (s *FileStore) CreateFile(ctx context.Context, path string, content string) error {
	return s.CreateFileFn(ctx, path, content)
}

func (s *FileStore) WriteBinary(ctx context.Context, path string, data []byte) error {
	return s.WriteBinaryFn(ctx, path, data)
}

// Opener is a mock implementation of xhsimport.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, path string) error
}

func (o *Opener) Open(ctx context.Context, path string) error {
	return o.OpenFn(ctx, path)
}

// Notifier is a mock implementation of xhsimport.Notifier.
type Notifier struct {
	NotifyFn func(msg string)
}

func (n *Notifier) Notify(msg string) {
	n.NotifyFn(msg)
}

// DomainLimiter is a mock implementation of xhsimport.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
