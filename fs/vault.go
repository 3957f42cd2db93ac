// Package fs provides a file-based vault for imported notes.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/xhsimport"
)

// Ensure Vault implements xhsimport.FileStore at compile time.
var _ xhsimport.FileStore = (*Vault)(nil)

// Vault stores notes and media under a root directory.
// Paths are slash-separated and relative to the root.
type Vault struct {
	root string
}

// NewVault creates a new Vault rooted at the given directory.
func NewVault(root string) *Vault {
	return &Vault{root: root}
}

// Root returns the vault root directory.
func (v *Vault) Root() string {
	return v.root
}

// Abs converts a vault path to an OS path. Paths escaping the root are rejected.
func (v *Vault) Abs(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", xhsimport.Errorf(xhsimport.EINVALID, "path %q is outside the vault", path)
	}
	return filepath.Join(v.root, clean), nil
}

// Exists reports whether a file or folder exists at path.
func (v *Vault) Exists(ctx context.Context, path string) (bool, error) {
	abs, err := v.Abs(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateFolder creates a folder and any missing parents.
func (v *Vault) CreateFolder(ctx context.Context, path string) error {
	abs, err := v.Abs(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(abs, 0755)
}

// CreateFile creates a new text file. Existing files are never overwritten.
func (v *Vault) CreateFile(ctx context.Context, path string, content string) error {
	abs, err := v.Abs(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return xhsimport.Errorf(xhsimport.ECONFLICT, "file %q already exists", path)
	}
	if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteBinary writes binary data to path, replacing any existing file.
func (v *Vault) WriteBinary(ctx context.Context, path string, data []byte) error {
	abs, err := v.Abs(path)
	if err != nil {
		return err
	}
	return os.WriteFile(abs, data, 0644)
}
