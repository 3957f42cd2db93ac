package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/xhsimport"
	"github.com/fwojciec/xhsimport/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_Exists(t *testing.T) {
	t.Parallel()

	t.Run("reports missing and existing paths", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		v := fs.NewVault(root)
		ctx := context.Background()

		ok, err := v.Exists(ctx, "XHS Notes/美食")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, os.MkdirAll(filepath.Join(root, "XHS Notes", "美食"), 0755))

		ok, err = v.Exists(ctx, "XHS Notes/美食")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestVault_CreateFolder(t *testing.T) {
	t.Parallel()

	t.Run("creates nested folders", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		v := fs.NewVault(root)

		err := v.CreateFolder(context.Background(), "XHS Notes/旅行")

		require.NoError(t, err)
		info, err := os.Stat(filepath.Join(root, "XHS Notes", "旅行"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("succeeds when folder exists", func(t *testing.T) {
		t.Parallel()

		v := fs.NewVault(t.TempDir())
		ctx := context.Background()

		require.NoError(t, v.CreateFolder(ctx, "media"))
		require.NoError(t, v.CreateFolder(ctx, "media"))
	})
}

func TestVault_CreateFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		v := fs.NewVault(root)

		err := v.CreateFile(context.Background(), "[V]测试.md", "# 测试\n")

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(root, "[V]测试.md"))
		require.NoError(t, err)
		assert.Equal(t, "# 测试\n", string(data))
	})

	t.Run("never overwrites existing files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		v := fs.NewVault(root)
		ctx := context.Background()
		require.NoError(t, v.CreateFile(ctx, "note.md", "first"))

		err := v.CreateFile(ctx, "note.md", "second")

		assert.Equal(t, xhsimport.ECONFLICT, xhsimport.ErrorCode(err))
		data, err := os.ReadFile(filepath.Join(root, "note.md"))
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("fails when folder is missing", func(t *testing.T) {
		t.Parallel()

		v := fs.NewVault(t.TempDir())

		err := v.CreateFile(context.Background(), "missing/note.md", "x")

		require.Error(t, err)
	})

	t.Run("rejects paths outside the vault", func(t *testing.T) {
		t.Parallel()

		v := fs.NewVault(t.TempDir())

		err := v.CreateFile(context.Background(), "../escape.md", "x")

		assert.Equal(t, xhsimport.EINVALID, xhsimport.ErrorCode(err))
	})
}

func TestVault_WriteBinary(t *testing.T) {
	t.Parallel()

	t.Run("writes and replaces binary data", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		v := fs.NewVault(root)
		ctx := context.Background()
		require.NoError(t, v.CreateFolder(ctx, "media"))

		require.NoError(t, v.WriteBinary(ctx, "media/a.jpg", []byte{1, 2}))
		require.NoError(t, v.WriteBinary(ctx, "media/a.jpg", []byte{3}))

		data, err := os.ReadFile(filepath.Join(root, "media", "a.jpg"))
		require.NoError(t, err)
		assert.Equal(t, []byte{3}, data)
	})
}
