package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/humanid/pkg/file"
)

func newLocal(t *testing.T) (*file.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := file.NewLocalStorage(dir)
	require.NoError(t, err)
	return store, dir
}

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("empty base dir", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage("")
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("creates missing base dir", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "data")
		store, err := file.NewLocalStorage(dir)
		require.NoError(t, err)
		assert.DirExists(t, dir)
		assert.Equal(t, dir, store.BaseDir())
		assert.NoError(t, store.Healthcheck(context.Background()))
	})
}

func TestLocalStorage_LoadMissing(t *testing.T) {
	t.Parallel()
	store, _ := newLocal(t)

	data, err := store.Load(context.Background(), "snapshot.json")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.False(t, store.Exists(context.Background(), "snapshot.json"))
}

func TestLocalStorage_SaveLoad(t *testing.T) {
	t.Parallel()
	store, dir := newLocal(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "snapshots/humanid.json", []byte(`{"version":1}`)))
	assert.True(t, store.Exists(ctx, "snapshots/humanid.json"))

	data, err := store.Load(ctx, "snapshots/humanid.json")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))

	// overwrite
	require.NoError(t, store.Save(ctx, "snapshots/humanid.json", []byte(`{"version":2}`)))
	data, err = store.Load(ctx, "snapshots/humanid.json")
	require.NoError(t, err)
	assert.Equal(t, `{"version":2}`, string(data))

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Join(dir, "snapshots"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "humanid.json", entries[0].Name())

	info, err := os.Stat(filepath.Join(dir, "snapshots", "humanid.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLocalStorage_FileMode(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := file.NewLocalStorage(dir, file.WithFileMode(0o644))
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "a.json", []byte("{}")))
	info, err := os.Stat(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestLocalStorage_PathTraversal(t *testing.T) {
	t.Parallel()
	store, _ := newLocal(t)
	ctx := context.Background()

	for _, path := range []string{"../escape.json", "a/../../escape.json", "../../etc/passwd"} {
		t.Run(path, func(t *testing.T) {
			_, err := store.Load(ctx, path)
			assert.ErrorIs(t, err, file.ErrInvalidPath)

			err = store.Save(ctx, path, []byte("x"))
			assert.ErrorIs(t, err, file.ErrInvalidPath)

			err = store.Delete(ctx, path)
			assert.ErrorIs(t, err, file.ErrInvalidPath)

			assert.False(t, store.Exists(ctx, path))
		})
	}
}

func TestLocalStorage_SaveToBaseDir(t *testing.T) {
	t.Parallel()
	store, _ := newLocal(t)

	err := store.Save(context.Background(), ".", []byte("x"))
	assert.ErrorIs(t, err, file.ErrIsDirectory)
}

func TestLocalStorage_Delete(t *testing.T) {
	t.Parallel()
	store, dir := newLocal(t)
	ctx := context.Background()

	err := store.Delete(ctx, "missing.json")
	assert.ErrorIs(t, err, file.ErrFileNotFound)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	err = store.Delete(ctx, "sub")
	assert.ErrorIs(t, err, file.ErrIsDirectory)

	require.NoError(t, store.Save(ctx, "a.json", []byte("{}")))
	require.NoError(t, store.Delete(ctx, "a.json"))
	assert.False(t, store.Exists(ctx, "a.json"))
}

func TestLocalStorage_CanceledContext(t *testing.T) {
	t.Parallel()
	store, _ := newLocal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx, "a.json")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, "a.json", nil), context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, "a.json"), context.Canceled)
	assert.False(t, store.Exists(ctx, "a.json"))
	assert.ErrorIs(t, store.Healthcheck(ctx), context.Canceled)
}
