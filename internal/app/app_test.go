package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/humanid"
	"github.com/dmitrymomot/humanid/internal/app"
	"github.com/dmitrymomot/humanid/pkg/config"
	"github.com/dmitrymomot/humanid/pkg/logger"
	"github.com/dmitrymomot/humanid/pkg/wordlist"
)

func testConfig(t *testing.T, store string) app.Config {
	t.Helper()
	return app.Config{
		Store:       store,
		SnapshotKey: "ids.json",
		DataDir:     t.TempDir(),
		Autosave:    true,
	}
}

func TestLoadConfig(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("HUMANID_STORE", "redis")
	t.Setenv("HUMANID_SEED", "99")
	t.Setenv("HTTP_ADDR", ":9999")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, app.StoreRedis, cfg.Store)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "humanid.snapshot.json", cfg.SnapshotKey)
	assert.True(t, cfg.Autosave)
	assert.Equal(t, ":9999", cfg.HTTP.Addr)
}

func TestLoadDictionary(t *testing.T) {
	t.Parallel()

	dict, err := app.LoadDictionary(app.Config{})
	require.NoError(t, err)
	assert.Same(t, wordlist.Default(), dict)

	path := filepath.Join(t.TempDir(), "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte("header\n1\talpha\n2\tbeta\n"), 0o600))
	dict, err = app.LoadDictionary(app.Config{Dictionary: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, dict.Words())

	_, err = app.LoadDictionary(app.Config{Dictionary: filepath.Join(t.TempDir(), "missing.tsv")})
	require.ErrorIs(t, err, app.ErrLoadDictionary)
}

func TestOpenBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		t.Parallel()
		b, err := app.OpenBackend(ctx, testConfig(t, app.StoreMemory), logger.Discard())
		require.NoError(t, err)
		assert.Equal(t, app.StoreMemory, b.Name)
		assert.Empty(t, b.Checks)
		require.NoError(t, b.Close(ctx))
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		b, err := app.OpenBackend(ctx, testConfig(t, app.StoreFile), logger.Discard())
		require.NoError(t, err)
		require.Len(t, b.Checks, 1)
		require.NoError(t, b.Checks[0].Fn(ctx))
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := app.OpenBackend(ctx, testConfig(t, "etcd"), logger.Discard())
		require.ErrorIs(t, err, app.ErrUnknownStore)
	})
}

func TestApp_PersistsAcrossRestarts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t, app.StoreFile)
	cfg.Seed = 5

	a, err := app.New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	h, err := a.Registry.Generate(ctx, humanid.Text("invoice-7"))
	require.NoError(t, err)
	require.NoError(t, a.Close(ctx))

	_, err = os.Stat(filepath.Join(cfg.DataDir, "ids.json"))
	require.NoError(t, err)

	cfg.Seed = 0
	reopened, err := app.New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close(ctx) })

	assert.Equal(t, int64(5), reopened.Registry.Seed())
	got, ok := reopened.Registry.Original(h)
	require.True(t, ok)
	assert.Equal(t, humanid.Text("invoice-7"), got)
}

func TestApp_FlushOnCloseWithoutAutosave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t, app.StoreFile)
	cfg.Autosave = false

	a, err := app.New(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	_, err = a.Registry.Generate(ctx, humanid.Int(1))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(cfg.DataDir, "ids.json"))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, a.Close(ctx))
	_, err = os.Stat(filepath.Join(cfg.DataDir, "ids.json"))
	require.NoError(t, err)
}

func TestApp_Handler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, err := app.New(ctx, testConfig(t, app.StoreFile), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })
	srv := a.Handler()

	req := httptest.NewRequest(http.MethodPost, "/ids", strings.NewReader(`{"original":{"type":"text","value":"a"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data humanid.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, humanid.Text("a"), body.Data.Original)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
