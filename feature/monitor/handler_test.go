package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"requirement-monitor/core/fstree"
	"requirement-monitor/core/reconcile"
	"requirement-monitor/core/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// noRecords is a RecordStore without any records.
type noRecords struct{}

func (noRecords) FindByInode(ctx context.Context, inode uint64) (*reconcile.FileRecord, error) {
	return nil, nil
}

func (noRecords) FindByPath(ctx context.Context, path string) (*reconcile.FileRecord, error) {
	return nil, nil
}

func (noRecords) Relocate(ctx context.Context, record reconcile.FileRecord, path, filename string) error {
	return nil
}

func (noRecords) Delete(ctx context.Context, record reconcile.FileRecord) error {
	return nil
}

func setupApp(t *testing.T, files ...string) (*fiber.App, string) {
	t.Helper()
	base := t.TempDir()
	for _, f := range files {
		p := filepath.Join(base, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0o644))
	}

	cfg := reconcile.Config{BaseDir: base, Root: "public"}
	rec := reconcile.New(cfg, fstree.New(base), noRecords{}, snapshot.NewLocalStore(base, snapshot.DefaultKey), zap.NewNop())
	feature := NewFeature(reconcile.NewRunner(rec, zap.NewNop()), cfg.Root, zap.NewNop())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, base
}

func TestHandleRun(t *testing.T) {
	app, base := setupApp(t, "public/req/1/a.pdf")

	resp, err := app.Test(httptest.NewRequest("POST", "/monitor/run", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report reconcile.RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 3, report.Current)
	assert.Equal(t, 3, report.Added)
	assert.Equal(t, 3, report.Untracked)
	assert.False(t, report.DryRun)

	_, err = os.Stat(filepath.Join(base, snapshot.DefaultKey))
	assert.NoError(t, err)
}

func TestHandleRun_DryRun(t *testing.T) {
	app, base := setupApp(t, "public/a.pdf")

	resp, err := app.Test(httptest.NewRequest("POST", "/monitor/run?dry_run=true", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report reconcile.RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.DryRun)

	_, err = os.Stat(filepath.Join(base, snapshot.DefaultKey))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHandleRun_Failure(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/monitor/run", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleStatus(t *testing.T) {
	app, _ := setupApp(t, "public/a.pdf")

	resp, err := app.Test(httptest.NewRequest("GET", "/monitor/status", nil))
	require.NoError(t, err)
	var before reconcile.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&before))
	assert.Nil(t, before.Last)

	_, err = app.Test(httptest.NewRequest("POST", "/monitor/run", nil))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/monitor/status", nil))
	require.NoError(t, err)
	var after reconcile.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
	require.NotNil(t, after.Last)
	assert.Equal(t, 1, after.Last.Current)
	assert.False(t, after.Running)
}

func TestHandleSnapshot(t *testing.T) {
	app, _ := setupApp(t, "public/req/a.pdf")

	_, err := app.Test(httptest.NewRequest("POST", "/monitor/run", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/monitor/snapshot", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Location string   `json:"location"`
		Count    int      `json:"count"`
		Paths    []string `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	assert.ElementsMatch(t, []string{"public/req/a.pdf", "public/req"}, body.Paths)
	assert.Contains(t, body.Location, snapshot.DefaultKey)

	resp, err = app.Test(httptest.NewRequest("GET", "/monitor/snapshot?tree=true", nil))
	require.NoError(t, err)
	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(text), "a.pdf")
}

func TestHandleSnapshot_Malformed(t *testing.T) {
	app, base := setupApp(t, "public/a.pdf")
	require.NoError(t, os.WriteFile(filepath.Join(base, snapshot.DefaultKey), []byte("{not json"), 0o644))

	resp, err := app.Test(httptest.NewRequest("GET", "/monitor/snapshot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, "public", zap.NewNop())
	assert.Equal(t, "monitor", feature.Name())
	assert.False(t, feature.IsEnabled())
}
