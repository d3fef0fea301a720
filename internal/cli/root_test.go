package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/store"
	"github.com/MKhiriev/go-item-sync/models"
)

// testEnv is one device: a SQLite file plus a shared local blob directory.
type testEnv struct {
	dsn      string
	blobRoot string
	logFile  string
}

func newTestEnv(t *testing.T, blobRoot string) testEnv {
	t.Helper()
	dir := t.TempDir()
	return testEnv{
		dsn:      filepath.Join(dir, "items.db"),
		blobRoot: blobRoot,
		logFile:  filepath.Join(dir, "itemsync.log"),
	}
}

func (e testEnv) seed(t *testing.T, items ...models.Item) {
	t.Helper()
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: e.dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()
	require.NoError(t, storages.Items.InsertMany(context.Background(), items...))
}

// run executes the root command with the environment's flags prepended.
func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	base := []string{
		"--dsn", e.dsn,
		"--remote", config.BackendLocal,
		"--root-path", e.blobRoot,
		"--log-file", e.logFile,
	}

	root := NewRootCommand(models.NewAppBuildInfo("1.0.0-test", "2026-01-01", "abc123"))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, base...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand(models.NewAppBuildInfo("1.0.0-test", "2026-01-01", "abc123"))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--json"})

	require.NoError(t, root.Execute())

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "1.0.0-test", got["version"])
	assert.Equal(t, "abc123", got["commit"])
}

func TestVersionFlag(t *testing.T) {
	root := NewRootCommand(models.NewAppBuildInfo("1.0.0-test", "", ""))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "1.0.0-test\n", out.String())
}

func TestPushThenStatus(t *testing.T) {
	env := newTestEnv(t, t.TempDir())
	env.seed(t, models.NewItem("1", map[string]string{"title": "one"}, time.Now().Add(-time.Hour)))

	out, err := env.run(t, "push", "--json")
	require.NoError(t, err)
	var pushed models.PushResponse
	require.NoError(t, json.Unmarshal([]byte(out), &pushed))
	assert.True(t, pushed.Pushed)

	// второй push без изменений ничего не отправляет
	out, err = env.run(t, "push")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing changed")

	out, err = env.run(t, "status", "--json")
	require.NoError(t, err)
	var status models.SyncStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.NotEmpty(t, status.LastKey)
	assert.False(t, status.LastPushAt.IsZero())
	assert.False(t, status.HasConflict)
}

func TestPull_NoSyncRecord(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	_, err := env.run(t, "pull")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sync record")
}

func TestConflictsAndResolve(t *testing.T) {
	env := newTestEnv(t, t.TempDir())
	env.seed(t, models.NewItem("1", map[string]string{"title": "one"}, time.Now().Add(-time.Hour)))

	_, err := env.run(t, "push")
	require.NoError(t, err)

	env.seed(t, models.NewItem("2", map[string]string{"title": "two"}, time.Now().Add(time.Minute)))

	out, err := env.run(t, "conflicts", "--json")
	require.NoError(t, err)
	var resp models.ConflictsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, 1, resp.Length)
	assert.Equal(t, "2", resp.Conflicts[0].ID)
	assert.Equal(t, models.ConflictLocalOnly, resp.Conflicts[0].Kind)

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.run(t, "resolve", "42", "--keep", "local")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"42"`)
	})

	t.Run("bad side", func(t *testing.T) {
		_, err := env.run(t, "resolve", "2", "--keep", "both")
		require.Error(t, err)
	})

	t.Run("keep local pushes", func(t *testing.T) {
		out, err := env.run(t, "resolve", "2", "--keep", "local", "--json")
		require.NoError(t, err)
		var got models.ResolveResponse
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.Pushed)

		out, err = env.run(t, "conflicts")
		require.NoError(t, err)
		assert.Contains(t, out, "no conflicts")
	})
}

func TestMergeCommand(t *testing.T) {
	env := newTestEnv(t, t.TempDir())
	env.seed(t, models.NewItem("1", map[string]string{"title": "one"}, time.Now().Add(-time.Hour)))

	_, err := env.run(t, "push")
	require.NoError(t, err)

	out, err := env.run(t, "merge", "--json")
	require.NoError(t, err)
	var result models.MergeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Zero(t, result.Updated)
	assert.Zero(t, result.Inserted)
}

func TestSyncWithoutRemote(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCommand(models.NewAppBuildInfo("1.0.0-test", "", ""))
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"push",
		"--dsn", filepath.Join(dir, "items.db"),
		"--log-file", filepath.Join(dir, "log"),
	})

	err := root.Execute()

	require.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	root := NewRootCommand(models.NewAppBuildInfo("1.0.0-test", "", ""))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"frobnicate"})

	assert.Error(t, root.Execute())
}
