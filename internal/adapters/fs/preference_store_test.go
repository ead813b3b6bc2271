package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/arbiter/internal/config"
	domainconfig "github.com/trebuchet-org/arbiter/internal/domain/config"
)

func newTestPreferenceStore(t *testing.T) (*PreferenceStoreAdapter, string) {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), ".arbiter")
	return NewPreferenceStoreAdapter(&config.RuntimeConfig{DataDir: dataDir}), dataDir
}

func TestPreferenceStore_LoadMissing(t *testing.T) {
	store, _ := newTestPreferenceStore(t)

	assert.False(t, store.Exists())
	prefs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, prefs.DarkMode)
}

func TestPreferenceStore_SaveAndLoad(t *testing.T) {
	store, dataDir := newTestPreferenceStore(t)
	ctx := context.Background()
	dark := true

	require.NoError(t, store.Save(ctx, &domainconfig.Preferences{DarkMode: &dark}))
	assert.Equal(t, filepath.Join(dataDir, "preferences.json"), store.GetPath())

	raw, err := os.ReadFile(store.GetPath())
	require.NoError(t, err)
	assert.JSONEq(t, `{"darkMode": true}`, string(raw))

	prefs, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, prefs.DarkMode)
	assert.True(t, *prefs.DarkMode)
}

func TestPreferenceStore_CorruptFile(t *testing.T) {
	store, dataDir := newTestPreferenceStore(t)
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.WriteFile(store.GetPath(), []byte("{dark"), 0644))

	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "failed to parse preferences file")
}
