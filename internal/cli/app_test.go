package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synergy360/kiosk/internal/infrastructure/config"
)

func TestNewApp_BrokenConfigFallsBackToDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	dir := filepath.Join(root, "config", "kiosk")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[gesture]\ncorner_threshold = -5\n"), 0o644))

	app := NewApp()

	require.NotNil(t, app)
	require.Error(t, app.ConfigErr)
	assert.Contains(t, app.ConfigErr.Error(), "validation")
	assert.Equal(t, config.DefaultConfig(), app.Config)
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, app.Ctx())
}

func TestApp_CtxOnNilApp(t *testing.T) {
	var app *App
	assert.NotNil(t, app.Ctx())
}
