package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/nameboard/internal/errs"
	"github.com/Makepad-fr/nameboard/internal/store"
)

// isolate keeps the user's real config and env out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NAMEBOARD_CONFIG", "")
	t.Setenv("NAMEBOARD_UI_THEME", "")
	t.Setenv("NAMEBOARD_LOG_LEVEL", "")
	t.Setenv("NAMEBOARD_SEED", "")
	os.Unsetenv("NAMEBOARD_SEED")
	os.Unsetenv("NAMEBOARD_UI_THEME")
	os.Unsetenv("NAMEBOARD_LOG_LEVEL")
	os.Unsetenv("NAMEBOARD_CONFIG")
	return home
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, store.DefaultSeed, c.Seed)
	require.Equal(t, "classic", c.UI.Theme)
	require.False(t, c.UI.NoColor)
	require.Equal(t, "info", c.Log.Level)
	require.Empty(t, c.Log.File)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "nb.yaml", `
seed:
  - " Ateneo "
  - ""
  - DLSU
ui:
  theme: NEON
log:
  level: debug
  file: /tmp/nameboard.log
`)

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, []string{"Ateneo", "DLSU"}, c.Seed)
	require.Equal(t, "neon", c.UI.Theme)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, "/tmp/nameboard.log", c.Log.File)
}

func TestLoadHomeConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, home, filepath.Join(".config", "nameboard", "config.toml"), `
[ui]
theme = "mono"
`)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "mono", c.UI.Theme)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "nb.toml", "[ui]\ntheme = \"mono\"\n")
	t.Setenv("NAMEBOARD_UI_THEME", "neon")

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "neon", c.UI.Theme)
}

func TestSeedFromEnv(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "nb.yaml", "seed: [UST]\n")
	t.Setenv("NAMEBOARD_SEED", " Ateneo,DLSU , ,Mapua")

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, []string{"Ateneo", "DLSU", "Mapua"}, c.Seed)
}

func TestBlankSeedFallsBack(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "nb.yaml", "seed:\n  - \"  \"\n")

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, store.DefaultSeed, c.Seed)
}

func TestInvalidTheme(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "nb.yaml", "ui:\n  theme: rainbow\n")

	_, err := Load(p)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}
