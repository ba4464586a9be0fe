package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestSaveLoadConfig(t *testing.T) {
	dir := t.TempDir()
	want := DefaultConfig()
	want.Theme.File = "themes/night.yaml"
	want.Menu.Title = "Tools"
	want.Menu.Layout = "grid"
	want.Menu.Columns = 3
	want.Menu.Items = []string{"Cut", "Copy", "Paste", "Undo"}
	want.Output.ShowHidden = true

	require.NoError(t, SaveConfig(dir, want))
	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := "[menu]\ntitle = \"Pause\"\nlayout = \"\"\ncolumns = 0\n\n[output]\ncolor = \"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(data), 0644))

	config, err := LoadConfig(dir)
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, "Pause", config.Menu.Title)
	assert.Equal(t, def.Menu.Layout, config.Menu.Layout)
	assert.Equal(t, def.Menu.Columns, config.Menu.Columns)
	assert.Equal(t, def.Menu.Items, config.Menu.Items)
	assert.Equal(t, def.Output.Color, config.Output.Color)
	assert.Equal(t, def.Theme, config.Theme)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("[menu\n"), 0644))

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, SaveConfig(root, DefaultConfig()))

	got, err := FindProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = FindProjectRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestInitProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, initProject(dir, "", true, false))

	config, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), config.Menu.Title)
	assert.Equal(t, "light", config.Theme.Base)
	assert.FileExists(t, filepath.Join(dir, "theme.toml"))

	th, path, err := resolveTheme(dir, config.Theme)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "theme.toml"), path)
	assert.Equal(t, "light", th.Name)

	assert.ErrorContains(t, initProject(dir, "Again", false, false), "already exists")

	require.NoError(t, initProject(dir, "Again", false, true))
	config, err = LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "Again", config.Menu.Title)
	th, _, err = resolveTheme(dir, config.Theme)
	require.NoError(t, err)
	assert.Equal(t, "dark", th.Name)
}
