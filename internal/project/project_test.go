package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GridDash/internal/model"
)

func TestSaveLoadAppConfig_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := model.DefaultAppConfig()
	config.DefaultContainerWidth = 1024
	config.Theme = "dark"
	config.RecentBoards = []string{"/tmp/a.griddash"}

	require.NoError(t, SaveAppConfig(path, config))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.json")

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), loaded)
}

func TestLoadAppConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadAppConfig(path)
	assert.Error(t, err)
}

func TestRememberBoard(t *testing.T) {
	config := model.DefaultAppConfig()
	config.RecentBoards = []string{"/b", "/c"}

	RememberBoard(&config, "/a")
	assert.Equal(t, []string{"/a", "/b", "/c"}, config.RecentBoards)

	// Re-opening an existing entry moves it to the front without duplicating.
	RememberBoard(&config, "/c")
	assert.Equal(t, []string{"/c", "/a", "/b"}, config.RecentBoards)
}

func TestSaveLoadBoard_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo"+BoardExtension)

	board := model.NewBoard()
	board.Name = "Demo"
	board.Tiles = []model.Tile{
		model.NewTile("Mail", "app://mail", 160, 100),
		model.NewTile("Stats", "app://stats", 160, 100),
	}
	board.Tiles[1].Hidden = true

	require.NoError(t, SaveBoard(path, board))

	loaded, err := LoadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, board, loaded)
	assert.True(t, loaded.Tiles[1].Hidden)
}

func TestLoadBoard_MissingFile(t *testing.T) {
	_, err := LoadBoard(filepath.Join(t.TempDir(), "nope.griddash"))
	assert.Error(t, err)
}

func TestSaveLoadPresets_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")

	store := model.NewPresetStore()
	store.Add(model.NewBoardPreset("P1", "first", []model.Tile{model.NewTile("A", "", 100, 80)}, model.Size{Width: 640, Height: 480}))

	require.NoError(t, SavePresets(path, store))

	loaded, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, store, loaded)
}

func TestLoadPresets_MissingFileReturnsEmptyStore(t *testing.T) {
	loaded, err := LoadPresets(filepath.Join(t.TempDir(), "presets.json"))
	require.NoError(t, err)
	assert.NotNil(t, loaded.Presets)
	assert.Empty(t, loaded.Presets)
}
