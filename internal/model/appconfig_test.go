package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppConfig(t *testing.T) {
	c := DefaultAppConfig()

	assert.Equal(t, 800, c.DefaultContainerWidth)
	assert.Equal(t, 600, c.DefaultContainerHeight)
	assert.Equal(t, "system", c.Theme)
	assert.NotNil(t, c.RecentBoards)
}

func TestAppConfig_ApplyToBoard(t *testing.T) {
	c := DefaultAppConfig()
	c.DefaultContainerWidth = 1280
	c.DefaultContainerHeight = 720

	b := NewBoard()
	c.ApplyToBoard(&b)

	assert.Equal(t, Size{Width: 1280, Height: 720}, b.Container)
}

func TestAppConfig_NewDefaultTile(t *testing.T) {
	c := DefaultAppConfig()
	c.DefaultTileWidth = 200
	c.DefaultTileHeight = 120

	tile := c.NewDefaultTile("Stats", "app://stats")
	assert.Equal(t, 200, tile.Width)
	assert.Equal(t, 120, tile.Height)
	assert.Equal(t, "Stats", tile.Label)
}
