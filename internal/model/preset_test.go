package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardPreset(t *testing.T) {
	tiles := []Tile{NewTile("A", "", 100, 80), NewTile("B", "", 100, 80)}
	p := NewBoardPreset("Two tiles", "small demo", tiles, Size{Width: 640, Height: 480})

	assert.Len(t, p.ID, 8)
	assert.Equal(t, "Two tiles", p.Name)
	assert.NotEmpty(t, p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	require.Len(t, p.Tiles, 2)

	// The preset holds copies, not the caller's slice.
	tiles[0].Label = "changed"
	assert.Equal(t, "A", p.Tiles[0].Label)
}

func TestBoardPreset_ToBoard(t *testing.T) {
	tiles := []Tile{NewTile("A", "app://a", 100, 80)}
	tiles[0].Hidden = true
	p := NewBoardPreset("P", "", tiles, Size{Width: 640, Height: 480})

	b := p.ToBoard("My Board")

	assert.Equal(t, "My Board", b.Name)
	assert.Equal(t, Size{Width: 640, Height: 480}, b.Container)
	require.Len(t, b.Tiles, 1)
	assert.Equal(t, "A", b.Tiles[0].Label)
	assert.True(t, b.Tiles[0].Hidden)
	assert.NotEqual(t, p.Tiles[0].ID, b.Tiles[0].ID, "tiles should get fresh IDs")
}

func TestPresetStore_AddRemoveFind(t *testing.T) {
	s := NewPresetStore()
	p := NewBoardPreset("P", "", nil, Size{Width: 640, Height: 480})
	s.Add(p)

	found, ok := s.Find(p.ID)
	require.True(t, ok)
	assert.Equal(t, "P", found.Name)

	s.Remove("missing") // no-op
	assert.Len(t, s.Presets, 1)

	s.Remove(p.ID)
	assert.Empty(t, s.Presets)

	_, ok = s.Find(p.ID)
	assert.False(t, ok)
}
