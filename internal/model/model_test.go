package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTile(t *testing.T) {
	tile := NewTile("Mail", "app://mail", 160, 100)

	assert.Len(t, tile.ID, 8)
	assert.Equal(t, "Mail", tile.Label)
	assert.Equal(t, "app://mail", tile.Link)
	assert.Equal(t, Size{Width: 160, Height: 100}, tile.Size())
	assert.False(t, tile.Hidden)

	other := NewTile("Mail", "app://mail", 160, 100)
	assert.NotEqual(t, tile.ID, other.ID, "tiles should get unique IDs")
}

func TestBoard_VisibleTiles(t *testing.T) {
	b := NewBoard()
	b.Tiles = []Tile{
		{ID: "a", Label: "A"},
		{ID: "b", Label: "B", Hidden: true},
		{ID: "c", Label: "C"},
	}

	visible := b.VisibleTiles()
	assert.Len(t, visible, 2)
	assert.Equal(t, "a", visible[0].ID)
	assert.Equal(t, "c", visible[1].ID)
}

func TestGrid_Helpers(t *testing.T) {
	g := Grid{Cols: 3, Rows: 2, HSpace: 10, VSpace: 25}
	assert.Equal(t, 6, g.Cells())
	assert.Equal(t, 15, g.Balance())

	g.VSpace = 5
	assert.Equal(t, 5, g.Balance())
}

func TestPlacement_Dimensions(t *testing.T) {
	p := Placement{Left: 50, Top: 20, Right: 170, Bottom: 120}
	assert.Equal(t, 120, p.Width())
	assert.Equal(t, 100, p.Height())
}

func TestLayout_Coverage(t *testing.T) {
	l := Layout{
		Container: Size{Width: 200, Height: 100},
		Placements: []Placement{
			{Left: 0, Top: 0, Right: 100, Bottom: 50},
			{Left: 100, Top: 0, Right: 200, Bottom: 50},
		},
	}
	assert.Equal(t, 10000, l.UsedArea())
	assert.InDelta(t, 50.0, l.Coverage(), 0.001)

	empty := Layout{}
	assert.Equal(t, 0.0, empty.Coverage())
}
