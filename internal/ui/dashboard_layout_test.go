package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTile(w, h float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.White)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func TestDashboardLayout_MinSize(t *testing.T) {
	l := NewDashboardLayout()

	objects := []fyne.CanvasObject{
		newTile(100, 60),
		newTile(80, 90),
	}

	min := l.MinSize(objects)
	assert.Equal(t, float32(100), min.Width)
	assert.Equal(t, float32(90), min.Height)
}

func TestDashboardLayout_MinSizeIgnoresHidden(t *testing.T) {
	l := NewDashboardLayout()

	big := newTile(500, 500)
	big.Hide()
	objects := []fyne.CanvasObject{
		newTile(100, 60),
		big,
	}

	min := l.MinSize(objects)
	assert.Equal(t, float32(100), min.Width)
	assert.Equal(t, float32(60), min.Height)
}

func TestDashboardLayout_FourTilesSquareContainer(t *testing.T) {
	l := NewDashboardLayout()

	objects := []fyne.CanvasObject{
		newTile(100, 100),
		newTile(100, 100),
		newTile(100, 100),
		newTile(100, 100),
	}

	l.Layout(objects, fyne.NewSize(420, 420))

	// Balanced 2x2 grid with 73px gaps on both axes.
	wantPos := []fyne.Position{
		fyne.NewPos(73, 73),
		fyne.NewPos(246, 73),
		fyne.NewPos(73, 246),
		fyne.NewPos(246, 246),
	}
	for i, o := range objects {
		require.Equal(t, wantPos[i], o.Position(), "tile %d position", i)
		assert.Equal(t, fyne.NewSize(100, 100), o.Size(), "tile %d size", i)
	}
}

func TestDashboardLayout_SkipsHiddenChildren(t *testing.T) {
	l := NewDashboardLayout()

	hidden := newTile(100, 100)
	hidden.Hide()
	shown := newTile(100, 100)
	objects := []fyne.CanvasObject{hidden, shown}

	l.Layout(objects, fyne.NewSize(400, 220))

	// A single visible tile is centered.
	assert.Equal(t, fyne.NewPos(150, 60), shown.Position())
	assert.Equal(t, fyne.NewSize(100, 100), shown.Size())
}

func TestDashboardLayout_EmptyObjects(t *testing.T) {
	l := NewDashboardLayout()

	assert.NotPanics(t, func() {
		l.Layout(nil, fyne.NewSize(400, 400))
	})
	assert.Equal(t, fyne.NewSize(0, 0), l.MinSize(nil))
}
