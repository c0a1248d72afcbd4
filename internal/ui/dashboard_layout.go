package ui

import (
	"math"

	"fyne.io/fyne/v2"

	"github.com/piwi3910/GridDash/internal/engine"
	"github.com/piwi3910/GridDash/internal/model"
)

// DashboardLayout is a fyne.Layout that arranges uniform tiles on a balanced
// grid. Every visible child is given the same cell size (the largest minimum
// size among them) and the column count is chosen to even out the horizontal
// and vertical gaps.
type DashboardLayout struct{}

func NewDashboardLayout() *DashboardLayout {
	return &DashboardLayout{}
}

func (d *DashboardLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		if min.Width > w {
			w = min.Width
		}
		if min.Height > h {
			h = min.Height
		}
	}
	return fyne.NewSize(w, h)
}

func (d *DashboardLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return
	}

	cell := measureCell(visible)
	container := model.Size{
		Width:  int(size.Width),
		Height: int(size.Height),
	}

	layout := engine.Arrange(len(visible), cell, container)

	for i, o := range visible {
		if i >= len(layout.Placements) {
			break
		}
		p := layout.Placements[i]
		o.Move(fyne.NewPos(float32(p.Left), float32(p.Top)))
		o.Resize(fyne.NewSize(float32(p.Width()), float32(p.Height())))
	}
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	var visible []fyne.CanvasObject
	for _, o := range objects {
		if o.Visible() {
			visible = append(visible, o)
		}
	}
	return visible
}

// measureCell returns the shared cell size, the per-axis maximum of the
// children's minimum sizes rounded up to whole pixels.
func measureCell(objects []fyne.CanvasObject) model.Size {
	var w, h float32
	for _, o := range objects {
		min := o.MinSize()
		if min.Width > w {
			w = min.Width
		}
		if min.Height > h {
			h = min.Height
		}
	}
	return model.Size{
		Width:  int(math.Ceil(float64(w))),
		Height: int(math.Ceil(float64(h))),
	}
}
