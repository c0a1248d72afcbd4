package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridDash/internal/engine"
	"github.com/piwi3910/GridDash/internal/model"
)

// Tile colors — cycle through these for visual distinction.
var tileColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// BoardCanvas renders a scaled preview of an arranged board.
type BoardCanvas struct {
	widget.BaseWidget
	board     model.Board
	layout    model.Layout
	maxWidth  float32
	maxHeight float32
}

func NewBoardCanvas(board model.Board, layout model.Layout, maxW, maxH float32) *BoardCanvas {
	bc := &BoardCanvas{
		board:     board,
		layout:    layout,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

func (bc *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newBoardCanvasRenderer(bc)
}

type boardCanvasRenderer struct {
	bc      *BoardCanvas
	objects []fyne.CanvasObject
}

func newBoardCanvasRenderer(bc *BoardCanvas) *boardCanvasRenderer {
	r := &boardCanvasRenderer{bc: bc}
	r.rebuild()
	return r
}

func (r *boardCanvasRenderer) scale() float32 {
	w := float32(r.bc.layout.Container.Width)
	h := float32(r.bc.layout.Container.Height)
	if w <= 0 || h <= 0 {
		return 1
	}
	scaleX := r.bc.maxWidth / w
	scaleY := r.bc.maxHeight / h
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *boardCanvasRenderer) rebuild() {
	r.objects = nil

	lay := r.bc.layout
	scale := r.scale()
	canvasW := float32(lay.Container.Width) * scale
	canvasH := float32(lay.Container.Height) * scale

	// Container background
	bg := canvas.NewRectangle(color.NRGBA{R: 38, G: 42, B: 48, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Container border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	visible := r.bc.board.VisibleTiles()

	for i, p := range lay.Placements {
		col := tileColors[i%len(tileColors)]
		px := float32(p.Left) * scale
		py := float32(p.Top) * scale
		pw := float32(p.Width()) * scale
		ph := float32(p.Height()) * scale

		tileRect := canvas.NewRectangle(col)
		tileRect.Resize(fyne.NewSize(pw, ph))
		tileRect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, tileRect)

		tileBorder := canvas.NewRectangle(color.Transparent)
		tileBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		tileBorder.StrokeWidth = 1
		tileBorder.Resize(fyne.NewSize(pw, ph))
		tileBorder.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, tileBorder)

		// Label (only if big enough)
		if pw > 30 && ph > 16 && i < len(visible) {
			label := canvas.NewText(
				fmt.Sprintf("%s\n%dx%d", visible[i].Label, p.Width(), p.Height()),
				color.White,
			)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *boardCanvasRenderer) Layout(size fyne.Size)        {}
func (r *boardCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *boardCanvasRenderer) Destroy()                     {}
func (r *boardCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardCanvasRenderer) MinSize() fyne.Size {
	scale := r.scale()
	return fyne.NewSize(
		float32(r.bc.layout.Container.Width)*scale,
		float32(r.bc.layout.Container.Height)*scale,
	)
}

// RenderBoardPreview arranges the board and builds a scrollable preview with
// the grid metrics above the canvas.
func RenderBoardPreview(board model.Board) fyne.CanvasObject {
	if len(board.VisibleTiles()) == 0 {
		return widget.NewLabel("No tiles yet. Add tiles on the Tiles tab, then open Preview.")
	}

	layout := engine.ArrangeBoard(board)

	g := layout.Grid
	header := widget.NewLabel(fmt.Sprintf(
		"%s (%d × %d) — %d tiles in %d × %d grid",
		board.Name, board.Container.Width, board.Container.Height,
		len(layout.Placements), g.Cols, g.Rows,
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	stats := widget.NewLabel(fmt.Sprintf(
		"Cell %d × %d | gaps h=%d v=%d | coverage %.1f%%",
		g.CellWidth, g.CellHeight, g.HSpace, g.VSpace, layout.Coverage(),
	))

	boardCanvas := NewBoardCanvas(board, layout, 600, 400)

	items := []fyne.CanvasObject{header, stats, boardCanvas, widget.NewSeparator()}

	if len(layout.Placements) < len(board.VisibleTiles()) {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d tiles could not be placed.",
			len(board.VisibleTiles())-len(layout.Placements),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	return container.NewVScroll(container.NewVBox(items...))
}
